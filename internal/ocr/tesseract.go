package ocr

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrEmptyText means tesseract ran but produced no usable output.
var ErrEmptyText = errors.New("ocr produced empty text")

// ExtractText runs tesseract over an image file and returns the raw
// recognized text. Spanish language pack, matching the menus we ingest.
func ExtractText(filePath string) (string, error) {
	cmd := exec.Command("tesseract", filePath, "stdout", "-l", "spa")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	text := string(out)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
