package ocr

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrConversionFailed means the PDF could not be rasterized to an image.
var ErrConversionFailed = errors.New("pdf conversion failed")

// IsPDF reports whether the file should go through rasterization first.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// ConvertPDF rasterizes the first page of a PDF to a PNG via
// poppler-utils and returns the image path. The caller owns the
// returned file and should remove it when done.
func ConvertPDF(path string) (string, error) {
	dir, err := os.MkdirTemp("", "menu-pdf-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	prefix := filepath.Join(dir, "page")
	cmd := exec.Command("pdftoppm", "-png", "-singlefile", "-r", "300", path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("%w: pdftoppm: %v (%s)", ErrConversionFailed, err, strings.TrimSpace(string(out)))
	}

	imagePath := prefix + ".png"
	if _, err := os.Stat(imagePath); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("%w: no output image", ErrConversionFailed)
	}
	return imagePath, nil
}
