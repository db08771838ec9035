package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/JonathanSerafinCM/OCR/internal/classify"
	"github.com/JonathanSerafinCM/OCR/internal/llm"
	"github.com/JonathanSerafinCM/OCR/internal/ocr"
)

// ErrNoDishes means not a single dish survived the whole pipeline,
// fallback included.
var ErrNoDishes = errors.New("no dishes extracted")

// Archive stores a copy of the processed source document. Optional.
type Archive interface {
	Put(ctx context.Context, key string, body io.Reader) (string, error)
}

// structurer is the seam tests use to script the retry ladder.
type structurer interface {
	StructureChunk(ctx context.Context, category, content string) (llm.Result, error)
}

// Service owns the text-to-records pipeline: OCR text in, persisted
// menu items out. One Service is shared across requests; it holds no
// per-request state.
type Service struct {
	repo       Repository
	structurer structurer
	archive    Archive

	// Production suppresses the raw-text diagnostic echo.
	Production bool
}

func NewService(repo Repository, client llm.Client, archive Archive) *Service {
	return &Service{
		repo:       repo,
		structurer: llm.NewStructurer(client),
		archive:    archive,
	}
}

// ProcessFile runs the full pipeline for a menu document on disk.
// PDFs are rasterized first; either conversion or OCR failing aborts
// before any record is created.
func (s *Service) ProcessFile(ctx context.Context, path string) (*ProcessResult, error) {
	imagePath := path
	if ocr.IsPDF(path) {
		converted, err := ocr.ConvertPDF(path)
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(filepath.Dir(converted))
		imagePath = converted
	}

	text, err := ocr.ExtractText(imagePath)
	if err != nil {
		return nil, err
	}

	result, err := s.Process(ctx, text)
	if err != nil {
		return nil, err
	}

	s.archiveSource(ctx, path)
	return result, nil
}

// Process structures raw OCR text and persists the resulting dishes.
// Chunks are structured concurrently but persisted in original chunk
// order, so output is deterministic. A chunk yielding nothing is not a
// failure; only a completely empty outcome is.
func (s *Service) Process(ctx context.Context, rawText string) (*ProcessResult, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ocr.ErrEmptyText
	}

	normalized := ocr.Normalize(rawText)
	chunks := ocr.SplitCategories(normalized)

	results := make([]llm.Result, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk ocr.Chunk) {
			defer wg.Done()
			results[i], errs[i] = s.structurer.StructureChunk(ctx, chunk.Category, chunk.Content)
		}(i, chunk)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			// Only cancellation escapes the ladder.
			return nil, err
		}
	}

	var items []Item
	var lastCause error
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if results[i].LastError != nil {
			lastCause = results[i].LastError
		}
		for _, dish := range results[i].Dishes {
			enriched := s.enrich(dish, chunk)
			item, err := s.repo.CreateMenuItem(ctx, enriched)
			if err != nil {
				log.Printf("MENU_PERSIST_FAILED dish=%q err=%v", dish.Name, err)
				lastCause = err
				continue
			}
			items = append(items, *item)
		}
		if len(results[i].Dishes) == 0 {
			log.Printf("CHUNK_EMPTY chunk=%q outcome=%d", chunk.Category, results[i].Outcome)
		}
	}

	if len(items) == 0 {
		if lastCause != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoDishes, lastCause)
		}
		return nil, ErrNoDishes
	}

	result := &ProcessResult{Count: len(items), Items: items}
	if !s.Production {
		result.RawText = rawText
	}

	log.Printf("MENU_PROCESSED chunks=%d items=%d", len(chunks), len(items))
	return result, nil
}

// enrich fills whatever the structuring step left empty: allergens from
// the keyword classifier, category from the chunk marker or the
// fallback classifier, description from the sentinel.
func (s *Service) enrich(dish llm.Dish, chunk ocr.Chunk) llm.Dish {
	if dish.Allergens == nil {
		dish.Allergens = classify.Allergens(dish.Name, dish.Description)
	}
	if dish.Category == "" {
		if chunk.Category != ocr.DefaultCategory {
			dish.Category = chunk.Category
		} else if cat, ok := classify.Category(dish.Name, dish.Description); ok {
			dish.Category = cat
		} else {
			dish.Category = classify.Uncategorized
		}
	}
	if dish.Description == "" {
		dish.Description = NoDescription
	}
	return dish
}

func (s *Service) archiveSource(ctx context.Context, path string) {
	if s.archive == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("ARCHIVE_SKIPPED path=%s err=%v", path, err)
		return
	}
	defer f.Close()

	key := fmt.Sprintf("menus/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(path)))
	url, err := s.archive.Put(ctx, key, f)
	if err != nil {
		log.Printf("ARCHIVE_FAILED key=%s err=%v", key, err)
		return
	}
	log.Printf("ARCHIVE_DONE key=%s url=%s", key, url)
}
