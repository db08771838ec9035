package llm

import (
	"context"
	"log"
	"time"
)

// Outcome tags how a chunk's structuring terminated.
type Outcome int

const (
	// OutcomeStructured means the remote service produced a document
	// that passed extraction and validation.
	OutcomeStructured Outcome = iota
	// OutcomeFallback means all attempts failed and the local parser
	// produced the (minimal) result instead.
	OutcomeFallback
)

// Result is the terminal state of one chunk's structuring ladder.
// LastError carries the final failure that forced the fallback; nil
// when the service succeeded.
type Result struct {
	Outcome   Outcome
	Dishes    []Dish
	Attempts  int
	LastError error
}

// Structurer drives the bounded retry protocol against the
// text-generation service. Every attempt mutates the prompt and nudges
// the temperature up to escape degenerate response patterns; after
// MaxAttempts failures the deterministic fallback parser takes over, so
// structuring always terminates without the remote dependency.
type Structurer struct {
	client Client

	MaxAttempts int
	Backoff     time.Duration
	MaxTokens   int

	baseTemperature float64
	temperatureStep float64
}

func NewStructurer(client Client) *Structurer {
	return &Structurer{
		client:          client,
		MaxAttempts:     3,
		Backoff:         500 * time.Millisecond,
		MaxTokens:       2048,
		baseTemperature: 0.3,
		temperatureStep: 0.1,
	}
}

// StructureChunk runs the ladder for one category chunk. The only
// returned error is the caller's context being canceled; every service
// failure is absorbed into the retry/fallback protocol.
func (s *Structurer) StructureChunk(ctx context.Context, category, content string) (Result, error) {
	var lastErr error

	for attempt := 0; attempt < s.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		req := GenerateRequest{
			System:      SystemJSONOnly,
			Prompt:      BuildStructurePrompt(category, content, attempt),
			Temperature: s.baseTemperature + s.temperatureStep*float64(attempt),
			MaxTokens:   s.MaxTokens,
		}

		raw, err := s.client.Generate(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			lastErr = err
			log.Printf("STRUCTURE_RETRY chunk=%q attempt=%d reason=%v", category, attempt, err)
			if !s.wait(ctx, attempt) {
				return Result{}, ctx.Err()
			}
			continue
		}

		doc, err := ExtractJSON(raw)
		if err != nil {
			lastErr = err
			log.Printf("STRUCTURE_RETRY chunk=%q attempt=%d reason=%v response=%q", category, attempt, err, snippet(raw, 200))
			if !s.wait(ctx, attempt) {
				return Result{}, ctx.Err()
			}
			continue
		}

		dishes, err := ValidateDishes([]byte(doc), true)
		if err != nil {
			lastErr = err
			log.Printf("STRUCTURE_RETRY chunk=%q attempt=%d reason=%v response=%q", category, attempt, err, snippet(doc, 200))
			if !s.wait(ctx, attempt) {
				return Result{}, ctx.Err()
			}
			continue
		}

		log.Printf("STRUCTURE_DONE chunk=%q attempt=%d dishes=%d", category, attempt, len(dishes))
		return Result{Outcome: OutcomeStructured, Dishes: dishes, Attempts: attempt + 1}, nil
	}

	log.Printf("FALLBACK_ENGAGED chunk=%q attempts=%d last_error=%v", category, s.MaxAttempts, lastErr)
	return Result{
		Outcome:   OutcomeFallback,
		Dishes:    FallbackParse(content),
		Attempts:  s.MaxAttempts,
		LastError: lastErr,
	}, nil
}

// wait sleeps the fixed backoff between attempts, honoring cancellation.
// Reports false when the context expired. No delay after the final try.
func (s *Structurer) wait(ctx context.Context, attempt int) bool {
	if attempt >= s.MaxAttempts-1 || s.Backoff <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(s.Backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
