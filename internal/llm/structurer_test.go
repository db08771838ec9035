package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// scriptedClient replays canned responses and records every request it
// receives.
type scriptedClient struct {
	responses []string
	errs      []error
	requests  []GenerateRequest
}

func (c *scriptedClient) Generate(_ context.Context, req GenerateRequest) (string, error) {
	i := len(c.requests)
	c.requests = append(c.requests, req)
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.responses) {
		return c.responses[i], nil
	}
	return "", errors.New("script exhausted")
}

const validDoc = `[{"name":"Sopa","price":"5.00","description":"caldo","category":"appetizers","allergens":[]}]`

func newTestStructurer(c Client) *Structurer {
	s := NewStructurer(c)
	s.Backoff = 0
	return s
}

func TestStructureChunkFirstAttempt(t *testing.T) {
	client := &scriptedClient{responses: []string{validDoc}}
	s := newTestStructurer(client)

	res, err := s.StructureChunk(context.Background(), "starters", "Sopa 5.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeStructured || res.Attempts != 1 {
		t.Fatalf("got outcome=%v attempts=%d", res.Outcome, res.Attempts)
	}
	if len(res.Dishes) != 1 || res.Dishes[0].Name != "Sopa" {
		t.Fatalf("unexpected dishes: %+v", res.Dishes)
	}
	if res.LastError != nil {
		t.Fatalf("LastError should be nil on success, got %v", res.LastError)
	}
}

func TestStructureChunkRecoversOnThirdAttempt(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"I'm sorry, I cannot help with that.",
		`[{"name":"Sopa"}]`, // schema violation: no price
		validDoc,
	}}
	s := newTestStructurer(client)

	res, err := s.StructureChunk(context.Background(), "starters", "Sopa 5.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeStructured || res.Attempts != 3 {
		t.Fatalf("got outcome=%v attempts=%d", res.Outcome, res.Attempts)
	}
	if len(client.requests) != 3 {
		t.Fatalf("expected 3 service calls, got %d", len(client.requests))
	}
}

func TestStructureChunkFallsBackAfterThreeAttempts(t *testing.T) {
	client := &scriptedClient{responses: []string{"garbage", "garbage", "garbage"}}
	s := newTestStructurer(client)

	res, err := s.StructureChunk(context.Background(), "starters", "Sopa de tomate 5.00\nnota sin precio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.requests) != 3 {
		t.Fatalf("expected exactly 3 service calls, got %d", len(client.requests))
	}
	if res.Outcome != OutcomeFallback || res.Attempts != 3 {
		t.Fatalf("got outcome=%v attempts=%d", res.Outcome, res.Attempts)
	}
	if res.LastError == nil {
		t.Fatal("fallback result must carry the last failure")
	}
	if len(res.Dishes) != 1 || res.Dishes[0].Name != "Sopa de tomate" || res.Dishes[0].Price != "5.00" {
		t.Fatalf("fallback dishes = %+v", res.Dishes)
	}
}

func TestStructureChunkVariesAttempts(t *testing.T) {
	client := &scriptedClient{errs: []error{
		errors.New("boom"), errors.New("boom"), errors.New("boom"),
	}}
	s := newTestStructurer(client)

	if _, err := s.StructureChunk(context.Background(), "starters", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.requests) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(client.requests))
	}
	for i := 1; i < 3; i++ {
		if client.requests[i].Prompt == client.requests[i-1].Prompt {
			t.Fatalf("attempt %d reused the previous prompt", i)
		}
		if client.requests[i].Temperature <= client.requests[i-1].Temperature {
			t.Fatalf("attempt %d temperature did not increase: %v then %v",
				i, client.requests[i-1].Temperature, client.requests[i].Temperature)
		}
	}
	if !strings.Contains(client.requests[1].Prompt, "price boundary") &&
		!strings.Contains(client.requests[1].Prompt, "price belongs to exactly one dish") {
		t.Fatalf("second attempt missing boundary emphasis:\n%s", client.requests[1].Prompt)
	}
}

func TestStructureChunkCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &scriptedClient{responses: []string{validDoc}}
	s := newTestStructurer(client)

	if _, err := s.StructureChunk(ctx, "starters", "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(client.requests) != 0 {
		t.Fatalf("canceled context must not reach the service, got %d calls", len(client.requests))
	}
}
