package querygen

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"ai-datachat-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (p *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

func (p *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

func testGenerator(p llm.Provider) *Generator {
	return NewGenerator(p, log.New(io.Discard, "", 0))
}

func TestGenerateNeverReturnsNil(t *testing.T) {
	g := testGenerator(&stubProvider{err: errors.New("connection refused")})

	result := g.Generate(context.Background(), "show overdue invoices", nil, nil)
	if result == nil {
		t.Fatal("result must never be nil")
	}
	if result.Error == "" {
		t.Fatal("provider failure must surface in the Error field")
	}
	if !strings.HasPrefix(result.Error, "completion service unavailable") {
		t.Errorf("unexpected error classification: %q", result.Error)
	}
	if result.Query != "" {
		t.Errorf("failed generation must not carry a query, got %q", result.Query)
	}
}

func TestGenerateInvalidOutput(t *testing.T) {
	g := testGenerator(&stubProvider{response: "I refuse to write SQL today."})

	result := g.Generate(context.Background(), "total by vendor", nil, nil)
	if result.Error == "" {
		t.Fatal("unparseable output must surface in the Error field")
	}
	if !strings.HasPrefix(result.Error, "invalid generation output") {
		t.Errorf("unexpected error classification: %q", result.Error)
	}
}

func TestGenerateSuccess(t *testing.T) {
	g := testGenerator(&stubProvider{
		response: `{"query": "SELECT vendor FROM invoices WHERE status = 'overdue'", "explanation": "Overdue vendors"}`,
	})

	result := g.Generate(context.Background(), "who is overdue?", nil, nil)
	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	if result.Query == "" {
		t.Fatal("expected a query")
	}
	if result.Explanation != "Overdue vendors" {
		t.Errorf("explanation = %q", result.Explanation)
	}
}
