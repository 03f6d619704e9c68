package querygen

import (
	"context"
	"log"

	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/store"
)

// Generator turns a natural-language message into a structured query
// description for client-side execution.
type Generator struct {
	provider llm.Provider
	logger   *log.Logger
}

func NewGenerator(provider llm.Provider, logger *log.Logger) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
	}
}

// Generate always returns a well-formed result, never an error: provider
// failures, refusals, and structurally invalid output all collapse into the
// Error field so the caller can answer with the canned guidance.
func (g *Generator) Generate(
	ctx context.Context,
	message string,
	schemas []store.TableSchema,
	history []llm.Message,
) *store.QueryGenerationResult {

	prompt := buildPrompt(message, schemas, history)

	// Temperature 0 for deterministic query shapes
	response, err := g.provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		g.logger.Printf("[QUERYGEN] provider call failed: %v", err)
		return &store.QueryGenerationResult{Error: "completion service unavailable: " + err.Error()}
	}

	result, err := parseGeneration(response)
	if err != nil {
		g.logger.Printf("[QUERYGEN] structural validation failed: %v", err)
		return &store.QueryGenerationResult{Error: "invalid generation output: " + err.Error()}
	}

	g.logger.Printf("[QUERYGEN] generated query (%d chars, %d suggestions)", len(result.Query), len(result.Suggestions))
	return result
}
