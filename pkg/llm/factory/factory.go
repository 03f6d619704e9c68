package factory

import (
	"fmt"

	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/llm/gemini"
	"ai-datachat-be/pkg/llm/ollama"
)

// NewProvider builds the completion backend selected by config.
// Supported: "ollama" (default), "gemini".
func NewProvider(providerName, modelName, ollamaBaseURL, geminiKey string) (llm.Provider, error) {
	switch providerName {
	case "", "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(geminiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", providerName)
	}
}
