package querygen

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-datachat-be/pkg/store"
)

type rawGeneration struct {
	Query       string   `json:"query"`
	Explanation string   `json:"explanation"`
	Suggestions []string `json:"suggestions"`
}

// parseGeneration structurally validates a model response. The response must
// contain a JSON object with a non-empty query string; anything else is an
// error the generator converts into the fallback result.
func parseGeneration(response string) (*store.QueryGenerationResult, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var raw rawGeneration
	if err := json.Unmarshal([]byte(jsonContent), &raw); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	raw.Query = strings.TrimSpace(raw.Query)
	if raw.Query == "" {
		return nil, fmt.Errorf("model produced no executable query")
	}

	suggestions := make([]string, 0, len(raw.Suggestions))
	for _, s := range raw.Suggestions {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			suggestions = append(suggestions, trimmed)
		}
	}

	return &store.QueryGenerationResult{
		Query:       raw.Query,
		Explanation: strings.TrimSpace(raw.Explanation),
		Suggestions: suggestions,
	}, nil
}

// extractJSON pulls the outermost JSON object out of a model response that
// may be wrapped in prose or code fences.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
