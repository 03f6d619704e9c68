package querygen

import (
	"fmt"
	"strings"

	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/store"
)

// historyWindow caps how many recent turns are embedded for grounding.
const historyWindow = 6

func buildPrompt(message string, schemas []store.TableSchema, history []llm.Message) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You translate a user's question about their tabular data into ONE executable query description.\n")
	prompt.WriteString("You do NOT answer the question. You only produce the query.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<dataset_schema>\n")
	if len(schemas) == 0 {
		prompt.WriteString("No schema supplied.\n")
	}
	for _, table := range schemas {
		prompt.WriteString(fmt.Sprintf("TABLE %s:\n", table.Name))
		for _, col := range table.Columns {
			prompt.WriteString(fmt.Sprintf("  - %s (%s)\n", col.Name, col.Type))
		}
	}
	prompt.WriteString("</dataset_schema>\n\n")

	if len(history) > 0 {
		start := len(history) - historyWindow
		if start < 0 {
			start = 0
		}
		prompt.WriteString("<recent_conversation>\n")
		for _, turn := range history[start:] {
			prompt.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
		prompt.WriteString("</recent_conversation>\n\n")
	}

	prompt.WriteString("<user_question>\n")
	prompt.WriteString(message)
	prompt.WriteString("\n</user_question>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY a JSON object, no prose before or after:\n")
	prompt.WriteString(`{"query": "<executable query over the columns above>", "explanation": "<one sentence>", "suggestions": ["<follow-up question>", "..."]}` + "\n")
	prompt.WriteString("Rules:\n")
	prompt.WriteString("1. query MUST reference only columns that exist in the schema.\n")
	prompt.WriteString("2. If the question cannot be answered from the schema, set query to an empty string.\n")
	prompt.WriteString("3. suggestions: at most 3 short follow-up questions.\n")
	prompt.WriteString("</output_format>\n")

	return prompt.String()
}
