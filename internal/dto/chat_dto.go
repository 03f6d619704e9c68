package dto

import (
	"ai-datachat-be/pkg/store"
)

// SubmitChatRequest is the single chat entry point. ComputedResults nil means
// "generate a query"; non-nil (even empty) means "analyze these results".
type SubmitChatRequest struct {
	DatasetId       string                   `json:"dataset_id" validate:"required"`
	Message         string                   `json:"message" validate:"required"`
	Schemas         []store.TableSchema      `json:"schemas,omitempty"`
	ComputedResults []map[string]interface{} `json:"computed_results,omitempty"`
}

// HasComputedResults reports whether the caller supplied results, selecting
// the analysis path. A present-but-empty list still counts as supplied.
func (r *SubmitChatRequest) HasComputedResults() bool {
	return r.ComputedResults != nil
}

type GetConversationResponse struct {
	DatasetId string       `json:"dataset_id"`
	Turns     []store.Turn `json:"turns"`
}
