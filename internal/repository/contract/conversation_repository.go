package contract

import (
	"context"

	"ai-datachat-be/pkg/store"
)

// MaxTurns bounds every dataset's conversation to the most recent 10 turns
// (5 user/assistant pairs).
const MaxTurns = 10

// ConversationRepository is the per-dataset bounded message history. Backends
// must serialize append-then-truncate per dataset key; operations on
// different keys must not contend. A missing key reads as an empty
// conversation, never an error.
type ConversationRepository interface {
	// Get returns a copy of the turns for the dataset, oldest first.
	Get(ctx context.Context, datasetId string) []store.Turn

	// Append adds turns and discards the oldest beyond MaxTurns, atomically
	// with respect to other appends for the same dataset.
	Append(ctx context.Context, datasetId string, turns ...store.Turn)

	// Clear removes all turns for the dataset.
	Clear(ctx context.Context, datasetId string)
}
