package store

import (
	"time"

	"github.com/google/uuid"
)

// QueryGenerationResult is the outcome of the natural-language-to-query path.
// Error non-empty means "no executable query was produced"; the orchestration
// layer answers with the canned guidance in that case. Never both meaningful.
type QueryGenerationResult struct {
	Query       string   `json:"query,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// ToolSuggestion is a routing hint the client may render as a button.
// It carries no executable payload.
type ToolSuggestion struct {
	Id       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Artifact kinds
const (
	ArtifactQueryResult = "query_result"
	ArtifactFile        = "file"
)

// Artifact is a result payload handed back alongside a chat reply.
type Artifact struct {
	Kind     string                   `json:"kind"`
	Data     []map[string]interface{} `json:"data,omitempty"`
	RowCount int                      `json:"row_count,omitempty"`
	File     *FileArtifact            `json:"file,omitempty"`
}

// FileArtifact is a downloadable file produced by a tool.
type FileArtifact struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Content  []byte `json:"content"`
}

// ChatReply is the unit returned to the caller on the analysis path.
type ChatReply struct {
	Id              uuid.UUID              `json:"id"`
	Role            string                 `json:"role"`
	Content         string                 `json:"content"`
	CreatedAt       time.Time              `json:"created_at"`
	ToolSuggestions []ToolSuggestion       `json:"tool_suggestions,omitempty"`
	Artifacts       []Artifact             `json:"artifacts,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// ToolInvocationResult is the uniform outcome of a tool handler.
// Invariants: Success false implies Error non-empty; File non-nil implies
// Success true and no structured payload (the file IS the response).
type ToolInvocationResult struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	File    *FileArtifact          `json:"-"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// EmailSendOutcome is the wrapped result of one transport attempt.
type EmailSendOutcome struct {
	Success   bool   `json:"success"`
	MessageId string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
	Recipient string `json:"recipient"`
}

// BulkEmailResult aggregates per-recipient outcomes of a bulk send.
// TotalAttempted is always len(Succeeded)+len(Failed).
type BulkEmailResult struct {
	Succeeded      []EmailSendOutcome `json:"succeeded"`
	Failed         []EmailSendOutcome `json:"failed"`
	TotalAttempted int                `json:"total_attempted"`
	TotalSucceeded int                `json:"total_succeeded"`
}
