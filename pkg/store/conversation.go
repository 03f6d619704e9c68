package store

import "time"

// Turn roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message within a dataset's conversation.
// Turns are immutable once appended.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ColumnType is the semantic type of a dataset column.
type ColumnType string

const (
	ColumnString   ColumnType = "string"
	ColumnNumber   ColumnType = "number"
	ColumnCurrency ColumnType = "currency"
	ColumnDate     ColumnType = "date"
	ColumnBoolean  ColumnType = "boolean"
)

// Column describes one column of an uploaded table.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// TableSchema describes one table of the caller's dataset. Supplied per
// request; the backend never owns the data itself.
type TableSchema struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}
