package models

import "time"

// Annotation is an editor's field note attached to one crisis entry,
// optionally anchored to a quoted passage.
type Annotation struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	EditorID  string    `json:"editor_id"`
	Editor    string    `json:"editor,omitempty"`
	Quote     string    `json:"quote,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
