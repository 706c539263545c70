package feed

import "time"

const (
	AnnotationCreated = "annotation.create"
	AnnotationDeleted = "annotation.delete"
)

// AnnotationEvent is pushed to observation feeds when an editor note is
// added or removed.
type AnnotationEvent struct {
	Type         string    `json:"type"`
	Slug         string    `json:"slug"`
	AnnotationID string    `json:"annotation_id"`
	Editor       string    `json:"editor,omitempty"`
	At           time.Time `json:"at"`
}
