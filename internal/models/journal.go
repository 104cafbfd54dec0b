// Package models provides data model definitions for the FloorMat CMS document.
package models

import "time"

// JournalEntry records one successful mutation of the document. The
// journal is an operator-facing audit trail, separate from the
// single-level backup slot.
type JournalEntry struct {
	ID        string `json:"id"`
	Op        string `json:"op"`     // add, update, delete, import, restore, reset, seed
	Entity    string `json:"entity"` // project, product, video, settings, document
	EntityID  string `json:"entityId,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Time returns the Timestamp as time.Time.
func (e *JournalEntry) Time() time.Time {
	return time.Unix(e.Timestamp, 0)
}
