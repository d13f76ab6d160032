package models

import "time"

// ProgramDocument links a document to a program with usage notes.
// The pair (ProgramID, DocumentID) is unique. The link carries no owner of
// its own: ownership is derived through the Program reference at check time.
type ProgramDocument struct {
	ID         int64     `json:"id" db:"id"`
	ProgramID  int64     `json:"programId" db:"program_id"`
	DocumentID int64     `json:"documentId" db:"document_id"`
	UsageNotes string    `json:"usageNotes" db:"usage_notes"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
