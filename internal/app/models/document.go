package models

import "time"

// Document represents an uploaded file reference owned by one user.
// FilePath is server-assigned at upload time, never client-controlled.
type Document struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	FileName  string    `json:"fileName" db:"file_name"`
	FilePath  string    `json:"filePath" db:"file_path"`
	FileSize  int64     `json:"fileSize" db:"file_size"`
	MimeType  string    `json:"mimeType" db:"mime_type"`
	DocType   string    `json:"docType" db:"doc_type"` // resume, transcript, ...
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
