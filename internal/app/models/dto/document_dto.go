package dto

// --- Request DTOs ---

// CreateDocumentRequest carries document metadata alongside the multipart
// upload. The storage path is computed server-side and is not part of the
// request.
type CreateDocumentRequest struct {
	DocType string `form:"docType" binding:"required" example:"resume"` // resume, transcript, ...
	Notes   string `form:"notes" example:"2024 version, tailored for CS programs"`
}

// UpdateDocumentRequest represents a partial metadata update.
// Pointer fields distinguish "not provided" from "provided but empty".
// File content and storage path are immutable after upload.
type UpdateDocumentRequest struct {
	FileName *string `json:"fileName,omitempty"`
	DocType  *string `json:"docType,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// DocumentFilterRequest holds optional list filters and pagination.
type DocumentFilterRequest struct {
	DocType string `form:"docType"`
	Page    int    `form:"page"`
	Size    int    `form:"size"`
}

// --- Response DTOs ---

// DocumentResponse represents the data returned for a single document.
type DocumentResponse struct {
	ID        int64  `json:"id" example:"3"`
	FileName  string `json:"fileName" example:"resume.pdf"`
	FilePath  string `json:"filePath" example:"http://localhost:8080/uploads/9f2c-....pdf"`
	FileSize  int64  `json:"fileSize" example:"182044"`
	MimeType  string `json:"mimeType" example:"application/pdf"`
	DocType   string `json:"docType" example:"resume"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt" example:"2024-01-15T10:00:00Z"`
	UpdatedAt string `json:"updatedAt" example:"2024-01-16T11:30:00Z"`
}

// DocumentListResponse represents a page of documents.
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination PaginationInfo     `json:"pagination"`
}
