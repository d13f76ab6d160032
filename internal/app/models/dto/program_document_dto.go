package dto

// --- Request DTOs ---

// LinkDocumentRequest attaches an existing document to a program.
type LinkDocumentRequest struct {
	DocumentID int64  `json:"documentId" binding:"required,gt=0" example:"3"`
	UsageNotes string `json:"usageNotes" example:"Submitted with the PhD application"`
}

// --- Response DTOs ---

// ProgramDocumentResponse is the link projection: ids only, no nested
// program or document objects.
type ProgramDocumentResponse struct {
	ID         int64  `json:"id" example:"12"`
	ProgramID  int64  `json:"programId" example:"7"`
	DocumentID int64  `json:"documentId" example:"3"`
	UsageNotes string `json:"usageNotes,omitempty"`
	CreatedAt  string `json:"createdAt" example:"2024-01-15T10:00:00Z"`
}

// ProgramDocumentListResponse wraps the links for one program.
type ProgramDocumentListResponse struct {
	Links []ProgramDocumentResponse `json:"links"`
}
