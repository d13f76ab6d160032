package dto

// --- Request DTOs ---

// CreateProgramRequest represents the data needed to create a new program entry.
type CreateProgramRequest struct {
	UniversityName string `json:"universityName" binding:"required" example:"MIT"`           // University name, must be non-blank
	DegreeField    string `json:"degreeField" example:"Computer Science"`                    // Field of study
	FocusArea      string `json:"focusArea" example:"Distributed Systems"`                   // Research or study focus
	PortalURL      string `json:"portalUrl" example:"https://gradapply.mit.edu"`             // Application portal URL
	Website        string `json:"website" example:"https://www.mit.edu"`                     // Program website
	Deadline       string `json:"deadline" example:"2025-12-15"`                             // Application deadline (YYYY-MM-DD)
	Status         string `json:"status" example:"In Progress"`                              // Lenient: unrecognized values coerce to Other
	Tuition        string `json:"tuition" example:"$58,000/yr"`                              // Tuition notes
	Requirements   string `json:"requirements" example:"3 recommendation letters, GRE"`      // Admission requirements
	Notes          string `json:"notes" example:"Reach school, contact Prof. Liu"`           // Free-form notes
}

// UpdateProgramRequest represents a partial update to a program entry.
// Pointer fields distinguish "not provided" (nil, leave untouched) from
// "provided" (overwrite, including with an empty string to clear).
type UpdateProgramRequest struct {
	UniversityName *string `json:"universityName,omitempty"`
	DegreeField    *string `json:"degreeField,omitempty"`
	FocusArea      *string `json:"focusArea,omitempty"`
	PortalURL      *string `json:"portalUrl,omitempty"`
	Website        *string `json:"website,omitempty"`
	Deadline       *string `json:"deadline,omitempty"` // YYYY-MM-DD, empty string clears
	Status         *string `json:"status,omitempty"`
	Tuition        *string `json:"tuition,omitempty"`
	Requirements   *string `json:"requirements,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ProgramFilterRequest holds optional list filters and pagination.
type ProgramFilterRequest struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Size   int    `form:"size"`
}

// --- Response DTOs ---

// ProgramResponse represents the data returned for a single program entry.
type ProgramResponse struct {
	ID             int64  `json:"id" example:"7"`
	UniversityName string `json:"universityName" example:"MIT"`
	DegreeField    string `json:"degreeField,omitempty" example:"Computer Science"`
	FocusArea      string `json:"focusArea,omitempty" example:"Distributed Systems"`
	PortalURL      string `json:"portalUrl,omitempty" example:"https://gradapply.mit.edu"`
	Website        string `json:"website,omitempty" example:"https://www.mit.edu"`
	Deadline       string `json:"deadline,omitempty" example:"2025-12-15"`
	Status         string `json:"status" example:"IN_PROGRESS"`
	StatusLabel    string `json:"statusLabel" example:"In Progress"`
	Tuition        string `json:"tuition,omitempty" example:"$58,000/yr"`
	Requirements   string `json:"requirements,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"createdAt" example:"2024-01-15T10:00:00Z"`
	UpdatedAt      string `json:"updatedAt" example:"2024-01-16T11:30:00Z"`
}

// ProgramListResponse represents a page of program entries.
type ProgramListResponse struct {
	Programs   []ProgramResponse `json:"programs"`
	Pagination PaginationInfo    `json:"pagination"`
}
