package models

import (
	"strings"
	"time"
)

// ApplicationStatus is the lifecycle stage of a graduate application.
type ApplicationStatus string

const (
	StatusAccepted   ApplicationStatus = "ACCEPTED"
	StatusApplied    ApplicationStatus = "APPLIED"
	StatusInProgress ApplicationStatus = "IN_PROGRESS"
	StatusRejected   ApplicationStatus = "REJECTED"
	StatusOther      ApplicationStatus = "OTHER"
)

// statusLabels maps each status to its display label.
var statusLabels = map[ApplicationStatus]string{
	StatusAccepted:   "Accepted",
	StatusApplied:    "Applied",
	StatusInProgress: "In Progress",
	StatusRejected:   "Rejected",
	StatusOther:      "Other",
}

// Label returns the human-readable form of the status.
func (s ApplicationStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusOther]
}

// ParseApplicationStatus normalizes a free-form status string to an
// ApplicationStatus. Matching is case-insensitive after trimming, against
// both the enumerated name and the display label. Unrecognized input
// coerces to StatusOther; parsing never fails.
func ParseApplicationStatus(input string) ApplicationStatus {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return StatusOther
	}

	for status, label := range statusLabels {
		if normalized == string(status) || normalized == strings.ToUpper(label) {
			return status
		}
	}

	return StatusOther
}

// Program represents a university application record owned by one user.
type Program struct {
	ID             int64             `json:"id" db:"id"`
	UserID         int64             `json:"userId" db:"user_id"`
	UniversityName string            `json:"universityName" db:"university_name"`
	DegreeField    string            `json:"degreeField" db:"degree_field"`
	FocusArea      string            `json:"focusArea" db:"focus_area"`
	PortalURL      string            `json:"portalUrl" db:"portal_url"`
	Website        string            `json:"website" db:"website"`
	Deadline       *time.Time        `json:"deadline,omitempty" db:"deadline"` // pointer to handle NULL
	Status         ApplicationStatus `json:"status" db:"status"`
	Tuition        string            `json:"tuition" db:"tuition"`
	Requirements   string            `json:"requirements" db:"requirements"`
	Notes          string            `json:"notes" db:"notes"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`
}
