package dto

// UserResponse represents basic user information.
// The password hash is never part of any response shape.
type UserResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Alice Chen"`
	Email       string `json:"email" example:"alice@example.com"`
	CreatedAt   string `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	LastLoginAt string `json:"lastLoginAt,omitempty" example:"2024-04-20T18:00:00Z"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}
