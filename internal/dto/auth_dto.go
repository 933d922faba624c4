package dto

import "bookhive/internal/models"

// LoginRequest carries the reader's numeric id. It arrives as a string from
// the login form and is validated server-side, mirroring the id-only
// registration flow: unknown ids become new accounts.
type LoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	User      *models.User `json:"user"`
	FirstTime bool         `json:"first_time"`
}
