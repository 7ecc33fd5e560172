package auth

import "errors"

// ErrInvalidCredentials is returned for any email/password mismatch
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginRequest is the admin console login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
