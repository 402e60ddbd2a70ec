package dto

import "time"

// RegisterRequest describes the account registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest describes username/password payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued auth token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
