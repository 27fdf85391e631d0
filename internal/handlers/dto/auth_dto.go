package dto

import "time"

// LoginRequest são as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" example:"maria@example.com"`
	Password string `json:"password" example:"Abcde1!"`
}

// LoginResponse devolve o token de acesso
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
