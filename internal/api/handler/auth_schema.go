package handler

import "github.com/eventhub/events-api/internal/core/domain"

// errorResponse documents the error envelope for swagger; the actual encoding
// happens in the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    *domain.UserSummary `json:"user"`
}
