package handler

import "time"

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

// userPayload is the sanitized principal view. The password hash never
// appears; the token travels alongside it only in authData.
type userPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// authData is the data object of register/login responses: the user fields
// with the signed token embedded, matching the public contract.
type authData struct {
	userPayload
	Token string `json:"token"`
}

type authResponse struct {
	Success bool     `json:"success"`
	Data    authData `json:"data"`
}

type meResponse struct {
	Success bool        `json:"success"`
	Data    userPayload `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
