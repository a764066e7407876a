package models

// User is the authenticated profile as returned by the backend.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	ExternalID string `json:"externalId,omitempty"`
	Phone      string `json:"phone"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	ExternalID string `json:"externalId,omitempty"`
	Phone      string `json:"phone"`
}

// AuthResponse is returned by both login and registration.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Message  string `json:"message"`
}

// UpdateProfileRequest is the body of PUT /users/profile.
type UpdateProfileRequest struct {
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	ExternalID string `json:"externalId,omitempty"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// ChangePasswordRequest is the body of PUT /users/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body shape the backend emits. Any field may
// be absent; repositories fall back to generic messages when parsing fails.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}
