package auth

// LoginPayload represents the login request body.
type LoginPayload struct {
	Password string `json:"password" validate:"required,min=1"`
}

// SessionResponse reports whether the caller holds a valid admin session.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
