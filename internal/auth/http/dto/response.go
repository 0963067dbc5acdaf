package dto

// MessageResponse is a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the issued token and its advertised lifetime.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
	Role      string `json:"role"`
}
