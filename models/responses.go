package models

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is a plain acknowledgement, e.g. after registration. It
// shares the shape of [ErrorResponse] with Error always false.
type MessageResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// LoginResponse is the body of a successful POST /user/login.
type LoginResponse struct {
	TokenType string `json:"token_type"`
	Token     string `json:"token"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

// Operator identifies the person running the API. It is returned by GET /me.
type Operator struct {
	Name          string `json:"name"`
	StudentNumber string `json:"student_number"`
}
