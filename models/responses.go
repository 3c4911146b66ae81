package models

// RegisterResponse is the body returned by POST /api/user/register.
type RegisterResponse struct {
	ID    string `json:"id"`
	Login string `json:"username"`
}

// LoginResponse is the body returned by POST /api/user/login.
// The same token is also set in the Authorization response header.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Login string `json:"username"`
}

// AckResponse is the body returned by operations that have no entity to
// return, such as record deletion and logout.
type AckResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}
