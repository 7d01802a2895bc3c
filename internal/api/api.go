// Package api defines the shared request and response types for the HTTP API.
package api

// ErrorResponse is the common error payload returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest is the request body for POST /signup.
// Gin binding tags enforce required fields, email format and password length.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	District string `json:"district"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// BreedResponse is a single breed record from the catalog.
type BreedResponse struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Origin      string `json:"origin"`
	Description string `json:"description"`
}

// BreedGroupsResponse lists catalog breed names grouped by animal type.
type BreedGroupsResponse struct {
	Cattle  []string `json:"cattle"`
	Buffalo []string `json:"buffalo"`
}

// PredictionEntryResponse is one ranked breed candidate, joined with its
// catalog metadata so clients can render a result card without a second call.
type PredictionEntryResponse struct {
	Breed       string  `json:"breed"`
	Probability float32 `json:"probability"`
	Confidence  string  `json:"confidence"`
	Type        string  `json:"type,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	Description string  `json:"description,omitempty"`
}

// PredictionResponse is the ranked result of POST /predict.
type PredictionResponse struct {
	Predictions []PredictionEntryResponse `json:"predictions"`
}

// AdviceRequest is the request body for POST /advice.
type AdviceRequest struct {
	Breed string `json:"breed" binding:"required"`
}

// AdviceResponse carries generated husbandry advice for a breed.
type AdviceResponse struct {
	Breed  string `json:"breed"`
	Advice string `json:"advice"`
}

// HistoryEntryResponse is one past prediction of the authenticated worker.
type HistoryEntryResponse struct {
	Breed       string  `json:"breed"`
	Probability float32 `json:"probability"`
	ImageSHA256 string  `json:"image_sha256"`
	PredictedAt string  `json:"predicted_at"`
}
