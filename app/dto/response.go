package dto

// Envelope is the uniform response wrapper every endpoint returns.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}
