package dto

// HealthResponse reports which service answered a probe.
type HealthResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// ErrorResponse wraps a human readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
