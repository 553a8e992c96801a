package health

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status    string  `json:"status" example:"healthy"`                    // Always "healthy" while the process serves requests
	Timestamp string  `json:"timestamp" example:"2026-01-01T12:00:00.000Z"` // Current server time, ISO-8601 UTC
	Uptime    float64 `json:"uptime" example:"9045.25"`                     // Seconds since the server was constructed
}
