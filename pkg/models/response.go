package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}

// RecordResponse wraps the current record after a read or an accepted mutation
type RecordResponse struct {
	Resume    ResumeRecord `json:"resume"`
	RequestID string       `json:"request_id"`
}

// SummaryResponse carries the generated summary. Applied reports whether the
// record was updated; an empty summary leaves the existing one untouched.
type SummaryResponse struct {
	Summary   string       `json:"summary"`
	Applied   bool         `json:"applied"`
	Resume    ResumeRecord `json:"resume"`
	RequestID string       `json:"request_id"`
}

// AnalysisResponse carries an ATS analysis result
type AnalysisResponse struct {
	Analysis  ATSAnalysis `json:"analysis"`
	RequestID string      `json:"request_id"`
}
