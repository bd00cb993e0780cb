package reports

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Report is an immutable scam report for one phone number. The number is
// always stored in its normalized form and the scam probability is computed
// once at creation, never recomputed.
type Report struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Number          string    `json:"number" db:"number"`
	Category        string    `json:"category" db:"category"`
	Message         string    `json:"message" db:"message"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	ScamProbability float64   `json:"scam_probability" db:"scam_probability"`
}

// SubmitReportRequest is the payload for submitting a report
type SubmitReportRequest struct {
	Number   string `json:"number" binding:"required,min=7,max=20"`
	Category string `json:"category" binding:"required,min=2,max=40"`
	Message  string `json:"message" binding:"required,min=4,max=2000"`
}

// ReportResponse is the stored report as returned to the caller
type ReportResponse struct {
	ID              uuid.UUID `json:"id"`
	Number          string    `json:"number"`
	Category        string    `json:"category"`
	Message         string    `json:"message"`
	CreatedAt       string    `json:"created_at"`
	ScamProbability float64   `json:"scam_probability"`
}

// ToResponse converts a stored report to its API shape
func (r *Report) ToResponse() ReportResponse {
	return ReportResponse{
		ID:              r.ID,
		Number:          r.Number,
		Category:        r.Category,
		Message:         r.Message,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		ScamProbability: round3(r.ScamProbability),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
