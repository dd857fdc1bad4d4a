// Package lead defines the lead-submission domain entities.
package lead

import "time"

// Record is a persisted contact/partnership form submission. Records are
// append-only: once written they are never mutated.
type Record struct {
	ID              string    `json:"id"`
	SubmissionToken string    `json:"submissionToken,omitempty"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	Message         string    `json:"message"`
	IPAddress       string    `json:"ipAddress,omitempty"`
	PageURLCurrent  string    `json:"pageUrlCurrent,omitempty"`
	PageURLInitial  string    `json:"pageUrlInitial,omitempty"`
	RawPayload      string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Outcome labels the terminal state of one submission attempt.
type Outcome string

const (
	OutcomeAcknowledged        Outcome = "acknowledged"
	OutcomeRejectedInvalid     Outcome = "rejected_invalid"
	OutcomeRejectedRateLimited Outcome = "rejected_rate_limited"
	OutcomeRejectedContentType Outcome = "rejected_content_type"
	OutcomePersistFailed       Outcome = "persist_failed"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
