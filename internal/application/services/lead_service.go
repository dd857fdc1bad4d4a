package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/lead"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/email"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/persistence/leads"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/ratelimit"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/security"
)

// phoneRegexp accepts international and Indonesian local formats, digits
// with optional separators, 7-15 digits overall.
var phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,18}[0-9]$`)

// SubmissionRequest is the parsed lead form payload.
type SubmissionRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Message         string `json:"message"`
	SubmissionToken string `json:"submission_token"`
	PageURLCurrent  string `json:"page_url_current"`
	PageURLInitial  string `json:"page_url_initial"`
}

// SubmissionResult acknowledges an accepted submission. Rate carries the
// limiter state so the caller can report remaining quota.
type SubmissionResult struct {
	LeadID    string
	Duplicate bool
	Rate      ratelimit.Result
}

// ValidationError reports field-level failures for expected bad input.
type ValidationError struct {
	Fields []lead.FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		reasons[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "invalid submission: " + strings.Join(reasons, "; ")
}

// RateLimitError reports a rejected attempt with back-off information.
type RateLimitError struct {
	Result ratelimit.Result
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, resets at %s", e.Result.Reset.Format(time.RFC3339))
}

// ErrPersistFailed marks a storage failure the client may retry.
var ErrPersistFailed = errors.New("failed to persist lead")

// LeadService runs the lead intake pipeline: validate, rate-check, persist,
// acknowledge. Telemetry and the sales notification are emitted on the side
// and never block or fail a submission.
type LeadService struct {
	repo           *leads.Repository
	limiter        *ratelimit.Limiter
	telemetry      *TelemetryService
	emailService   email.Service // nil disables notifications
	salesEmail     string
	persistTimeout time.Duration
	logger         *logging.ChanneledLogger
}

// NewLeadService creates a new lead application service
func NewLeadService(
	repo *leads.Repository,
	limiter *ratelimit.Limiter,
	telemetry *TelemetryService,
	emailService email.Service,
	salesEmail string,
	persistTimeout time.Duration,
	logger *logging.ChanneledLogger,
) *LeadService {
	return &LeadService{
		repo:           repo,
		limiter:        limiter,
		telemetry:      telemetry,
		emailService:   emailService,
		salesEmail:     salesEmail,
		persistTimeout: persistTimeout,
		logger:         logger,
	}
}

// ValidateSubmission checks the form fields and returns every field-level
// failure. Pure and total: bad input is a value, never a panic.
func ValidateSubmission(req *SubmissionRequest) []lead.FieldError {
	var fieldErrors []lead.FieldError

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	emailAddr := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if err := validation.Validate(name, validation.Required, validation.Length(2, 120)); err != nil {
		fieldErrors = append(fieldErrors, lead.FieldError{Field: "name", Reason: err.Error()})
	}

	if err := validation.Validate(message, validation.Required, validation.Length(1, 4000)); err != nil {
		fieldErrors = append(fieldErrors, lead.FieldError{Field: "message", Reason: err.Error()})
	}

	if phone == "" && emailAddr == "" {
		fieldErrors = append(fieldErrors,
			lead.FieldError{Field: "phone", Reason: "phone or email is required"},
			lead.FieldError{Field: "email", Reason: "phone or email is required"},
		)
		return fieldErrors
	}

	if phone != "" {
		if err := validation.Validate(phone, validation.Match(phoneRegexp)); err != nil {
			fieldErrors = append(fieldErrors, lead.FieldError{Field: "phone", Reason: "must be a valid phone number"})
		}
	}

	if emailAddr != "" {
		if err := validation.Validate(emailAddr, is.Email); err != nil {
			fieldErrors = append(fieldErrors, lead.FieldError{Field: "email", Reason: err.Error()})
		}
	}

	return fieldErrors
}

// Submit runs one submission through the pipeline. clientKey identifies the
// client for rate limiting (normally the remote IP); rawPayload is the
// original request body, stored verbatim for audit.
func (s *LeadService) Submit(ctx context.Context, clientKey string, req *SubmissionRequest, rawPayload []byte) (*SubmissionResult, error) {
	if fieldErrors := ValidateSubmission(req); len(fieldErrors) > 0 {
		s.telemetry.Emit("lead_rejected", map[string]any{"reason": string(lead.OutcomeRejectedInvalid)})
		return nil, &ValidationError{Fields: fieldErrors}
	}

	rate := s.limiter.Attempt(clientKey)
	if !rate.Allowed {
		s.logger.Lead().Warn("Lead submission rate limited", "clientKey", clientKey, "reset", rate.Reset)
		s.telemetry.Emit("lead_rejected", map[string]any{"reason": string(lead.OutcomeRejectedRateLimited)})
		return nil, &RateLimitError{Result: rate}
	}

	record := &lead.Record{
		ID:              security.GenerateULID(),
		SubmissionToken: strings.TrimSpace(req.SubmissionToken),
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		Message:         strings.TrimSpace(req.Message),
		IPAddress:       clientKey,
		PageURLCurrent:  req.PageURLCurrent,
		PageURLInitial:  req.PageURLInitial,
		RawPayload:      string(rawPayload),
		CreatedAt:       time.Now().UTC(),
	}

	persistCtx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	stored, alreadyExists, err := s.repo.Insert(persistCtx, record)
	if err != nil {
		s.logger.Lead().Error("Lead persistence failed", "error", err.Error(), "leadId", record.ID)
		s.telemetry.Emit("lead_rejected", map[string]any{"reason": string(lead.OutcomePersistFailed)})
		return nil, fmt.Errorf("%w: %s", ErrPersistFailed, err.Error())
	}

	if alreadyExists {
		// Client retry of an already-acknowledged submission: return the
		// original acknowledgement, no second record, no second telemetry.
		return &SubmissionResult{LeadID: stored.ID, Duplicate: true, Rate: rate}, nil
	}

	s.logger.Lead().Info("Lead persisted", "leadId", stored.ID, "hasPhone", stored.Phone != "", "hasEmail", stored.Email != "")
	s.telemetry.Emit("lead_submitted", map[string]any{
		"lead_id":  stored.ID,
		"page_url": stored.PageURLCurrent,
		"outcome":  string(lead.OutcomeAcknowledged),
	})

	s.notifySales(stored)

	return &SubmissionResult{LeadID: stored.ID, Rate: rate}, nil
}

// notifySales dispatches the sales notification on a detached goroutine.
// Failure is logged and absorbed; it never reaches the submitter.
func (s *LeadService) notifySales(record *lead.Record) {
	if s.emailService == nil || s.salesEmail == "" {
		return
	}

	go func() {
		if err := s.emailService.SendLeadNotification(s.salesEmail, record); err != nil {
			s.logger.Email().Warn("Lead notification email failed", "leadId", record.ID, "error", err.Error())
		}
	}()
}

// ListLeads returns persisted leads for the admin surface, newest first.
func (s *LeadService) ListLeads(ctx context.Context, limit, offset int) ([]*lead.Record, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	return records, total, nil
}

// LeadMetrics returns per-day lead counts for the last `days` days.
func (s *LeadService) LeadMetrics(ctx context.Context, days int) (map[string]int, error) {
	if days <= 0 || days > 365 {
		days = 28
	}
	return s.repo.DailyCounts(ctx, days)
}
