// Package leads provides the lead persistence repository.
package leads

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/lead"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// Repository writes and reads lead records. The leads table is append-only;
// this type deliberately exposes no update or delete operations.
type Repository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewRepository(db *sql.DB, logger *logging.ChanneledLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a lead record exactly once. When the record carries a
// submission token that was already persisted, the original record is
// returned with alreadyExists=true and no second row is written.
func (r *Repository) Insert(ctx context.Context, record *lead.Record) (stored *lead.Record, alreadyExists bool, err error) {
	start := time.Now()

	var token any
	if record.SubmissionToken != "" {
		token = record.SubmissionToken
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO leads (id, submission_token, name, phone, email, message, ip_address, page_url_current, page_url_initial, raw_payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, token, record.Name, record.Phone, record.Email, record.Message,
		record.IPAddress, record.PageURLCurrent, record.PageURLInitial, record.RawPayload, record.CreatedAt,
	)
	if err != nil {
		if record.SubmissionToken != "" && isUniqueViolation(err) {
			existing, findErr := r.FindBySubmissionToken(ctx, record.SubmissionToken)
			if findErr == nil && existing != nil {
				r.logger.Database().Info("Duplicate lead submission absorbed", "submissionToken", record.SubmissionToken)
				return existing, true, nil
			}
		}
		r.logger.Database().Error("Failed to insert lead", "error", err.Error(), "leadId", record.ID)
		return nil, false, fmt.Errorf("failed to insert lead: %w", err)
	}

	r.logger.Database().Debug("Lead inserted", "leadId", record.ID, "duration", time.Since(start))
	return record, false, nil
}

// FindBySubmissionToken returns the lead persisted under the given
// idempotency token, or nil when none exists.
func (r *Repository) FindBySubmissionToken(ctx context.Context, token string) (*lead.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, COALESCE(submission_token, ''), name, COALESCE(phone, ''), COALESCE(email, ''), message,
		        COALESCE(ip_address, ''), COALESCE(page_url_current, ''), COALESCE(page_url_initial, ''), raw_payload, created_at
		 FROM leads WHERE submission_token = ?`, token)

	return scanLead(row)
}

// List returns leads newest-first, paginated.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*lead.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, COALESCE(submission_token, ''), name, COALESCE(phone, ''), COALESCE(email, ''), message,
		        COALESCE(ip_address, ''), COALESCE(page_url_current, ''), COALESCE(page_url_initial, ''), raw_payload, created_at
		 FROM leads ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var records []*lead.Record
	for rows.Next() {
		record, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the total number of persisted leads.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// DailyCounts returns lead counts per calendar day for the last `days` days.
func (r *Repository) DailyCounts(ctx context.Context, days int) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date(created_at), COUNT(*) FROM leads
		 WHERE created_at >= datetime('now', ?)
		 GROUP BY date(created_at)`,
		fmt.Sprintf("-%d days", days))
	if err != nil {
		return nil, fmt.Errorf("failed to query lead metrics: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*lead.Record, error) {
	var record lead.Record
	err := row.Scan(
		&record.ID, &record.SubmissionToken, &record.Name, &record.Phone, &record.Email,
		&record.Message, &record.IPAddress, &record.PageURLCurrent, &record.PageURLInitial,
		&record.RawPayload, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan lead: %w", err)
	}
	return &record, nil
}

// isUniqueViolation matches the unique-constraint error text of both the
// sqlite3 and libsql drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLITE_CONSTRAINT")
}
