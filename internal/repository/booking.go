package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	// Postgres error codes surfaced to the caller as distinct conditions.
	pgInvalidEnumValue = "22P02"
	pgCheckViolation   = "23514"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

// NewBookingRepo accepts a nil db handle: the service starts without the
// database and reports unavailability per call until connectivity returns.
func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) ready() error {
	if r.db == nil {
		return domain.ErrStoreUnavailable
	}
	return nil
}

const bookingColumns = `id, provider, satellite_id, start_time, end_time, duration_minutes,
	pass_type, purpose, rule_type, frequency_days, status, gs_status,
	requested_by, approved_by, approved_at, rejection_reason, notes,
	provider_satellite_id, provider_gs_id, provider_contact_id, provider_booking_id,
	provider_metadata, max_elevation, created_at, updated_at`

func (r *BookingRepository) CreateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	var metadata []byte
	if b.ProviderMetadata != nil {
		raw, err := json.Marshal(b.ProviderMetadata)
		if err != nil {
			return nil, fmt.Errorf("marshal provider metadata: %w", err)
		}
		metadata = raw
	}

	// Approval stamps accompany auto-approved provider bookings so the
	// "approval fields iff approved" invariant holds for every row.
	var approvedBy *string
	var approvedAt *time.Time
	if b.Status == domain.BookingStatusApproved {
		approvedBy = &b.RequestedBy
		now := time.Now().UTC()
		approvedAt = &now
	}

	query := `INSERT INTO gs_bookings (provider, satellite_id, start_time, duration_minutes,
				pass_type, purpose, rule_type, frequency_days, notes, requested_by,
				status, gs_status, approved_by, approved_at,
				provider_satellite_id, provider_gs_id, provider_contact_id,
				provider_booking_id, provider_metadata, max_elevation)
			  VALUES ($1, $2, $3, $4, $5::pass_type, $6::purpose_type, $7::booking_rule_type,
				$8, $9, $10, $11::booking_status, $12::gs_status, $13, $14,
				$15, $16, $17, $18, $19, $20)
			  RETURNING id, end_time, status, gs_status, approved_by, approved_at, created_at, updated_at`

	// Writes are never retried here: a retry after a lost response would
	// re-run the insert and duplicate the booking.
	row := r.db.Master.QueryRowContext(
		ctx, query,
		b.Provider, b.SatelliteID, b.StartTime.UTC(), b.DurationMinutes,
		b.PassType, b.Purpose, b.RuleType, b.FrequencyDays, b.Notes, b.RequestedBy,
		string(b.Status), string(b.GsStatus), approvedBy, approvedAt,
		b.ProviderSatelliteID, b.ProviderGsID, b.ProviderContactID,
		b.ProviderBookingID, metadata, b.MaxElevation,
	)

	stored := *b
	if err := row.Scan(
		&stored.ID, &stored.EndTime, &stored.Status, &stored.GsStatus,
		&stored.ApprovedBy, &stored.ApprovedAt, &stored.CreatedAt, &stored.UpdatedAt,
	); err != nil {
		return nil, mapInsertError(err)
	}

	return &stored, nil
}

func mapInsertError(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && (pgErr.Code == pgInvalidEnumValue || pgErr.Code == pgCheckViolation) {
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Message)
	}
	return fmt.Errorf("insert booking: %w", err)
}

func (r *BookingRepository) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	query := `SELECT ` + bookingColumns + `
			  FROM gs_bookings
			  ORDER BY start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	// Earliest-due approvals surface first.
	query := `SELECT ` + bookingColumns + `
			  FROM gs_bookings
			  WHERE status = $1
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(domain.BookingStatusPending))
	if err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type txQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// decisionMiss runs after a conditional update matched nothing: a booking
// that does not exist at all is reported as not found, one already decided
// is left to the caller as a plain false.
func decisionMiss(ctx context.Context, tx txQuerier, bookingID int) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM gs_bookings WHERE id = $1`, bookingID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("booking status lookup: %w", err)
	}
	return nil
}

// Approve flips the booking to approved and appends the audit record in a
// single transaction. Returns false without writing anything when the
// booking is no longer pending, and ErrBookingNotFound when it never
// existed.
func (r *BookingRepository) Approve(ctx context.Context, bookingID int, approver, comments string) (bool, error) {
	if err := r.ready(); err != nil {
		return false, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `UPDATE gs_bookings
					SET status = 'approved', approved_by = $1, approved_at = now(), updated_at = now()
					WHERE id = $2 AND status = 'pending'`
	res, err := tx.ExecContext(ctx, updateQuery, approver, bookingID)
	if err != nil {
		return false, fmt.Errorf("approve booking: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("approve rows affected: %w", err)
	}
	if updated == 0 {
		return false, decisionMiss(ctx, tx, bookingID)
	}

	auditQuery := `INSERT INTO booking_approvals (booking_id, approver, action, comments)
				   VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, auditQuery, bookingID, approver, domain.ApprovalActionApproved, comments); err != nil {
		return false, fmt.Errorf("insert approval audit: %w", err)
	}

	return true, tx.Commit()
}

// Reject follows the same transactional shape as Approve, additionally
// persisting the rejection reason.
func (r *BookingRepository) Reject(ctx context.Context, bookingID int, approver, reason string) (bool, error) {
	if err := r.ready(); err != nil {
		return false, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `UPDATE gs_bookings
					SET status = 'rejected', rejection_reason = $1, updated_at = now()
					WHERE id = $2 AND status = 'pending'`
	res, err := tx.ExecContext(ctx, updateQuery, reason, bookingID)
	if err != nil {
		return false, fmt.Errorf("reject booking: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reject rows affected: %w", err)
	}
	if updated == 0 {
		return false, decisionMiss(ctx, tx, bookingID)
	}

	auditQuery := `INSERT INTO booking_approvals (booking_id, approver, action, comments)
				   VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, auditQuery, bookingID, approver, domain.ApprovalActionRejected, reason); err != nil {
		return false, fmt.Errorf("insert rejection audit: %w", err)
	}

	return true, tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var metadata []byte
	if err := row.Scan(
		&b.ID, &b.Provider, &b.SatelliteID, &b.StartTime, &b.EndTime, &b.DurationMinutes,
		&b.PassType, &b.Purpose, &b.RuleType, &b.FrequencyDays, &b.Status, &b.GsStatus,
		&b.RequestedBy, &b.ApprovedBy, &b.ApprovedAt, &b.RejectionReason, &b.Notes,
		&b.ProviderSatelliteID, &b.ProviderGsID, &b.ProviderContactID, &b.ProviderBookingID,
		&metadata, &b.MaxElevation, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	if len(metadata) > 0 {
		var meta domain.ProviderMetadata
		if err := json.Unmarshal(metadata, &meta); err != nil {
			return nil, fmt.Errorf("unmarshal provider metadata: %w", err)
		}
		b.ProviderMetadata = &meta
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
