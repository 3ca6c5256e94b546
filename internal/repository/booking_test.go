package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newTestRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(&dbpg.DB{Master: db}), mock
}

func testCreateInput() *domain.Booking {
	return &domain.Booking{
		Provider:        "dhruva",
		SatelliteID:     "SAT-1",
		StartTime:       time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 15,
		PassType:        "both",
		Purpose:         "telemetry",
		RuleType:        "one_time",
		Status:          domain.BookingStatusPending,
		GsStatus:        domain.GsStatusScheduled,
		RequestedBy:     "alice",
	}
}

func TestBookingRepository_CreateBooking(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "end_time", "status", "gs_status", "approved_by", "approved_at", "created_at", "updated_at",
	}).AddRow(1, now.Add(15*time.Minute), "pending", "scheduled", nil, nil, now, now)
	mock.ExpectQuery("INSERT INTO gs_bookings").WillReturnRows(rows)

	created, err := repo.CreateBooking(context.Background(), testCreateInput())

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, domain.BookingStatusPending, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CreateBooking_NoRetryOnFailure(t *testing.T) {
	repo, mock := newTestRepo(t)

	// A single failed attempt must surface immediately; re-running the
	// insert after a lost response would duplicate the booking.
	mock.ExpectQuery("INSERT INTO gs_bookings").WillReturnError(errors.New("broken pipe"))

	begin := time.Now()
	_, err := repo.CreateBooking(context.Background(), testCreateInput())

	require.Error(t, err)
	assert.Less(t, time.Since(begin), time.Second, "insert must not sit in a retry loop")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CreateBooking_MapsConstraintViolation(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("INSERT INTO gs_bookings").
		WillReturnError(&pq.Error{Code: pgInvalidEnumValue, Message: "invalid input value for enum"})

	_, err := repo.CreateBooking(context.Background(), testCreateInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingRepository_Approve(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gs_bookings").
		WithArgs("boss", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking_approvals").
		WithArgs(7, "boss", domain.ApprovalActionApproved, "cleared with ops").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ok, err := repo.Approve(context.Background(), 7, "boss", "cleared with ops")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Approve_AlreadyDecided(t *testing.T) {
	repo, mock := newTestRepo(t)

	// A second approver loses the conditional update: no audit row is
	// written and the transaction rolls back.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gs_bookings").
		WithArgs("boss", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM gs_bookings").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("approved"))
	mock.ExpectRollback()

	ok, err := repo.Approve(context.Background(), 7, "boss", "")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Approve_MissingBooking(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gs_bookings").
		WithArgs("boss", 404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM gs_bookings").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.Approve(context.Background(), 404, "boss", "")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Reject(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gs_bookings").
		WithArgs("conflicts with maintenance", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking_approvals").
		WithArgs(7, "boss", domain.ApprovalActionRejected, "conflicts with maintenance").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ok, err := repo.Reject(context.Background(), 7, "boss", "conflicts with maintenance")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Reject_AlreadyDecided(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gs_bookings").
		WithArgs("too late", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM gs_bookings").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("rejected"))
	mock.ExpectRollback()

	ok, err := repo.Reject(context.Background(), 7, "boss", "too late")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_NilDB(t *testing.T) {
	repo := NewBookingRepo(nil)

	_, err := repo.CreateBooking(context.Background(), testCreateInput())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repo.Approve(context.Background(), 1, "boss", "")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
