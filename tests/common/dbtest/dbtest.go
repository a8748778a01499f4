//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"bistro-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertReservation writes a builder-defined record straight into the store,
// bypassing the intake pipeline.
func InsertReservation(t *testing.T, db DBLike, b *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	res, fieldErrs := b.BuildDomain()
	require.Empty(t, fieldErrs, "builder produced an invalid reservation")

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, name, email, phone, date, time_slot, guests, occasion, special_requests, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID(), res.Name(), res.Email(), res.Phone(), res.Date(), res.TimeSlot(), res.Guests(),
		res.Occasion(), res.SpecialRequests(), b.Status.String(), b.Notes, res.CreatedAt(), res.UpdatedAt(),
	)
	require.NoError(t, err)

	return res.ID()
}

// ReservationStatus reads the current status of a record.
func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// TruncateReservations clears all booking state between tests.
func TruncateReservations(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE reservations, notification_jobs")
	require.NoError(t, err)
}

// CountNotificationJobs counts enqueued jobs for a topic.
func CountNotificationJobs(t *testing.T, db DBLike, topic string) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&count)
	require.NoError(t, err)
	return count
}
