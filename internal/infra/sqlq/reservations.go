package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReservationRow struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	TimeSlot        string
	Guests          int32
	Occasion        *string
	SpecialRequests *string
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CreateReservationParams struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	TimeSlot        string
	Guests          int32
	Occasion        *string
	SpecialRequests *string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const createReservation = `
INSERT INTO reservations (
	id, name, email, phone, date, time_slot, guests,
	occasion, special_requests, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID, arg.Name, arg.Email, arg.Phone, arg.Date, arg.TimeSlot, arg.Guests,
		arg.Occasion, arg.SpecialRequests, arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const reservationColumns = `
	id, name, email, phone, date, time_slot, guests,
	occasion, special_requests, status, notes, created_at, updated_at`

const getReservationByID = `
SELECT` + reservationColumns + `
FROM reservations
WHERE id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (ReservationRow, error) {
	row := db.QueryRow(ctx, getReservationByID, id)
	var r ReservationRow
	err := row.Scan(
		&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.TimeSlot, &r.Guests,
		&r.Occasion, &r.SpecialRequests, &r.Status, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type UpdateReservationStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
	// ExpectedUpdatedAt is the version token observed when the record was
	// read; a mismatch means a concurrent writer got there first.
	ExpectedUpdatedAt time.Time
}

const updateReservationStatus = `
UPDATE reservations
SET status = $2, updated_at = $3
WHERE id = $1 AND updated_at = $4`

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationStatus,
		arg.ID, arg.Status, arg.UpdatedAt, arg.ExpectedUpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpdateReservationNotesParams struct {
	ID                uuid.UUID
	Notes             *string
	UpdatedAt         time.Time
	ExpectedUpdatedAt time.Time
}

const updateReservationNotes = `
UPDATE reservations
SET notes = $2, updated_at = $3
WHERE id = $1 AND updated_at = $4`

func (q *Queries) UpdateReservationNotes(ctx context.Context, db DBTX, arg UpdateReservationNotesParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationNotes,
		arg.ID, arg.Notes, arg.UpdatedAt, arg.ExpectedUpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReservation = `
DELETE FROM reservations
WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type SearchReservationsParams struct {
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   *string
	Limit    int32
	Offset   int32
}

type SearchReservationsRow struct {
	ReservationRow
	// TotalCount is the size of the whole filtered set, computed by the same
	// statement that produced the page so the two cannot drift apart.
	TotalCount int64
}

const searchReservations = `
SELECT` + reservationColumns + `,
	COUNT(*) OVER() AS total_count
FROM reservations
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::date IS NULL OR date >= $2)
  AND ($3::date IS NULL OR date <= $3)
  AND ($4::text IS NULL OR name ILIKE '%' || $4 || '%' OR email ILIKE '%' || $4 || '%')
ORDER BY date DESC, time_slot DESC, created_at DESC, id DESC
LIMIT $5 OFFSET $6`

func (q *Queries) SearchReservations(ctx context.Context, db DBTX, arg SearchReservationsParams) ([]SearchReservationsRow, error) {
	rows, err := db.Query(ctx, searchReservations,
		arg.Status, arg.DateFrom, arg.DateTo, arg.Search, arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SearchReservationsRow
	for rows.Next() {
		var r SearchReservationsRow
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.TimeSlot, &r.Guests,
			&r.Occasion, &r.SpecialRequests, &r.Status, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
			&r.TotalCount,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

const countReservations = `
SELECT COUNT(*)
FROM reservations
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::date IS NULL OR date >= $2)
  AND ($3::date IS NULL OR date <= $3)
  AND ($4::text IS NULL OR name ILIKE '%' || $4 || '%' OR email ILIKE '%' || $4 || '%')`

func (q *Queries) CountReservations(ctx context.Context, db DBTX, arg SearchReservationsParams) (int64, error) {
	row := db.QueryRow(ctx, countReservations,
		arg.Status, arg.DateFrom, arg.DateTo, arg.Search,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countReservationsOnDate = `
SELECT COUNT(*)
FROM reservations
WHERE date = $1`

func (q *Queries) CountReservationsOnDate(ctx context.Context, db DBTX, date time.Time) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservationsOnDate, date).Scan(&count)
	return count, err
}

const countReservationsSince = `
SELECT COUNT(*)
FROM reservations
WHERE date >= $1`

func (q *Queries) CountReservationsSince(ctx context.Context, db DBTX, date time.Time) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservationsSince, date).Scan(&count)
	return count, err
}

const countReservationsByStatus = `
SELECT COUNT(*)
FROM reservations
WHERE status = $1`

func (q *Queries) CountReservationsByStatus(ctx context.Context, db DBTX, status string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservationsByStatus, status).Scan(&count)
	return count, err
}
