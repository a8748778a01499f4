package repository

import (
	"context"
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/infra"
	"bistro-booking/internal/infra/sqlq"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateReservationParams) (uuid.UUID, error)
	UpdateReservationStatus(ctx context.Context, db sqlq.DBTX, arg sqlq.UpdateReservationStatusParams) (int64, error)
	UpdateReservationNotes(ctx context.Context, db sqlq.DBTX, arg sqlq.UpdateReservationNotesParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlq.DBTX
}

func NewReservationRepository(queries *sqlq.Queries, db sqlq.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	params := sqlq.CreateReservationParams{
		ID:              res.ID(),
		Name:            res.Name(),
		Email:           res.Email(),
		Phone:           res.Phone(),
		Date:            res.Date(),
		TimeSlot:        res.TimeSlot(),
		Guests:          int32(res.Guests()),
		Occasion:        res.Occasion(),
		SpecialRequests: res.SpecialRequests(),
		Status:          res.Status().String(),
		CreatedAt:       res.CreatedAt(),
		UpdatedAt:       res.UpdatedAt(),
	}

	var resultID uuid.UUID
	err := infra.Retry(ctx, func() error {
		var createErr error
		resultID, createErr = r.queries.CreateReservation(ctx, r.db, params)
		if createErr != nil {
			return infra.WrapRepoErr("failed to create reservation", createErr)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return resultID, nil
}

// UpdateStatus persists a status change conditioned on the updated_at value
// the caller observed. A vanished row means either a concurrent writer moved
// the record on or it was deleted; both surface as a conflict so the caller
// re-reads before retrying.
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status reservation.Status,
	updatedAt, expectedUpdatedAt time.Time,
) error {
	params := sqlq.UpdateReservationStatusParams{
		ID:                id,
		Status:            status.String(),
		UpdatedAt:         updatedAt,
		ExpectedUpdatedAt: expectedUpdatedAt,
	}

	return infra.Retry(ctx, func() error {
		affected, err := r.queries.UpdateReservationStatus(ctx, r.db, params)
		if err != nil {
			return infra.WrapRepoErr("failed to update reservation status", err)
		}
		if affected == 0 {
			return infra.WrapRepoErr("reservation modified concurrently", nil, infra.KindConflict)
		}
		return nil
	})
}

func (r *ReservationRepository) UpdateNotes(
	ctx context.Context,
	id uuid.UUID,
	notes *string,
	updatedAt, expectedUpdatedAt time.Time,
) error {
	params := sqlq.UpdateReservationNotesParams{
		ID:                id,
		Notes:             notes,
		UpdatedAt:         updatedAt,
		ExpectedUpdatedAt: expectedUpdatedAt,
	}

	return infra.Retry(ctx, func() error {
		affected, err := r.queries.UpdateReservationNotes(ctx, r.db, params)
		if err != nil {
			return infra.WrapRepoErr("failed to update reservation notes", err)
		}
		if affected == 0 {
			return infra.WrapRepoErr("reservation modified concurrently", nil, infra.KindConflict)
		}
		return nil
	})
}

// Delete removes the record irrevocably; there is no tombstone.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return infra.Retry(ctx, func() error {
		affected, err := r.queries.DeleteReservation(ctx, r.db, id)
		if err != nil {
			return infra.WrapRepoErr("failed to delete reservation", err)
		}
		if affected == 0 {
			return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
		}
		return nil
	})
}
