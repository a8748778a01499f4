package commands

import (
	"context"
	"log/slog"
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/infra"
	"bistro-booking/internal/pkg/clock"
	"bistro-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubmitBookingResult struct {
	ReservationID    uuid.UUID
	ConfirmationCode string
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, updatedAt, expectedUpdatedAt time.Time) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string, updatedAt, expectedUpdatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type BookingCommands interface {
	Submit(ctx context.Context, input reservation.BookingInput) (*SubmitBookingResult, error)
}

type bookingUseCaseImpl struct {
	reservationRepo ReservationRepository
	slots           reservation.ServiceSlots
	clock           clock.Clock
}

func NewBookingUseCase(repo ReservationRepository, slots reservation.ServiceSlots, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		reservationRepo: repo,
		slots:           slots,
		clock:           clk,
	}
}

// Submit runs the full intake pipeline: validate and normalize the raw form
// values, then persist a pending reservation. Validation failures come back
// as reservation.FieldErrors carrying every rejected field at once.
func (uc *bookingUseCaseImpl) Submit(ctx context.Context, input reservation.BookingInput) (*SubmitBookingResult, error) {
	now := uc.clock.Now()

	booking, fieldErrs := reservation.ValidateBooking(input, now, uc.slots)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	res := reservation.NewReservation(booking, now)

	id, err := uc.reservationRepo.Create(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		slog.Error("failed to persist booking", "error", err)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &SubmitBookingResult{
		ReservationID:    id,
		ConfirmationCode: reservation.ConfirmationCode(id),
	}, nil
}
