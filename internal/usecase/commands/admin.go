package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/infra"
	"bistro-booking/internal/pkg/clock"
	"bistro-booking/internal/pkg/errs"
	"bistro-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const notificationKindEmail = "email"

type ReservationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type AdminCommands interface {
	ChangeStatus(ctx context.Context, id uuid.UUID, target string) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminUseCaseImpl struct {
	reservationRepo  ReservationRepository
	notificationRepo NotificationRepository
	reader           ReservationReader
	clock            clock.Clock
}

func NewAdminUseCase(
	repo ReservationRepository,
	notificationRepo NotificationRepository,
	reader ReservationReader,
	clk clock.Clock,
) AdminCommands {
	return &adminUseCaseImpl{
		reservationRepo:  repo,
		notificationRepo: notificationRepo,
		reader:           reader,
		clock:            clk,
	}
}

// ChangeStatus moves a reservation through its lifecycle. Re-applying the
// status a record already holds is a no-op and never touches the store, so a
// double-submitted console action cannot bump the concurrency token.
func (uc *adminUseCaseImpl) ChangeStatus(ctx context.Context, id uuid.UUID, target string) error {
	view, err := uc.loadView(ctx, id)
	if err != nil {
		return err
	}

	res := viewToDomain(view)
	if err := res.Transition(reservation.Status(target), uc.clock.Now()); err != nil {
		return err
	}
	if res.Status().String() == view.Status {
		return nil
	}

	err = uc.reservationRepo.UpdateStatus(ctx, id, res.Status(), res.UpdatedAt(), view.UpdatedAt)
	if err != nil {
		return markWriteErr(err, "failed to update reservation status")
	}

	uc.enqueueStatusNotification(ctx, view, res.Status())
	return nil
}

func (uc *adminUseCaseImpl) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) error {
	view, err := uc.loadView(ctx, id)
	if err != nil {
		return err
	}

	res := viewToDomain(view)
	res.SetNotes(notes, uc.clock.Now())

	err = uc.reservationRepo.UpdateNotes(ctx, id, res.Notes(), res.UpdatedAt(), view.UpdatedAt)
	if err != nil {
		return markWriteErr(err, "failed to update reservation notes")
	}
	return nil
}

func (uc *adminUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return markWriteErr(err, "failed to delete reservation")
	}
	return nil
}

func (uc *adminUseCaseImpl) loadView(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := uc.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, markWriteErr(err, "failed to load reservation")
	}
	return view, nil
}

// Status change notifications are best effort. A failed enqueue is logged
// and swallowed; the state change itself has already committed.
func (uc *adminUseCaseImpl) enqueueStatusNotification(ctx context.Context, view *queries.ReservationView, status reservation.Status) {
	var topic string
	switch status {
	case reservation.StatusConfirmed:
		topic = "reservation_confirmed"
	case reservation.StatusCancelled:
		topic = "reservation_cancelled"
	default:
		return
	}

	payload, err := json.Marshal(map[string]any{
		"reservation_id": view.ID,
		"email":          view.Email,
		"name":           view.Name,
		"date":           view.Date.Format(reservation.DateLayout),
		"time":           view.Time,
		"guests":         view.Guests,
	})
	if err != nil {
		slog.Error("failed to encode notification payload", "error", err)
		return
	}

	if err := uc.notificationRepo.CreateJob(ctx, notificationKindEmail, topic, payload, uc.clock.Now()); err != nil {
		slog.Error("failed to enqueue status notification", "reservation_id", view.ID, "topic", topic, "error", err)
	}
}

func viewToDomain(view *queries.ReservationView) *reservation.Reservation {
	return reservation.ReconstructReservation(
		view.ID,
		view.Name,
		view.Email,
		view.Phone,
		view.Date,
		view.Time,
		int(view.Guests),
		view.Occasion,
		view.SpecialRequests,
		reservation.Status(view.Status),
		view.Notes,
		view.CreatedAt,
		view.UpdatedAt,
	)
}

func markWriteErr(err error, msg string) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrStaleReservation)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	default:
		slog.Error(msg, "error", err)
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
