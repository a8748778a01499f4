//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/infra"
	"bistro-booking/internal/pkg/clock"
	"bistro-booking/internal/pkg/errs"
	"bistro-booking/internal/usecase/commands"
	"bistro-booking/internal/usecase/queries"
	"bistro-booking/tests/common/builder"
	commandsmock "bistro-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminUseCaseMocks struct {
	repo          *commandsmock.MockReservationRepository
	notifications *commandsmock.MockNotificationRepository
	reader        *commandsmock.MockReservationReader
	clock         *clock.MockClock
}

func newAdminUseCase(t *testing.T) (commands.AdminCommands, adminUseCaseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := adminUseCaseMocks{
		repo:          commandsmock.NewMockReservationRepository(ctrl),
		notifications: commandsmock.NewMockNotificationRepository(ctrl),
		reader:        commandsmock.NewMockReservationReader(ctrl),
		clock:         clock.NewMockClock(time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)),
	}
	uc := commands.NewAdminUseCase(mocks.repo, mocks.notifications, mocks.reader, mocks.clock)
	return uc, mocks
}

func pendingView() *queries.ReservationView {
	return builder.NewReservationBuilder().BuildView()
}

func TestAdminUseCase_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to confirmed persists and enqueues a notification", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()
		now := m.clock.Now()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateStatus(gomock.Any(), view.ID, reservation.StatusConfirmed, now, view.UpdatedAt).
			Return(nil)
		m.notifications.EXPECT().
			CreateJob(gomock.Any(), "email", "reservation_confirmed", gomock.Any(), now).
			DoAndReturn(func(_ context.Context, _, _ string, payload []byte, _ time.Time) error {
				var decoded map[string]any
				require.NoError(t, json.Unmarshal(payload, &decoded))
				assert.Equal(t, view.Email, decoded["email"])
				return nil
			})

		require.NoError(t, uc.ChangeStatus(ctx, view.ID, "confirmed"))
	})

	t.Run("confirmed to completed does not notify", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateStatus(gomock.Any(), view.ID, reservation.StatusCompleted, m.clock.Now(), view.UpdatedAt).
			Return(nil)

		require.NoError(t, uc.ChangeStatus(ctx, view.ID, "completed"))
	})

	t.Run("re-applying the current status is a no-op", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		require.NoError(t, uc.ChangeStatus(ctx, view.ID, "pending"))
	})

	t.Run("illegal transition is rejected without touching the store", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		err := uc.ChangeStatus(ctx, view.ID, "confirmed")
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})

	t.Run("unknown target status is rejected", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		err := uc.ChangeStatus(ctx, view.ID, "archived")
		assert.ErrorIs(t, err, reservation.ErrUnknownStatus)
	})

	t.Run("concurrent modification surfaces as stale reservation", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateStatus(gomock.Any(), view.ID, reservation.StatusConfirmed, gomock.Any(), view.UpdatedAt).
			Return(infra.WrapRepoErr("reservation modified concurrently", nil, infra.KindConflict))

		err := uc.ChangeStatus(ctx, view.ID, "confirmed")
		assert.ErrorIs(t, err, errs.ErrStaleReservation)
	})

	t.Run("missing reservation surfaces as not found", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		id := uuid.New()

		m.reader.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		err := uc.ChangeStatus(ctx, id, "confirmed")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("failed notification enqueue does not fail the status change", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateStatus(gomock.Any(), view.ID, reservation.StatusCancelled, gomock.Any(), view.UpdatedAt).
			Return(nil)
		m.notifications.EXPECT().
			CreateJob(gomock.Any(), "email", "reservation_cancelled", gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", errors.New("boom")))

		require.NoError(t, uc.ChangeStatus(ctx, view.ID, "cancelled"))
	})
}

func TestAdminUseCase_UpdateNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("notes are replaced with a fresh concurrency token", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()
		notes := "window table requested"

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateNotes(gomock.Any(), view.ID, &notes, m.clock.Now(), view.UpdatedAt).
			Return(nil)

		require.NoError(t, uc.UpdateNotes(ctx, view.ID, &notes))
	})

	t.Run("clearing notes passes nil through", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := builder.NewReservationBuilder().WithNotes("old note").BuildView()

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateNotes(gomock.Any(), view.ID, gomock.Nil(), m.clock.Now(), view.UpdatedAt).
			Return(nil)

		require.NoError(t, uc.UpdateNotes(ctx, view.ID, nil))
	})

	t.Run("concurrent modification surfaces as stale reservation", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		view := pendingView()
		notes := "late arrival"

		m.reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		m.repo.EXPECT().
			UpdateNotes(gomock.Any(), view.ID, &notes, gomock.Any(), view.UpdatedAt).
			Return(infra.WrapRepoErr("reservation modified concurrently", nil, infra.KindConflict))

		err := uc.UpdateNotes(ctx, view.ID, &notes)
		assert.ErrorIs(t, err, errs.ErrStaleReservation)
	})
}

func TestAdminUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing reservation is removed", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		id := uuid.New()

		m.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		require.NoError(t, uc.Delete(ctx, id))
	})

	t.Run("missing reservation surfaces as not found", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		id := uuid.New()

		m.repo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := uc.Delete(ctx, id)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}
