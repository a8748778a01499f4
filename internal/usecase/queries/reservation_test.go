//go:build unit

package queries_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/infra"
	"bistro-booking/internal/pkg/errs"
	"bistro-booking/internal/usecase/queries"
	"bistro-booking/tests/common/builder"
	queriesmock "bistro-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPageSize = 20

func newReservationQueries(t *testing.T) (queries.ReservationQueries, *queriesmock.MockReservationReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	return queries.NewReservationQueries(store, testPageSize), store
}

func someViews(n int) []*queries.ReservationView {
	views := make([]*queries.ReservationView, n)
	for i := range views {
		views[i] = builder.NewRandomReservationBuilder().BuildView()
	}
	return views
}

func TestReservationQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("first page with default filters", func(t *testing.T) {
		q, store := newReservationQueries(t)
		views := someViews(3)

		store.EXPECT().
			Search(gomock.Any(), queries.ReservationFilter{}, int32(testPageSize), int32(0)).
			Return(views, int64(3), nil)

		result, err := q.List(ctx, queries.ListParams{Status: "all", Page: 1})
		require.NoError(t, err)
		assert.Len(t, result.Records, 3)
		assert.Equal(t, int64(3), result.TotalCount)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 1, result.PageCount)
	})

	t.Run("status and search become filter predicates", func(t *testing.T) {
		q, store := newReservationQueries(t)
		status := "pending"
		search := "dupont"

		store.EXPECT().
			Search(gomock.Any(), queries.ReservationFilter{Status: &status, Search: &search}, int32(testPageSize), int32(0)).
			Return(nil, int64(0), nil)

		_, err := q.List(ctx, queries.ListParams{Status: "pending", Search: "dupont", Page: 1})
		require.NoError(t, err)
	})

	t.Run("page count rounds up", func(t *testing.T) {
		q, store := newReservationQueries(t)
		views := someViews(testPageSize)

		store.EXPECT().
			Search(gomock.Any(), gomock.Any(), int32(testPageSize), int32(0)).
			Return(views, int64(41), nil)

		result, err := q.List(ctx, queries.ListParams{Status: "all", Page: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, result.PageCount)
	})

	t.Run("page below one is clamped to the first page", func(t *testing.T) {
		q, store := newReservationQueries(t)

		store.EXPECT().
			Search(gomock.Any(), gomock.Any(), int32(testPageSize), int32(0)).
			Return(nil, int64(0), nil)

		result, err := q.List(ctx, queries.ListParams{Status: "all", Page: -3})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("later pages shift the offset", func(t *testing.T) {
		q, store := newReservationQueries(t)

		store.EXPECT().
			Search(gomock.Any(), gomock.Any(), int32(testPageSize), int32(2*testPageSize)).
			Return(nil, int64(41), nil)

		result, err := q.List(ctx, queries.ListParams{Status: "all", Page: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Page)
		assert.Equal(t, int64(41), result.TotalCount)
	})

	t.Run("absurd page numbers never produce a negative offset", func(t *testing.T) {
		q, store := newReservationQueries(t)
		maxPage := math.MaxInt32 / testPageSize

		store.EXPECT().
			Search(gomock.Any(), gomock.Any(), int32(testPageSize), int32((maxPage-1)*testPageSize)).
			Return(nil, int64(0), nil)

		result, err := q.List(ctx, queries.ListParams{Status: "all", Page: math.MaxInt32})
		require.NoError(t, err)
		assert.Equal(t, maxPage, result.Page)
	})

	t.Run("store outage maps to the unavailable sentinel", func(t *testing.T) {
		q, store := newReservationQueries(t)

		store.EXPECT().
			Search(gomock.Any(), gomock.Any(), int32(testPageSize), int32(0)).
			Return(nil, int64(0), infra.WrapRepoErr("connect failed", errors.New("dial tcp"), infra.KindUnavailable))

		_, err := q.List(ctx, queries.ListParams{Status: "all", Page: 1})
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("existing record is returned as is", func(t *testing.T) {
		q, store := newReservationQueries(t)
		view := builder.NewReservationBuilder().BuildView()

		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing record maps to not found", func(t *testing.T) {
		q, store := newReservationQueries(t)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("store outage maps to the unavailable sentinel", func(t *testing.T) {
		q, store := newReservationQueries(t)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("connect failed", errors.New("dial tcp"), infra.KindUnavailable))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestReservationQueries_GetConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("existing booking yields the full confirmation", func(t *testing.T) {
		q, store := newReservationQueries(t)
		view := builder.NewReservationBuilder().BuildView()

		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetConfirmation(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, reservation.ConfirmationCode(view.ID), got.Reference)
		assert.Equal(t, view.Name, got.Name)
		assert.Equal(t, view.Time, got.Time)
		assert.Equal(t, view.Status, got.Status)
	})

	t.Run("unknown id yields a generic pending view instead of an error", func(t *testing.T) {
		q, store := newReservationQueries(t)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		got, err := q.GetConfirmation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, reservation.ConfirmationCode(id), got.Reference)
		assert.Equal(t, "pending", got.Status)
		assert.Empty(t, got.Name)
		assert.Empty(t, got.Date)
	})

	t.Run("store failure still propagates", func(t *testing.T) {
		q, store := newReservationQueries(t)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("boom")))

		_, err := q.GetConfirmation(ctx, id)
		assert.Error(t, err)
	})

	t.Run("store outage maps to the unavailable sentinel", func(t *testing.T) {
		q, store := newReservationQueries(t)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("connect failed", errors.New("dial tcp"), infra.KindUnavailable))

		_, err := q.GetConfirmation(ctx, id)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
