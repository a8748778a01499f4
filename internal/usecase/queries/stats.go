package queries

import (
	"context"
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/pkg/clock"
)

const statsWeekWindow = 7 * 24 * time.Hour

type DashboardStats struct {
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"this_week"`
	Pending  int64 `json:"pending"`
}

type StatsReadStore interface {
	CountOnDate(ctx context.Context, date time.Time) (int64, error)
	CountSince(ctx context.Context, date time.Time) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type StatsQueries interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
	clock clock.Clock
}

func NewStatsQueries(store StatsReadStore, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{store: store, clock: clk}
}

// Dashboard aggregates three independent headline counts. Each count stands
// on its own; they are not a partition of the data set and may overlap.
func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := q.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	todayCount, err := q.store.CountOnDate(ctx, today)
	if err != nil {
		return nil, markReadErr(err, "failed to count today's reservations")
	}

	weekCount, err := q.store.CountSince(ctx, today.Add(-statsWeekWindow))
	if err != nil {
		return nil, markReadErr(err, "failed to count this week's reservations")
	}

	pendingCount, err := q.store.CountByStatus(ctx, reservation.StatusPending.String())
	if err != nil {
		return nil, markReadErr(err, "failed to count pending reservations")
	}

	return &DashboardStats{
		Today:    todayCount,
		ThisWeek: weekCount,
		Pending:  pendingCount,
	}, nil
}
