package readstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"bistro-booking/internal/infra"
	"bistro-booking/internal/infra/sqlq"
	"bistro-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.ReservationRow, error)
	SearchReservations(ctx context.Context, db sqlq.DBTX, arg sqlq.SearchReservationsParams) ([]sqlq.SearchReservationsRow, error)
	CountReservations(ctx context.Context, db sqlq.DBTX, arg sqlq.SearchReservationsParams) (int64, error)
	CountReservationsOnDate(ctx context.Context, db sqlq.DBTX, date time.Time) (int64, error)
	CountReservationsSince(ctx context.Context, db sqlq.DBTX, date time.Time) (int64, error)
	CountReservationsByStatus(ctx context.Context, db sqlq.DBTX, status string) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlq.DBTX
}

func NewReservationReadStore(queries *sqlq.Queries, db sqlq.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

// Search returns one page plus the total size of the filtered set. The total
// comes from a window aggregate in the page statement itself, so the count
// and the slice always describe the same predicate evaluation.
func (r *ReservationReadStore) Search(
	ctx context.Context,
	filter queries.ReservationFilter,
	limit, offset int32,
) ([]*queries.ReservationView, int64, error) {
	params := sqlq.SearchReservationsParams{
		Status:   filter.Status,
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Search:   escapeLikePtr(filter.Search),
		Limit:    limit,
		Offset:   offset,
	}

	rows, err := r.queries.SearchReservations(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search reservations", err)
	}

	if len(rows) == 0 {
		// Page beyond the end of the set; the window total is unavailable.
		if offset == 0 {
			return nil, 0, nil
		}
		total, countErr := r.queries.CountReservations(ctx, r.db, params)
		if countErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to count reservations", countErr)
		}
		return nil, total, nil
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row.ReservationRow)
	}
	return result, rows[0].TotalCount, nil
}

func (r *ReservationReadStore) CountOnDate(ctx context.Context, date time.Time) (int64, error) {
	count, err := r.queries.CountReservationsOnDate(ctx, r.db, date)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations on date", err)
	}
	return count, nil
}

func (r *ReservationReadStore) CountSince(ctx context.Context, date time.Time) (int64, error) {
	count, err := r.queries.CountReservationsSince(ctx, r.db, date)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations since date", err)
	}
	return count, nil
}

func (r *ReservationReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.queries.CountReservationsByStatus(ctx, r.db, status)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations by status", err)
	}
	return count, nil
}

func rowToReservationView(row sqlq.ReservationRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		Name:            row.Name,
		Email:           row.Email,
		Phone:           row.Phone,
		Date:            row.Date,
		Time:            row.TimeSlot,
		Guests:          row.Guests,
		Occasion:        row.Occasion,
		SpecialRequests: row.SpecialRequests,
		Status:          row.Status,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePtr(s *string) *string {
	if s == nil {
		return nil
	}
	escaped := likeEscaper.Replace(*s)
	return &escaped
}
