package queries

import (
	"context"
	"math"
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/infra"
	"bistro-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read model for both console and public views
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	Guests          int32     `json:"guests"`
	Occasion        *string   `json:"occasion,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ConfirmationView is what a guest sees after booking. Internal notes and
// contact details of other records never appear here.
type ConfirmationView struct {
	Reference string `json:"reference"`
	Name      string `json:"name,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Guests    int32  `json:"guests,omitempty"`
	Status    string `json:"status"`
}

type ReservationFilter struct {
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   *string
}

type ListParams struct {
	Status string // enum value or "all"
	Search string
	Page   int // 1-based
}

type ListResult struct {
	Records    []*ReservationView
	TotalCount int64
	Page       int
	PageSize   int
	PageCount  int
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	Search(ctx context.Context, filter ReservationFilter, limit, offset int32) ([]*ReservationView, int64, error)
}

type ReservationQueries interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetConfirmation(ctx context.Context, id uuid.UUID) (*ConfirmationView, error)
}

type reservationQueriesImpl struct {
	store    ReservationReadStore
	pageSize int
}

func NewReservationQueries(store ReservationReadStore, pageSize int) ReservationQueries {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &reservationQueriesImpl{store: store, pageSize: pageSize}
}

func (q *reservationQueriesImpl) List(ctx context.Context, params ListParams) (*ListResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	// The store takes an int32 offset; clamp so absurd page numbers return
	// an empty tail page instead of a negative offset.
	if maxPage := math.MaxInt32 / q.pageSize; page > maxPage {
		page = maxPage
	}

	var filter ReservationFilter
	if params.Status != "" && params.Status != "all" {
		status := params.Status
		filter.Status = &status
	}
	if params.Search != "" {
		search := params.Search
		filter.Search = &search
	}

	offset := int32((page - 1) * q.pageSize)
	records, total, err := q.store.Search(ctx, filter, int32(q.pageSize), offset)
	if err != nil {
		return nil, markReadErr(err, "failed to list reservations")
	}

	pageCount := int((total + int64(q.pageSize) - 1) / int64(q.pageSize))

	return &ListResult{
		Records:    records,
		TotalCount: total,
		Page:       page,
		PageSize:   q.pageSize,
		PageCount:  pageCount,
	}, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, markReadErr(err, "failed to find reservation")
	}
	return view, nil
}

// GetConfirmation resolves the public confirmation view. A well-formed id
// that cannot be resolved yields a generic pending placeholder instead of an
// error, so a direct confirmation link never 404s nor exposes anyone else's
// booking.
func (q *reservationQueriesImpl) GetConfirmation(ctx context.Context, id uuid.UUID) (*ConfirmationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ConfirmationView{
				Reference: reservation.ConfirmationCode(id),
				Status:    reservation.StatusPending.String(),
			}, nil
		}
		return nil, markReadErr(err, "failed to find reservation")
	}

	return &ConfirmationView{
		Reference: reservation.ConfirmationCode(view.ID),
		Name:      view.Name,
		Date:      view.Date.Format(reservation.DateLayout),
		Time:      view.Time,
		Guests:    view.Guests,
		Status:    view.Status,
	}, nil
}

// markReadErr keeps transient store outages distinguishable on the read
// path, matching the write-side mapping.
func markReadErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return errs.Wrap(err, msg)
}
