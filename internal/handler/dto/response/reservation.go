package response

import (
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationResponse is the console view of a record, internal notes
// included.
type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int32     `json:"guests"`
	Occasion        *string   `json:"occasion,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Pagination struct {
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	PageCount int   `json:"page_count"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Pagination   Pagination             `json:"pagination"`
}

type StatsResponse struct {
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"this_week"`
	Pending  int64 `json:"pending"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Email:           rm.Email,
		Phone:           rm.Phone,
		Date:            rm.Date.Format(reservation.DateLayout),
		Time:            rm.Time,
		Guests:          rm.Guests,
		Occasion:        rm.Occasion,
		SpecialRequests: rm.SpecialRequests,
		Status:          rm.Status,
		Notes:           rm.Notes,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromListResult(result *queries.ListResult) *ReservationListResponse {
	items := make([]*ReservationResponse, len(result.Records))
	for i, rm := range result.Records {
		items[i] = FromReservationView(rm)
	}
	return &ReservationListResponse{
		Reservations: items,
		Pagination: Pagination{
			Total:     result.TotalCount,
			Page:      result.Page,
			PageSize:  result.PageSize,
			PageCount: result.PageCount,
		},
	}
}

func FromDashboardStats(stats *queries.DashboardStats) *StatsResponse {
	return &StatsResponse{
		Today:    stats.Today,
		ThisWeek: stats.ThisWeek,
		Pending:  stats.Pending,
	}
}
