package response

import (
	"bistro-booking/internal/usecase/commands"
	"bistro-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmitBookingResponse struct {
	ID               uuid.UUID `json:"id"`
	ConfirmationCode string    `json:"confirmation_code"`
	Status           string    `json:"status"`
}

func FromSubmitResult(result *commands.SubmitBookingResult, status string) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		ID:               result.ReservationID,
		ConfirmationCode: result.ConfirmationCode,
		Status:           status,
	}
}

type ConfirmationResponse struct {
	Reference string `json:"reference"`
	Name      string `json:"name,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Guests    int32  `json:"guests,omitempty"`
	Status    string `json:"status"`
}

func FromConfirmationView(view *queries.ConfirmationView) *ConfirmationResponse {
	return &ConfirmationResponse{
		Reference: view.Reference,
		Name:      view.Name,
		Date:      view.Date,
		Time:      view.Time,
		Guests:    view.Guests,
		Status:    view.Status,
	}
}
