package request

import (
	"bistro-booking/internal/domain/reservation"
)

// CreateBookingRequest carries the raw public form values. Nothing is
// validated at bind time; the validation gate inspects every field and
// reports all problems in one pass.
type CreateBookingRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Guests          string  `json:"guests"`
	Occasion        *string `json:"occasion,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ToInput() reservation.BookingInput {
	return reservation.BookingInput{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date,
		Time:            r.Time,
		GuestsLabel:     r.Guests,
		Occasion:        r.Occasion,
		SpecialRequests: r.SpecialRequests,
	}
}
