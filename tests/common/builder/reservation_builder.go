//go:build unit || e2e

package builder

import (
	"time"

	"bistro-booking/internal/domain/reservation"
	reqdto "bistro-booking/internal/handler/dto/request"
	"bistro-booking/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	GuestsLabel     string
	Occasion        *string
	SpecialRequests *string
	Status          reservation.Status
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		Name:        "Marie Dupont",
		Email:       "marie.dupont@example.com",
		Phone:       "+33612345678",
		Date:        now.AddDate(0, 0, 1).Format(reservation.DateLayout),
		Time:        "19:30",
		GuestsLabel: "4",
		Status:      reservation.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewRandomReservationBuilder fills contact fields with fake but valid data,
// for seeding larger datasets.
func NewRandomReservationBuilder() *ReservationBuilder {
	b := NewReservationBuilder()
	b.Name = gofakeit.Name()
	b.Email = gofakeit.Email()
	b.Phone = "+3361" + gofakeit.DigitN(7)
	return b
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildInput() reservation.BookingInput {
	return reservation.BookingInput{
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Date:            b.Date,
		Time:            b.Time,
		GuestsLabel:     b.GuestsLabel,
		Occasion:        b.Occasion,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, reservation.FieldErrors) {
	booking, fieldErrs := reservation.ValidateBooking(b.BuildInput(), time.Now(), reservation.DefaultServiceSlots())
	if fieldErrs != nil {
		return nil, fieldErrs
	}
	return reservation.NewReservation(booking, b.CreatedAt), nil
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Date:            b.Date,
		Time:            b.Time,
		Guests:          b.GuestsLabel,
		Occasion:        b.Occasion,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	date, _ := time.Parse(reservation.DateLayout, b.Date)
	return &queries.ReservationView{
		ID:              uuid.New(),
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Date:            date,
		Time:            b.Time,
		Guests:          int32(reservation.ParseGuestCount(b.GuestsLabel)),
		Occasion:        b.Occasion,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status.String(),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) WithName(name string) *ReservationBuilder {
	b.Name = name
	return b
}

func (b *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	b.Email = email
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.Phone = phone
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithTime(timeLabel string) *ReservationBuilder {
	b.Time = timeLabel
	return b
}

func (b *ReservationBuilder) WithGuestsLabel(label string) *ReservationBuilder {
	b.GuestsLabel = label
	return b
}

func (b *ReservationBuilder) WithOccasion(occasion string) *ReservationBuilder {
	b.Occasion = &occasion
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.SpecialRequests = &requests
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = &notes
	return b
}
