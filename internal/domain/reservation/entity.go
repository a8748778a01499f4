package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrUnknownStatus     = errors.New("unknown reservation status")
)

type Reservation struct {
	id              uuid.UUID
	name            string
	email           string
	phone           string
	date            time.Time
	timeSlot        string
	guests          int
	occasion        *string
	specialRequests *string
	status          Status
	notes           *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation builds a pending reservation from a validated booking.
func NewReservation(b *Booking, now time.Time) *Reservation {
	return &Reservation{
		id:              uuid.New(),
		name:            b.Name,
		email:           b.Email,
		phone:           b.Phone,
		date:            b.Date,
		timeSlot:        b.Time,
		guests:          b.Guests,
		occasion:        b.Occasion,
		specialRequests: b.SpecialRequests,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	name, email, phone string,
	date time.Time,
	timeSlot string,
	guests int,
	occasion, specialRequests *string,
	status Status,
	notes *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		name:            name,
		email:           email,
		phone:           phone,
		date:            date,
		timeSlot:        timeSlot,
		guests:          guests,
		occasion:        occasion,
		specialRequests: specialRequests,
		status:          status,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Transition moves the reservation to target and refreshes updatedAt.
// Re-applying a transition the record has already taken is a no-op success,
// so a double-submitted admin action does not error. Anything outside the
// legal transition table leaves the record untouched and returns
// ErrIllegalTransition.
func (r *Reservation) Transition(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrUnknownStatus
	}
	if r.status == target {
		return nil
	}
	if !r.status.CanTransitionTo(target) {
		return ErrIllegalTransition
	}

	r.status = target
	r.updatedAt = now
	return nil
}

// SetNotes replaces the internal admin notes; never shown to the requester.
func (r *Reservation) SetNotes(notes *string, now time.Time) {
	r.notes = notes
	r.updatedAt = now
}

func (r *Reservation) IsPending() bool  { return r.status == StatusPending }
func (r *Reservation) IsTerminal() bool { return r.status.IsTerminal() }

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) Name() string             { return r.name }
func (r *Reservation) Email() string            { return r.email }
func (r *Reservation) Phone() string            { return r.phone }
func (r *Reservation) Date() time.Time          { return r.date }
func (r *Reservation) TimeSlot() string         { return r.timeSlot }
func (r *Reservation) Guests() int              { return r.guests }
func (r *Reservation) Occasion() *string        { return r.occasion }
func (r *Reservation) SpecialRequests() *string { return r.specialRequests }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) Notes() *string           { return r.notes }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
