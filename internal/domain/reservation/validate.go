package reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MinNameLength           = 2
	MaxNameLength           = 100
	MaxEmailLength          = 255
	MinPhoneLength          = 8
	MaxPhoneLength          = 20
	MaxSpecialRequestLength = 1000

	DateLayout = "2006-01-02"
)

// BookingInput is the raw public booking form, before any normalization.
// Time and Guests arrive as human labels ("19h30", "4 personnes").
type BookingInput struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	GuestsLabel     string
	Occasion        *string
	SpecialRequests *string
}

// Booking is the normalized, well-formed result of the validation gate.
type Booking struct {
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	Time            string
	Guests          int
	Occasion        *string
	SpecialRequests *string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	fields := make([]string, len(fe))
	for i, f := range fe {
		fields[i] = f.Field
	}
	return "invalid booking fields: " + strings.Join(fields, ", ")
}

func (fe FieldErrors) Has(field string) bool {
	for _, f := range fe {
		if f.Field == field {
			return true
		}
	}
	return false
}

var emailValidator = validator.New()

// ValidateBooking checks every rule independently and reports all violations
// at once, so the form can surface every problem in a single round trip.
// today is truncated to its calendar date; a same-day booking is accepted.
func ValidateBooking(in BookingInput, today time.Time, slots ServiceSlots) (*Booking, FieldErrors) {
	var fieldErrs FieldErrors
	addErr := func(field, msg string) {
		fieldErrs = append(fieldErrs, FieldError{Field: field, Message: msg})
	}

	// Length limits are in characters, not bytes; accented names must not
	// burn through their limit at multibyte rates.
	name := strings.TrimSpace(in.Name)
	if nameLen := utf8.RuneCountInString(name); nameLen < MinNameLength || nameLen > MaxNameLength {
		addErr("name", fmt.Sprintf("name must be between %d and %d characters", MinNameLength, MaxNameLength))
	}

	email := strings.TrimSpace(in.Email)
	if utf8.RuneCountInString(email) > MaxEmailLength {
		addErr("email", fmt.Sprintf("email must be at most %d characters", MaxEmailLength))
	} else if err := emailValidator.Var(email, "required,email"); err != nil {
		addErr("email", "email address is not valid")
	}

	phone := strings.TrimSpace(in.Phone)
	if phoneLen := utf8.RuneCountInString(phone); phoneLen < MinPhoneLength || phoneLen > MaxPhoneLength {
		addErr("phone", fmt.Sprintf("phone must be between %d and %d characters", MinPhoneLength, MaxPhoneLength))
	}

	var date time.Time
	parsedDate, err := time.Parse(DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		addErr("date", "date must be a valid calendar date (YYYY-MM-DD)")
	} else {
		date = parsedDate
		y, m, d := today.Date()
		todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if date.Before(todayDate) {
			addErr("date", "date cannot be in the past")
		}
	}

	var slot string
	normalized, err := NormalizeTimeLabel(in.Time)
	if err != nil {
		addErr("time", "time cannot be understood")
	} else if !slots.Contains(normalized) {
		addErr("time", "time is not an offered service slot")
	} else {
		slot = normalized
	}

	guests := ParseGuestCount(in.GuestsLabel)

	special := trimOptional(in.SpecialRequests)
	if special != nil && utf8.RuneCountInString(*special) > MaxSpecialRequestLength {
		addErr("special_requests", fmt.Sprintf("special requests must be at most %d characters", MaxSpecialRequestLength))
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &Booking{
		Name:            name,
		Email:           email,
		Phone:           phone,
		Date:            date,
		Time:            slot,
		Guests:          guests,
		Occasion:        trimOptional(in.Occasion),
		SpecialRequests: special,
	}, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
