//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"bistro-booking/internal/domain/reservation"
	"bistro-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationCase struct {
	name      string
	mutate    func(*builder.ReservationBuilder)
	errFields []string
}

func validate(b *builder.ReservationBuilder) (*reservation.Booking, reservation.FieldErrors) {
	return reservation.ValidateBooking(b.BuildInput(), time.Now(), reservation.DefaultServiceSlots())
}

func TestValidateBooking(t *testing.T) {
	t.Run("valid input normalizes without loss", func(t *testing.T) {
		b := builder.NewReservationBuilder().
			WithName("  Marie Dupont  ").
			WithTime("19h30").
			WithGuestsLabel("4 personnes").
			WithOccasion("anniversary").
			WithSpecialRequests("  window table please  ")

		booking, fieldErrs := validate(b)
		require.Nil(t, fieldErrs)
		require.NotNil(t, booking)

		assert.Equal(t, "Marie Dupont", booking.Name)
		assert.Equal(t, "marie.dupont@example.com", booking.Email)
		assert.Equal(t, "+33612345678", booking.Phone)
		assert.Equal(t, b.Date, booking.Date.Format(reservation.DateLayout))
		assert.Equal(t, "19:30", booking.Time)
		assert.Equal(t, 4, booking.Guests)
		require.NotNil(t, booking.Occasion)
		assert.Equal(t, "anniversary", *booking.Occasion)
		require.NotNil(t, booking.SpecialRequests)
		assert.Equal(t, "window table please", *booking.SpecialRequests)
	})

	t.Run("same-day booking is accepted", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithDate(time.Now().Format(reservation.DateLayout))
		booking, fieldErrs := validate(b)
		require.Nil(t, fieldErrs)
		require.NotNil(t, booking)
	})

	t.Run("field rules", func(t *testing.T) {
		runValidationCases(t, []validationCase{
			{
				name:      "name too short",
				mutate:    func(b *builder.ReservationBuilder) { b.WithName("A") },
				errFields: []string{"name"},
			},
			{
				name:      "name whitespace only",
				mutate:    func(b *builder.ReservationBuilder) { b.WithName("   ") },
				errFields: []string{"name"},
			},
			{
				name:      "name too long",
				mutate:    func(b *builder.ReservationBuilder) { b.WithName(strings.Repeat("a", 101)) },
				errFields: []string{"name"},
			},
			{
				name:   "name at maximum length",
				mutate: func(b *builder.ReservationBuilder) { b.WithName(strings.Repeat("a", 100)) },
			},
			{
				name:   "accented name counted in characters not bytes",
				mutate: func(b *builder.ReservationBuilder) { b.WithName(strings.Repeat("é", 100)) },
			},
			{
				name:      "accented name over the character limit",
				mutate:    func(b *builder.ReservationBuilder) { b.WithName(strings.Repeat("é", 101)) },
				errFields: []string{"name"},
			},
			{
				name:      "email not an email",
				mutate:    func(b *builder.ReservationBuilder) { b.WithEmail("not-an-email") },
				errFields: []string{"email"},
			},
			{
				name: "email too long",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithEmail(strings.Repeat("a", 250) + "@example.com")
				},
				errFields: []string{"email"},
			},
			{
				name:      "phone too short",
				mutate:    func(b *builder.ReservationBuilder) { b.WithPhone("1234567") },
				errFields: []string{"phone"},
			},
			{
				name:      "phone too long",
				mutate:    func(b *builder.ReservationBuilder) { b.WithPhone(strings.Repeat("1", 21)) },
				errFields: []string{"phone"},
			},
			{
				name:   "phone format unconstrained",
				mutate: func(b *builder.ReservationBuilder) { b.WithPhone("06 12 34 56") },
			},
			{
				name:      "date unparseable",
				mutate:    func(b *builder.ReservationBuilder) { b.WithDate("tomorrow") },
				errFields: []string{"date"},
			},
			{
				name: "date in the past",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithDate(time.Now().AddDate(0, 0, -1).Format(reservation.DateLayout))
				},
				errFields: []string{"date"},
			},
			{
				name:      "time outside slot set",
				mutate:    func(b *builder.ReservationBuilder) { b.WithTime("15:00") },
				errFields: []string{"time"},
			},
			{
				name:      "time not on the half hour",
				mutate:    func(b *builder.ReservationBuilder) { b.WithTime("19:45") },
				errFields: []string{"time"},
			},
			{
				name:      "time unparseable",
				mutate:    func(b *builder.ReservationBuilder) { b.WithTime("dinner") },
				errFields: []string{"time"},
			},
			{
				name: "special requests too long",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSpecialRequests(strings.Repeat("a", 1001))
				},
				errFields: []string{"special_requests"},
			},
			{
				name: "special requests at maximum length",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSpecialRequests(strings.Repeat("a", 1000))
				},
			},
			{
				name: "accented special requests at the character limit",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSpecialRequests(strings.Repeat("à", 1000))
				},
			},
			{
				name: "all broken fields reported together",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithName("X").WithEmail("nope").WithPhone("123").WithDate("???").WithTime("noon")
				},
				errFields: []string{"name", "email", "phone", "date", "time"},
			},
		})
	})

	t.Run("past date rejected regardless of other fields", func(t *testing.T) {
		b := builder.NewReservationBuilder().
			WithDate(time.Now().AddDate(0, 0, -30).Format(reservation.DateLayout))
		booking, fieldErrs := validate(b)
		require.Nil(t, booking)
		require.True(t, fieldErrs.Has("date"))
		assert.Len(t, fieldErrs, 1)
	})

	t.Run("unusable guest label defaults instead of failing", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithGuestsLabel("a large party")
		booking, fieldErrs := validate(b)
		require.Nil(t, fieldErrs)
		assert.Equal(t, 2, booking.Guests)
	})
}

func runValidationCases(t *testing.T, cases []validationCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking, fieldErrs := validate(builder.NewReservationBuilder().With(tc.mutate))

			if len(tc.errFields) == 0 {
				require.Nil(t, fieldErrs)
				require.NotNil(t, booking)
				return
			}

			require.Nil(t, booking)
			require.Len(t, fieldErrs, len(tc.errFields))
			for _, field := range tc.errFields {
				assert.True(t, fieldErrs.Has(field), "expected error on field %q, got %v", field, fieldErrs)
			}
		})
	}
}
