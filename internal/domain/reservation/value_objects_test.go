//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"bistro-booking/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServiceSlots(t *testing.T) {
	slots := reservation.DefaultServiceSlots()

	expected := reservation.ServiceSlots{
		"17:30", "18:00", "18:30", "19:00", "19:30",
		"20:00", "20:30", "21:00", "21:30",
	}
	if diff := cmp.Diff(expected, slots); diff != "" {
		t.Errorf("default slots mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, slots.Contains("19:30"))
	assert.False(t, slots.Contains("19:45"))
	assert.False(t, slots.Contains("22:00"))
}

func TestBuildServiceSlots(t *testing.T) {
	slots := reservation.BuildServiceSlots("12:00", "14:00", time.Hour)
	assert.Equal(t, reservation.ServiceSlots{"12:00", "13:00", "14:00"}, slots)

	assert.Nil(t, reservation.BuildServiceSlots("nonsense", "14:00", time.Hour))
	assert.Nil(t, reservation.BuildServiceSlots("12:00", "14:00", 0))
}

func TestNormalizeTimeLabel(t *testing.T) {
	cases := []struct {
		label    string
		expected string
		wantErr  bool
	}{
		{label: "19:30", expected: "19:30"},
		{label: "19h30", expected: "19:30"},
		{label: " 19h30 ", expected: "19:30"},
		{label: "19h", expected: "19:00"},
		{label: "7:30 PM", expected: "19:30"},
		{label: "7:30pm", expected: "19:30"},
		{label: "", wantErr: true},
		{label: "half past seven", wantErr: true},
		{label: "25:00", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			actual, err := reservation.NormalizeTimeLabel(tc.label)
			if tc.wantErr {
				require.ErrorIs(t, err, reservation.ErrUnparseableTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseGuestCount(t *testing.T) {
	cases := []struct {
		label    string
		expected int
	}{
		{label: "4", expected: 4},
		{label: "4 personnes", expected: 4},
		{label: "12 guests", expected: 12},
		{label: " 6 ", expected: 6},
		{label: "2+", expected: 2},
		// unusable labels fall back to a party of two
		{label: "", expected: 2},
		{label: "a table for four", expected: 2},
		{label: "0", expected: 2},
		{label: "-3", expected: 2},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.ParseGuestCount(tc.label))
		})
	}
}
