package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

var (
	ErrSlotNotOffered  = errors.New("time is not an offered service slot")
	ErrUnparseableTime = errors.New("time label cannot be parsed")
)

// ServiceSlots is the published set of bookable times of day, each "HH:MM".
type ServiceSlots []string

// DefaultServiceSlots returns the dinner service window, 17:30 through 21:30
// in 30-minute increments.
func DefaultServiceSlots() ServiceSlots {
	return BuildServiceSlots("17:30", "21:30", 30*time.Minute)
}

func BuildServiceSlots(open, last string, step time.Duration) ServiceSlots {
	start, err := time.Parse("15:04", open)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04", last)
	if err != nil || step <= 0 {
		return nil
	}

	var slots ServiceSlots
	for t := start; !t.After(end); t = t.Add(step) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

func (s ServiceSlots) Contains(hhmm string) bool {
	for _, slot := range s {
		if slot == hhmm {
			return true
		}
	}
	return false
}

// NormalizeTimeLabel maps human time labels to "HH:MM". Accepted forms are
// "19:30", "19h30", "19h" and "7:30 PM".
func NormalizeTimeLabel(label string) (string, error) {
	raw := strings.TrimSpace(label)
	if raw == "" {
		return "", ErrUnparseableTime
	}

	lower := strings.ToLower(raw)
	lower = strings.ReplaceAll(lower, "h", ":")
	if strings.HasSuffix(lower, ":") {
		lower += "00"
	}

	for _, layout := range []string{"15:04", "3:04 pm", "3:04pm"} {
		if t, err := time.Parse(layout, lower); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", ErrUnparseableTime
}

const defaultGuestCount = 2

// ParseGuestCount extracts the leading digits of a free-text guest label
// ("4 personnes", "2+"). Labels without a usable leading number fall back to
// a party of two instead of failing; see the booking form contract.
func ParseGuestCount(label string) int {
	trimmed := strings.TrimSpace(label)

	var digits strings.Builder
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			break
		}
		digits.WriteRune(r)
	}
	if digits.Len() == 0 {
		return defaultGuestCount
	}

	var n int
	if _, err := fmt.Sscanf(digits.String(), "%d", &n); err != nil || n < 1 {
		return defaultGuestCount
	}
	return n
}
