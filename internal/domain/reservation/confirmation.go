package reservation

import (
	"strings"

	"github.com/google/uuid"
)

const confirmationPrefix = "BKG-"

// ConfirmationCode derives the short reference shown to guests from the
// reservation id: the first 8 hex characters, uppercased. Cosmetic only; it
// carries no authority and cannot be exchanged for the record.
func ConfirmationCode(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return confirmationPrefix + strings.ToUpper(hex[:8])
}
