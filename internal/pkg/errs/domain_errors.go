package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrStaleReservation    = errors.New("reservation was modified concurrently")

	// Operation errors
	ErrStoreUnavailable        = errors.New("record store unavailable")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
