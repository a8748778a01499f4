package infra

import (
	"context"
	"errors"

	"bistro-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindUnavailable  RepositoryErrorKind = "UNAVAILABLE"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err unless an explicit kind is given.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsTransient reports whether a retry against the store may succeed.
func IsTransient(err error) bool {
	return IsKind(err, KindUnavailable)
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindDuplicateKey
		case "40001", "40P01": // serialization failure, deadlock
			return KindConflict
		case "53300", "57P03", "08000", "08003", "08006": // connection/startup problems
			return KindUnavailable
		}
		return KindDBFailure
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return KindUnavailable
	}

	return KindDBFailure
}
