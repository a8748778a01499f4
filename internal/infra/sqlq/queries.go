// Package sqlq holds the hand-written SQL for the reservation store. Every
// method takes the connection or transaction it should run on, so writes can
// share a transaction while reads go straight to the pool.
package sqlq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
