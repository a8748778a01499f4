package repository

import (
	"context"
	"time"

	"bistro-booking/internal/infra"
	"bistro-booking/internal/infra/sqlq"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlq.DBTX
}

func NewNotificationRepository(queries *sqlq.Queries, db sqlq.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlq.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
