package sqlq

import (
	"context"
	"time"
)

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)`

// CreateNotificationJob enqueues a delivery job for the external notifier.
// Delivery and retry are the notifier's concern.
func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt)
	return err
}
