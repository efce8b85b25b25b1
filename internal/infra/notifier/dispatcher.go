package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-loyalty-core/internal/pkg/errs"
)

const (
	drainBatchSize = 20
	maxAttempts    = 5
)

// Sink delivers one notification. The default sink only logs; a push or
// email gateway slots in behind the same interface.
type Sink interface {
	Deliver(ctx context.Context, topic string, payload []byte) error
}

type LogSink struct{}

func (LogSink) Deliver(_ context.Context, topic string, payload []byte) error {
	slog.Info("notification delivered", "topic", topic, "payload", string(payload))
	return nil
}

// Dispatcher drains the notification_jobs outbox on an interval. Jobs are
// claimed with SKIP LOCKED so multiple instances never double-deliver, and a
// failed delivery stays queued until maxAttempts.
type Dispatcher struct {
	pool     *pgxpool.Pool
	sink     Sink
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewDispatcher(pool *pgxpool.Pool, sink Sink, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		pool:     pool,
		sink:     sink,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go d.loop()
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	close(d.stop)
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), d.interval)
			if err := d.DrainOnce(ctx); err != nil {
				slog.Error("outbox drain failed", "error", err.Error())
			}
			cancel()
		}
	}
}

const claimJobsSQL = `
SELECT id, topic, payload
FROM notification_jobs
WHERE completed_at IS NULL AND run_at <= now() AND attempts < $1
ORDER BY id
LIMIT $2
FOR UPDATE SKIP LOCKED`

// DrainOnce claims one batch and delivers it. Claim and status update share
// a transaction; the delivery itself happens while the claim lock is held,
// which keeps a crashed worker's jobs claimable by the next tick.
func (d *Dispatcher) DrainOnce(ctx context.Context) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "begin outbox drain")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rows, err := tx.Query(ctx, claimJobsSQL, maxAttempts, drainBatchSize)
	if err != nil {
		return errs.Wrap(err, "claim notification jobs")
	}

	type job struct {
		id      int64
		topic   string
		payload []byte
	}
	var jobs []job
	for rows.Next() {
		var j job
		if err := rows.Scan(&j.id, &j.topic, &j.payload); err != nil {
			rows.Close()
			return errs.Wrap(err, "scan notification job")
		}
		jobs = append(jobs, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return errs.Wrap(err, "read notification jobs")
	}

	for _, j := range jobs {
		if err := d.sink.Deliver(ctx, j.topic, j.payload); err != nil {
			slog.Warn("notification delivery failed", "job_id", j.id, "topic", j.topic, "error", err.Error())
			if _, err := tx.Exec(ctx, `UPDATE notification_jobs SET attempts = attempts + 1 WHERE id = $1`, j.id); err != nil {
				return errs.Wrap(err, "record delivery failure")
			}
			continue
		}
		if _, err := tx.Exec(ctx, `UPDATE notification_jobs SET attempts = attempts + 1, completed_at = now() WHERE id = $1`, j.id); err != nil {
			return errs.Wrap(err, "mark job completed")
		}
	}

	return tx.Commit(ctx)
}
