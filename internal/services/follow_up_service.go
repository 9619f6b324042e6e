package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"
	"ridehail/pkg/logger"
)

const (
	FollowUpPendingKey = "followups:pending"
	FollowUpDeadKey    = "followups:dead"
)

var ErrFollowUpQueueUnavailable = errors.New("follow-up queue unavailable")

// FollowUpQueue holds second writes waiting to be retried.
type FollowUpQueue interface {
	Enqueue(ctx context.Context, job *models.FollowUp) error
	// Dequeue waits up to timeout for a job. ok is false when none arrived.
	Dequeue(ctx context.Context, timeout time.Duration) (job *models.FollowUp, ok bool, err error)
	DeadLetter(ctx context.Context, job *models.FollowUp) error
}

// ListStore is the subset of a Redis client the queue needs.
// *cache.RedisCache satisfies it.
type ListStore interface {
	PushJSON(ctx context.Context, key string, value interface{}) error
	PopJSON(ctx context.Context, key string, timeout time.Duration, dest interface{}) (bool, error)
}

type listFollowUpQueue struct {
	store      ListStore
	pendingKey string
	deadKey    string
}

func NewFollowUpQueue(store ListStore) FollowUpQueue {
	return &listFollowUpQueue{
		store:      store,
		pendingKey: FollowUpPendingKey,
		deadKey:    FollowUpDeadKey,
	}
}

func (q *listFollowUpQueue) Enqueue(ctx context.Context, job *models.FollowUp) error {
	if err := q.store.PushJSON(ctx, q.pendingKey, job); err != nil {
		return fmt.Errorf("failed to enqueue follow-up %s: %w", job.Key(), err)
	}
	return nil
}

func (q *listFollowUpQueue) Dequeue(ctx context.Context, timeout time.Duration) (*models.FollowUp, bool, error) {
	var job models.FollowUp
	ok, err := q.store.PopJSON(ctx, q.pendingKey, timeout, &job)
	if err != nil {
		return nil, false, fmt.Errorf("failed to dequeue follow-up: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	return &job, true, nil
}

func (q *listFollowUpQueue) DeadLetter(ctx context.Context, job *models.FollowUp) error {
	if err := q.store.PushJSON(ctx, q.deadKey, job); err != nil {
		return fmt.Errorf("failed to dead-letter follow-up %s: %w", job.Key(), err)
	}
	return nil
}

func enqueueFollowUp(ctx context.Context, queue FollowUpQueue, job *models.FollowUp) error {
	if queue == nil {
		return ErrFollowUpQueueUnavailable
	}
	return queue.Enqueue(ctx, job)
}

type FollowUpConfig struct {
	MaxAttempts int
	RetryDelay  time.Duration
	PollTimeout time.Duration
}

// FollowUpWorker drains the follow-up queue, applying each job until it
// succeeds or runs out of attempts.
type FollowUpWorker struct {
	queue       FollowUpQueue
	driverRepo  interfaces.DriverRepository
	paymentRepo interfaces.PaymentRepository
	config      FollowUpConfig
	logger      *logger.Logger
}

func NewFollowUpWorker(
	queue FollowUpQueue,
	driverRepo interfaces.DriverRepository,
	paymentRepo interfaces.PaymentRepository,
	config FollowUpConfig,
	logger *logger.Logger,
) *FollowUpWorker {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.PollTimeout <= 0 {
		config.PollTimeout = 5 * time.Second
	}
	return &FollowUpWorker{
		queue:       queue,
		driverRepo:  driverRepo,
		paymentRepo: paymentRepo,
		config:      config,
		logger:      logger.WithField("component", "follow_up_worker"),
	}
}

// Run processes jobs until ctx is cancelled.
func (w *FollowUpWorker) Run(ctx context.Context) {
	w.logger.Info("Follow-up worker started")
	defer w.logger.Info("Follow-up worker stopped")

	for {
		if ctx.Err() != nil {
			return
		}

		job, ok, err := w.queue.Dequeue(ctx, w.config.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.WithError(err).Error("Follow-up dequeue failed")
			if !sleep(ctx, w.config.RetryDelay) {
				return
			}
			continue
		}
		if !ok {
			continue
		}

		_ = w.Process(ctx, job)
	}
}

// Process applies one job. A failure re-queues the job after RetryDelay, or
// dead-letters it once MaxAttempts is reached.
func (w *FollowUpWorker) Process(ctx context.Context, job *models.FollowUp) error {
	log := w.logger.WithFields(map[string]interface{}{
		"job":      job.Key(),
		"attempts": job.Attempts,
	})

	err := w.apply(ctx, job)
	if err == nil {
		log.Info("Follow-up applied")
		return nil
	}
	if errors.Is(err, interfaces.ErrNotFound) {
		log.WithError(err).Warn("Follow-up target no longer exists; dropping")
		return nil
	}

	job.Attempts++
	job.LastError = err.Error()

	if job.Attempts >= w.config.MaxAttempts {
		if dlErr := w.queue.DeadLetter(ctx, job); dlErr != nil {
			log.WithError(dlErr).Error("Failed to dead-letter follow-up")
		}
		log.WithError(err).Error("Follow-up exhausted its attempts")
		return err
	}

	log.WithError(err).Warn("Follow-up failed; retrying")
	if !sleep(ctx, w.config.RetryDelay) {
		// Shutting down: put the job back for the next process.
		if qErr := w.queue.Enqueue(context.Background(), job); qErr != nil {
			log.WithError(qErr).Error("Failed to re-queue follow-up on shutdown")
		}
		return err
	}
	if qErr := w.queue.Enqueue(ctx, job); qErr != nil {
		log.WithError(qErr).Error("Failed to re-queue follow-up")
	}
	return err
}

func (w *FollowUpWorker) apply(ctx context.Context, job *models.FollowUp) error {
	switch job.Kind {
	case models.FollowUpVehicleBackLink:
		return w.driverRepo.SetVehicle(ctx, job.DriverID, job.VehicleID)
	case models.FollowUpRidePayment:
		created, err := w.paymentRepo.CreateForRide(ctx, newCashPayment(job.RideID, job.FareAmount))
		if err != nil {
			return err
		}
		if created {
			w.logger.LogPaymentEvent(job.RideID.Hex(), "created", job.FareAmount, string(models.PaymentMethodCash))
		}
		return nil
	default:
		return fmt.Errorf("unknown follow-up kind %q: %w", job.Kind, interfaces.ErrNotFound)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
