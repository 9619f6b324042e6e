package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/memory"
	"ridehail/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store unavailable")

type fakeQueue struct {
	mu      sync.Mutex
	pending []*models.FollowUp
	dead    []*models.FollowUp
	failing error
}

func (q *fakeQueue) Enqueue(ctx context.Context, job *models.FollowUp) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failing != nil {
		return q.failing
	}
	copied := *job
	q.pending = append(q.pending, &copied)
	return nil
}

func (q *fakeQueue) Dequeue(ctx context.Context, timeout time.Duration) (*models.FollowUp, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		time.Sleep(timeout)
		q.mu.Lock()
		return nil, false, nil
	}
	job := q.pending[0]
	q.pending = q.pending[1:]
	return job, true, nil
}

func (q *fakeQueue) DeadLetter(ctx context.Context, job *models.FollowUp) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	copied := *job
	q.dead = append(q.dead, &copied)
	return nil
}

func (q *fakeQueue) Pending() []*models.FollowUp {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]*models.FollowUp(nil), q.pending...)
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if got := KindOf(err); got != want || err == nil {
		t.Fatalf("error = %v (kind %s), want kind %s", err, got, want)
	}
}

func assertMessage(t *testing.T, err error, want string) {
	t.Helper()
	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error %v is not an *AppError", err)
	}
	if appErr.Message != want {
		t.Fatalf("message = %q, want %q", appErr.Message, want)
	}
}

func nopLogger() *logger.Logger {
	return logger.NewNop()
}

func hex() string {
	return primitive.NewObjectID().Hex()
}

func fare(v float64) *float64 {
	return &v
}

func newRideFixture(queue FollowUpQueue) (*memory.Store, RideService) {
	store := memory.NewStore()
	return store, NewRideService(store.Rides(), store.Payments(), queue, nopLogger())
}
