package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listStore mimics LPUSH/BRPOP on in-memory lists.
type listStore struct {
	mu    sync.Mutex
	lists map[string][][]byte
}

func newListStore() *listStore {
	return &listStore{lists: make(map[string][][]byte)}
}

func (s *listStore) PushJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append([][]byte{data}, s.lists[key]...)
	return nil
}

func (s *listStore) PopJSON(ctx context.Context, key string, timeout time.Duration, dest interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[key]
	if len(list) == 0 {
		return false, nil
	}
	last := list[len(list)-1]
	s.lists[key] = list[:len(list)-1]
	return true, json.Unmarshal(last, dest)
}

func (s *listStore) Len(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lists[key])
}

func TestFollowUpQueueFIFO(t *testing.T) {
	store := newListStore()
	queue := NewFollowUpQueue(store)
	ctx := context.Background()

	first := &models.FollowUp{Kind: models.FollowUpRidePayment, RideID: primitive.NewObjectID(), FareAmount: 12.5}
	second := &models.FollowUp{Kind: models.FollowUpVehicleBackLink, VehicleID: primitive.NewObjectID(), DriverID: primitive.NewObjectID()}
	for _, job := range []*models.FollowUp{first, second} {
		if err := queue.Enqueue(ctx, job); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	got, ok, err := queue.Dequeue(ctx, time.Millisecond)
	if err != nil || !ok {
		t.Fatalf("Dequeue: ok=%v err=%v", ok, err)
	}
	if got.Kind != first.Kind || got.RideID != first.RideID || got.FareAmount != first.FareAmount {
		t.Fatalf("dequeued %+v, want %+v", got, first)
	}

	got, _, _ = queue.Dequeue(ctx, time.Millisecond)
	if got.VehicleID != second.VehicleID || got.DriverID != second.DriverID {
		t.Fatalf("dequeued %+v, want %+v", got, second)
	}

	if _, ok, _ := queue.Dequeue(ctx, time.Millisecond); ok {
		t.Fatal("queue should be empty")
	}

	if err := queue.DeadLetter(ctx, first); err != nil {
		t.Fatalf("DeadLetter: %v", err)
	}
	if store.Len(FollowUpDeadKey) != 1 || store.Len(FollowUpPendingKey) != 0 {
		t.Fatal("dead letter landed on the wrong list")
	}
}

func newWorker(store *memory.Store, queue FollowUpQueue, maxAttempts int) *FollowUpWorker {
	return NewFollowUpWorker(queue, store.Drivers(), store.Payments(), FollowUpConfig{
		MaxAttempts: maxAttempts,
		PollTimeout: time.Millisecond,
	}, nopLogger())
}

func TestFollowUpWorkerAppliesJobs(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	driver := &models.Driver{Name: "Dan", Email: "dan@example.com", LicenseNumber: "L1", Status: models.DriverStatusUnavailable}
	if err := store.Drivers().Create(ctx, driver); err != nil {
		t.Fatalf("Create driver: %v", err)
	}
	vehicleID := primitive.NewObjectID()
	rideID := primitive.NewObjectID()

	worker := newWorker(store, &fakeQueue{}, 3)

	if err := worker.Process(ctx, &models.FollowUp{Kind: models.FollowUpVehicleBackLink, DriverID: driver.ID, VehicleID: vehicleID}); err != nil {
		t.Fatalf("back-link: %v", err)
	}
	stored, _ := store.Driver(driver.ID)
	if stored.VehicleID == nil || *stored.VehicleID != vehicleID {
		t.Fatalf("vehicle = %v", stored.VehicleID)
	}

	payment := &models.FollowUp{Kind: models.FollowUpRidePayment, RideID: rideID, FareAmount: 20}
	if err := worker.Process(ctx, payment); err != nil {
		t.Fatalf("payment: %v", err)
	}
	// Replaying a payment job must not create a second record.
	if err := worker.Process(ctx, payment); err != nil {
		t.Fatalf("payment replay: %v", err)
	}
	if store.PaymentCount() != 1 {
		t.Fatalf("payments = %d, want 1", store.PaymentCount())
	}
	p, _ := store.Payment(rideID)
	if p.FareAmount != 20 || p.Method != models.PaymentMethodCash {
		t.Fatalf("payment = %+v", p)
	}
}

func TestFollowUpWorkerDropsMissingTarget(t *testing.T) {
	store := memory.NewStore()
	queue := &fakeQueue{}
	worker := newWorker(store, queue, 3)

	err := worker.Process(context.Background(), &models.FollowUp{Kind: models.FollowUpVehicleBackLink, DriverID: primitive.NewObjectID(), VehicleID: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(queue.Pending()) != 0 || len(queue.dead) != 0 {
		t.Fatal("missing target should be dropped")
	}
}

func TestFollowUpWorkerRetriesThenDeadLetters(t *testing.T) {
	store := memory.NewStore()
	payments := store.Payments()
	payments.FailWith = errStoreDown
	queue := &fakeQueue{}
	worker := NewFollowUpWorker(queue, store.Drivers(), payments, FollowUpConfig{MaxAttempts: 2, PollTimeout: time.Millisecond}, nopLogger())
	ctx := context.Background()

	job := &models.FollowUp{Kind: models.FollowUpRidePayment, RideID: primitive.NewObjectID(), FareAmount: 9}

	if err := worker.Process(ctx, job); !errors.Is(err, errStoreDown) {
		t.Fatalf("first attempt err = %v", err)
	}
	pending := queue.Pending()
	if len(pending) != 1 || pending[0].Attempts != 1 || pending[0].LastError == "" {
		t.Fatalf("pending = %+v", pending)
	}

	retry, _, _ := queue.Dequeue(ctx, time.Millisecond)
	if err := worker.Process(ctx, retry); !errors.Is(err, errStoreDown) {
		t.Fatalf("second attempt err = %v", err)
	}
	if len(queue.Pending()) != 0 {
		t.Fatal("exhausted job was re-queued")
	}
	if len(queue.dead) != 1 || queue.dead[0].Attempts != 2 {
		t.Fatalf("dead = %+v", queue.dead)
	}
}

func TestFollowUpWorkerRunDrainsUntilCancelled(t *testing.T) {
	store := memory.NewStore()
	queue := &fakeQueue{}
	worker := newWorker(store, queue, 3)

	rideID := primitive.NewObjectID()
	_ = queue.Enqueue(context.Background(), &models.FollowUp{Kind: models.FollowUpRidePayment, RideID: rideID, FareAmount: 7})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if _, ok := store.Payment(rideID); ok {
			break
		}
		select {
		case <-deadline:
			cancel()
			t.Fatal("worker did not apply the queued payment")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
