// Package memory implements the repository interfaces over process memory.
// Every operation holds the store lock, which gives the same per-document
// atomicity the conditional updates rely on in MongoDB.
package memory

import (
	"sync"

	"ridehail/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu sync.Mutex

	customers  []*models.Customer
	drivers    []*models.Driver
	admins     []*models.Admin
	vehicles   []*models.Vehicle
	rides      map[primitive.ObjectID]*models.Ride
	complaints map[primitive.ObjectID]*models.Complaint
	payments   map[primitive.ObjectID]*models.Payment // keyed by ride id

	// Fail, when set, is returned by every write before it is applied.
	Fail error
}

func NewStore() *Store {
	return &Store{
		rides:      make(map[primitive.ObjectID]*models.Ride),
		complaints: make(map[primitive.ObjectID]*models.Complaint),
		payments:   make(map[primitive.ObjectID]*models.Payment),
	}
}

func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{store: s} }
func (s *Store) Drivers() *DriverRepository     { return &DriverRepository{store: s} }
func (s *Store) Admins() *AdminRepository       { return &AdminRepository{store: s} }
func (s *Store) Vehicles() *VehicleRepository   { return &VehicleRepository{store: s} }
func (s *Store) Rides() *RideRepository         { return &RideRepository{store: s} }
func (s *Store) Payments() *PaymentRepository   { return &PaymentRepository{store: s} }
func (s *Store) Complaints() *ComplaintRepository {
	return &ComplaintRepository{store: s}
}
func (s *Store) Analytics() *AnalyticsRepository { return &AnalyticsRepository{store: s} }

// Snapshot helpers for assertions.

func (s *Store) Ride(id primitive.ObjectID) (models.Ride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ride, ok := s.rides[id]
	if !ok {
		return models.Ride{}, false
	}
	return *ride, true
}

func (s *Store) Payment(rideID primitive.ObjectID) (models.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[rideID]
	if !ok {
		return models.Payment{}, false
	}
	return *payment, true
}

func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *Store) Driver(id primitive.ObjectID) (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.drivers {
		if d.ID == id {
			return *d, true
		}
	}
	return models.Driver{}, false
}

func (s *Store) Complaint(id primitive.ObjectID) (models.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	complaint, ok := s.complaints[id]
	if !ok {
		return models.Complaint{}, false
	}
	return *complaint, true
}

func (s *Store) Counts() (customers, drivers, admins, vehicles int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers), len(s.drivers), len(s.admins), len(s.vehicles)
}

// DeleteRide removes a ride, simulating a document vanishing between two calls.
func (s *Store) DeleteRide(id primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rides, id)
}
