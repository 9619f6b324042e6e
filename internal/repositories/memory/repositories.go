package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, interfaces.ErrNotFound)
}

type CustomerRepository struct{ store *Store }

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	for _, c := range r.store.customers {
		if c.Email == customer.Email || c.Phone == customer.Phone {
			return fmt.Errorf("customer: %w", interfaces.ErrDuplicate)
		}
	}
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	stored := *customer
	r.store.customers = append(r.store.customers, &stored)
	return nil
}

func (r *CustomerRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.Email == email || c.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *CustomerRepository) GetByCredentials(ctx context.Context, email, password string) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.Email == email && c.Password == password {
			found := *c
			return &found, nil
		}
	}
	return nil, notFound("customer")
}

type DriverRepository struct{ store *Store }

func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	for _, d := range r.store.drivers {
		if d.Email == driver.Email || d.LicenseNumber == driver.LicenseNumber {
			return fmt.Errorf("driver: %w", interfaces.ErrDuplicate)
		}
	}
	driver.ID = primitive.NewObjectID()
	// keep creation order strictly increasing for List
	driver.CreatedAt = time.Now().Add(time.Duration(len(r.store.drivers)) * time.Millisecond)
	driver.UpdatedAt = driver.CreatedAt
	stored := *driver
	r.store.drivers = append(r.store.drivers, &stored)
	return nil
}

func (r *DriverRepository) ExistsByEmailOrLicense(ctx context.Context, email, licenseNumber string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range r.store.drivers {
		if d.Email == email || d.LicenseNumber == licenseNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *DriverRepository) GetByCredentials(ctx context.Context, email, password string) (*models.Driver, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range r.store.drivers {
		if d.Email == email && d.Password == password {
			found := *d
			return &found, nil
		}
	}
	return nil, notFound("driver")
}

func (r *DriverRepository) SetVehicle(ctx context.Context, driverID, vehicleID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	for _, d := range r.store.drivers {
		if d.ID == driverID {
			id := vehicleID
			d.VehicleID = &id
			d.UpdatedAt = time.Now()
			return nil
		}
	}
	return notFound("driver")
}

func (r *DriverRepository) UpdateStatus(ctx context.Context, driverID primitive.ObjectID, status models.DriverStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	for _, d := range r.store.drivers {
		if d.ID == driverID {
			d.Status = status
			d.UpdatedAt = time.Now()
			return nil
		}
	}
	return notFound("driver")
}

func (r *DriverRepository) List(ctx context.Context) ([]*models.Driver, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	drivers := make([]*models.Driver, 0, len(r.store.drivers))
	for _, d := range r.store.drivers {
		listed := *d
		listed.Password = ""
		drivers = append(drivers, &listed)
	}
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].CreatedAt.After(drivers[j].CreatedAt)
	})
	return drivers, nil
}

type AdminRepository struct{ store *Store }

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	for _, a := range r.store.admins {
		if a.Username == admin.Username {
			return fmt.Errorf("admin: %w", interfaces.ErrDuplicate)
		}
	}
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = time.Now()
	stored := *admin
	r.store.admins = append(r.store.admins, &stored)
	return nil
}

func (r *AdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.admins {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *AdminRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.admins {
		if a.Username == username && a.Password == password {
			found := *a
			return &found, nil
		}
	}
	return nil, notFound("admin")
}

type VehicleRepository struct{ store *Store }

func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	for _, v := range r.store.vehicles {
		if v.RegistrationNumber == vehicle.RegistrationNumber {
			return fmt.Errorf("vehicle: %w", interfaces.ErrDuplicate)
		}
	}
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	stored := *vehicle
	r.store.vehicles = append(r.store.vehicles, &stored)
	return nil
}

func (r *VehicleRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, v := range r.store.vehicles {
		if v.RegistrationNumber == registrationNumber {
			return true, nil
		}
	}
	return false, nil
}

type RideRepository struct{ store *Store }

func (r *RideRepository) Create(ctx context.Context, ride *models.Ride) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	ride.ID = primitive.NewObjectID()
	ride.RequestedAt = time.Now()
	stored := *ride
	r.store.rides[ride.ID] = &stored
	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ride, ok := r.store.rides[id]
	if !ok {
		return nil, notFound("ride")
	}
	found := *ride
	return &found, nil
}

func (r *RideRepository) Accept(ctx context.Context, id, driverID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	ride, ok := r.store.rides[id]
	if !ok || ride.Status != models.RideStatusRequested || ride.DriverID != nil {
		return notFound("ride")
	}
	now := time.Now()
	assigned := driverID
	ride.DriverID = &assigned
	ride.Status = models.RideStatusAccepted
	ride.AcceptedAt = &now
	return nil
}

func (r *RideRepository) Complete(ctx context.Context, id primitive.ObjectID, fareAmount float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	ride, ok := r.store.rides[id]
	if !ok || ride.Status != models.RideStatusAccepted {
		return notFound("ride")
	}
	now := time.Now()
	ride.Status = models.RideStatusCompleted
	ride.FareAmount = fareAmount
	ride.CompletedAt = &now
	return nil
}

type PaymentRepository struct {
	store *Store
	// FailWith, when set, fails payment writes only.
	FailWith error
}

func (r *PaymentRepository) CreateForRide(ctx context.Context, payment *models.Payment) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.FailWith != nil {
		return false, r.FailWith
	}
	if r.store.Fail != nil {
		return false, r.store.Fail
	}
	if _, exists := r.store.payments[payment.RideID]; exists {
		return false, nil
	}
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	stored := *payment
	r.store.payments[payment.RideID] = &stored
	return true, nil
}

func (r *PaymentRepository) GetByRideID(ctx context.Context, rideID primitive.ObjectID) (*models.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payment, ok := r.store.payments[rideID]
	if !ok {
		return nil, notFound("payment")
	}
	found := *payment
	return &found, nil
}

type ComplaintRepository struct{ store *Store }

func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	complaint.ID = primitive.NewObjectID()
	complaint.CreatedAt = time.Now()
	stored := *complaint
	r.store.complaints[complaint.ID] = &stored
	return nil
}

func (r *ComplaintRepository) Resolve(ctx context.Context, id primitive.ObjectID, resolution *models.ComplaintResolution) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.Fail != nil {
		return r.store.Fail
	}
	complaint, ok := r.store.complaints[id]
	if !ok {
		return notFound("complaint")
	}
	adminID := resolution.AdminID
	handledAt := resolution.HandledAt
	complaint.Status = resolution.Status
	complaint.Notes = resolution.Notes
	complaint.AdminID = &adminID
	complaint.HandledAt = &handledAt
	return nil
}

type AnalyticsRepository struct{ store *Store }

func (r *AnalyticsRepository) ComplaintsByStatus(ctx context.Context, status *models.ComplaintStatus) ([]*models.ComplaintStatusGroup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byStatus := make(map[models.ComplaintStatus]*models.ComplaintStatusGroup)
	for _, c := range r.store.complaints {
		if status != nil && c.Status != *status {
			continue
		}
		group, ok := byStatus[c.Status]
		if !ok {
			group = &models.ComplaintStatusGroup{Status: c.Status}
			byStatus[c.Status] = group
		}
		group.Count++
		group.Complaints = append(group.Complaints, models.ComplaintSummary{
			ID:          c.ID,
			CustomerID:  c.CustomerID,
			Description: c.Description,
			Status:      c.Status,
			HandledAt:   c.HandledAt,
		})
	}

	groups := make([]*models.ComplaintStatusGroup, 0, len(byStatus))
	for _, g := range byStatus {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Status < groups[j].Status })
	return groups, nil
}

var (
	_ interfaces.CustomerRepository  = (*CustomerRepository)(nil)
	_ interfaces.DriverRepository    = (*DriverRepository)(nil)
	_ interfaces.AdminRepository     = (*AdminRepository)(nil)
	_ interfaces.VehicleRepository   = (*VehicleRepository)(nil)
	_ interfaces.RideRepository      = (*RideRepository)(nil)
	_ interfaces.PaymentRepository   = (*PaymentRepository)(nil)
	_ interfaces.ComplaintRepository = (*ComplaintRepository)(nil)
	_ interfaces.AnalyticsRepository = (*AnalyticsRepository)(nil)
)
