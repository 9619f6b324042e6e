package services

import (
	"context"
	"errors"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegistrationService interface {
	RegisterCustomer(ctx context.Context, request *validators.RegisterCustomerRequest) (primitive.ObjectID, error)
	RegisterDriver(ctx context.Context, request *validators.RegisterDriverRequest) (primitive.ObjectID, error)
	RegisterAdmin(ctx context.Context, request *validators.RegisterAdminRequest) (primitive.ObjectID, error)

	// RegisterVehicle inserts the vehicle and then back-links it onto its
	// driver. A failed back-link is queued as a follow-up.
	RegisterVehicle(ctx context.Context, request *validators.RegisterVehicleRequest) (primitive.ObjectID, error)
}

type registrationService struct {
	customerRepo interfaces.CustomerRepository
	driverRepo   interfaces.DriverRepository
	adminRepo    interfaces.AdminRepository
	vehicleRepo  interfaces.VehicleRepository
	followUps    FollowUpQueue
	logger       *logger.Logger
}

func NewRegistrationService(
	customerRepo interfaces.CustomerRepository,
	driverRepo interfaces.DriverRepository,
	adminRepo interfaces.AdminRepository,
	vehicleRepo interfaces.VehicleRepository,
	followUps FollowUpQueue,
	logger *logger.Logger,
) RegistrationService {
	return &registrationService{
		customerRepo: customerRepo,
		driverRepo:   driverRepo,
		adminRepo:    adminRepo,
		vehicleRepo:  vehicleRepo,
		followUps:    followUps,
		logger:       logger,
	}
}

func (s *registrationService) RegisterCustomer(ctx context.Context, request *validators.RegisterCustomerRequest) (primitive.ObjectID, error) {
	const (
		missing     = "Name, email, password, and phone number are required."
		duplicate   = "Customer with this email or phone number already exists."
		internalMsg = "Internal Server Error registering customer."
	)

	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return primitive.NilObjectID, BadRequest(missing)
	}

	exists, err := s.customerRepo.ExistsByEmailOrPhone(ctx, request.Email, request.Phone)
	if err != nil {
		return primitive.NilObjectID, Internal(internalMsg, err)
	}
	if exists {
		return primitive.NilObjectID, Conflict(duplicate)
	}

	customer := &models.Customer{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Phone:    request.Phone,
		Status:   models.CustomerStatusActive,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return primitive.NilObjectID, createError(err, duplicate, internalMsg)
	}

	s.logger.WithContext(ctx).WithField("customer_id", customer.ID.Hex()).Info("Customer registered")
	return customer.ID, nil
}

func (s *registrationService) RegisterDriver(ctx context.Context, request *validators.RegisterDriverRequest) (primitive.ObjectID, error) {
	const (
		missing     = "Name, email, password, and license number are required."
		duplicate   = "Driver with this email or license number already exists."
		internalMsg = "Internal Server Error registering driver."
	)

	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return primitive.NilObjectID, BadRequest(missing)
	}

	exists, err := s.driverRepo.ExistsByEmailOrLicense(ctx, request.Email, request.LicenseNumber)
	if err != nil {
		return primitive.NilObjectID, Internal(internalMsg, err)
	}
	if exists {
		return primitive.NilObjectID, Conflict(duplicate)
	}

	driver := &models.Driver{
		Name:          request.Name,
		Email:         request.Email,
		Password:      request.Password,
		LicenseNumber: request.LicenseNumber,
		Status:        models.DriverStatusUnavailable,
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return primitive.NilObjectID, createError(err, duplicate, internalMsg)
	}

	s.logger.WithContext(ctx).WithField("driver_id", driver.ID.Hex()).Info("Driver registered")
	return driver.ID, nil
}

func (s *registrationService) RegisterAdmin(ctx context.Context, request *validators.RegisterAdminRequest) (primitive.ObjectID, error) {
	const (
		missing     = "Username, password, and permissions are required."
		duplicate   = "Admin with this username already exists."
		internalMsg = "Internal Server Error registering admin."
	)

	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return primitive.NilObjectID, BadRequest(missing)
	}

	exists, err := s.adminRepo.ExistsByUsername(ctx, request.Username)
	if err != nil {
		return primitive.NilObjectID, Internal(internalMsg, err)
	}
	if exists {
		return primitive.NilObjectID, Conflict(duplicate)
	}

	admin := &models.Admin{
		Username:    request.Username,
		Password:    request.Password,
		Permissions: request.Permissions,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return primitive.NilObjectID, createError(err, duplicate, internalMsg)
	}

	s.logger.WithContext(ctx).WithField("admin_id", admin.ID.Hex()).Info("Admin registered")
	return admin.ID, nil
}

func (s *registrationService) RegisterVehicle(ctx context.Context, request *validators.RegisterVehicleRequest) (primitive.ObjectID, error) {
	const (
		missing     = "Driver ID, registration number, and model are required."
		duplicate   = "Vehicle with this registration number is already registered."
		internalMsg = "Internal Server Error registering vehicle."
	)

	errs := validators.ValidateStruct(request)
	if errs.HasTag("required") {
		return primitive.NilObjectID, BadRequest(missing)
	}
	if len(errs) > 0 {
		return primitive.NilObjectID, BadRequest("Invalid driver ID format.")
	}
	driverID, err := validators.ParseObjectID(request.DriverID)
	if err != nil {
		return primitive.NilObjectID, BadRequest("Invalid driver ID format.")
	}

	exists, err := s.vehicleRepo.ExistsByRegistrationNumber(ctx, request.RegistrationNumber)
	if err != nil {
		return primitive.NilObjectID, Internal(internalMsg, err)
	}
	if exists {
		return primitive.NilObjectID, Conflict(duplicate)
	}

	vehicle := &models.Vehicle{
		DriverID:           driverID,
		RegistrationNumber: request.RegistrationNumber,
		Model:              request.Model,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return primitive.NilObjectID, createError(err, duplicate, internalMsg)
	}

	log := s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"vehicle_id": vehicle.ID.Hex(),
		"driver_id":  driverID.Hex(),
	})

	err = s.driverRepo.SetVehicle(ctx, driverID, vehicle.ID)
	switch {
	case err == nil:
		log.Info("Vehicle registered")
	case errors.Is(err, interfaces.ErrNotFound):
		log.Warn("Vehicle registered for unknown driver; nothing to link")
	default:
		job := &models.FollowUp{
			Kind:       models.FollowUpVehicleBackLink,
			VehicleID:  vehicle.ID,
			DriverID:   driverID,
			EnqueuedAt: time.Now(),
		}
		if qerr := enqueueFollowUp(ctx, s.followUps, job); qerr != nil {
			return primitive.NilObjectID, Internal(internalMsg, errors.Join(err, qerr))
		}
		log.WithError(err).Warn("Vehicle back-link deferred to follow-up")
	}

	return vehicle.ID, nil
}

// createError maps an insert failure. A duplicate key means a concurrent
// registration won the race past the existence check.
func createError(err error, duplicate, internalMsg string) error {
	if errors.Is(err, interfaces.ErrDuplicate) {
		return Conflict(duplicate)
	}
	return Internal(internalMsg, err)
}
