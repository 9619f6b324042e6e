package services

import (
	"context"
	"errors"
	"strings"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"
)

type DriverService interface {
	// UpdateStatus sets the driver's status unconditionally. It is not tied
	// to the driver's rides.
	UpdateStatus(ctx context.Context, request *validators.UpdateDriverStatusRequest) error
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
}

type driverService struct {
	driverRepo interfaces.DriverRepository
	logger     *logger.Logger
}

func NewDriverService(driverRepo interfaces.DriverRepository, logger *logger.Logger) DriverService {
	return &driverService{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

func (s *driverService) UpdateStatus(ctx context.Context, request *validators.UpdateDriverStatusRequest) error {
	errs := validators.ValidateStruct(request)
	if errs.HasTag("driver_status") {
		names := make([]string, len(models.DriverStatuses))
		for i, status := range models.DriverStatuses {
			names[i] = string(status)
		}
		return BadRequest("Invalid status. Must be one of: " + strings.Join(names, ", "))
	}
	if len(errs) > 0 {
		return BadRequest("Valid Driver ID is required.")
	}
	driverID, _ := validators.ParseObjectID(request.DriverID)
	status := models.DriverStatus(request.Status)

	if err := s.driverRepo.UpdateStatus(ctx, driverID, status); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NotFound("Driver not found.")
		}
		return Internal("Internal Server Error updating status.", err)
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"driver_id": driverID.Hex(),
		"status":    status,
	}).Info("Driver status updated")
	return nil
}

func (s *driverService) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, Internal("Internal Server Error retrieving driver list.", err)
	}
	return drivers, nil
}
