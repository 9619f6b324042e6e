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

type ComplaintService interface {
	Submit(ctx context.Context, request *validators.SubmitComplaintRequest) (primitive.ObjectID, error)
	Resolve(ctx context.Context, request *validators.HandleComplaintRequest) error
}

type complaintService struct {
	complaintRepo interfaces.ComplaintRepository
	logger        *logger.Logger
}

func NewComplaintService(complaintRepo interfaces.ComplaintRepository, logger *logger.Logger) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (s *complaintService) Submit(ctx context.Context, request *validators.SubmitComplaintRequest) (primitive.ObjectID, error) {
	errs := validators.ValidateStruct(request)
	switch {
	case errs.HasTag("required"):
		return primitive.NilObjectID, BadRequest("Customer ID, Ride ID, description, and status are required.")
	case errs.HasTag("complaint_status"):
		return primitive.NilObjectID, BadRequest("Invalid complaint status. Must be one of: " +
			models.JoinComplaintStatuses(models.ComplaintStatuses))
	case len(errs) > 0:
		return primitive.NilObjectID, BadRequest("Invalid customer or ride ID format.")
	}
	customerID, _ := validators.ParseObjectID(request.CustomerID)
	rideID, _ := validators.ParseObjectID(request.RideID)

	complaint := &models.Complaint{
		CustomerID:  customerID,
		RideID:      rideID,
		Description: request.Description,
		Status:      models.ComplaintStatus(request.Status),
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return primitive.NilObjectID, Internal("Internal Server Error submitting complaint.", err)
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"complaint_id": complaint.ID.Hex(),
		"ride_id":      rideID.Hex(),
	}).Info("Complaint submitted")
	return complaint.ID, nil
}

func (s *complaintService) Resolve(ctx context.Context, request *validators.HandleComplaintRequest) error {
	errs := validators.ValidateStruct(request)
	switch {
	case errs.HasTag("required"):
		return BadRequest("Complaint ID, status, and Admin ID are required.")
	case errs.HasTag("resolution_status"):
		return BadRequest("Invalid status. Must be one of: " +
			models.JoinComplaintStatuses(models.ComplaintResolutionStatuses))
	case len(errs) > 0:
		return BadRequest("Invalid complaint or admin ID format.")
	}
	complaintID, _ := validators.ParseObjectID(request.ComplaintID)
	adminID, _ := validators.ParseObjectID(request.AdminID)

	resolution := &models.ComplaintResolution{
		Status:    models.ComplaintStatus(request.Status),
		Notes:     request.Notes,
		AdminID:   adminID,
		HandledAt: time.Now(),
	}
	if err := s.complaintRepo.Resolve(ctx, complaintID, resolution); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NotFound("Complaint not found.")
		}
		return Internal("Internal Server Error handling complaint.", err)
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"complaint_id": complaintID.Hex(),
		"admin_id":     adminID.Hex(),
		"status":       resolution.Status,
	}).Info("Complaint handled")
	return nil
}
