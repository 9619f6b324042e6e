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

type RideService interface {
	Book(ctx context.Context, request *validators.BookRideRequest) (primitive.ObjectID, error)

	// Accept assigns the driver only while the ride is still requested and
	// unassigned. Of two concurrent accepts at most one succeeds.
	Accept(ctx context.Context, request *validators.AcceptRideRequest) error

	// Complete finishes an accepted ride and records its cash payment.
	Complete(ctx context.Context, request *validators.CompleteRideRequest) error
}

type rideService struct {
	rideRepo    interfaces.RideRepository
	paymentRepo interfaces.PaymentRepository
	followUps   FollowUpQueue
	logger      *logger.Logger
}

func NewRideService(
	rideRepo interfaces.RideRepository,
	paymentRepo interfaces.PaymentRepository,
	followUps FollowUpQueue,
	logger *logger.Logger,
) RideService {
	return &rideService{
		rideRepo:    rideRepo,
		paymentRepo: paymentRepo,
		followUps:   followUps,
		logger:      logger,
	}
}

func (s *rideService) Book(ctx context.Context, request *validators.BookRideRequest) (primitive.ObjectID, error) {
	errs := validators.ValidateStruct(request)
	if errs.HasTag("required") {
		return primitive.NilObjectID, BadRequest("Customer ID, pickup location, and destination are required.")
	}
	if len(errs) > 0 {
		return primitive.NilObjectID, BadRequest("Invalid customer ID format.")
	}
	customerID, err := validators.ParseObjectID(request.CustomerID)
	if err != nil {
		return primitive.NilObjectID, BadRequest("Invalid customer ID format.")
	}

	ride := &models.Ride{
		CustomerID:     customerID,
		FareAmount:     0,
		PickupLocation: request.PickupLocation,
		Destination:    request.Destination,
		Status:         models.RideStatusRequested,
	}
	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return primitive.NilObjectID, Internal("Internal Server Error booking ride.", err)
	}

	s.logger.WithContext(ctx).LogRideEvent(ride.ID.Hex(), "requested", map[string]interface{}{
		"customer_id": customerID.Hex(),
	})
	return ride.ID, nil
}

func (s *rideService) Accept(ctx context.Context, request *validators.AcceptRideRequest) error {
	errs := validators.ValidateStruct(request)
	if errs.HasTag("required") {
		return BadRequest("Ride ID and Driver ID are required.")
	}
	if len(errs) > 0 {
		return BadRequest("Invalid ride or driver ID format.")
	}
	rideID, _ := validators.ParseObjectID(request.RideID)
	driverID, _ := validators.ParseObjectID(request.DriverID)

	if err := s.rideRepo.Accept(ctx, rideID, driverID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NotFound("Ride not available for acceptance.")
		}
		return Internal("Internal Server Error accepting ride.", err)
	}

	s.logger.WithContext(ctx).LogRideEvent(rideID.Hex(), "accepted", map[string]interface{}{
		"driver_id": driverID.Hex(),
	})
	return nil
}

func (s *rideService) Complete(ctx context.Context, request *validators.CompleteRideRequest) error {
	const internalMsg = "Internal Server Error completing ride."

	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return BadRequest("Valid Ride ID and fare amount are required.")
	}
	rideID, _ := validators.ParseObjectID(request.RideID)
	fare := *request.FareAmount

	if err := s.rideRepo.Complete(ctx, rideID, fare); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NotFound("Ride not found or not in 'accepted' status.")
		}
		return Internal(internalMsg, err)
	}

	log := s.logger.WithContext(ctx)
	log.LogRideEvent(rideID.Hex(), "completed", map[string]interface{}{"fare_amount": fare})

	// The ride was just updated, so a failed re-read means the store lost it.
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return Internal(internalMsg, err)
	}

	created, err := s.paymentRepo.CreateForRide(ctx, newCashPayment(ride.ID, ride.FareAmount))
	if err != nil {
		job := &models.FollowUp{
			Kind:       models.FollowUpRidePayment,
			RideID:     ride.ID,
			FareAmount: ride.FareAmount,
			EnqueuedAt: time.Now(),
		}
		if qerr := enqueueFollowUp(ctx, s.followUps, job); qerr != nil {
			return Internal(internalMsg, errors.Join(err, qerr))
		}
		log.WithRideID(ride.ID.Hex()).WithError(err).Warn("Payment deferred to follow-up")
		return nil
	}
	if created {
		log.LogPaymentEvent(ride.ID.Hex(), "created", ride.FareAmount, string(models.PaymentMethodCash))
	}
	return nil
}

func newCashPayment(rideID primitive.ObjectID, fare float64) *models.Payment {
	return &models.Payment{
		RideID:     rideID,
		FareAmount: fare,
		Method:     models.PaymentMethodCash,
	}
}
