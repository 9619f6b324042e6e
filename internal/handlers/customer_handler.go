package handlers

import (
	"ridehail/internal/services"
	"ridehail/internal/utils"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	registrationService services.RegistrationService
	rideService         services.RideService
	complaintService    services.ComplaintService
	logger              *logger.Logger
}

func NewCustomerHandler(
	registrationService services.RegistrationService,
	rideService services.RideService,
	complaintService services.ComplaintService,
	logger *logger.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		registrationService: registrationService,
		rideService:         rideService,
		complaintService:    complaintService,
		logger:              logger,
	}
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var request validators.RegisterCustomerRequest
	if !bindJSON(c, &request) {
		return
	}

	id, err := h.registrationService.RegisterCustomer(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Customer registered successfully", "cust_id", id.Hex())
}

func (h *CustomerHandler) BookRide(c *gin.Context) {
	var request validators.BookRideRequest
	if !bindJSON(c, &request) {
		return
	}

	id, err := h.rideService.Book(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Ride requested successfully", "ride_id", id.Hex())
}

func (h *CustomerHandler) SubmitComplaint(c *gin.Context) {
	var request validators.SubmitComplaintRequest
	if !bindJSON(c, &request) {
		return
	}

	id, err := h.complaintService.Submit(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Complaint submitted successfully.", "complaint_id", id.Hex())
}
