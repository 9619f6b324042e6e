package handlers

import (
	"ridehail/internal/services"
	"ridehail/internal/utils"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	registrationService services.RegistrationService
	rideService         services.RideService
	driverService       services.DriverService
	logger              *logger.Logger
}

func NewDriverHandler(
	registrationService services.RegistrationService,
	rideService services.RideService,
	driverService services.DriverService,
	logger *logger.Logger,
) *DriverHandler {
	return &DriverHandler{
		registrationService: registrationService,
		rideService:         rideService,
		driverService:       driverService,
		logger:              logger,
	}
}

func (h *DriverHandler) Register(c *gin.Context) {
	var request validators.RegisterDriverRequest
	if !bindJSON(c, &request) {
		return
	}

	id, err := h.registrationService.RegisterDriver(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Driver registered successfully", "driver_id", id.Hex())
}

func (h *DriverHandler) RegisterVehicle(c *gin.Context) {
	var request validators.RegisterVehicleRequest
	if !bindJSON(c, &request) {
		return
	}

	id, err := h.registrationService.RegisterVehicle(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle registered successfully", "vehicle_id", id.Hex())
}

func (h *DriverHandler) AcceptRide(c *gin.Context) {
	var request validators.AcceptRideRequest
	if !bindJSON(c, &request) {
		return
	}

	if err := h.rideService.Accept(c.Request.Context(), &request); err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Ride accepted successfully.")
}

func (h *DriverHandler) CompleteRide(c *gin.Context) {
	var request validators.CompleteRideRequest
	if !bindJSON(c, &request) {
		return
	}

	if err := h.rideService.Complete(c.Request.Context(), &request); err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Ride completed successfully.")
}

func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	var request validators.UpdateDriverStatusRequest
	if !bindJSON(c, &request) {
		return
	}

	if err := h.driverService.UpdateStatus(c.Request.Context(), &request); err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Driver status updated successfully.")
}
