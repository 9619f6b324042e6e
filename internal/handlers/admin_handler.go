package handlers

import (
	"net/http"

	"ridehail/internal/services"
	"ridehail/internal/utils"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	registrationService services.RegistrationService
	complaintService    services.ComplaintService
	driverService       services.DriverService
	logger              *logger.Logger
}

func NewAdminHandler(
	registrationService services.RegistrationService,
	complaintService services.ComplaintService,
	driverService services.DriverService,
	logger *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		registrationService: registrationService,
		complaintService:    complaintService,
		driverService:       driverService,
		logger:              logger,
	}
}

func (h *AdminHandler) Register(c *gin.Context) {
	var request validators.RegisterAdminRequest
	if !bindJSON(c, &request) {
		return
	}

	id, err := h.registrationService.RegisterAdmin(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Admin registered successfully", "admin_id", id.Hex())
}

func (h *AdminHandler) HandleComplaint(c *gin.Context) {
	var request validators.HandleComplaintRequest
	if !bindJSON(c, &request) {
		return
	}

	if err := h.complaintService.Resolve(c.Request.Context(), &request); err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Complaint handled successfully.")
}

// ListDrivers returns every driver, newest first. An empty list is a JSON 404.
func (h *AdminHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.driverService.ListDrivers(c.Request.Context())
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}
	if len(drivers) == 0 {
		c.JSON(http.StatusNotFound, utils.MessageResponse{Message: "No drivers found."})
		return
	}

	c.JSON(http.StatusOK, drivers)
}
