package handlers

import (
	"net/http"

	"ridehail/internal/services"
	"ridehail/internal/utils"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

type complaintAnalyticsResponse struct {
	Success bool        `json:"success"`
	Count   int64       `json:"count"`
	Data    interface{} `json:"data"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ComplaintStats groups complaints by status; ?status= narrows to one status.
func (h *AnalyticsHandler) ComplaintStats(c *gin.Context) {
	analytics, err := h.analyticsService.ComplaintStats(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.logger.WithRequestID(utils.RequestID(c)).WithError(err).Error("Complaints analytics failed")
		c.JSON(http.StatusInternalServerError, failureResponse{
			Success: false,
			Message: "Failed to get complaints analytics",
		})
		return
	}

	c.JSON(http.StatusOK, complaintAnalyticsResponse{
		Success: true,
		Count:   analytics.Count,
		Data:    analytics.Groups,
	})
}
