package handlers

import (
	"net/http"

	"ridehail/internal/models"
	"ridehail/internal/services"
	"ridehail/internal/utils"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type LoginResponse struct {
	Message     string             `json:"message"`
	UserID      primitive.ObjectID `json:"userId"`
	Role        models.Role        `json:"role"`
	UserDetails interface{}        `json:"userDetails"`
}

// Login resolves the caller against customers, drivers and admins in turn.
func (h *AuthHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if !bindJSON(c, &request) {
		return
	}

	principal, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:     "Login successful",
		UserID:      principal.ID(),
		Role:        principal.Role,
		UserDetails: principal.Details(),
	})
}
