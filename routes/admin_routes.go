package routes

import (
	"ridehail/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := r.Group("/admin")
	{
		admin.POST("/register", adminHandler.Register)
		admin.POST("/handle-complaint", adminHandler.HandleComplaint)
		admin.GET("/driver-list", adminHandler.ListDrivers)
	}
}
