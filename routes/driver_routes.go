package routes

import (
	"ridehail/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupDriverRoutes(r *gin.RouterGroup, driverHandler *handlers.DriverHandler) {
	drivers := r.Group("/driver")
	{
		drivers.POST("/register", driverHandler.Register)
		drivers.POST("/register-vehicle", driverHandler.RegisterVehicle)

		// Ride lifecycle
		drivers.POST("/accept-ride", driverHandler.AcceptRide)
		drivers.POST("/complete-ride", driverHandler.CompleteRide)

		drivers.POST("/update-status", driverHandler.UpdateStatus)
	}
}
