package routes

import (
	"ridehail/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(r *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := r.Group("/customer")
	{
		customers.POST("/register", customerHandler.Register)
		customers.POST("/book", customerHandler.BookRide)
		customers.POST("/complain", customerHandler.SubmitComplaint)
	}
}
