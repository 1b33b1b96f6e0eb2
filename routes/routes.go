package routes

import (
	"net/http"
	"time"

	"carpool/handlers"
	"carpool/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS applies the CORS policy for browser clients.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)
	}
}

// RegisterGroupRoutes registers group and schedule-template endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateGroupHandler)
		api.GET("/:id", hb.GetGroupHandler)
		api.POST("/:id/members", hb.AddGroupMemberHandler)
		api.PUT("/:id/schedule-config", hb.SetScheduleConfigHandler)
		api.GET("/:id/schedule-config", hb.GetScheduleConfigHandler)
		api.GET("/:id/slots", hb.ListGroupSlotsHandler)
	}
}

// RegisterVehicleRoutes registers family-vehicle endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateVehicleHandler)
		api.GET("", hb.ListMyVehiclesHandler)
	}
}

// RegisterScheduleRoutes registers the trip-slot endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateSlotHandler)
		api.GET("/:id", hb.GetSlotHandler)
		api.GET("/:id/integrity", hb.SlotIntegrityHandler)
		api.POST("/:id/vehicles", hb.AssignVehicleHandler)
		api.PUT("/:id/driver", hb.AssignDriverHandler)
		api.POST("/:id/children", hb.AssignChildHandler)
		api.PUT("/:id/seat-override", hb.OverrideSeatsHandler)
		api.DELETE("/:id/vehicles/:vehicleId", hb.RemoveVehicleHandler)
		api.DELETE("/:id/children/:childId", hb.RemoveChildHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "carpool scheduler up"})
	})
}
