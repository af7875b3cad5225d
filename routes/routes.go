package routes

import (
	"net/http"
	"time"

	userRepo "fixitnow/database/repository/user"
	"fixitnow/handlers"
	"fixitnow/middleware"
	"fixitnow/models"
	"fixitnow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route tree needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *handlers.AuthHandler
	Booking  *handlers.BookingHandler
	Provider *handlers.ProviderHandler
	Admin    *handlers.AdminHandler
}

// RegisterRoutes wires the full route tree.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterProviderRoutes registers provider profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.Use(middleware.RequireRole(models.RoleProvider))
	{
		api.GET("/profile", hb.Provider.GetProfileHandler)
		api.PUT("/profile", hb.Provider.UpdateProfileHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Booking.CreateBookingHandler)
		api.GET("/my", hb.Booking.ListMyBookingsHandler)
		api.GET("/assignable", middleware.RequireRole(models.RoleProvider), hb.Booking.ListAssignableBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/:id/decision", middleware.RequireRole(models.RoleProvider), hb.Booking.DecideBookingHandler)
	}
}

// RegisterAdminRoutes registers the read-only admin surface.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.Use(middleware.RequireRole(models.RoleAdmin))
	{
		api.GET("/stats", hb.Admin.GetStatsHandler)
		api.GET("/users", hb.Admin.ListAllUsersHandler)
		api.GET("/bookings", hb.Admin.ListAllBookingsHandler)
	}
}
