package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carenest/handlers"
	"carenest/middleware"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Notification *handlers.NotificationHandler
	Review       *handlers.ReviewHandler
	Favorite     *handlers.FavoriteHandler
	Request      *handlers.RequestHandler
	Admin        *handlers.AdminHandler
	Payment      *handlers.PaymentHandler
	Verification *handlers.VerificationHandler
	Geo          *handlers.GeoHandler
	WS           *handlers.WSHandler
}

// RegisterBookingRoutes sets up the booking flow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.POST("/draft", hb.Booking.OpenDraft)
		api.PUT("/draft/:draftID", hb.Booking.UpdateDraft)
		api.POST("", hb.Booking.SubmitBooking)
		api.GET("", hb.Booking.ListBookings)
		api.POST("/:id/:action", hb.Booking.TransitionBooking)
	}

	dashboard := r.Group("/api/dashboard")
	{
		dashboard.Use(middleware.UserAuthMiddleware())
		dashboard.GET("", hb.Booking.Dashboard)
	}
}

// RegisterNotificationRoutes sets up the feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.GET("", hb.Notification.Feed)
		api.POST("/:id/read", hb.Notification.MarkRead)
		api.POST("/read-all", hb.Notification.MarkAllRead)
	}
}

// RegisterReviewRoutes sets up review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/nanny/:nannyID", hb.Review.ListReviews)

		api.Use(middleware.UserAuthMiddleware())
		api.POST("", hb.Review.CreateReview)
		api.DELETE("/:id", hb.Review.DeleteReview)
	}
}

// RegisterFavoriteRoutes sets up the favorites toggle endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.GET("", hb.Favorite.ListFavorites)
		api.GET("/:nannyID", hb.Favorite.CheckFavorite)
		api.PUT("/:nannyID", hb.Favorite.AddFavorite)
		api.DELETE("/:nannyID", hb.Favorite.RemoveFavorite)
	}
}

// RegisterRequestRoutes sets up the pre-booking request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.Use(middleware.UserAuthMiddleware())
		api.POST("", hb.Request.CreateRequest)
		api.GET("/mine", hb.Request.ListMyRequests)
		api.GET("/open", hb.Request.ListOpenRequests)
		api.POST("/:id/close", hb.Request.CloseRequest)
	}
}

// RegisterAdminRoutes sets up moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.UserAuthMiddleware(), middleware.AdminAuthMiddleware())
		api.GET("/users", hb.Admin.ListUsers)
		api.GET("/caregivers", hb.Admin.ListCaregivers)
		api.POST("/users/:id/suspend", hb.Admin.SuspendUser)
		api.POST("/caregivers/:id/verify", hb.Admin.VerifyCaregiver)
	}
}

// RegisterPaymentRoutes sets up payment and verification endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	payments := r.Group("/api/payments")
	{
		payments.Use(middleware.UserAuthMiddleware())
		payments.POST("/order", hb.Payment.CreateOrder)
	}

	verification := r.Group("/api/verification")
	{
		verification.Use(middleware.UserAuthMiddleware())
		verification.POST("/upload", hb.Verification.InitUpload)
		verification.GET("/status", hb.Verification.Status)
	}
}

// RegisterGeoRoutes sets up geocoding endpoints.
func RegisterGeoRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.GET("/geocode", hb.Geo.GeocodeAddress)
		api.GET("/reverse", hb.Geo.ReverseGeocode)
	}
}

// RegisterWSRoute sets up the UI push channel.
func RegisterWSRoute(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/ws", middleware.UserAuthMiddleware(), hb.WS.Connect)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Carenest"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterWSRoute(r, hb)
	RegisterHealthRoute(r)
}
