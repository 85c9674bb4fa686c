package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/cache"
	"github.com/barberhub/barberhub-api/internal/config"
	"github.com/barberhub/barberhub-api/internal/handlers"
	"github.com/barberhub/barberhub-api/internal/infra/repository"
	"github.com/barberhub/barberhub-api/internal/mailer"
	"github.com/barberhub/barberhub-api/internal/middleware"
	"github.com/barberhub/barberhub-api/internal/payments"
	"github.com/barberhub/barberhub-api/internal/rating"
	"github.com/barberhub/barberhub-api/internal/storage"
	ucBooking "github.com/barberhub/barberhub-api/internal/usecase/booking"
	ucReview "github.com/barberhub/barberhub-api/internal/usecase/review"
)

// RegisterRoutes wires every dependency and mounts the API surface.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) error {
	// Infrastructure. All optional pieces degrade to nil-safe no-ops when
	// their config is absent.
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	directory := cache.NewDirectory(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	aggregator := rating.New(db)

	var notifier ucBooking.Notifier = ucBooking.NoopNotifier
	if mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom); mail != nil {
		notifier = mail
	}

	payClient, err := payments.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		return err
	}

	var store storage.Store
	if cfg.S3Bucket != "" {
		store = storage.NewS3Store(cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey)
	} else {
		store = storage.NewLocalStore(cfg.UploadDir, cfg.BaseURL)
	}

	bookingRepo := repository.NewBookingGormRepository(db)
	reviewRepo := repository.NewReviewGormRepository(db)

	// Use cases.
	createBooking := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, notifier, cfg.StrictBookingConflict)
	listBookings := ucBooking.NewListUserBookings(bookingRepo)
	getBooking := ucBooking.NewGetBooking(bookingRepo)
	updateStatus := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher, notifier)
	reschedule := ucBooking.NewReschedule(bookingRepo, auditDispatcher)
	cancelBooking := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, notifier)

	createReview := ucReview.NewCreateReview(reviewRepo, aggregator, directory, auditDispatcher)
	updateReview := ucReview.NewUpdateReview(reviewRepo, aggregator, directory)
	deleteReview := ucReview.NewDeleteReview(reviewRepo, aggregator, directory, auditDispatcher)
	listReviews := ucReview.NewListBarberReviews(reviewRepo)

	// Handlers.
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db, directory, store, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	bookingHandler := handlers.NewBookingHandler(createBooking, listBookings, getBooking, updateStatus, reschedule, cancelBooking)
	reviewHandler := handlers.NewReviewHandler(createReview, updateReview, deleteReview, listReviews)
	paymentHandler := handlers.NewPaymentHandler(db, payClient)
	adminHandler := handlers.NewAdminHandler(db, aggregator, directory, auditDispatcher)

	auth := middleware.AuthMiddleware(cfg)
	api := r.Group("/api")

	// Public.
	api.POST("/auth/register/client", authHandler.RegisterClient)
	api.POST("/auth/register/barber", authHandler.RegisterBarber)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/barbers", barberHandler.List)
	api.GET("/barbers/:id", barberHandler.Get)
	api.GET("/reviews/:barberId", reviewHandler.ListForBarber)

	// Provider callback, authenticated by the provider's reference, not a JWT.
	api.POST("/payments/confirm", paymentHandler.Confirm)

	// Barber self-management.
	api.POST("/barbers/profile", auth, barberHandler.SaveProfile)
	me := api.Group("/barbers/me", auth)
	{
		me.GET("/services", serviceHandler.List)
		me.POST("/services", serviceHandler.Create)
		me.PUT("/services/:id", serviceHandler.Update)
		me.DELETE("/services/:id", serviceHandler.Delete)
		me.GET("/availability", availabilityHandler.Get)
		me.PUT("/availability", availabilityHandler.Update)
	}

	// Bookings.
	bookings := api.Group("/bookings", auth)
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/me", bookingHandler.ListMine)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.PUT("/:id/status", bookingHandler.UpdateStatus)
		bookings.PUT("/:id/reschedule", bookingHandler.Reschedule)
		bookings.DELETE("/:id", bookingHandler.Cancel)
	}

	// Reviews.
	reviews := api.Group("/reviews", auth)
	{
		reviews.POST("", reviewHandler.Create)
		reviews.PUT("/:id", reviewHandler.Update)
		reviews.DELETE("/:id", reviewHandler.Delete)
	}

	// Payments.
	api.POST("/payments/intent", auth, paymentHandler.CreateIntent)

	// Back office.
	admin := api.Group("/admin", auth)
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id", adminHandler.GetUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/barbershops", adminHandler.ListBarbershops)
		admin.PUT("/barbershops/:id/status", adminHandler.UpdateBarbershopStatus)
		admin.GET("/bookings", adminHandler.ListBookings)
		admin.DELETE("/reviews/:id", adminHandler.DeleteReview)
		admin.GET("/audit-logs", adminHandler.ListAuditLogs)
	}

	return nil
}
