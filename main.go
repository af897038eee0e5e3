// File: carenest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"carenest/config"
	"carenest/cron"
	"carenest/handlers"
	"carenest/middleware"
	"carenest/realtime"
	"carenest/routes"
	bookingSvc "carenest/services/booking"
	notificationSvc "carenest/services/notification"
	"carenest/services/refresh"
	"carenest/services/tasks"
	"carenest/upstream"
	"carenest/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitDraftCache()
	utils.FirebaseInit()

	// Core API facade.
	coreClient := upstream.NewClient(config.AppConfig.CoreAPIURL)
	bookingAPI := upstream.NewBookingAPI(coreClient)
	profileAPI := upstream.NewProfileAPI(coreClient)
	notificationAPI := upstream.NewNotificationAPI(coreClient)
	reviewAPI := upstream.NewReviewAPI(coreClient)
	favoriteAPI := upstream.NewFavoriteAPI(coreClient)
	requestAPI := upstream.NewRequestAPI(coreClient)
	adminAPI := upstream.NewAdminAPI(coreClient)
	paymentAPI := upstream.NewPaymentAPI(coreClient)
	verificationAPI := upstream.NewVerificationAPI(coreClient)

	// Reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	reminderScheduler := &tasks.AsynqReminderScheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		Logger: logger,
	}

	// Services.
	enricher := bookingSvc.NewEnricher(profileAPI, utils.GetCacheClient(), logger)
	draftStore := bookingSvc.NewRedisDraftStore(utils.GetDraftCacheClient())
	bookingService := bookingSvc.NewDefaultBookingService(bookingAPI, enricher, draftStore, reminderScheduler, logger)
	notificationService := notificationSvc.NewDefaultNotificationService(notificationAPI, logger)

	// UI push hub and reminder worker.
	hub := realtime.NewHub(logger)
	notifier := &notificationSvc.Notifier{
		Hub:      hub,
		Profiles: enricher,
		Logger:   logger,
	}
	reminderWorker := cron.InitReminderWorker(notifier)

	// Core push channel: listener -> debouncer -> reconciler.
	reconciler := &refresh.Reconciler{
		Bookings: bookingService,
		Feed:     notificationService,
		Hub:      hub,
		Logger:   logger,
	}
	listener := refresh.NewListener(
		config.AppConfig.CoreWSURL,
		refresh.NewDebouncer(500*time.Millisecond, reconciler.Refresh),
		logger,
	)
	listener.Start()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.CSPMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Notification: handlers.NewNotificationHandler(notificationService),
		Review:       handlers.NewReviewHandler(reviewAPI),
		Favorite:     handlers.NewFavoriteHandler(favoriteAPI),
		Request:      handlers.NewRequestHandler(requestAPI),
		Admin:        handlers.NewAdminHandler(adminAPI),
		Payment:      handlers.NewPaymentHandler(paymentAPI),
		Verification: handlers.NewVerificationHandler(verificationAPI),
		Geo:          handlers.NewGeoHandler(),
		WS:           handlers.NewWSHandler(hub),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	listener.Stop()
	hub.Close()
	reminderWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
