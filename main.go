package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/KimLeno1/sky1/config"
	"github.com/KimLeno1/sky1/internal/fares"
	"github.com/KimLeno1/sky1/internal/handler"
	"github.com/KimLeno1/sky1/internal/live"
	"github.com/KimLeno1/sky1/internal/middleware"
	"github.com/KimLeno1/sky1/internal/repository"
	"github.com/KimLeno1/sky1/internal/search"
	"github.com/KimLeno1/sky1/internal/service"
	"github.com/KimLeno1/sky1/pkg/database"
	"github.com/KimLeno1/sky1/pkg/rabbitmq"
	"github.com/KimLeno1/sky1/pkg/redisclient"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	sessions := redisclient.New(cfg.RedisAddr, cfg.RedisPassword)
	defer sessions.Close()

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	cardRepo := repository.NewCardRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Fare pipeline: the live gateway with the local generator as fallback.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generator := fares.New(rng)
	var liveSource search.LiveSource
	var hotelSource handler.HotelSource
	if cfg.LiveAPIKey != "" {
		client := live.NewClient(cfg.LiveAPIURL, cfg.LiveAPIKey)
		liveSource = client
		hotelSource = client
	}
	orchestrator := search.New(liveSource, generator)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, checkoutRepo, publisher, rng)
	alertSvc := service.NewAlertService(alertRepo, publisher)
	authSvc := service.NewAuthService(userRepo, sessions)
	adminSvc := service.NewAdminService(cfg.AdminEmail, cfg.AdminPassword, txnRepo, cardRepo, userRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "sky"})
	})

	handler.NewSearchHandler(orchestrator, hotelSource).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc, authSvc).RegisterRoutes(e)
	handler.NewAlertHandler(alertSvc).RegisterRoutes(e)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewAdminHandler(adminSvc).RegisterRoutes(e)

	log.Printf("Sky service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
