package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kokolodziejska/zagrane/internal/config"
	"github.com/kokolodziejska/zagrane/internal/database"
	"github.com/kokolodziejska/zagrane/internal/middleware"
	"github.com/kokolodziejska/zagrane/internal/modules/auth"
	"github.com/kokolodziejska/zagrane/internal/modules/budget"
	"github.com/kokolodziejska/zagrane/internal/modules/export"
	"github.com/kokolodziejska/zagrane/internal/modules/facility"
	"github.com/kokolodziejska/zagrane/internal/modules/pricing"
	"github.com/kokolodziejska/zagrane/internal/modules/reservation"
	"github.com/kokolodziejska/zagrane/internal/modules/settings"
	jwtsvc "github.com/kokolodziejska/zagrane/internal/pkg/jwt"
	"github.com/kokolodziejska/zagrane/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	priceDocs, err := config.LoadPriceTableDocs(cfg.PriceDocsPath)
	if err != nil {
		logrus.WithError(err).Warn("price table documents not loaded, /prices/tables will be empty")
	}

	clientRepo := repository.NewClientRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(clientRepo, j)
	authHandler := auth.NewHandler(authService, cfg.CookieName, cfg.CookieSecure, cfg.JWTAccessTTL)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	facilityService := facility.NewService(facilityRepo, settingsRepo, reservationRepo)
	facilityHandler := facility.NewHandler(facilityService)

	pricingService := pricing.NewService(priceRepo, facilityRepo, priceDocs)
	pricingHandler := pricing.NewHandler(pricingService)

	reservationService := reservation.NewService(reservationRepo, pricingService, settingsRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	budgetService := budget.NewService(budgetRepo)
	budgetHandler := budget.NewHandler(budgetService)

	exportService := export.NewService(budgetService, budgetRepo)
	exportHandler := export.NewHandler(exportService)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		settingsHandler.RegisterPublicRoutes(v1)
		facilityHandler.RegisterPublicRoutes(v1)
		pricingHandler.RegisterPublicRoutes(v1)
		reservationHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j, cfg.CookieName))
		{
			authHandler.RegisterProtectedRoutes(protected)
			settingsHandler.RegisterProtectedRoutes(protected)
			facilityHandler.RegisterProtectedRoutes(protected)
			pricingHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterProtectedRoutes(protected)
			budgetHandler.RegisterProtectedRoutes(protected)
			exportHandler.RegisterProtectedRoutes(protected)
		}
	}

	logrus.WithField("addr", cfg.Addr).Info("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
