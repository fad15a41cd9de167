package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/clinicdesk/clinic-api/pkg/logger"

	"github.com/clinicdesk/clinic-api/internal/config"
	"github.com/clinicdesk/clinic-api/internal/handler"
	catalogHandler "github.com/clinicdesk/clinic-api/internal/handler/catalog"
	patientHandler "github.com/clinicdesk/clinic-api/internal/handler/patient"
	photoHandler "github.com/clinicdesk/clinic-api/internal/handler/photo"
	portfolioHandler "github.com/clinicdesk/clinic-api/internal/handler/portfolio"
	searchHandler "github.com/clinicdesk/clinic-api/internal/handler/search"
	visitHandler "github.com/clinicdesk/clinic-api/internal/handler/visit"
	"github.com/clinicdesk/clinic-api/internal/middleware"
	"github.com/clinicdesk/clinic-api/internal/repository/postgres"
	"github.com/clinicdesk/clinic-api/internal/router"
	casesearchService "github.com/clinicdesk/clinic-api/internal/service/casesearch"
	catalogService "github.com/clinicdesk/clinic-api/internal/service/catalog"
	patientService "github.com/clinicdesk/clinic-api/internal/service/patient"
	photocompareService "github.com/clinicdesk/clinic-api/internal/service/photocompare"
	portfolioService "github.com/clinicdesk/clinic-api/internal/service/portfolio"
	visitService "github.com/clinicdesk/clinic-api/internal/service/visit"
)

func main() {
	appLog := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		appLog.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLog.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	visitRepo := postgres.NewVisitRepository(db)
	treatmentRepo := postgres.NewTreatmentRepository(db)
	consentRepo := postgres.NewConsentRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	portfolioRepo := postgres.NewPortfolioRepository(db)
	caseSearchRepo := postgres.NewCaseSearchRepository(db, cfg.Search.ResultLimit)

	// Services
	patientSvc := patientService.NewService(patientRepo, consentRepo)
	visitSvc := visitService.NewService(visitRepo, treatmentRepo, photoRepo)
	catalogSvc := catalogService.NewService(catalogRepo, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	portfolioSvc := portfolioService.NewService(portfolioRepo, patientRepo, visitRepo, photoRepo)
	caseSearchSvc := casesearchService.NewService(caseSearchRepo)
	photoCompareSvc := photocompareService.NewService(photoRepo)

	// Handlers
	baseHandler := handler.NewHandler(db)
	handlers := []router.Handler{
		patientHandler.NewHandler(patientSvc),
		visitHandler.NewHandler(visitSvc),
		catalogHandler.NewHandler(catalogSvc),
		portfolioHandler.NewHandler(portfolioSvc),
		searchHandler.NewHandler(caseSearchSvc),
		photoHandler.NewHandler(photoCompareSvc),
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}

	r := router.NewRouter(router.RouterConfig{
		RateLimit:     rate.Limit(cfg.Rate.RPS),
		RateBurst:     cfg.Rate.Burst,
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig:    corsConfig,
		MetricsPrefix: "clinic_api",
	}, baseHandler, handlers...)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLog.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal(err, "server forced to shutdown")
	}

	appLog.Info("server exited properly")
}
