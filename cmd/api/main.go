package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealerapi/internal/config"
	"dealerapi/internal/database"
	"dealerapi/internal/database/migration"
	handlers "dealerapi/internal/http/handler"
	"dealerapi/internal/http/middleware"
	"dealerapi/internal/otel"
	"dealerapi/internal/repository/postgres"
	"dealerapi/internal/service"
	"dealerapi/pkg/asseturl"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	loc := time.Local

	// Initialize tracing; shutdown flushes pending spans on exit
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// URL resolver rewrites stored proxy-form image URLs to the public host
	resolver := asseturl.Resolver{
		ProxyHost:  cfg.Assets.ProxyHost,
		PublicHost: cfg.Assets.PublicHost,
	}

	// Initialize repositories and services
	vehicleSvc := service.NewVehicleService(postgres.NewVehiclePostgres(db), resolver)
	posterSvc := service.NewPosterService(postgres.NewPosterPostgres(db), resolver)
	testimonialSvc := service.NewTestimonialService(postgres.NewTestimonialPostgres(db))
	lookupSvc := service.NewLookupService(postgres.NewLookupPostgres(db))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, handlers.Services{
		Vehicles:     vehicleSvc,
		Posters:      posterSvc,
		Testimonials: testimonialSvc,
		Lookups:      lookupSvc,
		Inquiries:    service.InquiryLinkBuilder{Phone: cfg.Contact.WhatsAppPhone},
	}, middleware.RequireToken(cfg.Admin.APIToken))

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
