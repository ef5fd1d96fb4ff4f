package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealerapi/internal/config"
	handlers "dealerapi/internal/http/handler"
	"dealerapi/internal/http/middleware"
	"dealerapi/internal/otel"
	"dealerapi/internal/service"
	"dealerapi/internal/storage"
)

// The asset proxy is the public edge in front of the image bucket: POST
// uploads a file and returns its URL, GET streams the object at the
// request path. It carries no database.
func main() {
	cfg := config.Load()

	ctx := context.Background()
	loc := time.Local

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	assetSvc := service.NewAssetService(objStore, nil)

	app := fiber.New(fiber.Config{
		// Image uploads can be large; keep headroom above the browser default
		BodyLimit: 32 * 1024 * 1024,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	// Browser clients upload directly from the admin pages, so every
	// response carries permissive CORS headers.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	// Must be registered before the catch-all asset routes
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterAssetRoutes(app, assetSvc)

	addr := ":" + cfg.ProxyPort

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
