package handler

import (
	"database/sql"
	_ "embed"

	"github.com/gofiber/fiber/v2"

	"dealerapi/internal/http/middleware"
	"dealerapi/internal/service"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Services bundles everything the back-office API serves.
type Services struct {
	Vehicles     service.VehicleService
	Posters      service.PosterService
	Testimonials service.TestimonialService
	Lookups      service.LookupService
	Inquiries    service.InquiryLinkBuilder
}

// RegisterRoutes attaches the back-office API routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, gate fiber.Handler) {
	// Serve the OpenAPI document and Swagger UI. The document is embedded so
	// the route works regardless of the process working directory.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.Send(openapiSpec)
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health: checks DB connectivity; healthz is a bare liveness probe
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Public reads
	app.Get("/vehicles", ListVehicles(svcs.Vehicles))
	app.Get("/vehicles/:id", GetVehicle(svcs.Vehicles))
	app.Get("/vehicles/:id/inquiry-link", VehicleInquiryLink(svcs.Vehicles, svcs.Inquiries))
	app.Get("/posters", ListPosters(svcs.Posters))
	app.Get("/posters/:id", GetPoster(svcs.Posters))
	app.Get("/testimonials", ListTestimonials(svcs.Testimonials))
	app.Get("/testimonials/:id", GetTestimonial(svcs.Testimonials))
	app.Get("/lookups", ListLookups(svcs.Lookups))

	// Admin writes sit behind the logged-in gate
	if gate == nil {
		gate = middleware.Noop()
	}
	app.Post("/vehicles", gate, CreateVehicle(svcs.Vehicles))
	app.Put("/vehicles/:id", gate, UpdateVehicle(svcs.Vehicles))
	app.Delete("/vehicles/:id", gate, DeleteVehicle(svcs.Vehicles))

	app.Post("/posters", gate, CreatePoster(svcs.Posters))
	app.Put("/posters/:id", gate, UpdatePoster(svcs.Posters))
	app.Delete("/posters/:id", gate, DeletePoster(svcs.Posters))

	app.Post("/testimonials", gate, CreateTestimonial(svcs.Testimonials))
	app.Put("/testimonials/:id", gate, UpdateTestimonial(svcs.Testimonials))
	app.Delete("/testimonials/:id", gate, DeleteTestimonial(svcs.Testimonials))

	app.Post("/lookups", gate, CreateLookup(svcs.Lookups))
	app.Delete("/lookups/:id", gate, DeleteLookup(svcs.Lookups))
}

// RegisterAssetRoutes attaches the edge-proxy routes: any POST is an upload,
// any GET maps the path to an object key, everything else is 405. OPTIONS
// preflights are answered by the CORS middleware before routing.
func RegisterAssetRoutes(app *fiber.App, assetSvc service.AssetService) {
	app.Post("/*", UploadAsset(assetSvc))
	app.Get("/*", ServeAsset(assetSvc))
	app.Use(MethodNotAllowed())
}
