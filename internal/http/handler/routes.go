package handler

import (
	"github.com/gofiber/fiber/v2"

	"pdfmeta/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic; both front ends delegate
// to the injected Extractor.
func RegisterRoutes(app *fiber.App, svc service.Extractor) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
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

	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	// HTML viewer front end
	app.Get("/", ViewerPage())
	app.Post("/", ViewerSubmit(svc))

	// Stateless JSON front end. Registered for all methods: the handler
	// itself answers OPTIONS pre-flights and rejects anything but POST with
	// the endpoint's own error shape.
	app.All("/api/extract", Extract(svc))
}
