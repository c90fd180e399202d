package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"docrisk/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Clients       service.ClientService
	DocumentTypes service.DocumentTypeService
	Requirements  service.RequirementService
	Uploads       service.UploadService
	Risk          service.RiskService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, validate, call the service, map errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, gatherer prometheus.Gatherer, svc Services) {
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Type("html").SendString(docsHTML)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	if gatherer != nil {
		app.Get("/metrics", Metrics(gatherer))
	}

	app.Get("/document-types", ListDocumentTypes(svc.DocumentTypes))
	app.Post("/document-types", CreateDocumentType(svc.DocumentTypes))
	app.Delete("/document-types/:id", DeleteDocumentType(svc.DocumentTypes))

	app.Get("/clients", ListClients(svc.Clients))
	app.Post("/clients", CreateClient(svc.Clients))
	app.Get("/clients/:id", GetClientReport(svc.Risk))
	app.Delete("/clients/:id", DeleteClient(svc.Clients))

	app.Get("/clients/:id/requirements", ListRequirements(svc.Requirements))
	app.Put("/clients/:id/requirements", SetRequirement(svc.Requirements))
	app.Delete("/clients/:id/requirements/:requirementId", DeleteRequirement(svc.Requirements))

	app.Get("/clients/:id/uploads", ListUploads(svc.Uploads))
	app.Post("/clients/:id/uploads", CreateUpload(svc.Uploads))
	app.Delete("/clients/:id/uploads/:uploadId", DeleteUpload(svc.Uploads))
	app.Get("/clients/:id/uploads/:uploadId/download", DownloadUpload(svc.Uploads))

	app.Get("/dashboard", Dashboard(svc.Risk))
	app.Get("/calendar", Calendar(svc.Risk))
	app.Post("/risk/evaluate", EvaluateRisk(svc.Risk))
}

const docsHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Document Risk API</title>
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
