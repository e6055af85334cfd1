package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studydesk/docs"
	"studydesk/internal/service"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Health    Pinger
	Documents service.DocumentService
	Views     service.ViewService
	// Gatherer backs /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Health))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	app.Get("/", Landing(d.Documents))
	app.Get("/past-documents", ListDocuments(d.Documents))

	app.Post("/uploads", StartUpload(d.Documents))
	app.Get("/uploads/:jobId", GetUpload(d.Documents))

	app.Get("/document/:id", GetDocument(d.Documents))
	app.Get("/document/:id/notebook", GetNotebook(d.Views))
	app.Get("/document/:id/resources", GetResources(d.Views))
	app.Get("/document/:id/mindmap", GetMindMap(d.Views))
	app.Post("/document/:id/chat", OpenChat(d.Views))

	app.Get("/chat/:sessionId", GetChat(d.Views))
	app.Post("/chat/:sessionId/messages", SendChatMessage(d.Views))
	app.Delete("/chat/:sessionId", CloseChat(d.Views))
}
