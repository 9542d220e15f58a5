package routes

import (
	public_handlers "kartvizit.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes yayınlanmış kartların public rotalarını tanımlar.
// /:slug rotası diğer tüm rotalardan sonra gelmelidir.
func registerPublicRoutes(app *fiber.App) {
	publicHandler := public_handlers.NewPublicCardHandler()

	app.Get("/c/:id", publicHandler.ShowByID)   // GET /c/{id}
	app.Get("/:slug", publicHandler.ShowBySlug) // GET /{slug}
}
