package routes

import (
	panel_handlers "kartvizit.link/handlers/panel"
	"kartvizit.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
func registerPanelRoutes(app *fiber.App) {
	cardHandler := panel_handlers.NewPanelCardHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	// --- Kullanıcının Kendi Kartvizitleri ---
	panelGroup.Get("/cards", cardHandler.ListCards)                 // GET /panel/cards
	panelGroup.Get("/cards/create", cardHandler.ShowCreateCard)     // GET /panel/cards/create
	panelGroup.Post("/cards/create", cardHandler.CreateCard)        // POST /panel/cards/create
	panelGroup.Get("/cards/update/:id", cardHandler.ShowUpdateCard) // GET /panel/cards/update/{id}
	panelGroup.Post("/cards/update/:id", cardHandler.UpdateCard)    // POST /panel/cards/update/{id}
	panelGroup.Post("/cards/delete/:id", cardHandler.DeleteCard)    // POST /panel/cards/delete/{id} (Formdan silme)
	panelGroup.Delete("/cards/delete/:id", cardHandler.DeleteCard)  // DELETE /panel/cards/delete/{id} (JS/API için)
	panelGroup.Post("/cards/preview", cardHandler.PreviewCard)      // POST /panel/cards/preview (canlı önizleme JSON)
}
