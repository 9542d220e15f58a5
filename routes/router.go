package routes

import (
	"kartvizit.link/configs"
	"kartvizit.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Static("/assets", "./assets")
	app.Use(initializeSessionAndLocals())

	registerPanelRoutes(app)

	// Kök URL: oturum varsa panele, yoksa tanıtım sayfasına.
	app.Get("/", rootRedirector)

	// Public kart rotaları en sonda gelmeli; /:slug her şeyi yakalar.
	registerPublicRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturumdan çözülen temel
// kimlik bilgilerini locals'a koyar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if isSystem, sysErr := utils.GetIsSystemFromSession(sess); sysErr == nil {
			c.Locals("isSystem", isSystem)
		}
		if userName, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/cards", fiber.StatusFound)
	}
	return c.Render("public/landing", fiber.Map{"Title": "kartvizit.link"}, "layouts/public_layout")
}

func notFoundHandler(c *fiber.Ctx) error {
	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
}
