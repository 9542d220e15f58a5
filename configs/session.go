package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession uygulama genelinde tek bir session store hazırlar.
// Birden fazla çağrılırsa aynı store döner.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}

	cookieSecure := os.Getenv("APP_ENV") == "production"
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:kartvizit_session",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		CookieSameSite: "Lax",
	})
	return sessionStore
}
