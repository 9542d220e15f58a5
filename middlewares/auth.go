package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"kartvizit.link/pkg/flashmessages"
)

// AuthMiddleware oturumdan çözülmüş kullanıcı ID'sini zorunlu kılar.
// Oturum yönetiminin kendisi dış bileşendir; burada yalnızca locals'a
// konulmuş kimlik kontrol edilir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfa için oturum açmanız gerekiyor.")
		return c.Redirect("/", fiber.StatusTemporaryRedirect)
	}
	return c.Next()
}
