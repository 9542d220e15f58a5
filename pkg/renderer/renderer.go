// Package renderer view render çağrılarını tek noktada toplar: flash
// mesajlarını ve oturum bilgilerini şablon verisine ekler.
package renderer

import (
	"github.com/gofiber/fiber/v2"

	"kartvizit.link/pkg/flashmessages"
)

// Şablonlarda kullanılan veri anahtarları.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// Render view'ı verilen layout ile render eder. Session'daki flash
// mesajları şablon verisine taşınır; handler'ın koyduğu değerler ezilmez.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data[FlashSuccessKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, ok := data[FlashErrorKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["UserName"] = userName
	}

	if len(status) > 0 {
		c.Status(status[0])
	}
	return c.Render(view, data, layout)
}
