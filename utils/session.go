package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")

// SessionStart istek için session'ı açar. Store, router tarafından
// "session_store" locals anahtarına konulmuş olmalıdır.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	switch v := sess.Get("user_id").(type) {
	case uint:
		return v, nil
	case int:
		if v > 0 {
			return uint(v), nil
		}
	case float64:
		if v > 0 {
			return uint(v), nil
		}
	}
	return 0, errors.New("oturumda geçerli kullanıcı ID yok")
}

// GetIsSystemFromSession oturumdaki sistem kullanıcısı bayrağını okur.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	if isSystem, ok := sess.Get("is_system").(bool); ok {
		return isSystem, nil
	}
	return false, errors.New("oturumda is_system bilgisi yok")
}
