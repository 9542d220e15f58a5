// Package flashmessages redirect sonrası tek seferlik mesaj ve form verisi
// taşımak için session tabanlı yardımcılar sunar.
package flashmessages

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"kartvizit.link/utils"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// SetFlashMessage verilen anahtarla bir mesajı session'a yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve session'dan siler (tek seferlik).
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	message, _ := sess.Get(key).(string)
	if message != "" {
		sess.Delete(key)
		_ = sess.Save()
	}
	return message
}

// SetFlashFormData hatalı gönderimden sonra formu yeniden doldurabilmek
// için gönderilen veriyi JSON olarak saklar. Kaydedilemeyen girdi kullanıcı
// tarafından tekrar yazılmak zorunda kalmasın diye tutulur.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur, siler ve map olarak döndürür.
// Veri yoksa nil döner.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	encoded, _ := sess.Get(flashFormDataKey).(string)
	if encoded == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(encoded), &data); err != nil {
		return nil
	}
	return data
}
