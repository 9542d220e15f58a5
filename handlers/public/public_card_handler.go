package handlers // handlers/public paketi

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/composer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MediaProvider public sayfada gösterilecek medya ve değerlendirmeleri
// dışarıdan sağlar. Çekirdek bu koleksiyonları üretmez; sağlayıcı yoksa
// bölümler boş kalır.
type MediaProvider func(cardID uint) ([]models.MediaItem, []models.Review)

// PublicCardHandler yayınlanmış kartların public görünümünü yönetir.
type PublicCardHandler struct {
	service  services.ICardService
	provider MediaProvider
}

// NewPublicCardHandler yeni bir PublicCardHandler örneği oluşturur.
func NewPublicCardHandler() *PublicCardHandler {
	return &PublicCardHandler{service: services.NewCardService()}
}

// WithMediaProvider medya/değerlendirme sağlayıcısını bağlar.
func (h *PublicCardHandler) WithMediaProvider(p MediaProvider) *PublicCardHandler {
	h.provider = p
	return h
}

// ShowBySlug /{slug} isteğini karşılar: yalnızca yayınlanmış kartlar
// çözülür, tam görünüm render edilir.
func (h *PublicCardHandler) ShowBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	card, err := h.service.GetPublishedCardBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("Public ShowBySlug error", zap.String("slug", slug), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}
	return h.renderCard(c, card)
}

// ShowByID /c/{id} isteğini karşılar.
func (h *PublicCardHandler) ShowByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.renderNotFound(c, "Geçersiz Bağlantı")
	}
	card, err := h.service.GetPublishedCardByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("Public ShowByID error", zap.Int("id", id), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}
	return h.renderCard(c, card)
}

// renderCard tam görünüm ağacını üretip şablona verir. Public okuma yolu
// yalnızca kart satırı, bağlantı satırları ve varsa dış koleksiyonlarla
// çalışır; oturum gerekmez.
func (h *PublicCardHandler) renderCard(c *fiber.Ctx, card *models.Card) error {
	var media []models.MediaItem
	var reviews []models.Review
	if h.provider != nil {
		media, reviews = h.provider(card.ID)
	}

	tree := composer.Compose(*card, card.SocialLinks, media, reviews, composer.ModeFull)
	return c.Render("public/card_view", fiber.Map{
		"Title": card.Title,
		"Tree":  tree,
	}, "layouts/public_layout")
}

// renderNotFound standart 404 sayfasını render eder.
func (h *PublicCardHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, "layouts/error_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *PublicCardHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/error_layout")
}
