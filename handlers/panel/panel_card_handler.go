package handlers // handlers/panel paketi

import (
	"errors"
	"fmt"
	"net/http"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/catalog"
	"kartvizit.link/pkg/composer"
	"kartvizit.link/pkg/flashmessages"
	"kartvizit.link/pkg/linkset"
	"kartvizit.link/pkg/queryparams"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelCardHandler kullanıcının kendi kartvizitleri için handler.
type PanelCardHandler struct {
	service services.ICardService
}

// NewPanelCardHandler yeni bir PanelCardHandler örneği oluşturur.
func NewPanelCardHandler() *PanelCardHandler {
	return &PanelCardHandler{service: services.NewCardService()}
}

// catalogData form şablonlarının ihtiyaç duyduğu katalog listelerini toplar.
func catalogData() fiber.Map {
	return fiber.Map{
		"ThemePresets": catalog.ThemePresets(),
		"Shapes":       catalog.Shapes(),
		"Styles":       catalog.LayoutStyles(),
		"Alignments":   catalog.Alignments(),
		"Fonts":        catalog.Fonts(),
		"Professions":  catalog.ProfessionCategories(),
		"Platforms":    catalog.SocialPlatforms(),
	}
}

// ListCards kullanıcının kendi kartvizitlerini listeler.
func (h *PanelCardHandler) ListCards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/")
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListCards: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetCardsForOwnerPaginated(c.UserContext(), userID, params)

	renderData := fiber.Map{
		"Title":  "Kartvizitlerim",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kartvizitler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListCards Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/cards/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateCard yeni kartvizit oluşturma formunu gösterir.
func (h *PanelCardHandler) ShowCreateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/")
	}

	card := services.NewCardForOwner(userID)
	data := catalogData()
	data["Title"] = "Yeni Kartvizit"
	data["Form"] = services.FormFromCard(card)
	data["Links"] = []models.SocialLink{}
	data["FormData"] = flashmessages.GetFlashFormData(c)
	data["Preview"] = composer.Compose(card, nil, nil, nil, composer.ModeCompact)
	return renderer.Render(c, "panel/cards/form", "layouts/panel_layout", data)
}

// CreateCard yeni kartvizit oluşturur: form uygulanır, bağlantı satırları
// toplanır, doğrulama geçerse kayıt protokolü çalışır.
func (h *PanelCardHandler) CreateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/")
	}

	var form services.CardForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	card := services.ApplyCardForm(services.NewCardForOwner(userID), form)
	links := parseLinkRows(c)

	if err := services.ValidateCardForSave(card); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	if err := h.service.SaveCard(c.UserContext(), userID, &card, links); err != nil {
		configslog.Log.Error("Panel - CreateCard Error", zap.Uint("ownerID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla oluşturuldu.")
	return c.Redirect("/panel/cards", fiber.StatusFound)
}

// ShowUpdateCard kartvizit düzenleme formunu gösterir.
func (h *PanelCardHandler) ShowUpdateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)

	card, err := h.service.GetCardByID(c.UserContext(), cardID, userID)
	if err != nil {
		errMsg := "Kartvizit bulunamadı veya bu kartviziti düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			errMsg = "Kartvizit bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/cards")
	}

	data := catalogData()
	data["Title"] = "Kartviziti Düzenle"
	data["Card"] = card
	data["Form"] = services.FormFromCard(*card)
	data["Links"] = card.SocialLinks
	data["FormData"] = flashmessages.GetFlashFormData(c)
	data["Preview"] = composer.Compose(*card, card.SocialLinks, nil, nil, composer.ModeCompact)
	return renderer.Render(c, "panel/cards/form", "layouts/panel_layout", data)
}

// UpdateCard kartvizit bilgilerini günceller.
func (h *PanelCardHandler) UpdateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)
	redirectPathOnError := fmt.Sprintf("/panel/cards/update/%d", cardID)

	var form services.CardForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	existing, err := h.service.GetCardByID(c.UserContext(), cardID, userID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kartvizit bulunamadı veya yetkiniz yok.")
		return c.Redirect("/panel/cards")
	}

	card := services.ApplyCardForm(*existing, form)
	links := parseLinkRows(c)

	if err := services.ValidateCardForSave(card); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.service.SaveCard(c.UserContext(), userID, &card, links); err != nil {
		if errors.Is(err, services.ErrCardNotFound) || errors.Is(err, services.ErrCardForbidden) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
			return c.Redirect("/panel/cards")
		}
		configslog.Log.Error("Panel - UpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusFound)
}

// DeleteCard kartviziti siler.
func (h *PanelCardHandler) DeleteCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	cardID := uint(id)

	if err := h.service.DeleteCard(c.UserContext(), cardID, userID); err != nil {
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			configslog.Log.Error("Panel - DeleteCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla silindi.")
	}
	return c.Redirect("/panel/cards", fiber.StatusSeeOther)
}

// PreviewCard formun o anki halinden compact önizleme ağacını üretip JSON
// döndürür. Hiçbir şey kaydedilmez; aynı girdi her zaman aynı ağacı verir.
func (h *PanelCardHandler) PreviewCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var form services.CardForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz form verisi"})
	}

	card := services.ApplyCardForm(services.NewCardForOwner(userID), form)
	links := parseLinkRows(c)
	tree := composer.Compose(card, links, nil, nil, composer.ModeCompact)

	return c.JSON(fiber.Map{
		"tree":     tree,
		"can_save": services.ValidateCardForSave(card) == nil,
	})
}

// parseLinkRows formdaki tekrarlı bağlantı satırlarını (link_platform,
// link_username, link_url) sıralı koleksiyona çevirir. Boş URL'li satırlar
// linkset.Add tarafından sessizce elenir.
func parseLinkRows(c *fiber.Ctx) []models.SocialLink {
	args := c.Request().PostArgs()
	platforms := args.PeekMulti("link_platform")
	usernames := args.PeekMulti("link_username")
	urls := args.PeekMulti("link_url")

	var links []models.SocialLink
	for i, rawURL := range urls {
		candidate := models.SocialLink{URL: string(rawURL)}
		if i < len(platforms) {
			candidate.Platform = string(platforms[i])
		}
		if i < len(usernames) {
			candidate.Username = string(usernames[i])
		}
		links = linkset.Add(links, candidate)
	}
	return links
}
