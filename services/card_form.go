package services

import (
	"kartvizit.link/models"
	"kartvizit.link/pkg/catalog"
)

// CardForm panel formundan gelen kart alanlarıdır. Tema preset adıyla
// seçilir; renkler katalogdan çözülür.
type CardForm struct {
	Title      string `form:"title" json:"title"`
	Username   string `form:"username" json:"username"`
	Company    string `form:"company" json:"company"`
	Tagline    string `form:"tagline" json:"tagline"`
	Profession string `form:"profession" json:"profession"`
	AvatarURL  string `form:"avatar_url" json:"avatar_url"`

	Phone    string `form:"phone" json:"phone"`
	Whatsapp string `form:"whatsapp" json:"whatsapp"`
	Email    string `form:"email" json:"email"`
	Website  string `form:"website" json:"website"`
	Address  string `form:"address" json:"address"`
	MapLink  string `form:"map_link" json:"map_link"`

	ThemeName string `form:"theme_name" json:"theme_name"`
	Shape     string `form:"shape" json:"shape"`
	Style     string `form:"style" json:"style"`
	Alignment string `form:"alignment" json:"alignment"`
	Font      string `form:"font" json:"font"`

	IsPublished bool `form:"is_published" json:"is_published"`
}

// NewCardForOwner verilen sahip için varsayılanlarla yeni bir yapılandırma
// üretir: ilk tema preset'i, dikdörtgen şekil, modern/ortalı/Inter yerleşim,
// yayınlanmamış, iletişim alanları boş. Kayıt ID'sini kaydetme anında store verir.
func NewCardForOwner(ownerID uint) models.Card {
	return models.Card{
		OwnerID:     ownerID,
		Shape:       "rectangle",
		Theme:       catalog.ThemePresets()[0],
		Layout:      models.DefaultLayout(),
		IsPublished: false,
	}
}

// ApplyCardForm form alanlarını yapılandırmanın bir kopyasına uygular.
// Kullanıcı adı normalize edilir (küçük harf, [a-z0-9-] dışı atılır);
// global benzersizlik burada değil, kayıt anında store tarafından denetlenir.
// Katalogda olmayan şekil/stil/hizalama/font değerleri mevcut değeri korur.
func ApplyCardForm(card models.Card, form CardForm) models.Card {
	card.Title = form.Title
	card.Slug = models.NormalizeSlug(form.Username)
	card.Company = form.Company
	card.Tagline = form.Tagline
	card.Profession = form.Profession
	card.AvatarURL = form.AvatarURL

	card.Phone = form.Phone
	card.Whatsapp = form.Whatsapp
	card.Email = form.Email
	card.Website = form.Website
	card.Address = form.Address
	card.MapLink = form.MapLink

	if form.ThemeName != "" {
		card.Theme = catalog.ThemePresetByName(form.ThemeName)
	}
	if contains(catalog.Shapes(), form.Shape) {
		card.Shape = form.Shape
	}
	if contains(catalog.LayoutStyles(), form.Style) {
		card.Layout.Style = form.Style
	}
	if contains(catalog.Alignments(), form.Alignment) {
		card.Layout.Alignment = form.Alignment
	}
	if contains(catalog.Fonts(), form.Font) {
		card.Layout.Font = form.Font
	}

	card.IsPublished = form.IsPublished
	return card
}

// FormFromCard mevcut yapılandırmayı düzenleme formuna geri çevirir.
func FormFromCard(card models.Card) CardForm {
	return CardForm{
		Title:       card.Title,
		Username:    card.Slug,
		Company:     card.Company,
		Tagline:     card.Tagline,
		Profession:  card.Profession,
		AvatarURL:   card.AvatarURL,
		Phone:       card.Phone,
		Whatsapp:    card.Whatsapp,
		Email:       card.Email,
		Website:     card.Website,
		Address:     card.Address,
		MapLink:     card.MapLink,
		ThemeName:   card.Theme.Name,
		Shape:       card.Shape,
		Style:       card.Layout.Style,
		Alignment:   card.Layout.Alignment,
		Font:        card.Layout.Font,
		IsPublished: card.IsPublished,
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
