// Package composer kart yapılandırmasını iki görünüm için tek bir render
// ağacına çevirir. Paket durumsuzdur, I/O yapmaz; panel önizlemesi ve
// public sayfa aynı fonksiyonu farklı modla çağırır.
package composer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"kartvizit.link/models"
	"kartvizit.link/pkg/catalog"
)

const (
	compactSocialLimit = 4
	fullMediaLimit     = 6
	fullReviewLimit    = 3
)

// Compose kart, sosyal bağlantılar ve opsiyonel medya/değerlendirme
// koleksiyonlarından istenen modun ağacını üretir. media ve reviews yalnızca
// full modda dikkate alınır.
func Compose(card models.Card, links []models.SocialLink, media []models.MediaItem, reviews []models.Review, mode Mode) Tree {
	tree := Tree{
		Mode:      mode,
		Published: card.IsPublished,
		Container: resolveContainer(card, mode),
		Avatar:    resolveAvatar(card),
		Identity:  identityLines(card),
		Contacts:  contactRows(card),
	}

	active := activeLinks(links)
	switch mode {
	case ModeFull:
		tree.SocialRows = socialRows(active)
		tree.Media, tree.MediaOverflow = mediaTiles(media)
		tree.Reviews, tree.ReviewOverflow = reviewBlocks(reviews)
	default:
		tree.SocialBadges, tree.SocialOverflow = socialBadges(active, card.Theme)
	}
	return tree
}

// resolveContainer şekil, hizalama ve stil kurallarını çözer. Full mod
// yapılandırmadan bağımsız olarak büyük köşe yarıçapı ve gölgeli+çerçeveli
// stili kullanır.
func resolveContainer(card models.Card, mode Mode) Container {
	c := Container{
		Background: card.Theme.Background,
		TextColor:  card.Theme.Text,
		FontFamily: card.Layout.Font,
	}

	// Hizalama: çapraz eksen ve metin hizası birlikte değişir.
	switch card.Layout.Alignment {
	case "left":
		c.Align, c.TextAlign = "flex-start", "left"
	case "right":
		c.Align, c.TextAlign = "flex-end", "right"
	default:
		c.Align, c.TextAlign = "center", "center"
	}

	if mode == ModeFull {
		c.Corner = "large"
		c.Elevated = true
		c.Bordered = true
		return c
	}

	switch card.Shape {
	case "rounded":
		c.Corner = "large"
	case "circle":
		c.Corner = "round"
		c.ForceSquareAspect = true
	case "hexagon":
		// Gerçek altıgen çizilmez; büyük yarıçaplı köşe ile yaklaşılır.
		c.Corner = "large"
	default:
		c.Corner = "square"
	}

	switch card.Layout.Style {
	case "classic":
		c.Bordered = true
	case "minimal":
		c.ThinBorder = true
	case "creative":
		c.Elevated = true
		c.Rotated = true
	default: // modern
		c.Elevated = true
		c.Bordered = true
	}
	return c
}

// resolveAvatar görsel varsa onu, yoksa başlığın ilk harfinden rozet üretir.
// Başlık da boşsa genel yer tutucu simge gösterilir.
func resolveAvatar(card models.Card) Avatar {
	a := Avatar{
		Background:  card.Theme.Primary,
		BorderColor: card.Theme.Secondary,
	}
	if card.AvatarURL != "" {
		a.ImageURL = card.AvatarURL
		return a
	}
	title := strings.TrimSpace(card.Title)
	if title == "" {
		a.Placeholder = true
		return a
	}
	r, _ := utf8.DecodeRuneInString(title)
	a.Initial = string(unicode.ToUpper(r))
	return a
}

// identityLines boş olmayan kimlik alanlarını sırayla döndürür.
func identityLines(card models.Card) []TextLine {
	lines := make([]TextLine, 0, 4)
	if !blank(card.Title) {
		lines = append(lines, TextLine{Kind: "title", Text: card.Title, Color: card.Theme.Text})
	}
	if !blank(card.Profession) {
		lines = append(lines, TextLine{Kind: "profession", Text: card.Profession, Color: card.Theme.Secondary})
	}
	if !blank(card.Company) {
		lines = append(lines, TextLine{Kind: "company", Text: card.Company, Color: card.Theme.Text})
	}
	if !blank(card.Tagline) {
		lines = append(lines, TextLine{Kind: "tagline", Text: card.Tagline, Color: card.Theme.Text})
	}
	return lines
}

// contactRows boş olmayan iletişim alanlarını satırlara çevirir. Boş alan
// hiçbir zaman boş yer tutucu olarak ağaca girmez.
func contactRows(card models.Card) []ContactRow {
	rows := make([]ContactRow, 0, 6)
	if !blank(card.Email) {
		rows = append(rows, ContactRow{Kind: "email", Icon: "mail", Label: card.Email, Href: "mailto:" + card.Email})
	}
	if !blank(card.Phone) {
		rows = append(rows, ContactRow{Kind: "phone", Icon: "phone", Label: card.Phone, Href: "tel:" + card.Phone})
	}
	if !blank(card.Whatsapp) {
		rows = append(rows, ContactRow{Kind: "whatsapp", Icon: "message-circle", Label: card.Whatsapp, Href: WhatsappTarget(card.Whatsapp)})
	}
	if !blank(card.Website) {
		rows = append(rows, ContactRow{Kind: "website", Icon: "globe", Label: card.Website, Href: card.Website})
	}
	if !blank(card.Address) {
		rows = append(rows, ContactRow{Kind: "address", Icon: "map-pin", Label: card.Address})
	}
	if !blank(card.MapLink) {
		rows = append(rows, ContactRow{Kind: "map", Icon: "map", Label: "Haritada Gör", Href: card.MapLink})
	}
	return rows
}

// WhatsappTarget kayıtlı numaradan rakam dışı tüm karakterleri atarak
// wa.me hedefi üretir.
func WhatsappTarget(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}

// activeLinks pasif satırları eleyip kalanları görüntüleme sırasına göre
// döndürür. Girdi dilimi zaten sıralı gelir; burada yalnızca filtre yapılır.
func activeLinks(links []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(links))
	for _, l := range links {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out
}

// socialBadges compact mod için ilk 4 bağlantıyı rozetlere çevirir;
// kalanlar "+N" sayacı olarak döner.
func socialBadges(links []models.SocialLink, theme models.Theme) ([]Badge, int) {
	shown := links
	overflow := 0
	if len(links) > compactSocialLimit {
		shown = links[:compactSocialLimit]
		overflow = len(links) - compactSocialLimit
	}
	badges := make([]Badge, 0, len(shown))
	for _, l := range shown {
		badges = append(badges, Badge{Icon: catalog.IconFor(l.Platform), Background: theme.Primary})
	}
	return badges, overflow
}

// socialRows full mod için tüm bağlantıları tıklanabilir satırlara çevirir.
// Href ham kayıtlı URL'dir; platform URL'i kısıtlamaz.
func socialRows(links []models.SocialLink) []LinkRow {
	rows := make([]LinkRow, 0, len(links))
	for _, l := range links {
		rows = append(rows, LinkRow{
			Platform: l.Platform,
			Icon:     catalog.IconFor(l.Platform),
			Username: l.Username,
			Href:     l.URL,
		})
	}
	return rows
}

// mediaTiles ilk 6 medya öğesini döndürür; fazlası sayaç olur.
func mediaTiles(media []models.MediaItem) ([]MediaTile, int) {
	shown := media
	overflow := 0
	if len(media) > fullMediaLimit {
		shown = media[:fullMediaLimit]
		overflow = len(media) - fullMediaLimit
	}
	tiles := make([]MediaTile, 0, len(shown))
	for _, m := range shown {
		tiles = append(tiles, MediaTile{
			Type:        m.Type,
			URL:         m.URL,
			Title:       m.Title,
			Description: m.Description,
			Thumbnail:   m.Thumbnail,
		})
	}
	return tiles, overflow
}

// reviewBlocks ilk 3 değerlendirmeyi döndürür; puan 1-5 aralığına
// sıkıştırılıp 5 ayrık yıldıza çevrilir.
func reviewBlocks(reviews []models.Review) ([]ReviewBlock, int) {
	shown := reviews
	overflow := 0
	if len(reviews) > fullReviewLimit {
		shown = reviews[:fullReviewLimit]
		overflow = len(reviews) - fullReviewLimit
	}
	blocks := make([]ReviewBlock, 0, len(shown))
	for _, r := range shown {
		rating := r.Rating
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		var stars [5]bool
		for i := 0; i < rating; i++ {
			stars[i] = true
		}
		blocks = append(blocks, ReviewBlock{
			Reviewer: r.Reviewer,
			Comment:  r.Comment,
			Stars:    stars,
			When:     r.CreatedAt,
		})
	}
	return blocks, overflow
}

// blank alanın görünür içerik taşımadığını söyler.
func blank(s string) bool { return strings.TrimSpace(s) == "" }
