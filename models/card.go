package models

import "strings"

// Card bir dijital kartvizitin tam yapılandırmasıdır: kimlik ve iletişim
// alanları, görünüm ayarları ve yayın durumu. Sosyal bağlantılar ayrı
// tabloda tutulur ve display_order'a göre sıralanır.
type Card struct {
	BaseModel
	OwnerID uint `gorm:"index;not null"`

	// Kimlik
	Title      string `gorm:"type:varchar(150);not null"`
	Slug       string `gorm:"column:slug;type:varchar(60);uniqueIndex;not null"` // kullanıcı adı, URL-güvenli
	Company    string `gorm:"type:varchar(150)"`
	Tagline    string `gorm:"column:bio;type:text"`
	Profession string `gorm:"column:position;type:varchar(100)"`
	AvatarURL  string `gorm:"type:varchar(500)"`

	// İletişim
	Phone    string `gorm:"type:varchar(30)"`
	Whatsapp string `gorm:"type:varchar(30)"`
	Email    string `gorm:"type:varchar(100)"`
	Website  string `gorm:"type:varchar(255)"`
	Address  string `gorm:"type:text"`
	MapLink  string `gorm:"type:varchar(500)"`

	// Görünüm
	Shape  string `gorm:"type:varchar(20);default:'rectangle'"`
	Theme  Theme  `gorm:"type:jsonb"`
	Layout Layout `gorm:"type:jsonb"`

	// Yayın
	IsPublished bool `gorm:"default:false;index"`

	// GORM İlişkileri
	SocialLinks []SocialLink `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Owner       Profile      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NormalizeSlug kullanıcı adını URL-güvenli hale getirir: küçük harfe
// çevirir ve [a-z0-9-] dışındaki her karakteri atar.
func NormalizeSlug(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EquivalentTo iki yapılandırmanın önizleme açısından eşdeğer olup
// olmadığını söyler. Theme ve Layout değer olarak karşılaştırılır; kimlik
// ve zaman damgası alanları hesaba katılmaz.
func (c Card) EquivalentTo(other Card) bool {
	return c.Title == other.Title &&
		c.Slug == other.Slug &&
		c.Company == other.Company &&
		c.Tagline == other.Tagline &&
		c.Profession == other.Profession &&
		c.AvatarURL == other.AvatarURL &&
		c.Phone == other.Phone &&
		c.Whatsapp == other.Whatsapp &&
		c.Email == other.Email &&
		c.Website == other.Website &&
		c.Address == other.Address &&
		c.MapLink == other.MapLink &&
		c.Shape == other.Shape &&
		c.Theme == other.Theme &&
		c.Layout == other.Layout &&
		c.IsPublished == other.IsPublished
}
