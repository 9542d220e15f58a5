package models

// SocialLink bir kartviziteki tek bir sosyal bağlantı satırıdır. Sıralama
// display_order ile korunur; LocalID kaydetmeden önce formda satırı ayırt
// etmek için kullanılır ve veritabanına yazılmaz.
type SocialLink struct {
	BaseModel
	CardID       uint   `gorm:"index;not null"`
	Platform     string `gorm:"type:varchar(50);not null"`
	Username     string `gorm:"type:varchar(100)"`
	URL          string `gorm:"type:varchar(500);not null"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	IsActive     bool   `gorm:"default:true"`

	LocalID string `gorm:"-"` // yalnızca bellek içi; her kayıtta yeniden atanır
}
