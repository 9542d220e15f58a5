package models

// Profile kartvizit sahibinin kimlik kaydıdır (auth dışarıda çözülür,
// burada yalnızca sahiplik için tutulur).
type Profile struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100)"`
	AvatarURL    string `gorm:"type:varchar(500)"`
	Role         string `gorm:"type:varchar(20);default:'user';index"`
	IsSystem     bool   `gorm:"default:false"`
}

const (
	RoleUser   = "user"
	RoleSystem = "system"
)
