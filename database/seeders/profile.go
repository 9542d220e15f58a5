package seeders

import (
	"errors"
	"os"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemProfile sistem profilini oluşturur veya parolasını günceller.
// Parola SYSTEM_PROFILE_PASSWORD ortam değişkeninden okunur.
func SeedSystemProfile(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_PROFILE_EMAIL")
	if email == "" {
		email = "system@kartvizit.link"
	}
	password := os.Getenv("SYSTEM_PROFILE_PASSWORD")
	if password == "" {
		generated, genErr := utils.GenerateSecureRandomString(16)
		if genErr != nil {
			configslog.Log.Error("Rastgele parola üretilemedi", zap.Error(genErr))
			return genErr
		}
		password = generated
		configslog.SLog.Warnf("SYSTEM_PROFILE_PASSWORD tanımlı değil, üretilen parola: %s", password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem profili parolası hashlenemedi", zap.Error(err))
		return err
	}

	var existing models.Profile
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		existing.PasswordHash = string(hash)
		existing.IsSystem = true
		existing.Role = models.RoleSystem
		if err := db.Save(&existing).Error; err != nil {
			configslog.Log.Error("Sistem profili güncellenemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem profili güncellendi: %s (ID: %d)", email, existing.ID)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem profili kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	profile := models.Profile{
		Name:         "Sistem",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSystem,
		IsSystem:     true,
	}
	if err := db.Create(&profile).Error; err != nil {
		configslog.Log.Error("Sistem profili oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem profili oluşturuldu: %s (ID: %d)", email, profile.ID)
	return nil
}
