package migrations

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSocialLinksTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating social_links table...")
	err := db.AutoMigrate(&models.SocialLink{})
	if err != nil {
		configslog.Log.Error("Failed to migrate social_links table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Social links table migrated successfully")
	return nil
}
