package database

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/database/migrations"
	"kartvizit.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Profile migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateProfilesTable(db); err != nil {
		configslog.Log.Error("Profiles tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Card migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardsTable(db); err != nil {
		configslog.Log.Error("Cards tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Social link migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateSocialLinksTable(db); err != nil {
		configslog.Log.Error("Social links tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Sistem profili kontrol ediliyor...")
	if err := seeders.SeedSystemProfile(db); err != nil {
		configslog.Log.Error("Sistem profili seed işlemi başarısız", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
