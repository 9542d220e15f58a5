package repositories

import (
	"context"
	"errors"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IProfileRepository profil (kart sahibi) veritabanı işlemleri için arayüz.
type IProfileRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
}

// ProfileRepository IProfileRepository arayüzünü uygular. Ortak işlemler
// BaseRepository üzerinden yürür.
type ProfileRepository struct {
	base *BaseRepository[models.Profile]
	db   *gorm.DB
}

// NewProfileRepository yeni bir ProfileRepository örneği oluşturur.
func NewProfileRepository() IProfileRepository {
	return NewProfileRepositoryTx(configsdatabase.GetDB())
}

// NewProfileRepositoryTx transaction üzerinde çalışan bir örnek döndürür.
func NewProfileRepositoryTx(tx *gorm.DB) IProfileRepository {
	return &ProfileRepository{base: NewBaseRepository[models.Profile](tx), db: tx}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uint) (*models.Profile, error) {
	profile, err := r.base.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		configslog.Log.Error("ProfileRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return profile, err
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("ProfileRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.base.Create(ctx, profile)
}

var _ IProfileRepository = (*ProfileRepository)(nil)
