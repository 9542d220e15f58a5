package repositories

import (
	"context"
	"errors"
	"strings"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Card, error)
	FindBySlug(ctx context.Context, slug string) (*models.Card, error)
	FindAllByOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	SaveWithLinks(ctx context.Context, card *models.Card, links []models.SocialLink) error
	Delete(ctx context.Context, id uint) error
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	base *BaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	return NewCardRepositoryTx(configsdatabase.GetDB())
}

// NewCardRepositoryTx transaction üzerinde çalışan bir örnek döndürür.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "updated_at", "title", "slug", "is_published"})
	return &CardRepository{base: base, db: tx}
}

// withLinks sosyal bağlantıları görüntüleme sırasına göre preload eder.
func (r *CardRepository) withLinks(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	})
}

// FindByID kartviziti bağlantılarıyla birlikte getirir.
func (r *CardRepository) FindByID(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.withLinks(ctx).First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindBySlug kartviziti slug ile getirir (public okuma yolu).
func (r *CardRepository) FindBySlug(ctx context.Context, slug string) (*models.Card, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.withLinks(ctx).Where("slug = ?", slug).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindAllByOwnerPaginated sahibe ait kartvizitleri sayfalayarak listeler.
func (r *CardRepository) FindAllByOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	if ownerID == 0 {
		return nil, 0, errors.New("geçersiz sahip ID")
	}
	var results []models.Card
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Card{}).Where("owner_id = ?", ownerID)

	if params.Name != "" {
		search := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(company) LIKE ? OR slug LIKE ?", search, search, search)
	}
	if params.Status == "published" {
		query = query.Where("is_published = ?", true)
	} else if params.Status == "draft" {
		query = query.Where("is_published = ?", false)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	sortBy := params.SortBy
	if !r.base.SortColumnAllowed(sortBy) {
		sortBy = "created_at"
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}
	query = query.Order(sortBy + " " + orderBy)

	query = query.Limit(params.PerPage).Offset(params.CalculateOffset())
	query = query.Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	})

	err := query.Find(&results).Error
	return results, totalCount, err
}

// CountByOwner sahibe ait kartvizit sayısını döndürür.
func (r *CardRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	if ownerID == 0 {
		return 0, errors.New("geçersiz sahip ID")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// SaveWithLinks kaydetme protokolünü tek transaction içinde uygular: önce
// kart satırı upsert edilir, sonra bağlantı koleksiyonu tamamen değiştirilir
// (hepsini sil, hepsini ekle). Bu sayede kaydetme idempotenttir; bağlantı
// satırları her kayıtta yeni kimlik alır.
func (r *CardRepository) SaveWithLinks(ctx context.Context, card *models.Card, links []models.SocialLink) error {
	if card == nil {
		return errors.New("kaydedilecek kartvizit nil olamaz")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Kart satırı: yeni kayıtsa insert, değilse kilitli güncelleme.
		if card.ID == 0 {
			if err := tx.Omit("SocialLinks", "Owner").Create(card).Error; err != nil {
				return err
			}
		} else {
			var existing models.Card
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, card.ID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if err := tx.Omit("SocialLinks", "Owner").Save(card).Error; err != nil {
				return err
			}
		}

		// 2. Bağlantıları tamamen değiştir. Satırlar kalıcı olarak silinir;
		// soft delete kalıntısı birikmesin.
		if err := tx.Unscoped().Where("card_id = ?", card.ID).Delete(&models.SocialLink{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			card.SocialLinks = nil
			return nil
		}
		rows := make([]models.SocialLink, len(links))
		for i, link := range links {
			link.BaseModel = models.BaseModel{}
			link.CardID = card.ID
			link.DisplayOrder = i
			rows[i] = link
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		card.SocialLinks = rows
		return nil
	})
}

// Delete kartviziti siler; bağlantılar aynı transaction içinde kaldırılır.
func (r *CardRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("card_id = ?", id).Delete(&models.SocialLink{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Card{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ ICardRepository = (*CardRepository)(nil)
