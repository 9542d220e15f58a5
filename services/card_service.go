package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/queryparams"
	"kartvizit.link/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "kartvizit bulunamadı"
	ErrCardForbidden      CardServiceError = "bu işlem için yetkiniz yok"
	ErrCardTitleRequired  CardServiceError = "başlık (isim) zorunludur"
	ErrCardSlugRequired   CardServiceError = "kullanıcı adı zorunludur"
	ErrCardSlugTaken      CardServiceError = "bu kullanıcı adı zaten kullanımda"
	ErrCardSaveFailed     CardServiceError = "kartvizit kaydedilemedi, lütfen tekrar deneyin"
	ErrCardLoadFailed     CardServiceError = "kartvizit yüklenemedi, lütfen tekrar deneyin"
	ErrCardDeletionFailed CardServiceError = "kartvizit silinemedi"
	ErrCardInvalidInput   CardServiceError = "geçersiz girdi verisi"
)

var validate = validator.New()

// saveRequirements kayıt anında zorunlu alanları tanımlar. Başlık ve
// normalize edilmiş kullanıcı adı boşsa kaydetme hiç başlatılmaz; çağıran
// taraf bu kontrolü kaydet düğmesini kapatmak için de kullanır.
type saveRequirements struct {
	Title string `validate:"required"`
	Slug  string `validate:"required"`
}

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error)
	GetCardsForOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetPublishedCardBySlug(ctx context.Context, slug string) (*models.Card, error)
	GetPublishedCardByID(ctx context.Context, id uint) (*models.Card, error)
	SaveCard(ctx context.Context, actorID uint, card *models.Card, links []models.SocialLink) error
	DeleteCard(ctx context.Context, id uint, actorID uint) error
	GetCardCountForOwner(ctx context.Context, ownerID uint) (int64, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo        repositories.ICardRepository
	profileRepo repositories.IProfileRepository
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		repo:        repositories.NewCardRepository(),
		profileRepo: repositories.NewProfileRepository(),
	}
}

// ValidateCardForSave kaydetmeden önce zorunlu alanları denetler.
func ValidateCardForSave(card models.Card) error {
	err := validate.Struct(saveRequirements{Title: strings.TrimSpace(card.Title), Slug: card.Slug})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Title" {
				return ErrCardTitleRequired
			}
		}
		return ErrCardSlugRequired
	}
	return fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
}

// contextWithUserID işlemi yapan kullanıcıyı BaseModel hook'ları için
// context'e ekler.
func contextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, models.ContextUserIDKey, userID)
}

// GetCardByID kartviziti sahiplik kontrolü ile getirir (panel tarafı).
func (s *CardService) GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByID: repo error", zap.Uint("id", id), zap.Error(err))
		return nil, ErrCardLoadFailed
	}

	requestingUser, userErr := s.profileRepo.FindByID(ctx, requestingUserID)
	if userErr != nil {
		configslog.Log.Warn("GetCardByID: istek sahibi profil bulunamadı", zap.Uint("userID", requestingUserID), zap.Error(userErr))
		return nil, ErrCardForbidden
	}
	if !requestingUser.IsSystem && card.OwnerID != requestingUserID {
		configslog.Log.Warn("Yetkisiz kartvizit erişim denemesi",
			zap.Uint("cardID", id), zap.Uint("userID", requestingUserID), zap.Uint("ownerID", card.OwnerID))
		return nil, ErrCardForbidden
	}
	return card, nil
}

// GetCardsForOwnerPaginated sahibe ait kartvizitleri sayfalayarak getirir.
func (s *CardService) GetCardsForOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("%w: geçersiz sahip ID", ErrCardInvalidInput)
	}
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	cards, totalCount, err := s.repo.FindAllByOwnerPaginated(ctx, ownerID, params)
	if err != nil {
		configslog.Log.Error("Sahibin kartvizitleri alınırken hata", zap.Uint("ownerID", ownerID), zap.Error(err))
		return nil, ErrCardLoadFailed
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetPublishedCardBySlug public kart sayfası için slug ile okur.
// Yayınlanmamış kartlar dışarıdan görünmez; ayrım yapılmadan "bulunamadı"
// döner.
func (s *CardService) GetPublishedCardBySlug(ctx context.Context, slug string) (*models.Card, error) {
	if slug == "" {
		return nil, ErrCardNotFound
	}
	card, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetPublishedCardBySlug: repo error", zap.String("slug", slug), zap.Error(err))
		return nil, ErrCardLoadFailed
	}
	if !card.IsPublished {
		configslog.SLog.Infof("Yayınlanmamış karta public erişim denemesi: %s", slug)
		return nil, ErrCardNotFound
	}
	return card, nil
}

// GetPublishedCardByID public kart sayfası için ID ile okur (/c/{id}).
func (s *CardService) GetPublishedCardByID(ctx context.Context, id uint) (*models.Card, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetPublishedCardByID: repo error", zap.Uint("id", id), zap.Error(err))
		return nil, ErrCardLoadFailed
	}
	if !card.IsPublished {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// SaveCard bellek içi durumu senkron okuyup store'a yazar: kart satırı
// upsert edilir, bağlantı koleksiyonu tamamen değiştirilir. Hata durumunda
// çağıranın elindeki yapılandırma değişmeden kalır; kullanıcı veriyi
// yeniden girmeden tekrar deneyebilir.
func (s *CardService) SaveCard(ctx context.Context, actorID uint, card *models.Card, links []models.SocialLink) error {
	if card == nil || actorID == 0 {
		return fmt.Errorf("%w: kart veya kullanıcı eksik", ErrCardInvalidInput)
	}
	if card.OwnerID == 0 {
		card.OwnerID = actorID
	}
	if card.OwnerID != actorID {
		actor, err := s.profileRepo.FindByID(ctx, actorID)
		if err != nil || !actor.IsSystem {
			return ErrCardForbidden
		}
	}
	if err := ValidateCardForSave(*card); err != nil {
		return err
	}

	// Kopya üzerinde çalışılır; başarısız kayıt çağıranın durumunu bozmaz.
	working := *card
	working.SocialLinks = nil

	txCtx := contextWithUserID(ctx, actorID)
	if err := s.repo.SaveWithLinks(txCtx, &working, links); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			configslog.SLog.Warnf("Slug çakışması: %s", working.Slug)
			return ErrCardSlugTaken
		}
		configslog.Log.Error("SaveCard: repo error", zap.Uint("cardID", card.ID), zap.Uint("actorID", actorID), zap.Error(err))
		return ErrCardSaveFailed
	}

	*card = working
	configslog.SLog.Infof("Kartvizit kaydedildi: ID %d, slug %q (%d bağlantı)", card.ID, card.Slug, len(card.SocialLinks))
	return nil
}

// DeleteCard kartviziti ve bağlantılarını siler.
func (s *CardService) DeleteCard(ctx context.Context, id uint, actorID uint) error {
	if id == 0 || actorID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya kullanıcı", ErrCardInvalidInput)
	}

	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		configslog.Log.Error("DeleteCard: repo error", zap.Uint("id", id), zap.Error(err))
		return ErrCardDeletionFailed
	}

	actor, userErr := s.profileRepo.FindByID(ctx, actorID)
	if userErr != nil {
		return ErrCardForbidden
	}
	if !actor.IsSystem && card.OwnerID != actorID {
		configslog.Log.Warn("Yetkisiz kartvizit silme denemesi", zap.Uint("cardID", id), zap.Uint("userID", actorID))
		return ErrCardForbidden
	}

	if err := s.repo.Delete(contextWithUserID(ctx, actorID), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		configslog.Log.Error("DeleteCard: silme hatası", zap.Uint("id", id), zap.Error(err))
		return ErrCardDeletionFailed
	}

	configslog.SLog.Infof("Kartvizit silindi: ID %d", id)
	return nil
}

// GetCardCountForOwner sahibe ait kartvizit sayısını alır.
func (s *CardService) GetCardCountForOwner(ctx context.Context, ownerID uint) (int64, error) {
	count, err := s.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		configslog.Log.Error("Kartvizit sayısı alınırken hata", zap.Uint("ownerID", ownerID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

var _ ICardService = (*CardService)(nil)
