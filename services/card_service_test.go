package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/queryparams"
	"kartvizit.link/repositories"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
	os.Exit(m.Run())
}

// stubCardRepository testlerde veritabanı yerine geçer.
type stubCardRepository struct {
	cards      map[uint]*models.Card
	bySlug     map[string]uint
	nextID     uint
	saveErr    error
	findErr    error
	saveCalled bool
}

func newStubCardRepository() *stubCardRepository {
	return &stubCardRepository{
		cards:  make(map[uint]*models.Card),
		bySlug: make(map[string]uint),
		nextID: 1,
	}
}

func (s *stubCardRepository) put(card models.Card) *models.Card {
	if card.ID == 0 {
		card.ID = s.nextID
		s.nextID++
	}
	stored := card
	s.cards[card.ID] = &stored
	s.bySlug[card.Slug] = card.ID
	return &stored
}

func (s *stubCardRepository) FindByID(_ context.Context, id uint) (*models.Card, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	card, ok := s.cards[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *card
	return &copied, nil
}

func (s *stubCardRepository) FindBySlug(_ context.Context, slug string) (*models.Card, error) {
	id, ok := s.bySlug[slug]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *s.cards[id]
	return &copied, nil
}

func (s *stubCardRepository) FindAllByOwnerPaginated(_ context.Context, ownerID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	var out []models.Card
	for _, card := range s.cards {
		if card.OwnerID == ownerID {
			out = append(out, *card)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubCardRepository) CountByOwner(_ context.Context, ownerID uint) (int64, error) {
	var count int64
	for _, card := range s.cards {
		if card.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (s *stubCardRepository) SaveWithLinks(_ context.Context, card *models.Card, links []models.SocialLink) error {
	s.saveCalled = true
	if s.saveErr != nil {
		return s.saveErr
	}
	if card.ID != 0 {
		if _, ok := s.cards[card.ID]; !ok {
			return repositories.ErrNotFound
		}
	}
	if existingID, taken := s.bySlug[card.Slug]; taken && existingID != card.ID {
		return errors.New(`duplicate key value violates unique constraint "idx_cards_slug"`)
	}
	stored := s.put(*card)
	card.ID = stored.ID

	rows := make([]models.SocialLink, len(links))
	for i, link := range links {
		link.CardID = card.ID
		link.DisplayOrder = i
		rows[i] = link
	}
	card.SocialLinks = rows
	stored.SocialLinks = rows
	return nil
}

func (s *stubCardRepository) Delete(_ context.Context, id uint) error {
	card, ok := s.cards[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(s.bySlug, card.Slug)
	delete(s.cards, id)
	return nil
}

// stubProfileRepository sahiplik kontrolleri için profilleri taşır.
type stubProfileRepository struct {
	profiles map[uint]*models.Profile
}

func newStubProfileRepository(profiles ...models.Profile) *stubProfileRepository {
	s := &stubProfileRepository{profiles: make(map[uint]*models.Profile)}
	for _, p := range profiles {
		stored := p
		s.profiles[p.ID] = &stored
	}
	return s
}

func (s *stubProfileRepository) FindByID(_ context.Context, id uint) (*models.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (s *stubProfileRepository) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	for _, p := range s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *stubProfileRepository) Create(_ context.Context, profile *models.Profile) error {
	s.profiles[profile.ID] = profile
	return nil
}

func profile(id uint, isSystem bool) models.Profile {
	p := models.Profile{Name: "Test", Role: models.RoleUser, IsSystem: isSystem}
	p.ID = id
	return p
}

func newTestService(repo repositories.ICardRepository, profiles repositories.IProfileRepository) *CardService {
	return &CardService{repo: repo, profileRepo: profiles}
}

func validCard(ownerID uint) models.Card {
	card := NewCardForOwner(ownerID)
	card.Title = "Jane Doe"
	card.Slug = "janedoe"
	return card
}

func TestValidateCardForSave(t *testing.T) {
	card := validCard(1)
	if err := ValidateCardForSave(card); err != nil {
		t.Errorf("geçerli kart doğrulamadan geçmeli: %v", err)
	}

	noTitle := card
	noTitle.Title = "   "
	if err := ValidateCardForSave(noTitle); !errors.Is(err, ErrCardTitleRequired) {
		t.Errorf("boş başlık ErrCardTitleRequired döndürmeli, gelen %v", err)
	}

	noSlug := card
	noSlug.Slug = ""
	if err := ValidateCardForSave(noSlug); !errors.Is(err, ErrCardSlugRequired) {
		t.Errorf("boş kullanıcı adı ErrCardSlugRequired döndürmeli, gelen %v", err)
	}
}

func TestSaveCardCreatesAndAssignsID(t *testing.T) {
	repo := newStubCardRepository()
	svc := newTestService(repo, newStubProfileRepository(profile(1, false)))

	card := validCard(1)
	links := []models.SocialLink{
		{Platform: "GitHub", URL: "https://github.com/jane", DisplayOrder: 0, IsActive: true},
	}

	if err := svc.SaveCard(context.Background(), 1, &card, links); err != nil {
		t.Fatalf("SaveCard hatası: %v", err)
	}
	if card.ID == 0 {
		t.Error("başarılı kayıttan sonra kart ID almalı")
	}
	if len(card.SocialLinks) != 1 || card.SocialLinks[0].CardID != card.ID {
		t.Errorf("kaydedilen bağlantılar karta geri yazılmalı: %+v", card.SocialLinks)
	}
}

func TestSaveCardDefaultsOwnerToActor(t *testing.T) {
	repo := newStubCardRepository()
	svc := newTestService(repo, newStubProfileRepository(profile(5, false)))

	card := validCard(0)
	card.OwnerID = 0
	if err := svc.SaveCard(context.Background(), 5, &card, nil); err != nil {
		t.Fatalf("SaveCard hatası: %v", err)
	}
	if card.OwnerID != 5 {
		t.Errorf("sahipsiz kart işlemi yapana atanmalı, gelen %d", card.OwnerID)
	}
}

func TestSaveCardForbiddenForOtherUsersCard(t *testing.T) {
	repo := newStubCardRepository()
	svc := newTestService(repo, newStubProfileRepository(profile(1, false), profile(2, false)))

	card := validCard(1)
	if err := svc.SaveCard(context.Background(), 2, &card, nil); !errors.Is(err, ErrCardForbidden) {
		t.Errorf("başkasının kartını kaydetmek ErrCardForbidden döndürmeli, gelen %v", err)
	}
	if repo.saveCalled {
		t.Error("yetki hatası durumunda store'a hiç gidilmemeli")
	}
}

func TestSaveCardSystemUserCanSaveForOthers(t *testing.T) {
	repo := newStubCardRepository()
	svc := newTestService(repo, newStubProfileRepository(profile(1, false), profile(99, true)))

	card := validCard(1)
	if err := svc.SaveCard(context.Background(), 99, &card, nil); err != nil {
		t.Errorf("sistem kullanıcısı başkası adına kaydedebilmeli: %v", err)
	}
}

func TestSaveCardSlugConflict(t *testing.T) {
	repo := newStubCardRepository()
	existing := validCard(2)
	existing.Slug = "taken"
	repo.put(existing)

	svc := newTestService(repo, newStubProfileRepository(profile(1, false)))

	card := validCard(1)
	card.Slug = "taken"
	if err := svc.SaveCard(context.Background(), 1, &card, nil); !errors.Is(err, ErrCardSlugTaken) {
		t.Errorf("slug çakışması ErrCardSlugTaken döndürmeli, gelen %v", err)
	}
}

func TestSaveCardFailureLeavesCallerStateUntouched(t *testing.T) {
	repo := newStubCardRepository()
	repo.saveErr = errors.New("bağlantı koptu")
	svc := newTestService(repo, newStubProfileRepository(profile(1, false)))

	card := validCard(1)
	before := card

	err := svc.SaveCard(context.Background(), 1, &card, nil)
	if !errors.Is(err, ErrCardSaveFailed) {
		t.Errorf("genel store hatası ErrCardSaveFailed döndürmeli, gelen %v", err)
	}
	if card.ID != before.ID || !card.EquivalentTo(before) {
		t.Error("başarısız kayıt çağıranın yapılandırmasını değiştirmemeli")
	}
}

func TestSaveCardIsIdempotent(t *testing.T) {
	repo := newStubCardRepository()
	svc := newTestService(repo, newStubProfileRepository(profile(1, false)))

	card := validCard(1)
	links := []models.SocialLink{
		{Platform: "GitHub", URL: "https://github.com/jane", IsActive: true},
		{Platform: "Twitter", URL: "https://twitter.com/jane", IsActive: true},
	}

	if err := svc.SaveCard(context.Background(), 1, &card, links); err != nil {
		t.Fatalf("ilk kayıt hatası: %v", err)
	}
	firstID := card.ID

	if err := svc.SaveCard(context.Background(), 1, &card, links); err != nil {
		t.Fatalf("ikinci kayıt hatası: %v", err)
	}
	if card.ID != firstID {
		t.Errorf("tekrar kaydetmek yeni kart üretmemeli: %d != %d", card.ID, firstID)
	}
	if len(repo.cards) != 1 {
		t.Errorf("store'da tek kart kalmalı, gelen %d", len(repo.cards))
	}
	if len(card.SocialLinks) != 2 {
		t.Errorf("bağlantı listesi tamamen değiştirilmeli, gelen %d", len(card.SocialLinks))
	}
}

func TestGetCardByIDOwnership(t *testing.T) {
	repo := newStubCardRepository()
	stored := repo.put(validCard(1))

	svc := newTestService(repo, newStubProfileRepository(profile(1, false), profile(2, false), profile(99, true)))

	if _, err := svc.GetCardByID(context.Background(), stored.ID, 1); err != nil {
		t.Errorf("sahip kendi kartını okuyabilmeli: %v", err)
	}
	if _, err := svc.GetCardByID(context.Background(), stored.ID, 2); !errors.Is(err, ErrCardForbidden) {
		t.Errorf("başkasının kartı ErrCardForbidden döndürmeli, gelen %v", err)
	}
	if _, err := svc.GetCardByID(context.Background(), stored.ID, 99); err != nil {
		t.Errorf("sistem kullanıcısı her kartı okuyabilmeli: %v", err)
	}
	if _, err := svc.GetCardByID(context.Background(), 12345, 1); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("olmayan kart ErrCardNotFound döndürmeli, gelen %v", err)
	}
}

func TestGetPublishedCardBySlug(t *testing.T) {
	repo := newStubCardRepository()

	draft := validCard(1)
	draft.Slug = "taslak"
	draft.IsPublished = false
	repo.put(draft)

	live := validCard(1)
	live.Slug = "yayinda"
	live.IsPublished = true
	repo.put(live)

	svc := newTestService(repo, newStubProfileRepository())

	card, err := svc.GetPublishedCardBySlug(context.Background(), "yayinda")
	if err != nil {
		t.Fatalf("yayındaki kart okunabilmeli: %v", err)
	}
	if card.Slug != "yayinda" {
		t.Errorf("yanlış kart döndü: %q", card.Slug)
	}

	// Yayınlanmamış kart dışarıdan var olmayan kartla aynı görünür.
	if _, err := svc.GetPublishedCardBySlug(context.Background(), "taslak"); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("taslak kart ErrCardNotFound döndürmeli, gelen %v", err)
	}
	if _, err := svc.GetPublishedCardBySlug(context.Background(), ""); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("boş slug ErrCardNotFound döndürmeli, gelen %v", err)
	}
}

func TestGetPublishedCardByID(t *testing.T) {
	repo := newStubCardRepository()
	draft := repo.put(validCard(1))

	live := validCard(1)
	live.Slug = "yayinda"
	live.IsPublished = true
	liveStored := repo.put(live)

	svc := newTestService(repo, newStubProfileRepository())

	if _, err := svc.GetPublishedCardByID(context.Background(), liveStored.ID); err != nil {
		t.Errorf("yayındaki kart ID ile okunabilmeli: %v", err)
	}
	if _, err := svc.GetPublishedCardByID(context.Background(), draft.ID); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("taslak kart ID ile de görünmemeli, gelen %v", err)
	}
}

func TestDeleteCard(t *testing.T) {
	repo := newStubCardRepository()
	stored := repo.put(validCard(1))

	svc := newTestService(repo, newStubProfileRepository(profile(1, false), profile(2, false)))

	if err := svc.DeleteCard(context.Background(), stored.ID, 2); !errors.Is(err, ErrCardForbidden) {
		t.Errorf("başkasının kartını silmek ErrCardForbidden döndürmeli, gelen %v", err)
	}
	if err := svc.DeleteCard(context.Background(), stored.ID, 1); err != nil {
		t.Errorf("sahip kendi kartını silebilmeli: %v", err)
	}
	if err := svc.DeleteCard(context.Background(), stored.ID, 1); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("silinmiş kart ErrCardNotFound döndürmeli, gelen %v", err)
	}
}

func TestGetCardsForOwnerPaginatedMeta(t *testing.T) {
	repo := newStubCardRepository()
	for i := 0; i < 3; i++ {
		card := validCard(1)
		card.Slug = card.Slug + string(rune('a'+i))
		repo.put(card)
	}

	svc := newTestService(repo, newStubProfileRepository(profile(1, false)))

	result, err := svc.GetCardsForOwnerPaginated(context.Background(), 1, queryparams.DefaultListParams("created_at"))
	if err != nil {
		t.Fatalf("listeleme hatası: %v", err)
	}
	if result.Meta.TotalItems != 3 {
		t.Errorf("toplam kayıt 3 olmalı, gelen %d", result.Meta.TotalItems)
	}
	if result.Meta.TotalPages != 1 {
		t.Errorf("toplam sayfa 1 olmalı, gelen %d", result.Meta.TotalPages)
	}

	if _, err := svc.GetCardsForOwnerPaginated(context.Background(), 0, queryparams.DefaultListParams("created_at")); !errors.Is(err, ErrCardInvalidInput) {
		t.Errorf("geçersiz sahip ID ErrCardInvalidInput döndürmeli, gelen %v", err)
	}
}
