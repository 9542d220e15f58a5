package services

import (
	"testing"

	"kartvizit.link/models"
	"kartvizit.link/pkg/catalog"
)

func TestNewCardForOwnerDefaults(t *testing.T) {
	card := NewCardForOwner(7)

	if card.OwnerID != 7 {
		t.Errorf("sahip ID 7 olmalı, gelen %d", card.OwnerID)
	}
	if card.Shape != "rectangle" {
		t.Errorf("varsayılan şekil rectangle olmalı, gelen %q", card.Shape)
	}
	if card.Theme != catalog.ThemePresets()[0] {
		t.Errorf("varsayılan tema ilk preset olmalı, gelen %+v", card.Theme)
	}
	if card.Layout != models.DefaultLayout() {
		t.Errorf("varsayılan yerleşim beklenenden farklı: %+v", card.Layout)
	}
	if card.IsPublished {
		t.Error("yeni kart yayınlanmamış olmalı")
	}
}

func TestApplyCardFormNormalizesUsername(t *testing.T) {
	card := ApplyCardForm(NewCardForOwner(1), CardForm{Title: "Jane Doe", Username: "Jane_Doe!!"})
	if card.Slug != "janedoe" {
		t.Errorf("kullanıcı adı normalize edilmeli: %q", card.Slug)
	}
}

func TestApplyCardFormResolvesTheme(t *testing.T) {
	card := ApplyCardForm(NewCardForOwner(1), CardForm{ThemeName: "Dark Mode"})
	if card.Theme.Background != "#1F2937" {
		t.Errorf("tema isimden çözülmeli: %+v", card.Theme)
	}

	// Bilinmeyen tema adı ilk preset'e düşer.
	card = ApplyCardForm(NewCardForOwner(1), CardForm{ThemeName: "Yok Böyle Tema"})
	if card.Theme != catalog.ThemePresets()[0] {
		t.Errorf("bilinmeyen tema adı ilk preset'e düşmeli: %+v", card.Theme)
	}

	// Boş tema adı mevcut temayı korur.
	base := NewCardForOwner(1)
	base.Theme = catalog.ThemePresetByName("Forest Green")
	card = ApplyCardForm(base, CardForm{})
	if card.Theme.Name != "Forest Green" {
		t.Errorf("boş tema adı mevcut temayı korumalı: %+v", card.Theme)
	}
}

func TestApplyCardFormRejectsUnknownOptions(t *testing.T) {
	base := NewCardForOwner(1)
	base.Shape = "rounded"
	base.Layout.Style = "classic"

	card := ApplyCardForm(base, CardForm{Shape: "yıldız", Style: "barok", Alignment: "diyagonal", Font: "Comic Sans"})
	if card.Shape != "rounded" {
		t.Errorf("katalog dışı şekil mevcut değeri korumalı: %q", card.Shape)
	}
	if card.Layout.Style != "classic" {
		t.Errorf("katalog dışı stil mevcut değeri korumalı: %q", card.Layout.Style)
	}
	if card.Layout.Alignment != base.Layout.Alignment || card.Layout.Font != base.Layout.Font {
		t.Errorf("katalog dışı hizalama/font mevcut değeri korumalı: %+v", card.Layout)
	}
}

func TestFormFromCardRoundTrip(t *testing.T) {
	original := NewCardForOwner(3)
	original.Title = "Jane Doe"
	original.Slug = "janedoe"
	original.Company = "Acme"
	original.Profession = "Yazılım & Teknoloji"
	original.Phone = "+90 555 111 22 33"
	original.Shape = "circle"
	original.Theme = catalog.ThemePresetByName("Royal Purple")
	original.Layout = models.Layout{Style: "creative", Alignment: "left", Font: "Poppins"}
	original.IsPublished = true

	// Formu geri uygulamak eşdeğer bir yapılandırma üretmeli.
	rebuilt := ApplyCardForm(NewCardForOwner(3), FormFromCard(original))
	if !original.EquivalentTo(rebuilt) {
		t.Errorf("form gidiş-dönüşü yapılandırmayı korumalı:\n%+v\n%+v", original, rebuilt)
	}
}
