package catalog

import (
	"testing"

	"kartvizit.link/models"
)

func TestThemePresetsListIsStable(t *testing.T) {
	presets := ThemePresets()
	if len(presets) == 0 {
		t.Fatal("en az bir tema preset'i olmalı")
	}

	// İlk preset modeldeki varsayılan ile aynı olmalı; bozuk jsonb okuması
	// bu değere düşer.
	if presets[0] != models.DefaultTheme() {
		t.Errorf("ilk preset varsayılan temayla aynı olmalı: %+v", presets[0])
	}

	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		if p.Name == "" {
			t.Error("preset adı boş olamaz")
		}
		if seen[p.Name] {
			t.Errorf("tekrarlanan preset adı: %s", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestThemePresetsReturnsCopy(t *testing.T) {
	first := ThemePresets()
	first[0].Primary = "#000000"

	if ThemePresets()[0].Primary == "#000000" {
		t.Error("dönen dilim üzerindeki değişiklik kataloğu etkilememeli")
	}
}

func TestThemePresetByName(t *testing.T) {
	forest := ThemePresetByName("Forest Green")
	if forest.Primary != "#10B981" {
		t.Errorf("Forest Green primary beklenen #10B981, gelen %s", forest.Primary)
	}

	// Bilinmeyen isim ilk preset'e düşer.
	unknown := ThemePresetByName("Neon Nostalgia")
	if unknown != ThemePresets()[0] {
		t.Errorf("bilinmeyen isim ilk preset'i döndürmeli, gelen %+v", unknown)
	}
}

func TestIconFor(t *testing.T) {
	cases := []struct {
		platform string
		want     string
	}{
		{"Instagram", "instagram"},
		{"GitHub", "github"},
		{"You Tube", "youtube"},
		{PlatformCustom, IconLink},
		{"Bilinmeyen Platform", IconLink},
		{"", IconLink},
	}
	for _, c := range cases {
		if got := IconFor(c.platform); got != c.want {
			t.Errorf("IconFor(%q) = %q, beklenen %q", c.platform, got, c.want)
		}
	}
}

func TestDefaultPlatformIsFirst(t *testing.T) {
	if DefaultPlatform().Name != SocialPlatforms()[0].Name {
		t.Error("varsayılan platform listenin ilk öğesi olmalı")
	}
}

func TestCatalogOptionLists(t *testing.T) {
	if len(Shapes()) == 0 || len(LayoutStyles()) == 0 || len(Alignments()) == 0 || len(Fonts()) == 0 {
		t.Fatal("seçenek listeleri boş olamaz")
	}
	if len(ProfessionCategories()) == 0 {
		t.Fatal("meslek kategorileri boş olamaz")
	}
}
