// Package linkset bir kartın sosyal bağlantı listesi üzerindeki bellek içi
// işlemleri toplar: ekleme, çıkarma ve yeniden sıralama. Fonksiyonlar girdi
// dilimini değiştirmez, yeni bir dilim döndürür.
package linkset

import (
	"strings"

	"github.com/google/uuid"

	"kartvizit.link/models"
	"kartvizit.link/pkg/catalog"
)

// Add adayı listenin sonuna ekler. URL boş veya yalnızca boşluksa liste
// olduğu gibi döner (sessiz red); URL biçimi bunun ötesinde doğrulanmaz.
// Platform belirtilmemişse katalogdaki ilk platform kullanılır. Eklenen
// satıra taze bir LocalID ve bir sonraki display order atanır.
func Add(links []models.SocialLink, candidate models.SocialLink) []models.SocialLink {
	if strings.TrimSpace(candidate.URL) == "" {
		return links
	}
	if candidate.Platform == "" {
		candidate.Platform = catalog.DefaultPlatform().Name
	}
	candidate.LocalID = uuid.NewString()
	candidate.DisplayOrder = nextOrder(links)
	candidate.IsActive = true

	out := make([]models.SocialLink, len(links), len(links)+1)
	copy(out, links)
	return append(out, candidate)
}

// Remove index'teki satırı çıkarır. Index aralık dışındaysa liste olduğu
// gibi döner. Kalan satırların göreli sırası korunur; order değerlerinde
// boşluk kalması sorun değildir.
func Remove(links []models.SocialLink, index int) []models.SocialLink {
	if index < 0 || index >= len(links) {
		return links
	}
	out := make([]models.SocialLink, 0, len(links)-1)
	out = append(out, links[:index]...)
	out = append(out, links[index+1:]...)
	return out
}

// Move from konumundaki satırı to konumuna taşır ve display order'ları yeni
// diziliş sırasına göre yeniden yazar. Geçersiz konumlarda liste olduğu
// gibi döner.
func Move(links []models.SocialLink, from, to int) []models.SocialLink {
	if from < 0 || from >= len(links) || to < 0 || to >= len(links) || from == to {
		return links
	}
	out := make([]models.SocialLink, len(links))
	copy(out, links)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.SocialLink{moved}, out[to:]...)...)
	for i := range out {
		out[i].DisplayOrder = i
	}
	return out
}

// nextOrder mevcut en büyük display order'ın bir fazlasını döndürür.
func nextOrder(links []models.SocialLink) int {
	next := 0
	for _, l := range links {
		if l.DisplayOrder >= next {
			next = l.DisplayOrder + 1
		}
	}
	if len(links) > next {
		next = len(links)
	}
	return next
}
