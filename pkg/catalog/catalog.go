// Package catalog kartvizit oluşturmada seçilebilen sabit değerlerin
// kataloğudur: tema preset'leri, yerleşim seçenekleri, fontlar, meslek
// kategorileri ve sosyal platformlar. Salt okunurdur; hiçbir fonksiyonun
// yan etkisi veya hata durumu yoktur.
package catalog

import "kartvizit.link/models"

// Platform bir sosyal platform seçeneğidir. Hint, URL alanı için yer
// tutucu metindir; platform URL'in alan adını kısıtlamaz.
type Platform struct {
	Name string
	Hint string
	Icon string
}

// IconLink bilinmeyen platformlar için genel simgedir.
const IconLink = "link"

const PlatformCustom = "Custom Link"

var themePresets = []models.Theme{
	models.DefaultTheme(), // Ocean Blue; models tarafındaki fallback ile aynı değer
	{Name: "Forest Green", Primary: "#10B981", Secondary: "#047857", Background: "#FFFFFF", Text: "#1F2937"},
	{Name: "Sunset Orange", Primary: "#F59E0B", Secondary: "#D97706", Background: "#FFFFFF", Text: "#1F2937"},
	{Name: "Royal Purple", Primary: "#8B5CF6", Secondary: "#7C3AED", Background: "#FFFFFF", Text: "#1F2937"},
	{Name: "Rose Pink", Primary: "#EC4899", Secondary: "#DB2777", Background: "#FFFFFF", Text: "#1F2937"},
	{Name: "Dark Mode", Primary: "#60A5FA", Secondary: "#3B82F6", Background: "#1F2937", Text: "#F9FAFB"},
}

var layoutStyles = []string{"modern", "classic", "minimal", "creative"}

var alignments = []string{"left", "center", "right"}

var shapes = []string{"rectangle", "rounded", "circle", "hexagon"}

var fonts = []string{"Inter", "Roboto", "Open Sans", "Lato", "Montserrat", "Poppins"}

var professionCategories = []string{
	"Yazılım & Teknoloji",
	"Tasarım & Yaratıcılık",
	"Sağlık",
	"Hukuk",
	"Eğitim",
	"Finans & Danışmanlık",
	"Emlak",
	"Yeme & İçme",
	"Güzellik & Bakım",
	"Diğer",
}

var platforms = []Platform{
	{Name: "Instagram", Hint: "https://instagram.com/kullaniciadi", Icon: "instagram"},
	{Name: "LinkedIn", Hint: "https://linkedin.com/in/kullaniciadi", Icon: "linkedin"},
	{Name: "GitHub", Hint: "https://github.com/kullaniciadi", Icon: "github"},
	{Name: "Twitter", Hint: "https://twitter.com/kullaniciadi", Icon: "twitter"},
	{Name: "Facebook", Hint: "https://facebook.com/kullaniciadi", Icon: "facebook"},
	{Name: "You Tube", Hint: "https://youtube.com/@kanal", Icon: "youtube"},
	{Name: "Website", Hint: "https://siteniz.com", Icon: "globe"},
	{Name: PlatformCustom, Hint: "https://", Icon: IconLink},
}

// ThemePresets tema preset'lerini sabit sırayla döndürür (en az 1 öğe,
// isimler benzersiz).
func ThemePresets() []models.Theme {
	out := make([]models.Theme, len(themePresets))
	copy(out, themePresets)
	return out
}

// ThemePresetByName isme göre preset arar; bulunamazsa ilk preset döner.
func ThemePresetByName(name string) models.Theme {
	for _, t := range themePresets {
		if t.Name == name {
			return t
		}
	}
	return themePresets[0]
}

// LayoutStyles stil seçeneklerini döndürür.
func LayoutStyles() []string { return append([]string(nil), layoutStyles...) }

// Alignments hizalama seçeneklerini döndürür.
func Alignments() []string { return append([]string(nil), alignments...) }

// Shapes kart şekli seçeneklerini döndürür.
func Shapes() []string { return append([]string(nil), shapes...) }

// Fonts font seçeneklerini döndürür.
func Fonts() []string { return append([]string(nil), fonts...) }

// ProfessionCategories meslek kategorilerini döndürür.
func ProfessionCategories() []string { return append([]string(nil), professionCategories...) }

// SocialPlatforms platform seçeneklerini sabit sırayla döndürür.
func SocialPlatforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// DefaultPlatform platform belirtilmeden eklenen bağlantılar için
// kullanılır (listenin ilk öğesi).
func DefaultPlatform() Platform { return platforms[0] }

// IconFor platform adını simge etiketine çevirir. Bilinmeyen isimler hata
// değildir; genel "link" simgesi döner.
func IconFor(platformName string) string {
	for _, p := range platforms {
		if p.Name == platformName {
			return p.Icon
		}
	}
	return IconLink
}
