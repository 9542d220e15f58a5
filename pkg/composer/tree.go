package composer

import "time"

// Mode hangi görünümün üretileceğini belirler.
type Mode string

const (
	// ModeCompact panel içindeki canlı önizlemedir; sosyal bağlantılar
	// rozetlere kısaltılır, medya/değerlendirme gösterilmez.
	ModeCompact Mode = "compact"
	// ModeFull public kart sayfasıdır; tam liste ve medya bölümleri içerir.
	ModeFull Mode = "full"
)

// Tree bir kartın tek bir görünümünü tarif eden, şablonlara veya JSON'a
// doğrudan verilebilen yapıdır. Aynı girdiler her zaman aynı ağacı üretir.
type Tree struct {
	Mode      Mode        `json:"mode"`
	Published bool        `json:"published"`
	Container Container   `json:"container"`
	Avatar    Avatar      `json:"avatar"`
	Identity  []TextLine  `json:"identity"`
	Contacts  []ContactRow `json:"contacts"`

	// Compact görünüm
	SocialBadges   []Badge `json:"social_badges,omitempty"`
	SocialOverflow int     `json:"social_overflow,omitempty"`

	// Full görünüm
	SocialRows     []LinkRow     `json:"social_rows,omitempty"`
	Media          []MediaTile   `json:"media,omitempty"`
	MediaOverflow  int           `json:"media_overflow,omitempty"`
	Reviews        []ReviewBlock `json:"reviews,omitempty"`
	ReviewOverflow int           `json:"review_overflow,omitempty"`
}

// Container kart kabının çözümlenmiş görünüm kurallarıdır.
type Container struct {
	Corner            string `json:"corner"` // square | large | round
	ForceSquareAspect bool   `json:"force_square_aspect"`
	Align             string `json:"align"`      // flex-start | center | flex-end
	TextAlign         string `json:"text_align"` // left | center | right
	Bordered          bool   `json:"bordered"`
	ThinBorder        bool   `json:"thin_border"`
	Elevated          bool   `json:"elevated"`
	Rotated           bool   `json:"rotated"`
	Background        string `json:"background"`
	TextColor         string `json:"text_color"`
	FontFamily        string `json:"font_family"`
}

// Avatar profil görseli ya da baş harf rozetidir.
type Avatar struct {
	ImageURL    string `json:"image_url,omitempty"`
	Initial     string `json:"initial,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"` // görsel ve başlık yoksa genel simge
	Background  string `json:"background"`
	BorderColor string `json:"border_color"`
}

// TextLine kimlik bölümündeki tek satırdır.
type TextLine struct {
	Kind  string `json:"kind"` // title | profession | company | tagline
	Text  string `json:"text"`
	Color string `json:"color"`
}

// ContactRow bir iletişim satırıdır. Href full modda tıklanabilir hedeftir.
type ContactRow struct {
	Kind  string `json:"kind"` // phone | whatsapp | email | website | address | map
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Badge compact moddaki simge rozetidir.
type Badge struct {
	Icon       string `json:"icon"`
	Background string `json:"background"`
}

// LinkRow full moddaki tıklanabilir sosyal bağlantı satırıdır.
type LinkRow struct {
	Platform string `json:"platform"`
	Icon     string `json:"icon"`
	Username string `json:"username,omitempty"`
	Href     string `json:"href"`
}

// MediaTile full moddaki tek medya karosudur.
type MediaTile struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// ReviewBlock full moddaki tek değerlendirmedir. Stars her zaman 5 öğedir;
// dolu sayısı 1-5 aralığına sıkıştırılmış puandır.
type ReviewBlock struct {
	Reviewer string    `json:"reviewer"`
	Comment  string    `json:"comment"`
	Stars    [5]bool   `json:"stars"`
	When     time.Time `json:"when"`
}
