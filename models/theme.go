package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Theme kartın renk temasını taşır. Veritabanında jsonb olarak saklanır.
type Theme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Layout kartın yerleşim ayarlarını taşır. Veritabanında jsonb olarak saklanır.
type Layout struct {
	Style     string `json:"style"`     // modern | classic | minimal | creative
	Alignment string `json:"alignment"` // left | center | right
	Font      string `json:"font"`
}

// DefaultTheme ilk katalog preset'i ile aynı değerdir; pkg/catalog bu
// fonksiyonu listenin başına koyar. Bozuk jsonb okunduğunda buna dönülür.
func DefaultTheme() Theme {
	return Theme{
		Name:       "Ocean Blue",
		Primary:    "#3B82F6",
		Secondary:  "#1E40AF",
		Background: "#FFFFFF",
		Text:       "#1F2937",
	}
}

// DefaultLayout varsayılan yerleşimdir; bozuk jsonb okunduğunda buna dönülür.
func DefaultLayout() Layout {
	return Layout{Style: "modern", Alignment: "center", Font: "Inter"}
}

// Value Theme'i jsonb'ye çevirir.
func (t Theme) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("theme serileştirilemedi: %w", err)
	}
	return string(b), nil
}

// Scan jsonb'den Theme okur. Boş, bozuk veya şekli uymayan değerlerde hata
// döndürmek yerine varsayılan preset'e düşer; yükleme asla bu yüzden
// başarısız olmaz.
func (t *Theme) Scan(value interface{}) error {
	raw, err := jsonbBytes(value)
	if err != nil || len(raw) == 0 {
		*t = DefaultTheme()
		return nil
	}
	var decoded Theme
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded.Name == "" {
		*t = DefaultTheme()
		return nil
	}
	*t = decoded
	return nil
}

// Value Layout'u jsonb'ye çevirir.
func (l Layout) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("layout serileştirilemedi: %w", err)
	}
	return string(b), nil
}

// Scan jsonb'den Layout okur; bozuk değerlerde varsayılana düşer.
func (l *Layout) Scan(value interface{}) error {
	raw, err := jsonbBytes(value)
	if err != nil || len(raw) == 0 {
		*l = DefaultLayout()
		return nil
	}
	var decoded Layout
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded.Style == "" {
		*l = DefaultLayout()
		return nil
	}
	*l = decoded
	return nil
}

// jsonbBytes sürücüden gelen jsonb değerini byte dilimine çevirir.
func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("jsonb için beklenmeyen sürücü tipi")
	}
}
