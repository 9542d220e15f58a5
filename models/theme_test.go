package models

import "testing"

func TestThemeValueScanRoundTrip(t *testing.T) {
	original := Theme{Name: "Forest Green", Primary: "#10B981", Secondary: "#047857", Background: "#FFFFFF", Text: "#1F2937"}

	val, err := original.Value()
	if err != nil {
		t.Fatalf("Value hatası: %v", err)
	}

	var decoded Theme
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("Scan hatası: %v", err)
	}
	if decoded != original {
		t.Errorf("gidiş-dönüş değeri korunmalı: %+v != %+v", decoded, original)
	}
}

func TestThemeScanFallsBackToDefault(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
	}{
		{"nil", nil},
		{"boş byte dilimi", []byte{}},
		{"bozuk json", []byte(`{"name": "Kesik`)},
		{"isimsiz tema", []byte(`{"primary": "#FF0000"}`)},
		{"beklenmeyen tip", 42},
	}
	for _, c := range cases {
		var theme Theme
		if err := theme.Scan(c.input); err != nil {
			t.Errorf("%s: Scan hata döndürmemeli: %v", c.name, err)
		}
		if theme != DefaultTheme() {
			t.Errorf("%s: varsayılan temaya düşmeli, gelen %+v", c.name, theme)
		}
	}
}

func TestLayoutValueScanRoundTrip(t *testing.T) {
	original := Layout{Style: "creative", Alignment: "right", Font: "Poppins"}

	val, err := original.Value()
	if err != nil {
		t.Fatalf("Value hatası: %v", err)
	}

	var decoded Layout
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("Scan hatası: %v", err)
	}
	if decoded != original {
		t.Errorf("gidiş-dönüş değeri korunmalı: %+v != %+v", decoded, original)
	}
}

func TestLayoutScanFallsBackToDefault(t *testing.T) {
	for _, input := range []interface{}{nil, []byte("çöp veri"), []byte(`{"alignment": "left"}`)} {
		var layout Layout
		if err := layout.Scan(input); err != nil {
			t.Errorf("Scan hata döndürmemeli: %v", err)
		}
		if layout != DefaultLayout() {
			t.Errorf("varsayılan yerleşime düşmeli, gelen %+v", layout)
		}
	}
}

func TestThemeScanAcceptsString(t *testing.T) {
	var theme Theme
	if err := theme.Scan(`{"name":"Dark Mode","primary":"#60A5FA","secondary":"#3B82F6","background":"#1F2937","text":"#F9FAFB"}`); err != nil {
		t.Fatalf("Scan hatası: %v", err)
	}
	if theme.Name != "Dark Mode" || theme.Background != "#1F2937" {
		t.Errorf("string jsonb değeri okunabilmeli: %+v", theme)
	}
}
