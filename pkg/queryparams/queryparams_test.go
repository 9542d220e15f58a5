package queryparams

import "testing"

func TestValidateAppliesBounds(t *testing.T) {
	p := ListParams{Page: -2, PerPage: 999, OrderBy: "yukarı"}
	p.Validate()

	if p.Page != DefaultPage {
		t.Errorf("geçersiz sayfa varsayılana düşmeli, gelen %d", p.Page)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("sınır üstü sayfa boyutu varsayılana düşmeli, gelen %d", p.PerPage)
	}
	if p.OrderBy != DefaultOrderBy {
		t.Errorf("geçersiz sıralama yönü varsayılana düşmeli, gelen %q", p.OrderBy)
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.CalculateOffset(); got != 40 {
		t.Errorf("offset 40 olmalı, gelen %d", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		items   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{20, 20, 1},
		{21, 20, 2},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := CalculateTotalPages(c.items, c.perPage); got != c.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, beklenen %d", c.items, c.perPage, got, c.want)
		}
	}
}
