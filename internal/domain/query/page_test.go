package query

import "testing"

func TestNewPage_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single", 1, 10, 1},
		{"spec example", 10, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(nil, tt.total, 1, tt.limit)
			if p.TotalPages() != tt.want {
				t.Errorf("total=%d limit=%d: expected %d pages, got %d",
					tt.total, tt.limit, tt.want, p.TotalPages())
			}
		})
	}
}
