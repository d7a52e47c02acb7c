package related

import (
	"reflect"
	"testing"
)

func TestNewQuery(t *testing.T) {
	q, err := NewQuery("post-1", []string{"a", "", "b"}, "LLM", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SourceID() != "post-1" {
		t.Errorf("expected post-1, got %q", q.SourceID())
	}
	if !reflect.DeepEqual(q.ExplicitIDs(), []string{"a", "b"}) {
		t.Errorf("expected empty ids dropped, got %v", q.ExplicitIDs())
	}
	if q.PrimaryCategory() != "LLM" {
		t.Errorf("expected LLM, got %q", q.PrimaryCategory())
	}
	if q.Limit() != 4 {
		t.Errorf("expected limit 4, got %d", q.Limit())
	}
}

func TestNewQuery_EmptySource(t *testing.T) {
	if _, err := NewQuery("", nil, "", 0); err == nil {
		t.Fatal("expected error for empty source ID")
	}
}

func TestNewQuery_LimitBounds(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultLimit},
		{"negative", -5, DefaultLimit},
		{"within bounds", 3, 3},
		{"at max", 12, 12},
		{"over max", 50, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuery("src", nil, "", tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Limit() != tt.want {
				t.Errorf("limit %d: expected %d, got %d", tt.limit, tt.want, q.Limit())
			}
		})
	}
}
