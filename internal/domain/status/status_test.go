package status

import (
	"reflect"
	"testing"
)

func TestNewSet_DeduplicatesPreservingOrder(t *testing.T) {
	s := NewSet("draft", "published", "draft", "archived")

	want := []Value{"draft", "published", "archived"}
	if !reflect.DeepEqual(s.Values(), want) {
		t.Errorf("expected %v, got %v", want, s.Values())
	}
}

func TestSet_Contains(t *testing.T) {
	s := NewSet("active", "inactive")

	if !s.Contains("active") {
		t.Error("expected active to be a member")
	}
	if s.Contains("deleted") {
		t.Error("deleted must not be a member")
	}
	if s.Contains("Active") {
		t.Error("membership is case sensitive")
	}
}

func TestSet_IsEmpty(t *testing.T) {
	if !NewSet().IsEmpty() {
		t.Error("empty set should report empty")
	}
	if NewSet("new").IsEmpty() {
		t.Error("non-empty set should not report empty")
	}
}

func TestGuard_Validate(t *testing.T) {
	guard := NewGuard(map[string]Set{
		"blog":  NewSet("draft", "scheduled", "published", "archived"),
		"model": NewSet("active", "inactive"),
	})

	tests := []struct {
		name      string
		entity    string
		requested Value
		want      bool
	}{
		{"member", "blog", "published", true},
		{"non-member", "blog", "active", false},
		{"member of other entity", "model", "active", true},
		{"unknown entity", "gadget", "published", false},
		{"empty value", "blog", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.Validate(tt.entity, tt.requested); got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.entity, tt.requested, got, tt.want)
			}
		})
	}
}

func TestGuard_Allowed(t *testing.T) {
	guard := NewGuard(map[string]Set{
		"subscriber": NewSet("active", "unsubscribed", "bounced"),
	})

	set, ok := guard.Allowed("subscriber")
	if !ok {
		t.Fatal("expected enumeration for subscriber")
	}
	if len(set.Values()) != 3 {
		t.Errorf("expected 3 values, got %d", len(set.Values()))
	}

	if _, ok := guard.Allowed("gadget"); ok {
		t.Error("unknown entity should have no enumeration")
	}
}
