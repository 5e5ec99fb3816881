package powerbill

import (
	"regexp"
	"testing"
)

var idShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if !idShape.MatchString(id) {
			t.Fatalf("NewID() = %q, not UUID shaped", id)
		}
		if seen[id] {
			t.Fatalf("NewID() produced a duplicate: %q", id)
		}
		seen[id] = true
	}
}

func TestFallbackID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := fallbackID()
		if !idShape.MatchString(id) {
			t.Fatalf("fallbackID() = %q, not UUID shaped", id)
		}
		if seen[id] {
			t.Fatalf("fallbackID() produced a duplicate: %q", id)
		}
		seen[id] = true
	}
}
