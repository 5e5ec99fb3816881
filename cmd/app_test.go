package cmd

import (
	"testing"

	"github.com/nshetty/powerbill"
)

func TestResolveAPIKey(t *testing.T) {
	empty := powerbill.Open(&powerbill.MemStorage{})
	stored := powerbill.Open(&powerbill.MemStorage{})
	stored.SetAPIKey("book-key")

	t.Setenv(EnvAPIKey, "env-key")

	tests := []struct {
		name string
		flag string
		book *powerbill.Book
		want string
	}{
		{"flag wins over book and env", "flag-key", stored, "flag-key"},
		{"book wins over env", "", stored, "book-key"},
		{"env is the fallback", "", empty, "env-key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAPIKey(tt.flag, tt.book); got != tt.want {
				t.Errorf("resolveAPIKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
