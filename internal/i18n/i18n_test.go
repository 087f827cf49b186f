package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("es.json", `{"greeting":"Hola","only.es":"solo español"}`)
	write("en.json", `{"greeting":"Hello"}`)

	b, err := Load(dir, "es", []string{"es", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestTranslateWithFallback(t *testing.T) {
	b := testBundle(t)
	if got := b.T("en", "greeting"); got != "Hello" {
		t.Fatalf("T(en) = %q", got)
	}
	if got := b.T("en", "only.es"); got != "solo español" {
		t.Fatalf("fallback dictionary not consulted: %q", got)
	}
	if got := b.T("es", "missing.key"); got != "missing.key" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestResolveQValues(t *testing.T) {
	b := testBundle(t)
	cases := []struct {
		header string
		want   string
	}{
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"fr;q=0.9, en;q=0.5, es;q=0.8", "es"},
		{"fr,de", "es"},
		{"", "es"},
		{"EN", "en"},
	}
	for _, tc := range cases {
		if got := b.Resolve(tc.header); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestLoadRequiresFallbackLocale(t *testing.T) {
	if _, err := Load(t.TempDir(), "es", []string{"es"}); err == nil {
		t.Fatal("expected error when fallback locale file is missing")
	}
}
