package cms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writePage(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestPageRendersFrontMatterAndMarkdown(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "servicios.es.md", `---
title: Servicios
summary: Lo que hacemos
icon: "👕"
---

Lavado **profesional** por kilo.
`)
	lib := NewLibrary(dir, "es")
	p, err := lib.Page("servicios", "es")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if p.Title != "Servicios" || p.Summary != "Lo que hacemos" || p.Icon != "👕" {
		t.Fatalf("front matter: %+v", p)
	}
	if !strings.Contains(string(p.Body), "<strong>profesional</strong>") {
		t.Fatalf("markdown not rendered: %s", p.Body)
	}
}

func TestPageFallsBackToDefaultLanguage(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "horarios.es.md", "Solo en español.\n")
	lib := NewLibrary(dir, "es")
	p, err := lib.Page("horarios", "en")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if p.Lang != "es" || !strings.Contains(string(p.Body), "Solo en español") {
		t.Fatalf("fallback not applied: %+v", p)
	}
}

func TestPageSanitizesScript(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "x.es.md", "hola <script>alert(1)</script> mundo\n")
	lib := NewLibrary(dir, "es")
	p, err := lib.Page("x", "es")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if strings.Contains(string(p.Body), "<script") {
		t.Fatalf("script survived sanitization: %s", p.Body)
	}
}

func TestPageCachesUntilTTL(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "p.es.md", "versión uno\n")
	lib := NewLibrary(dir, "es")
	lib.SetTTL(time.Hour)

	if _, err := lib.Page("p", "es"); err != nil {
		t.Fatalf("Page: %v", err)
	}
	writePage(t, dir, "p.es.md", "versión dos\n")
	p, err := lib.Page("p", "es")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if !strings.Contains(string(p.Body), "versión uno") {
		t.Fatalf("cache bypassed inside TTL: %s", p.Body)
	}
}

func TestPageRejectsPathTraversal(t *testing.T) {
	lib := NewLibrary(t.TempDir(), "es")
	if _, err := lib.Page("../etc/passwd", "es"); err == nil {
		t.Fatal("expected traversal slug to fail")
	}
}
