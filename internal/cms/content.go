// Package cms serves the marketing copy of the dashboard (who we are,
// services, opening hours) from local markdown files with YAML front matter.
// Rendered HTML is sanitized and cached with a short TTL so content edits
// show up without a restart.
package cms

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Page is a rendered, sanitized content page.
type Page struct {
	Slug      string
	Lang      string
	Title     string
	Summary   string
	Icon      string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Icon    string `yaml:"icon"`
}

// Library loads pages from dir, looking for <slug>.<lang>.md and falling
// back to <slug>.<fallbackLang>.md.
type Library struct {
	dir      string
	fallback string

	mu    sync.RWMutex
	cache map[string]entry
	ttl   time.Duration

	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

type entry struct {
	page    Page
	expires time.Time
}

// NewLibrary builds a content library rooted at dir.
func NewLibrary(dir, fallbackLang string) *Library {
	if strings.TrimSpace(dir) == "" {
		dir = "content"
	}
	return &Library{
		dir:      dir,
		fallback: fallbackLang,
		cache:    map[string]entry{},
		ttl:      5 * time.Minute,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitize: bluemonday.UGCPolicy(),
	}
}

// SetTTL overrides the cache duration (primarily for tests).
func (l *Library) SetTTL(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	l.mu.Lock()
	l.ttl = d
	l.mu.Unlock()
}

// Page loads, renders and caches one content page.
func (l *Library) Page(slug, lang string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, fmt.Errorf("cms: empty slug")
	}
	key := slug + "|" + lang

	l.mu.RLock()
	if e, ok := l.cache[key]; ok && time.Now().Before(e.expires) {
		l.mu.RUnlock()
		return e.page, nil
	}
	l.mu.RUnlock()

	page, err := l.load(slug, lang)
	if err != nil {
		return Page{}, err
	}

	l.mu.Lock()
	l.cache[key] = entry{page: page, expires: time.Now().Add(l.ttl)}
	l.mu.Unlock()
	return page, nil
}

func (l *Library) load(slug, lang string) (Page, error) {
	path := filepath.Join(l.dir, slug+"."+lang+".md")
	raw, err := os.ReadFile(path)
	if err != nil && lang != l.fallback {
		lang = l.fallback
		path = filepath.Join(l.dir, slug+"."+lang+".md")
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return Page{}, fmt.Errorf("cms: page %s: %w", slug, err)
	}
	info, _ := os.Stat(path)

	fm, body := splitFrontMatter(raw)
	var meta frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return Page{}, fmt.Errorf("cms: front matter %s: %w", slug, err)
		}
	}

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("cms: render %s: %w", slug, err)
	}
	clean := l.sanitize.SanitizeBytes(buf.Bytes())

	page := Page{
		Slug:    slug,
		Lang:    lang,
		Title:   meta.Title,
		Summary: meta.Summary,
		Icon:    meta.Icon,
		Body:    template.HTML(clean),
	}
	if info != nil {
		page.UpdatedAt = info.ModTime()
	}
	return page, nil
}

// splitFrontMatter separates a leading "---" YAML block from the markdown
// body; files without one are all body.
func splitFrontMatter(raw []byte) (fm, body []byte) {
	const delim = "---"
	s := string(raw)
	if !strings.HasPrefix(s, delim) {
		return nil, raw
	}
	rest := s[len(delim):]
	idx := strings.Index(rest, "\n"+delim)
	if idx < 0 {
		return nil, raw
	}
	fm = []byte(rest[:idx])
	body = []byte(strings.TrimPrefix(rest[idx+1+len(delim):], "\n"))
	return fm, body
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
