// Package i18n loads per-language JSON dictionaries and resolves the
// preferred language from Accept-Language. Spanish is the house language;
// English is offered as a courtesy.
package i18n

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Bundle holds the loaded dictionaries.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
}

// Load reads <lang>.json files from dir. The fallback locale must load;
// other locales may be missing.
func Load(dir, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"es", "en"}
	}
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	for _, lang := range supported {
		b.supported[lang] = struct{}{}
		raw, err := os.ReadFile(filepath.Join(dir, lang+".json"))
		if err != nil {
			if lang == fallback {
				return nil, fmt.Errorf("load locale %s: %w", lang, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal locale %s: %w", lang, err)
		}
		b.dict[lang] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// Supported lists the configured languages, sorted.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for lang := range b.supported {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// T translates key in lang, trying the fallback dictionary and finally the
// key itself.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Resolve picks the best supported base language from an Accept-Language
// header value.
func (b *Bundle) Resolve(acceptLang string) string {
	type pref struct {
		base string
		q    float64
		pos  int
	}
	var prefs []pref
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			if param := strings.TrimSpace(p[sc+1:]); strings.HasPrefix(param, "q=") {
				if v, err := strconv.ParseFloat(strings.TrimPrefix(param, "q="), 64); err == nil {
					q = math.Min(math.Max(v, 0), 1)
				}
			}
			p = strings.TrimSpace(p[:sc])
		}
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			p = p[:dash]
		}
		prefs = append(prefs, pref{base: strings.ToLower(p), q: q, pos: i})
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	for _, p := range prefs {
		if _, ok := b.supported[p.base]; ok {
			return p.base
		}
	}
	return b.fallback
}
