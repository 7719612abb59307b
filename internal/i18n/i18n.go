package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Bundle holds one string table per supported language. It is read-only after Load.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
}

// Load reads <lang>.json from fsys for every supported language.
// Every supported language must have a table; the fallback must be supported.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"en", "sv"}
	}
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	for _, l := range supported {
		l = strings.ToLower(strings.TrimSpace(l))
		raw, err := fs.ReadFile(fsys, l+".json")
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
		b.supported = append(b.supported, l)
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Supported returns the supported languages in configuration order.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

func (b *Bundle) isSupported(lang string) bool {
	_, ok := b.dict[lang]
	return ok
}

// Lookup returns the translation for key in lang, falling back to the default table.
func (b *Bundle) Lookup(lang, key string) (string, bool) {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	return "", false
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if v, ok := b.Lookup(lang, key); ok {
		return v
	}
	return key
}

// Missing lists keys present in the fallback table but absent from lang.
func (b *Bundle) Missing(lang string) []string {
	table := b.dict[lang]
	var out []string
	for k := range b.dict[b.fallback] {
		if _, ok := table[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Resolution is the outcome of picking a language for one request.
type Resolution struct {
	Lang      string
	Strings   map[string]string
	Other     string
	OtherName string

	bundle *Bundle
}

// T translates key in the resolved language.
func (r Resolution) T(key string) string {
	if r.bundle == nil {
		if v, ok := r.Strings[key]; ok {
			return v
		}
		return key
	}
	return r.bundle.T(r.Lang, key)
}

// Lookup translates key in the resolved language, reporting whether it exists.
func (r Resolution) Lookup(key string) (string, bool) {
	if r.bundle == nil {
		v, ok := r.Strings[key]
		return v, ok
	}
	return r.bundle.Lookup(r.Lang, key)
}

// IsDefault reports whether the resolved language is the bundle fallback.
func (r Resolution) IsDefault() bool {
	return r.bundle == nil || r.Lang == r.bundle.fallback
}

// Resolve picks the language for a request hint such as the `lang` query parameter.
// Unsupported or empty hints resolve to the fallback; it never fails.
func (b *Bundle) Resolve(hint string) Resolution {
	lang := normalize(hint)
	if !b.isSupported(lang) {
		lang = b.fallback
	}
	res := Resolution{
		Lang:    lang,
		Strings: b.dict[lang],
		bundle:  b,
	}
	for _, l := range b.supported {
		if l != lang {
			res.Other = l
			res.OtherName = b.T(l, "lang.name")
			break
		}
	}
	return res
}

// normalize reduces a BCP 47 tag such as "sv-SE" to its base language.
func normalize(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return ""
	}
	tag, err := language.Parse(hint)
	if err != nil {
		return strings.ToLower(hint)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return strings.ToLower(hint)
	}
	return base.String()
}
