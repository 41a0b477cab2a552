// Package i18n loads the embedded translation catalogs and resolves message
// keys for an explicit locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Translator holds one flattened catalog per locale. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	catalogs      map[string]map[string]string
	defaultLocale string
	tags          []language.Tag
	matcher       language.Matcher
}

// NewTranslator loads the embedded catalogs. defaultLocale must be one of them.
func NewTranslator(defaultLocale string) (*Translator, error) {
	return NewTranslatorFromFS(localesFS, "locales", defaultLocale)
}

// NewTranslatorFromFS loads every <locale>.yaml file in dir.
func NewTranslatorFromFS(fsys fs.FS, dir, defaultLocale string) (*Translator, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}

	catalogs := make(map[string]map[string]string, len(files))
	for _, file := range files {
		locale := strings.TrimSuffix(path.Base(file), ".yaml")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", file, err)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", file, err)
		}

		messages := make(map[string]string)
		flatten("", tree, messages)
		catalogs[locale] = messages
	}

	if _, ok := catalogs[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q has no catalog", defaultLocale)
	}

	// The default locale goes first so the matcher falls back to it.
	locales := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	locales = append([]string{defaultLocale}, locales...)

	tags := make([]language.Tag, len(locales))
	for i, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tags[i] = tag
	}

	return &Translator{
		catalogs:      catalogs,
		defaultLocale: defaultLocale,
		tags:          tags,
		matcher:       language.NewMatcher(tags),
	}, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Translate returns the message for key in locale, falling back to the
// default locale and finally to the key itself.
func (t *Translator) Translate(locale, key string) string {
	if msg, ok := t.catalogs[t.ResolveLocale(locale)][key]; ok {
		return msg
	}
	if msg, ok := t.catalogs[t.defaultLocale][key]; ok {
		return msg
	}
	return key
}

// ResolveLocale maps a stored locale such as "nl_BE" or "fr-CA" onto the
// closest catalog.
func (t *Translator) ResolveLocale(locale string) string {
	if _, ok := t.catalogs[locale]; ok {
		return locale
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return t.defaultLocale
	}
	_, index, confidence := t.matcher.Match(tag)
	if confidence == language.No {
		return t.defaultLocale
	}
	return t.tags[index].String()
}

func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// Locales lists the available catalogs, default first.
func (t *Translator) Locales() []string {
	locales := make([]string, len(t.tags))
	for i, tag := range t.tags {
		locales[i] = tag.String()
	}
	return locales
}
