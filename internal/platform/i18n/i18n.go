// Package i18n holds the locale tables as embedded YAML catalogs and resolves
// display strings with a two-level fallback: the requested language first,
// then the default language, then the literal the caller supplies.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"staffdesk/internal/domain/language"
)

//go:embed locales/*.yaml
var embeddedFS embed.FS

// Catalog is the full set of locale tables, keyed by language code.
type Catalog struct {
	tables      map[string]map[string]any
	defaultLang string
}

// Load parses the catalogs embedded in this package.
func Load() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS parses every locales/*.yaml file in fsys. The language code is
// the file name without extension.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	catalog := &Catalog{
		tables:      make(map[string]map[string]any, len(paths)),
		defaultLang: language.Default,
	}
	for _, filePath := range paths {
		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", filePath, err)
		}
		var table map[string]any
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filePath, err)
		}
		code := strings.TrimSuffix(path.Base(filePath), ".yaml")
		catalog.tables[code] = table
	}

	if _, ok := catalog.tables[catalog.defaultLang]; !ok {
		return nil, fmt.Errorf("default locale %q missing from catalogs", catalog.defaultLang)
	}
	return catalog, nil
}

// Languages lists the language codes with a loaded table.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.tables))
	for code := range c.tables {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves the string at the dotted path for lang. An unknown language
// or missing key falls back to the default language's table; if the key is
// absent there too, the supplied literal wins.
func (c *Catalog) Lookup(lang, dottedPath, fallback string) string {
	if value, ok := c.resolve(lang, dottedPath); ok {
		return value
	}
	if lang != c.defaultLang {
		if value, ok := c.resolve(c.defaultLang, dottedPath); ok {
			return value
		}
	}
	return fallback
}

// List resolves a string list at the dotted path, with the same fallback
// chain as Lookup but an empty list as the final fallback.
func (c *Catalog) List(lang, dottedPath string) []string {
	if values, ok := c.resolveList(lang, dottedPath); ok {
		return values
	}
	if lang != c.defaultLang {
		if values, ok := c.resolveList(c.defaultLang, dottedPath); ok {
			return values
		}
	}
	return nil
}

func (c *Catalog) resolve(lang, dottedPath string) (string, bool) {
	node, ok := c.walk(lang, dottedPath)
	if !ok {
		return "", false
	}
	value, ok := node.(string)
	return value, ok
}

func (c *Catalog) resolveList(lang, dottedPath string) ([]string, bool) {
	node, ok := c.walk(lang, dottedPath)
	if !ok {
		return nil, false
	}
	raw, ok := node.([]any)
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		value, ok := item.(string)
		if !ok {
			return nil, false
		}
		values = append(values, value)
	}
	return values, true
}

func (c *Catalog) walk(lang, dottedPath string) (any, bool) {
	table, ok := c.tables[lang]
	if !ok {
		return nil, false
	}
	var node any = map[string]any(table)
	for _, segment := range strings.Split(dottedPath, ".") {
		branch, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = branch[segment]
		if !ok {
			return nil, false
		}
	}
	return node, true
}
