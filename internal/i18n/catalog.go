// Package i18n resolves user-facing message text from locale-specific yaml
// catalogs. Errors and responses reference messages by symbolic key
// (e.g. "category.not_found"); the text itself stays a configuration concern.
package i18n

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Catalog holds the message templates of a single locale.
type Catalog struct {
	locale   string
	messages *koanf.Koanf
}

// Load reads <dir>/<locale>.yaml into a catalog.
func Load(dir, locale string) (*Catalog, error) {
	k := koanf.New(".")
	path := filepath.Join(dir, locale+".yaml")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load message catalog %s", path)
	}

	return &Catalog{locale: locale, messages: k}, nil
}

// Locale returns the locale this catalog was loaded for.
func (c *Catalog) Locale() string {
	return c.locale
}

// Resolve looks up the template for key and substitutes {placeholder} tokens
// from params. An unknown key resolves to the key itself so a missing catalog
// entry degrades to something greppable instead of an empty message.
func (c *Catalog) Resolve(key string, params map[string]string) string {
	template := c.messages.String(key)
	if template == "" {
		return key
	}

	if len(params) == 0 {
		return template
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
