package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales
var builtin embed.FS

const (
	jsonCatalog = "messages.json"
	tomlCatalog = "messages.toml"
)

// Bundle holds the catalogs of every known locale.
type Bundle struct {
	defaultTag language.Tag
	catalogs   map[language.Tag]Messages
}

// NewBundle creates an empty bundle whose fallback locale is defaultLocale.
func NewBundle(defaultLocale string) (*Bundle, error) {
	tag, err := ParseLocale(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: default locale: %w", err)
	}
	return &Bundle{defaultTag: tag, catalogs: make(map[language.Tag]Messages)}, nil
}

// NewDefaultBundle creates a bundle preloaded with the built-in catalogs.
func NewDefaultBundle(defaultLocale string) (*Bundle, error) {
	b, err := NewBundle(defaultLocale)
	if err != nil {
		return nil, err
	}
	sub, err := fs.Sub(builtin, "locales")
	if err != nil {
		return nil, err
	}
	if err := b.LoadFS(sub); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseLocale accepts both extension directory names (pt_BR) and BCP 47 tags (pt-BR).
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return language.Und, errors.New("empty locale")
	}
	return language.Parse(locale)
}

// Add merges msgs into the catalog for locale. Later entries win.
func (b *Bundle) Add(locale string, msgs Messages) error {
	tag, err := ParseLocale(locale)
	if err != nil {
		return fmt.Errorf("i18n: locale %q: %w", locale, err)
	}
	catalog, ok := b.catalogs[tag]
	if !ok {
		catalog = make(Messages, len(msgs))
		b.catalogs[tag] = catalog
	}
	for name, m := range msgs {
		catalog[name] = m
	}
	return nil
}

// LoadFS reads <locale>/messages.json and <locale>/messages.toml from every
// top-level directory of fsys. Directories without a catalog are skipped.
func (b *Bundle) LoadFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("i18n: list locales: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		for _, name := range []string{jsonCatalog, tomlCatalog} {
			msgs, err := readCatalog(fsys, path.Join(locale, name))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return err
			}
			if err := b.Add(locale, msgs); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadDir is LoadFS over a directory on disk. A missing directory is not an error.
func (b *Bundle) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("i18n: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("i18n: %s is not a directory", dir)
	}
	return b.LoadFS(os.DirFS(dir))
}

func readCatalog(fsys fs.FS, name string) (Messages, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	msgs := Messages{}
	if strings.HasSuffix(name, ".toml") {
		err = toml.Unmarshal(data, &msgs)
	} else {
		err = json.Unmarshal(data, &msgs)
	}
	if err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	return msgs, nil
}

// Locales returns the loaded locales as BCP 47 strings, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.catalogs))
	for tag := range b.catalogs {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// supported lists the loaded tags with the default first, as the matcher
// treats its first entry as the fallback.
func (b *Bundle) supported() []language.Tag {
	tags := []language.Tag{b.defaultTag}
	rest := make([]language.Tag, 0, len(b.catalogs))
	for tag := range b.catalogs {
		if tag != b.defaultTag {
			rest = append(rest, tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	return append(tags, rest...)
}

// Translator picks the best locale for the preferred list and returns a
// Translator that falls back to the default locale.
func (b *Bundle) Translator(preferred ...string) *Translator {
	prefs := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := ParseLocale(p); err == nil {
			prefs = append(prefs, tag)
		}
	}

	supported := b.supported()
	chosen := b.defaultTag
	if len(prefs) > 0 {
		_, idx, conf := language.NewMatcher(supported).Match(prefs...)
		if conf != language.No {
			chosen = supported[idx]
		}
	}

	chain := []Messages{}
	if msgs, ok := b.catalogs[chosen]; ok {
		chain = append(chain, msgs)
	}
	if chosen != b.defaultTag {
		if base, conf := chosen.Base(); conf != language.No {
			if parent, err := language.Compose(base); err == nil && parent != chosen {
				if msgs, ok := b.catalogs[parent]; ok {
					chain = append(chain, msgs)
				}
			}
		}
		if msgs, ok := b.catalogs[b.defaultTag]; ok {
			chain = append(chain, msgs)
		}
	}
	return &Translator{locale: chosen, chain: chain, onMiss: logMiss}
}

// PreferredFromEnv returns the user's locale preferences from LC_ALL,
// LC_MESSAGES and LANG, skipping the C and POSIX locales.
func PreferredFromEnv() []string {
	var out []string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(key)
		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		out = append(out, val)
	}
	return out
}
