// Package i18n resolves localized display strings from WebExtension-style
// message catalogs.
package i18n

import (
	"regexp"
	"strconv"
	"strings"
)

// Message is one catalog entry, in the shape used by _locales/<lang>/messages.json.
type Message struct {
	Message      string                 `json:"message" toml:"message"`
	Description  string                 `json:"description,omitempty" toml:"description,omitempty"`
	Placeholders map[string]Placeholder `json:"placeholders,omitempty" toml:"placeholders,omitempty"`
}

// Placeholder is a named placeholder; Content usually refers to a positional
// substitution such as "$1".
type Placeholder struct {
	Content string `json:"content" toml:"content"`
	Example string `json:"example,omitempty" toml:"example,omitempty"`
}

// Messages maps message names to entries.
type Messages map[string]Message

var (
	namedPlaceholder = regexp.MustCompile(`\$([A-Za-z0-9_@]+)\$`)
	positional       = regexp.MustCompile(`\$\$|\$[1-9]`)
)

// render expands named placeholders, then positional substitutions.
// Named placeholders match case-insensitively; unknown ones are left as-is.
// Missing positional substitutions become empty strings and "$$" becomes "$".
func (m Message) render(substitutions []string) string {
	text := m.Message
	if len(m.Placeholders) > 0 {
		lookup := make(map[string]string, len(m.Placeholders))
		for name, p := range m.Placeholders {
			lookup[strings.ToLower(name)] = p.Content
		}
		text = namedPlaceholder.ReplaceAllStringFunc(text, func(match string) string {
			name := strings.ToLower(strings.Trim(match, "$"))
			if content, ok := lookup[name]; ok {
				return content
			}
			return match
		})
	}
	if !strings.Contains(text, "$") {
		return text
	}
	return positional.ReplaceAllStringFunc(text, func(match string) string {
		if match == "$$" {
			return "$"
		}
		idx, _ := strconv.Atoi(match[1:])
		if idx <= len(substitutions) {
			return substitutions[idx-1]
		}
		return ""
	})
}
