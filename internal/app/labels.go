package app

import "github.com/cristianoliveira/cbd-helper/internal/i18n"

// Group is a named, ordered list of item IDs.
type Group struct {
	Name  string   `toml:"name" json:"name"`
	Items []string `toml:"items" json:"items"`
}

// Catalog is an ordered list of groups.
type Catalog []Group

// LabelOptions selects the message name prefixes for labels.
type LabelOptions struct {
	Scope      string
	ShortScope string
}

// ListItem is a catalog item with resolved display text.
// ShortLabel is nil unless a short scope was requested.
type ListItem struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	ShortLabel *string `json:"shortLabel,omitempty"`
}

// GroupLabels holds the list items of one catalog group.
type GroupLabels struct {
	Name  string     `json:"name"`
	Items []ListItem `json:"items"`
}

// Labels preserves catalog group order.
type Labels []GroupLabels

// Group returns the items of the named group.
func (l Labels) Group(name string) ([]ListItem, bool) {
	for _, g := range l {
		if g.Name == name {
			return g.Items, true
		}
	}
	return nil, false
}

// ListItems resolves the label of every catalog item. Message names are
// "<scope>_<id>", or the bare id when the scope is empty.
func ListItems(loc i18n.Localizer, catalog Catalog, opts LabelOptions) Labels {
	labels := make(Labels, 0, len(catalog))
	for _, group := range catalog {
		items := make([]ListItem, 0, len(group.Items))
		for _, id := range group.Items {
			item := ListItem{ID: id, Label: loc.Text(scopedKey(opts.Scope, id))}
			if opts.ShortScope != "" {
				short := loc.Text(scopedKey(opts.ShortScope, id))
				item.ShortLabel = &short
			}
			items = append(items, item)
		}
		labels = append(labels, GroupLabels{Name: group.Name, Items: items})
	}
	return labels
}

func scopedKey(scope, id string) string {
	if scope == "" {
		return id
	}
	return scope + "_" + id
}
