package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/cbd-helper/internal/i18n"
)

func labelLocalizer() i18n.StaticLocalizer {
	return i18n.StaticLocalizer{
		"s_x": "Label X",
		"s_y": "Label Y",
		"t_x": "X",
		"t_y": "Y",
		"x":   "Bare X",
	}
}

func TestListItemsWithScope(t *testing.T) {
	labels := ListItems(labelLocalizer(), Catalog{{Name: "groupA", Items: []string{"x", "y"}}}, LabelOptions{Scope: "s"})

	items, ok := labels.Group("groupA")
	require.True(t, ok)
	assert.Equal(t, []ListItem{
		{ID: "x", Label: "Label X"},
		{ID: "y", Label: "Label Y"},
	}, items)
	for _, item := range items {
		assert.Nil(t, item.ShortLabel)
	}

	data, err := json.Marshal(items)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "shortLabel")
}

func TestListItemsWithShortScope(t *testing.T) {
	labels := ListItems(labelLocalizer(), Catalog{{Name: "groupA", Items: []string{"x", "y"}}}, LabelOptions{Scope: "s", ShortScope: "t"})

	items, ok := labels.Group("groupA")
	require.True(t, ok)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ShortLabel)
	require.NotNil(t, items[1].ShortLabel)
	assert.Equal(t, "X", *items[0].ShortLabel)
	assert.Equal(t, "Y", *items[1].ShortLabel)
}

func TestListItemsWithoutScopeUsesBareID(t *testing.T) {
	labels := ListItems(labelLocalizer(), Catalog{{Name: "g", Items: []string{"x", "missing"}}}, LabelOptions{})

	items, _ := labels.Group("g")
	assert.Equal(t, "Bare X", items[0].Label)
	assert.Equal(t, "", items[1].Label, "misses resolve to the localizer's fallback")
}

func TestListItemsPreservesGroupOrder(t *testing.T) {
	catalog := Catalog{
		{Name: "zeta", Items: []string{"y", "x"}},
		{Name: "alpha", Items: []string{}},
		{Name: "mid", Items: []string{"x"}},
	}

	labels := ListItems(labelLocalizer(), catalog, LabelOptions{Scope: "s"})

	require.Len(t, labels, 3)
	assert.Equal(t, "zeta", labels[0].Name)
	assert.Equal(t, "alpha", labels[1].Name)
	assert.Equal(t, "mid", labels[2].Name)
	assert.Equal(t, "y", labels[0].Items[0].ID)
	assert.Empty(t, labels[1].Items)

	_, ok := labels.Group("nope")
	assert.False(t, ok)
}

func TestListItemsWithBundle(t *testing.T) {
	bundle, err := i18n.NewDefaultBundle("en")
	require.NoError(t, err)

	labels := ListItems(bundle.Translator("de"), DataTypesCatalog([]string{"history", "downloads"}),
		LabelOptions{Scope: "dataType", ShortScope: "shortDataType"})

	items, ok := labels.Group(KeyDataTypes)
	require.True(t, ok)
	assert.Equal(t, "Chronik", items[0].Label)
	assert.Equal(t, "Download history", items[1].Label)
	assert.Equal(t, "Downloads", *items[1].ShortLabel)
}

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(`
[[group]]
name = "dataTypes"
items = ["history", "cookies"]

[[group]]
name = "other"
`))
	require.NoError(t, err)
	assert.Equal(t, Catalog{
		{Name: "dataTypes", Items: []string{"history", "cookies"}},
		{Name: "other", Items: []string{}},
	}, catalog)
}

func TestParseCatalogRejectsBadGroups(t *testing.T) {
	_, err := ParseCatalog([]byte("[[group]]\nitems = [\"a\"]\n"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = ParseCatalog([]byte("[[group]]\nname = \"a\"\n[[group]]\nname = \"a\"\n"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = ParseCatalog([]byte("not toml ="))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[group]]\nname = \"g\"\nitems = [\"x\"]\n"), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, Catalog{{Name: "g", Items: []string{"x"}}}, catalog)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
