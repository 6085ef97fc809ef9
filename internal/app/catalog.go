package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidCatalog is returned for catalogs with unnamed or repeated groups.
var ErrInvalidCatalog = errors.New("invalid catalog")

type catalogFile struct {
	Groups []Group `toml:"group"`
}

// ParseCatalog decodes a TOML catalog made of [[group]] tables:
//
//	[[group]]
//	name = "dataTypes"
//	items = ["history", "cookies"]
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(file.Groups))
	for i, g := range file.Groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: group %d has no name", ErrInvalidCatalog, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate group %q", ErrInvalidCatalog, name)
		}
		seen[name] = true
		file.Groups[i].Name = name
		if file.Groups[i].Items == nil {
			file.Groups[i].Items = []string{}
		}
	}
	return Catalog(file.Groups), nil
}

// LoadCatalog reads a TOML catalog from path.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DataTypesCatalog is a single-group catalog of the given data types.
func DataTypesCatalog(dataTypes []string) Catalog {
	items := make([]string, len(dataTypes))
	copy(items, dataTypes)
	return Catalog{{Name: KeyDataTypes, Items: items}}
}
