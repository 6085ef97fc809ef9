package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "moz extension", base: "moz-extension://abc", path: "/src/contribute/index.html", want: "moz-extension://abc/src/contribute/index.html"},
		{name: "trailing slash", base: "chrome-extension://id/", path: "/src/contribute/index.html", want: "chrome-extension://id/src/contribute/index.html"},
		{name: "relative path", base: "chrome-extension://id", path: "src/a.html", want: "chrome-extension://id/src/a.html"},
		{name: "file base", base: "file:///home/u/.config/cbd-helper/extension", path: "/src/contribute/index.html", want: "file:///home/u/.config/cbd-helper/extension/src/contribute/index.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewURLResolver(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ExtensionURL(tt.path))
		})
	}
}

func TestNewURLResolverRequiresScheme(t *testing.T) {
	_, err := NewURLResolver("/just/a/path")
	assert.ErrorContains(t, err, "missing scheme")
}
