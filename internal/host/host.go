// Package host defines the browser-side capabilities the helpers depend on:
// tabs, notifications and extension URL resolution.
package host

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Tab is an open tab. Index is its zero-based position in the window.
type Tab struct {
	ID    string
	Index int
	URL   string
}

// CreateTabOptions controls where a new tab is opened.
type CreateTabOptions struct {
	Index int
}

// NotificationOptions describes a notification to display.
type NotificationOptions struct {
	Type    string
	IconURL string
	Title   string
	Message string
}

// Tabs queries and opens tabs.
type Tabs interface {
	ActiveTab(ctx context.Context) (Tab, error)
	CreateTab(ctx context.Context, url string, opts CreateTabOptions) (Tab, error)
}

// Notifications creates notifications. Create returns the notification ID
// reported by the host.
type Notifications interface {
	Create(ctx context.Context, id string, opts NotificationOptions) (string, error)
}

// URLResolver maps a path inside the extension package to a full URL.
type URLResolver interface {
	ExtensionURL(path string) string
}

// Host bundles the capabilities of one backend.
type Host struct {
	Tabs          Tabs
	Notifications Notifications
	URLs          URLResolver
}

// BaseURLResolver resolves extension paths against a fixed base URL.
type BaseURLResolver struct {
	base *url.URL
}

var _ URLResolver = (*BaseURLResolver)(nil)

// NewURLResolver parses base, which must be absolute.
func NewURLResolver(base string) (*BaseURLResolver, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("extension base url: %w", err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("extension base url %q: missing scheme", base)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return &BaseURLResolver{base: u}, nil
}

// ExtensionURL implements URLResolver. path is treated as rooted at the base.
func (r *BaseURLResolver) ExtensionURL(path string) string {
	u := *r.base
	u.Path = r.base.Path + "/" + strings.TrimPrefix(path, "/")
	return u.String()
}
