package app

import (
	"context"
	"net/url"
	"time"

	"github.com/cristianoliveira/cbd-helper/internal/config"
	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/host"
	"github.com/cristianoliveira/cbd-helper/internal/storage"
)

// ContributePagePath is the contribution page inside the extension.
const ContributePagePath = "/src/contribute/index.html"

// PageLauncher opens extension pages next to the active tab.
type PageLauncher struct {
	store      storage.Store
	tabs       host.Tabs
	urls       host.URLResolver
	now        func() time.Time
	projectURL string
}

// PageLauncherOption configures a PageLauncher.
type PageLauncherOption func(*PageLauncher)

// WithClock replaces the clock used for the last-open marker.
func WithClock(now func() time.Time) PageLauncherOption {
	return func(p *PageLauncher) {
		if now != nil {
			p.now = now
		}
	}
}

// WithProjectURL overrides the project homepage.
func WithProjectURL(u string) PageLauncherOption {
	return func(p *PageLauncher) {
		if u != "" {
			p.projectURL = u
		}
	}
}

// NewPageLauncher creates a PageLauncher.
func NewPageLauncher(store storage.Store, tabs host.Tabs, urls host.URLResolver, opts ...PageLauncherOption) *PageLauncher {
	if store == nil || tabs == nil || urls == nil {
		panic("NewPageLauncher: store, tabs and urls dependencies cannot be nil")
	}
	p := &PageLauncher{
		store:      store,
		tabs:       tabs,
		urls:       urls,
		now:        time.Now,
		projectURL: config.DefaultProjectURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ShowContributePage records the open time, then opens the contribution page
// after the active tab. action, when set, is passed as the action query
// parameter.
func (p *PageLauncher) ShowContributePage(ctx context.Context, action string) (host.Tab, error) {
	err := p.store.Set(ctx, storage.NamespaceSync, map[string]any{
		KeyContribPageLastOpen: p.now().UnixMilli(),
	})
	if err != nil {
		return host.Tab{}, apperrors.Storage("record contribute page open", err)
	}

	target := p.urls.ExtensionURL(ContributePagePath)
	if action != "" {
		target += "?" + url.Values{"action": {action}}.Encode()
	}
	return p.openAfterActive(ctx, target)
}

// ShowProjectPage opens the project homepage after the active tab.
func (p *PageLauncher) ShowProjectPage(ctx context.Context) (host.Tab, error) {
	return p.openAfterActive(ctx, p.projectURL)
}

// ContributePageLastOpen returns when the contribution page was last opened.
// The second result is false if it never was.
func (p *PageLauncher) ContributePageLastOpen(ctx context.Context) (time.Time, bool, error) {
	return ContributePageLastOpen(ctx, p.store)
}

// ContributePageLastOpen reads the contribution page marker from store.
func ContributePageLastOpen(ctx context.Context, store storage.Store) (time.Time, bool, error) {
	ms, ok, err := storage.GetInt64(ctx, store, storage.NamespaceSync, KeyContribPageLastOpen)
	if err != nil {
		return time.Time{}, false, apperrors.Storage("read contribute page open", err)
	}
	if !ok {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms), true, nil
}

func (p *PageLauncher) openAfterActive(ctx context.Context, target string) (host.Tab, error) {
	active, err := p.tabs.ActiveTab(ctx)
	if err != nil {
		return host.Tab{}, apperrors.HostAPI("get active tab", err)
	}
	tab, err := p.tabs.CreateTab(ctx, target, host.CreateTabOptions{Index: active.Index + 1})
	if err != nil {
		return host.Tab{}, apperrors.HostAPI("create tab", err)
	}
	return tab, nil
}
