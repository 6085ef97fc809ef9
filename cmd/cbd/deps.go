/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/cbd-helper/cmd"
	"github.com/cristianoliveira/cbd-helper/internal/app"
	"github.com/cristianoliveira/cbd-helper/internal/colors"
	"github.com/cristianoliveira/cbd-helper/internal/config"
	"github.com/cristianoliveira/cbd-helper/internal/host"
	"github.com/cristianoliveira/cbd-helper/internal/host/desktop"
	"github.com/cristianoliveira/cbd-helper/internal/host/tmux"
	"github.com/cristianoliveira/cbd-helper/internal/i18n"
	"github.com/cristianoliveira/cbd-helper/internal/options"
	"github.com/cristianoliveira/cbd-helper/internal/storage"
	"github.com/cristianoliveira/cbd-helper/internal/version"
)

const (
	hostBackendTmux    = "tmux"
	hostBackendDesktop = "desktop"
)

// cliClient builds the collaborators on first use so that commands which do
// not need a store or a host never open one.
type cliClient struct {
	storeOnce sync.Once
	store     storage.Store
	storeErr  error

	locOnce sync.Once
	loc     *i18n.Translator
	locErr  error

	hostOnce sync.Once
	host     host.Host
	hostErr  error

	runner options.ProgramRunner
}

var runtimeClient = &cliClient{runner: options.NewDefaultProgramRunner()}

func (c *cliClient) Store() (storage.Store, error) {
	c.storeOnce.Do(func() {
		c.store, c.storeErr = storage.NewFromConfig()
	})
	return c.store, c.storeErr
}

func (c *cliClient) Localizer() (i18n.Localizer, error) {
	c.locOnce.Do(func() {
		c.loc, c.locErr = newTranslator()
	})
	if c.locErr != nil {
		return nil, c.locErr
	}
	return c.loc, nil
}

func newTranslator() (*i18n.Translator, error) {
	bundle, err := i18n.NewDefaultBundle(config.Get("default_locale", "en"))
	if err != nil {
		return nil, err
	}
	if err := bundle.LoadDir(config.Get("locales_dir", "")); err != nil {
		return nil, err
	}
	preferred := i18n.PreferredFromEnv()
	if locale := config.Get("locale", ""); locale != "" {
		preferred = []string{locale}
	}
	tr := bundle.Translator(preferred...)
	colors.StructuredDebug("i18n", "negotiate", "completed", nil, tr.Locale(), map[string]any{"preferred": preferred})
	return tr, nil
}

func (c *cliClient) Host(ctx context.Context) (host.Host, error) {
	c.hostOnce.Do(func() {
		c.host, c.hostErr = newHost(ctx)
	})
	return c.host, c.hostErr
}

func newHost(ctx context.Context) (host.Host, error) {
	urls, err := host.NewURLResolver(config.Get("extension_base_url", ""))
	if err != nil {
		return host.Host{}, err
	}

	backend := strings.ToLower(config.Get("host_backend", hostBackendTmux))
	switch backend {
	case hostBackendTmux:
		client := tmux.NewDefaultClient(tmux.WithSocketName(config.Get("tmux_socket", "")))
		if !tmux.HasSession(ctx, client) {
			return host.Host{}, fmt.Errorf("%w (set host_backend = %q to use the system browser)", tmux.ErrTmuxNotRunning, hostBackendDesktop)
		}
		h := tmux.New(client,
			tmux.WithBrowserCommand(config.Get("browser_command", tmux.DefaultBrowserCommand)),
			tmux.WithDisplayDuration(time.Duration(config.GetInt("notification_duration_ms", 4000))*time.Millisecond),
		)
		return host.Host{Tabs: h, Notifications: h, URLs: urls}, nil
	case hostBackendDesktop:
		h := desktop.New()
		return host.Host{Tabs: h, Notifications: h, URLs: urls}, nil
	default:
		return host.Host{}, fmt.Errorf("unknown host backend %q", backend)
	}
}

func (c *cliClient) dataTypes() (*app.DataTypesUseCase, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}
	return app.NewDataTypesUseCase(store), nil
}

func (c *cliClient) pageLauncher(ctx context.Context) (*app.PageLauncher, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}
	h, err := c.Host(ctx)
	if err != nil {
		return nil, err
	}
	return app.NewPageLauncher(store, h.Tabs, h.URLs,
		app.WithProjectURL(config.Get("project_url", config.DefaultProjectURL))), nil
}

func (c *cliClient) EnabledDataTypes(ctx context.Context) ([]string, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}
	return app.EnabledDataTypesFromStore(ctx, store)
}

func (c *cliClient) ShowDataTypes(ctx context.Context) (app.Snapshot, error) {
	u, err := c.dataTypes()
	if err != nil {
		return app.Snapshot{}, err
	}
	return u.Show(ctx)
}

func (c *cliClient) SetDataTypes(ctx context.Context, ids []string) error {
	u, err := c.dataTypes()
	if err != nil {
		return err
	}
	return u.Set(ctx, ids)
}

func (c *cliClient) DisableDataTypes(ctx context.Context, ids ...string) error {
	u, err := c.dataTypes()
	if err != nil {
		return err
	}
	return u.Disable(ctx, ids...)
}

func (c *cliClient) EnableDataTypes(ctx context.Context, ids ...string) error {
	u, err := c.dataTypes()
	if err != nil {
		return err
	}
	return u.Enable(ctx, ids...)
}

func (c *cliClient) Notify(ctx context.Context, req app.NotificationRequest) (string, error) {
	loc, err := c.Localizer()
	if err != nil {
		return "", err
	}
	h, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	return app.NewNotifier(h.Notifications, loc).Show(ctx, req)
}

func (c *cliClient) ShowContributePage(ctx context.Context, action string) (host.Tab, error) {
	p, err := c.pageLauncher(ctx)
	if err != nil {
		return host.Tab{}, err
	}
	return p.ShowContributePage(ctx, action)
}

func (c *cliClient) ShowProjectPage(ctx context.Context) (host.Tab, error) {
	p, err := c.pageLauncher(ctx)
	if err != nil {
		return host.Tab{}, err
	}
	return p.ShowProjectPage(ctx)
}

func (c *cliClient) ContributePageLastOpen(ctx context.Context) (time.Time, bool, error) {
	store, err := c.Store()
	if err != nil {
		return time.Time{}, false, err
	}
	// Reading the marker needs no host.
	return app.ContributePageLastOpen(ctx, store)
}

func (c *cliClient) RunOptions(ctx context.Context) error {
	u, err := c.dataTypes()
	if err != nil {
		return err
	}
	loc, err := c.Localizer()
	if err != nil {
		return err
	}
	var pages options.Pages
	if p, err := c.pageLauncher(ctx); err == nil {
		pages = p
	} else {
		colors.Debug("page shortcuts disabled:", err.Error())
	}
	model, err := options.NewModel(ctx, u, pages, loc)
	if err != nil {
		return err
	}
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()
	return c.runner.Run(model)
}

func (c *cliClient) Version() string {
	return version.String()
}

// Close releases the store if it was opened.
func (c *cliClient) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(
		NewEnabledCmd(runtimeClient),
		NewDataTypesCmd(runtimeClient),
		NewLabelsCmd(runtimeClient),
		NewNotifyCmd(runtimeClient),
		NewContributeCmd(runtimeClient),
		NewProjectCmd(runtimeClient),
		NewOptionsCmd(runtimeClient),
		NewVersionCmd(runtimeClient),
	)
}
