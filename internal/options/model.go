// Package options implements the interactive options page: it lists the
// data types with their localized labels and toggles them on and off.
package options

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/cbd-helper/internal/app"
	"github.com/cristianoliveira/cbd-helper/internal/colors"
	"github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/host"
	"github.com/cristianoliveira/cbd-helper/internal/i18n"
)

const (
	labelScope      = "dataType"
	shortLabelScope = "shortDataType"
	titleMessage    = "optionSectionTitle_dataTypes"
)

// DataTypes reads and toggles the data type configuration.
type DataTypes interface {
	Show(ctx context.Context) (app.Snapshot, error)
	Toggle(ctx context.Context, id string) (bool, error)
}

// Pages opens the auxiliary pages. Optional.
type Pages interface {
	ShowContributePage(ctx context.Context, action string) (host.Tab, error)
	ShowProjectPage(ctx context.Context) (host.Tab, error)
}

type toggledMsg struct {
	id      string
	enabled bool
	err     error
}

type pageOpenedMsg struct {
	page string
	err  error
}

// Model is the bubbletea model of the options page.
type Model struct {
	ctx       context.Context
	dataTypes DataTypes
	pages     Pages
	loc       i18n.Localizer

	title    string
	items    []app.ListItem
	disabled map[string]bool
	cursor   int
	width    int

	keys         keyMap
	help         help.Model
	errorHandler *errors.TUIHandler
	status       errors.Message
	hasStatus    bool
}

// NewModel loads the current configuration and builds the options model.
// pages may be nil, which disables the page shortcuts.
func NewModel(ctx context.Context, dataTypes DataTypes, pages Pages, loc i18n.Localizer) (*Model, error) {
	if dataTypes == nil || loc == nil {
		panic("options.NewModel: dataTypes and localizer dependencies cannot be nil")
	}
	snapshot, err := dataTypes.Show(ctx)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}

	labels := app.ListItems(loc, app.DataTypesCatalog(snapshot.DataTypes), app.LabelOptions{
		Scope:      labelScope,
		ShortScope: shortLabelScope,
	})
	items, _ := labels.Group(app.KeyDataTypes)

	m := &Model{
		ctx:       ctx,
		dataTypes: dataTypes,
		pages:     pages,
		loc:       loc,
		title:     loc.Text(titleMessage),
		items:     items,
		disabled:  make(map[string]bool, len(snapshot.DisabledDataTypes)),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	for _, id := range snapshot.DisabledDataTypes {
		m.disabled[id] = true
	}
	if pages == nil {
		m.keys.Contribute.SetEnabled(false)
		m.keys.Project.SetEnabled(false)
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
		m.hasStatus = msg.Text != ""
	})
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case toggledMsg:
		if msg.err != nil {
			errors.Report(m.errorHandler, msg.err)
			return m, nil
		}
		m.disabled[msg.id] = !msg.enabled
		state := "disabled"
		if msg.enabled {
			state = "enabled"
		}
		m.errorHandler.Success(fmt.Sprintf("%s %s", m.labelOf(msg.id), state))
	case pageOpenedMsg:
		if msg.err != nil {
			errors.Report(m.errorHandler, msg.err)
			return m, nil
		}
		m.errorHandler.Info("opened " + msg.page)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(m.items) > 0 {
			return m, m.toggle(m.items[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Contribute):
		return m, m.openPage("contribute page", func(ctx context.Context) error {
			_, err := m.pages.ShowContributePage(ctx, "")
			return err
		})
	case key.Matches(msg, m.keys.Project):
		return m, m.openPage("project page", func(ctx context.Context) error {
			_, err := m.pages.ShowProjectPage(ctx)
			return err
		})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) toggle(id string) tea.Cmd {
	ctx, dataTypes := m.ctx, m.dataTypes
	return func() tea.Msg {
		enabled, err := dataTypes.Toggle(ctx, id)
		colors.StructuredDebug("options", "toggle", statusOf(err), err, id, map[string]any{"enabled": enabled})
		return toggledMsg{id: id, enabled: enabled, err: err}
	}
}

func (m *Model) openPage(page string, open func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		err := open(ctx)
		colors.StructuredDebug("options", "open_page", statusOf(err), err, page, nil)
		return pageOpenedMsg{page: page, err: err}
	}
}

func (m *Model) labelOf(id string) string {
	for _, item := range m.items {
		if item.ID == id && item.Label != "" {
			return item.Label
		}
	}
	return id
}

// Enabled returns the data types currently enabled, in display order.
func (m *Model) Enabled() []string {
	out := make([]string, 0, len(m.items))
	for _, item := range m.items {
		if !m.disabled[item.ID] {
			out = append(out, item.ID)
		}
	}
	return out
}

func statusOf(err error) string {
	if err != nil {
		return "failed"
	}
	return "completed"
}
