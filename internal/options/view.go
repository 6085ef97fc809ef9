package options

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/cbd-helper/internal/errors"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	rowStyle      = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(1).Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("12"))
	shortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusStyles = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// View implements tea.Model.
func (m *Model) View() string {
	var s strings.Builder

	title := m.title
	if title == "" {
		title = "Data types"
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n")

	if len(m.items) == 0 {
		s.WriteString(emptyStyle.Render("No data types configured"))
		s.WriteString("\n")
	}
	for i, item := range m.items {
		check := "[x]"
		if m.disabled[item.ID] {
			check = "[ ]"
		}
		label := item.Label
		if label == "" {
			label = item.ID
		}
		line := check + " " + label
		if item.ShortLabel != nil && *item.ShortLabel != "" && *item.ShortLabel != label {
			line += " " + shortStyle.Render("("+*item.ShortLabel+")")
		}
		if i == m.cursor {
			s.WriteString(selectedStyle.Render(line))
		} else {
			s.WriteString(rowStyle.Render(line))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.hasStatus {
		s.WriteString(statusStyles[m.status.Type].Render(m.status.Text))
		s.WriteString("\n")
	}
	s.WriteString(m.help.View(m.keys))
	return s.String()
}
