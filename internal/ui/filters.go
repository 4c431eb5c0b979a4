package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Filter modal field order.
const (
	filterFieldTag = iota
	filterFieldMessage
	filterFieldPid
	filterFieldCount
)

// initFilterInputs initializes the text inputs for the filter modal.
func (m *Model) initFilterInputs() {
	tagInput := textinput.New()
	tagInput.Placeholder = "e.g. ActivityManager, -chatty, /^My.*/"
	tagInput.CharLimit = 200
	tagInput.Width = 40

	msgInput := textinput.New()
	msgInput.Placeholder = "e.g. timeout, -heartbeat"
	msgInput.CharLimit = 200
	msgInput.Width = 40

	pidInput := textinput.New()
	pidInput.Placeholder = "e.g. 1234"
	pidInput.CharLimit = 10
	pidInput.Width = 40

	m.filterInputs[filterFieldTag] = tagInput
	m.filterInputs[filterFieldMessage] = msgInput
	m.filterInputs[filterFieldPid] = pidInput
}

// openFilters opens the filter modal pre-filled with the applied values.
func (m *Model) openFilters() {
	m.filterInputs[filterFieldTag].SetValue(m.tagExpr)
	m.filterInputs[filterFieldMessage].SetValue(m.messageExpr)
	if m.pidFilter >= 0 {
		m.filterInputs[filterFieldPid].SetValue(strconv.Itoa(m.pidFilter))
	} else {
		m.filterInputs[filterFieldPid].SetValue("")
	}
	m.filterFocusIdx = 0
	for i := range m.filterInputs {
		if i == m.filterFocusIdx {
			m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	m.showFilters = true
}

// handleFiltersKey handles keyboard input for the filter modal.
func (m *Model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.showFilters = false
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.applyFilters()
		m.showFilters = false
		m.refreshView()
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Down):
		m.moveFilterFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Up):
		m.moveFilterFocus(-1)
		return m, nil

	case msg.String() == "ctrl+c":
		for i := range m.filterInputs {
			m.filterInputs[i].SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocusIdx], cmd = m.filterInputs[m.filterFocusIdx].Update(msg)
	return m, cmd
}

func (m *Model) moveFilterFocus(delta int) {
	m.filterInputs[m.filterFocusIdx].Blur()
	m.filterFocusIdx = (m.filterFocusIdx + delta + filterFieldCount) % filterFieldCount
	m.filterInputs[m.filterFocusIdx].Focus()
}

// applyFilters copies the modal values into the applied filter state. A
// non-numeric pid clears the pid filter rather than erroring.
func (m *Model) applyFilters() {
	m.tagExpr = strings.TrimSpace(m.filterInputs[filterFieldTag].Value())
	m.messageExpr = strings.TrimSpace(m.filterInputs[filterFieldMessage].Value())

	m.pidFilter = -1
	if raw := strings.TrimSpace(m.filterInputs[filterFieldPid].Value()); raw != "" {
		if pid, err := strconv.Atoi(raw); err == nil && pid >= 0 {
			m.pidFilter = pid
		}
	}
	m.clearSearch()
}

// filtersActive reports whether any filter beyond the minimum level is set.
func (m *Model) filtersActive() bool {
	return m.tagExpr != "" || m.messageExpr != "" || m.pidFilter >= 0
}

// renderFilters renders the filter modal.
func (m *Model) renderFilters() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Log Filters"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 48)))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Comma-separated terms; -term excludes, /re/ is a regex."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Leave blank to disable a filter."))
	b.WriteString("\n\n")

	labels := [filterFieldCount]string{"Tag:     ", "Message: ", "PID:     "}
	for i, label := range labels {
		if i == m.filterFocusIdx {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(m.filterInputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel  •  Ctrl+C: Clear"))

	modal := styles.Border.Padding(1, 2).Width(58)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
	)
}
