package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kevindowling/logcat-viewer/internal/logcat"
)

// renderContent renders the visible records as colorized viewport lines.
func (m *Model) renderContent() string {
	styles := m.theme.Styles()

	if len(m.visible) == 0 {
		if m.total > 0 {
			return styles.MutedText.Render("No entries match the active filters")
		}
		return styles.MutedText.Render("No log entries")
	}

	matchSet := make(map[int]bool, len(m.searchMatches))
	for _, idx := range m.searchMatches {
		matchSet[idx] = true
	}
	activeMatch := -1
	if len(m.searchMatches) > 0 && m.searchMatchIdx < len(m.searchMatches) {
		activeMatch = m.searchMatches[m.searchMatchIdx]
	}

	var b strings.Builder
	for i, rec := range m.visible {
		var line string
		switch {
		case i == activeMatch:
			line = m.renderActiveMatch(rec)
		case matchSet[i]:
			line = styles.AccentText.Render(displayLine(rec))
		default:
			line = m.colorizeRecord(rec, styles)
		}
		b.WriteString(line)
		if i < len(m.visible)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// displayLine is the plain text shown for a record: the canonical formatted
// form, which for unparsed records is the raw line itself.
func displayLine(rec logcat.Record) string {
	return logcat.FormatRecord(rec)
}

// renderActiveMatch highlights the current search hit with an inverted
// warning background.
func (m *Model) renderActiveMatch(rec logcat.Record) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Warning)).
		Foreground(lipgloss.Color(m.theme.Background))
	return style.Render(displayLine(rec))
}

// colorizeRecord renders one record with per-field styling: faint line
// number and timestamp, level-colored priority letter, accent tag. Unparsed
// records show their raw text in the fallback priority's color so coarse
// severity is still visible.
func (m *Model) colorizeRecord(rec logcat.Record, styles Styles) string {
	num := styles.FaintText.Render(fmt.Sprintf("%5d │ ", rec.LineNumber))

	if !rec.Parsed() {
		if rec.Priority.Known() {
			return num + m.priorityStyle(rec.Priority, styles).Render(rec.Raw)
		}
		return num + styles.MutedText.Render(rec.Raw)
	}

	var b strings.Builder
	b.WriteString(num)
	if rec.HasTimestamp() {
		b.WriteString(styles.FaintText.Render(rec.Timestamp.Format("01-02 15:04:05.000")))
		b.WriteByte(' ')
	}
	if rec.PID >= 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%5d", rec.PID)))
		b.WriteByte(' ')
	}
	if rec.TID >= 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%5d", rec.TID)))
		b.WriteByte(' ')
	}
	level := m.priorityStyle(rec.Priority, styles)
	b.WriteString(level.Render(rec.Priority.Letter()))
	b.WriteByte(' ')
	if rec.Tag != "" {
		b.WriteString(styles.AccentText.Render(rec.Tag))
	}
	b.WriteString(styles.FaintText.Render(": "))
	b.WriteString(styles.Text.Render(rec.Message))
	return b.String()
}

// priorityStyle maps a level to its theme style.
func (m *Model) priorityStyle(p logcat.Priority, styles Styles) lipgloss.Style {
	switch p {
	case logcat.PriorityVerbose:
		return styles.VerboseText
	case logcat.PriorityDebug:
		return styles.DebugText
	case logcat.PriorityInfo:
		return styles.InfoText
	case logcat.PriorityWarning:
		return styles.WarningText
	case logcat.PriorityError:
		return styles.ErrorText
	case logcat.PriorityFatal:
		return styles.FatalText
	default:
		return styles.MutedText
	}
}
