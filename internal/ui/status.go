package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kevindowling/logcat-viewer/internal/logcat"
	"github.com/kevindowling/logcat-viewer/internal/session"
)

// renderHeader renders the top bar: program name, device, capture state.
func (m *Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Text.Bold(true).Render("logcat-viewer")
	if m.capture.Device != "" {
		left += styles.MutedText.Render("  " + m.capture.Device)
	}
	left += styles.MutedText.Render("  -v " + m.capture.Format)

	state := m.sess.State()
	var badge string
	switch state {
	case session.Running:
		badge = styles.InfoText.Render("● running")
	case session.Error:
		badge = styles.ErrorText.Render("● error")
	default:
		badge = styles.MutedText.Render("○ idle")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(badge) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + badge)
}

// renderStatus renders the bottom bar: counts, level, filters, follow state,
// search prompt or latest session message.
func (m *Model) renderStatus() string {
	styles := m.theme.Styles()

	if m.searchActive {
		return styles.Footer.Width(m.width).Render("search: " + m.searchInput.View())
	}
	if m.searchRegex != nil {
		if len(m.searchMatches) == 0 {
			return styles.Footer.Width(m.width).Render("Pattern not found: " + m.searchQuery)
		}
		return styles.Footer.Width(m.width).Render(fmt.Sprintf(
			"/%s  %d/%d  n: next  N: previous  Esc: clear",
			m.searchQuery, m.searchMatchIdx+1, len(m.searchMatches)))
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d/%d entries", m.filtered, m.total))

	if m.minPriority == logcat.PriorityUnknown {
		parts = append(parts, "level all")
	} else {
		parts = append(parts, "level "+m.minPriority.Letter()+"+")
	}

	if m.filtersActive() {
		var active []string
		if m.tagExpr != "" {
			active = append(active, "tag="+m.tagExpr)
		}
		if m.messageExpr != "" {
			active = append(active, "msg="+m.messageExpr)
		}
		if m.pidFilter >= 0 {
			active = append(active, fmt.Sprintf("pid=%d", m.pidFilter))
		}
		parts = append(parts, "filter: "+strings.Join(active, " "))
	}

	follow := "follow off"
	if m.follow {
		follow = "follow on"
	}
	parts = append(parts, follow)

	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	parts = append(parts, "?: help")

	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  •  "))
}
