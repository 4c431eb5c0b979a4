package ui

import (
	"regexp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchInput handles keyboard input while the search prompt is open.
func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.searchInput.Value()
		m.searchActive = false
		m.searchInput.Blur()
		if query == "" {
			return m, nil
		}

		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			// Treat an uncompilable query as a literal search rather than
			// erroring out.
			re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
		}
		m.searchRegex = re
		m.searchQuery = query
		m.findSearchMatches()
		if len(m.searchMatches) > 0 {
			m.searchMatchIdx = 0
			m.scrollToSearchMatch()
		}
		m.refreshView()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// clearSearch drops the active search.
func (m *Model) clearSearch() {
	m.searchRegex = nil
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchMatchIdx = 0
}

// findSearchMatches records the indices of visible lines hitting the search.
func (m *Model) findSearchMatches() {
	m.searchMatches = nil
	if m.searchRegex == nil {
		return
	}
	for i, rec := range m.visible {
		if m.searchRegex.MatchString(displayLine(rec)) {
			m.searchMatches = append(m.searchMatches, i)
		}
	}
	if m.searchMatchIdx >= len(m.searchMatches) {
		m.searchMatchIdx = 0
	}
}

func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	m.searchMatchIdx = (m.searchMatchIdx + 1) % len(m.searchMatches)
	m.scrollToSearchMatch()
	m.refreshView()
}

func (m *Model) previousSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	m.searchMatchIdx = (m.searchMatchIdx - 1 + len(m.searchMatches)) % len(m.searchMatches)
	m.scrollToSearchMatch()
	m.refreshView()
}

// scrollToSearchMatch centers the viewport on the current match and leaves
// follow mode so the position sticks.
func (m *Model) scrollToSearchMatch() {
	if len(m.searchMatches) == 0 || m.searchMatchIdx >= len(m.searchMatches) {
		return
	}
	target := m.searchMatches[m.searchMatchIdx]
	m.follow = false
	scrollTo := target - m.viewport.Height/2
	if scrollTo < 0 {
		scrollTo = 0
	}
	m.viewport.SetYOffset(scrollTo)
}
