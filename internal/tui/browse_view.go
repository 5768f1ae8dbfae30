package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pageflip/pkg/paginate"
)

// View renders the current view (Bubble Tea interface).
func (m BrowseModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	sections := []string{
		TitleStyle.Render("pageflip"),
		m.table.View(),
		PageBar(m.pager, m.inner, m.outer, OutputModeStyled),
		m.renderStatusLine(),
	}

	switch m.state {
	case ViewStateGoTo:
		sections = append(sections, InfoStyle.Render("go to page: ")+m.textInput.View())
	case ViewStateFilter:
		sections = append(sections, InfoStyle.Render("filter: ")+m.textInput.View())
	case ViewStateList, ViewStateQuitting:
		sections = append(sections, m.renderHelpLine())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusLine shows the collection and page position, with grouped
// digits for large collections.
func (m BrowseModel) renderStatusLine() string {
	visible := paginate.Reduce(m.pager, rowsLen)

	status := m.printer.Sprintf("%d rows · page %d of %d · %d per page",
		visible, m.pager.CurrentPage(), m.pager.TotalPages(), m.pager.ItemsPerPage())
	if m.filter != "" {
		status += m.printer.Sprintf(" · filter %q (%d of %d)", m.filter, visible, len(m.allRows))
	}
	return StatusStyle.Render(status)
}

func (m BrowseModel) renderHelpLine() string {
	return HelpStyle.Render("←/→ page · home/end first/last · : go to · / filter · +/- page size · q quit")
}
