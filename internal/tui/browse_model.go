package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pageflip/internal/config"
	"github.com/rshade/pageflip/pkg/paginate"
)

// ViewState tracks which input surface owns the keyboard.
type ViewState int

const (
	// ViewStateList is normal table navigation.
	ViewStateList ViewState = iota
	// ViewStateGoTo means the go-to-page input is focused.
	ViewStateGoTo
	// ViewStateFilter means the filter input is focused.
	ViewStateFilter
	// ViewStateQuitting means the program is exiting.
	ViewStateQuitting
)

// Key strings handled by the browse model.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keyColon = ":"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// chromeHeight is the number of rows used around the table: title,
// page bar, status line, help line and padding.
const chromeHeight = 7

// minTableHeight keeps the table usable on tiny terminals.
const minTableHeight = 3

// Collaborators for []string collections. The paginate core never
// touches the rows itself; these are the length/slice functions it is
// handed at each call.
func rowsLen(rows []string) int { return len(rows) }

func rowsSlice(from, to int, rows []string) []string {
	if from > len(rows) {
		from = len(rows)
	}
	if to > len(rows) {
		to = len(rows)
	}
	return rows[from:to]
}

// BrowseModel is the Bubble Tea model for interactively paging through
// a collection of rows.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	state ViewState

	// allRows is the unfiltered source of truth; the pager wraps the
	// currently visible (possibly filtered) rows.
	allRows []string
	pager   paginate.State[[]string]
	filter  string

	// Elided page bar window sizes.
	inner int
	outer int

	// Interactive components
	table     table.Model
	textInput textinput.Model

	width   int
	height  int
	printer *message.Printer
}

// NewBrowseModel creates a browse model over rows using the configured
// pagination defaults.
func NewBrowseModel(rows []string, cfg config.PaginationConfig) BrowseModel {
	m := BrowseModel{
		state:     ViewStateList,
		allRows:   rows,
		pager:     paginate.New(rowsLen, cfg.PageSize, rows),
		inner:     cfg.InnerWindow,
		outer:     cfg.OuterWindow,
		textInput: newTextInput(),
		width:     defaultWidth,
		height:    defaultHeight,
		printer:   message.NewPrinter(language.English),
	}
	m.table = m.buildTable()
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 24
	return ti
}

// Init initializes the model (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	switch m.state {
	case ViewStateGoTo:
		return m.handleGoToInput(msg)
	case ViewStateFilter:
		return m.handleFilterInput(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.handleListKeypress(keyMsg)
}

//nolint:gocognit // Key handling inherently requires a branch per navigation key.
func (m BrowseModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case "left", "h", "pgup":
		m.pager = m.pager.Prev()
		m.rebuildTable()
		return m, nil
	case "right", "l", "pgdown":
		m.pager = m.pager.Next()
		m.rebuildTable()
		return m, nil
	case "home", "g":
		m.pager = m.pager.First()
		m.rebuildTable()
		return m, nil
	case "end", "G":
		m.pager = m.pager.Last()
		m.rebuildTable()
		return m, nil
	case "+":
		m.changePageSize(m.pager.ItemsPerPage() + 1)
		return m, nil
	case "-":
		m.changePageSize(m.pager.ItemsPerPage() - 1)
		return m, nil
	case keyColon:
		m.state = ViewStateGoTo
		m.textInput.Placeholder = "page number"
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, textinput.Blink
	case keySlash:
		m.state = ViewStateFilter
		m.textInput.Placeholder = "filter"
		m.textInput.SetValue(m.filter)
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.filter != "" {
			m.applyFilter("")
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// handleGoToInput drives the go-to-page prompt. Whatever the user
// types, navigation is total: unparseable input is ignored and
// out-of-range numbers clamp to the nearest edge.
func (m BrowseModel) handleGoToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			if n, err := strconv.Atoi(strings.TrimSpace(m.textInput.Value())); err == nil {
				m.pager = m.pager.GoTo(n)
			}
			m.state = ViewStateList
			m.textInput.Blur()
			m.rebuildTable()
			return m, nil
		case keyEsc, keyCtrlC:
			m.state = ViewStateList
			m.textInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m BrowseModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.applyFilter(m.textInput.Value())
			m.state = ViewStateList
			m.textInput.Blur()
			return m, nil
		case keyEsc, keyCtrlC:
			m.state = ViewStateList
			m.textInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// applyFilter swaps the wrapped collection for the filtered row set.
// Transform keeps the page number where still valid and pushes the
// viewer to the new last page when the match set shrank beneath it.
func (m *BrowseModel) applyFilter(query string) {
	m.filter = query
	m.pager = m.pager.Transform(rowsLen, func([]string) []string {
		return filterRows(m.allRows, query)
	})
	m.rebuildTable()
}

func filterRows(rows []string, query string) []string {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row), q) {
			out = append(out, row)
		}
	}
	return out
}

func (m *BrowseModel) changePageSize(size int) {
	m.pager = m.pager.ChangeItemsPerPage(rowsLen, size)
	m.rebuildTable()
}

func (m *BrowseModel) rebuildTable() {
	m.table = m.buildTable()
}

// buildTable renders the current page's rows into a bubbles table.
func (m *BrowseModel) buildTable() table.Model {
	indexWidth := len(strconv.Itoa(paginate.Reduce(m.pager, rowsLen)))
	if indexWidth < 3 {
		indexWidth = 3
	}
	rowWidth := m.width - indexWidth - 6
	if rowWidth < 20 {
		rowWidth = 20
	}
	columns := []table.Column{
		{Title: "#", Width: indexWidth},
		{Title: "Row", Width: rowWidth},
	}

	pageRows := m.pager.Slice(rowsSlice)
	base := (m.pager.CurrentPage() - 1) * m.pager.ItemsPerPage()
	rows := make([]table.Row, len(pageRows))
	for i, row := range pageRows {
		rows[i] = table.Row{strconv.Itoa(base + i + 1), row}
	}

	height := m.height - chromeHeight
	if height < minTableHeight {
		height = minTableHeight
	}
	// Never taller than one page of rows.
	if height > m.pager.ItemsPerPage()+1 {
		height = m.pager.ItemsPerPage() + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
