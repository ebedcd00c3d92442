package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/permtree/pkg/permtree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BrowseModel - Interactive permutation browser
// =============================================================================

// BrowseModel is the bubbletea model for stepping through the permutations
// of an alphabet. Rows are computed on demand with permtree.Unrank, so the
// browser never materializes the tree and works up to 20 symbols.
type BrowseModel struct {
	Alphabet []permtree.Symbol
	Total    int64
	Cursor   int64 // 1-based rank of the selected row
	Offset   int64 // rank of the first visible row
	Height   int
	Jump     string // digits typed so far
	Chosen   permtree.Permutation
}

// NewBrowseModel creates a browser for alphabet, which must be sorted.
// An empty alphabet has no permutations to browse.
func NewBrowseModel(alphabet []permtree.Symbol) BrowseModel {
	var total int64
	if len(alphabet) > 0 {
		total = permtree.SafeFactorial(len(alphabet))
	}
	return BrowseModel{
		Alphabet: alphabet,
		Total:    total,
		Cursor:   1,
		Offset:   1,
		Height:   15,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if len(m.Jump) < 19 {
				m.Jump += key
			}
			return m, nil
		}
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Jump != "" {
				m.Jump = ""
				return m, nil
			}
			return m, tea.Quit
		case "backspace":
			if m.Jump != "" {
				m.Jump = m.Jump[:len(m.Jump)-1]
			}
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "pgup", "b":
			m.moveTo(m.Cursor - int64(m.Height))
		case "pgdown", "f", " ":
			m.moveTo(m.Cursor + int64(m.Height))
		case "home", "g":
			m.moveTo(1)
		case "end", "G":
			m.moveTo(m.Total)
		case "enter":
			if m.Jump != "" {
				if r, err := strconv.ParseInt(m.Jump, 10, 64); err == nil {
					m.moveTo(r)
				}
				m.Jump = ""
				return m, nil
			}
			m.Chosen = permtree.Unrank(m.Alphabet, m.Cursor)
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// moveTo selects rank, clamped to [1, Total], and scrolls it into view.
func (m *BrowseModel) moveTo(rank int64) {
	if m.Total < 1 {
		return
	}
	rank = max(1, min(rank, m.Total))
	m.Cursor = rank
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+int64(m.Height) {
		m.Offset = m.Cursor - int64(m.Height) + 1
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Permutations of " + string(m.Alphabet)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ step  pgup/pgdn page  g/G ends  digits+⏎ jump  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if m.Total < 1 {
		b.WriteString(listDimStyle.Render("  no permutations"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+int64(m.Height)-1, m.Total)
	rows := [][]string{}
	for r := m.Offset; r <= end; r++ {
		cursor := "  "
		if r == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, strconv.FormatInt(r, 10), permtree.Unrank(m.Alphabet, r).String()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Rank", "Permutation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if m.Offset+int64(row) == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	status := fmt.Sprintf("  [%d/%d]", m.Cursor, m.Total)
	if m.Jump != "" {
		status += "  jump to " + m.Jump
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
