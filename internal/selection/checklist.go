package selection

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"macsnap/internal/inventory"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Checklist presents all candidates as independently toggleable
// choices, pre-checked by default. Enter commits the current checkbox
// state; quitting without confirming approves nothing further.
type Checklist struct{}

// Select runs the checklist TUI and returns the checked subset.
func (c *Checklist) Select(candidates []inventory.Entry) ([]inventory.Entry, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	m := newChecklistModel(candidates)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("selection dialog failed: %w", err)
	}

	final, ok := result.(checklistModel)
	if !ok || !final.confirmed {
		// Cancelled: approve nothing further, not an error.
		return nil, nil
	}

	var approved []inventory.Entry
	for i, checked := range final.checked {
		if checked {
			approved = append(approved, final.candidates[i])
		}
	}
	return approved, nil
}

// checklistModel is a bubbletea model over the candidate list. All
// items start checked; space toggles, a/n check or clear everything.
type checklistModel struct {
	candidates []inventory.Entry
	checked    []bool
	cursor     int
	confirmed  bool
	height     int
}

func newChecklistModel(candidates []inventory.Entry) checklistModel {
	checked := make([]bool, len(candidates))
	for i := range checked {
		checked[i] = true
	}
	return checklistModel{
		candidates: candidates,
		checked:    checked,
		height:     20,
	}
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 6 {
			m.height = msg.Height - 5
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
			}
		case " ":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			for i := range m.checked {
				m.checked[i] = true
			}
		case "n":
			for i := range m.checked {
				m.checked[i] = false
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m checklistModel) View() string {
	if m.confirmed {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select items to install"))
	b.WriteString("\n\n")

	// Keep the cursor visible in a scrolling window on long lists.
	start, end := 0, len(m.candidates)
	if end > m.height {
		start = m.cursor - m.height/2
		if start < 0 {
			start = 0
		}
		end = start + m.height
		if end > len(m.candidates) {
			end = len(m.candidates)
			start = end - m.height
		}
	}

	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}

		cand := m.candidates[i]
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor, box, cand.Name, categoryStyle.Render("("+cand.Category.Label()+")")))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space toggle · a all · n none · enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
