package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vizioz/task-issues/pkg/issue"
	"github.com/vizioz/task-issues/pkg/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	locationStyle = lipgloss.NewStyle().Faint(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// selectKeyMap holds the selector key bindings. Letters are left to the filter.
type selectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k selectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k selectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Clear}}
}

var selectKeys = selectKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// selectModel is the Bubble Tea model of the task selector.
type selectModel struct {
	tasks    []task.Task
	filtered []int // indices into tasks
	cursor   int
	filter   string
	selected *task.Task
	quitting bool
	help     help.Model
}

func newSelectModel(tasks []task.Task) selectModel {
	return selectModel{
		tasks:    tasks,
		filtered: makeRange(len(tasks)),
		help:     help.New(),
	}
}

func makeRange(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, selectKeys.Clear) && m.filter != "":
		m.filter = ""
		m.applyFilter()
	case key.Matches(keyMsg, selectKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Select):
		if len(m.filtered) == 0 {
			return m, nil
		}
		selected := m.tasks[m.filtered[m.cursor]]
		m.selected = &selected
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, selectKeys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case keyMsg.Type == tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case keyMsg.Type == tea.KeyRunes, keyMsg.Type == tea.KeySpace:
		m.filter += string(keyMsg.Runes)
		m.applyFilter()
	}

	return m, nil
}

// applyFilter keeps the tasks whose description or location contains the filter.
func (m *selectModel) applyFilter() {
	m.filtered = m.filtered[:0:0]
	needle := strings.ToLower(m.filter)
	for i, t := range m.tasks {
		if needle == "" ||
			strings.Contains(strings.ToLower(t.Description), needle) ||
			strings.Contains(strings.ToLower(t.Location()), needle) {
			m.filtered = append(m.filtered, i)
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("? Choose a task to open its issue:"))
	s.WriteString("  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	if len(m.filtered) == 0 {
		s.WriteString("  (no matching task)\n")
	}

	for i, idx := range m.filtered {
		line := formatTask(m.tasks[idx])
		if m.cursor == i {
			s.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(selectKeys))

	return s.String()
}

// formatTask renders one task line: the issue badge, the description, then the location.
func formatTask(t task.Task) string {
	var parts []string

	if ref, ok := issue.Extract(t.Description); ok {
		parts = append(parts, badgeStyle.Render("#"+ref.String()))
	} else {
		parts = append(parts, badgeStyle.Render("  -"))
	}

	parts = append(parts, t.Description)

	if loc := t.Location(); loc != "" {
		parts = append(parts, locationStyle.Render(loc))
	}

	return strings.Join(parts, " ")
}

// runTaskSelector runs the Bubble Tea program and returns the chosen task.
func runTaskSelector(tasks []task.Task, out io.Writer) (task.Task, error) {
	p := tea.NewProgram(newSelectModel(tasks), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %w", ErrSelectionFailed, err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return task.Task{}, fmt.Errorf("%w: unexpected model type %T", ErrSelectionFailed, finalModel)
	}

	if model.selected == nil {
		return task.Task{}, ErrNoSelection
	}

	return *model.selected, nil
}
