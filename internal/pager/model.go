// Package pager shows a rendered grid.Buffer in the terminal and scrolls it.
package pager

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hellricer/mandown/internal/grid"
)

// State is the pager lifecycle: Viewing until the quit key, then Exiting.
type State int

const (
	Viewing State = iota
	Exiting
)

func (s State) String() string {
	if s == Exiting {
		return "exiting"
	}
	return "viewing"
}

var statusStyle = lipgloss.NewStyle().Reverse(true)

// Model is the bubbletea model of the pager. It only reads the buffer.
type Model struct {
	rows   []string
	scroll Scroll
	width  int
	view   viewport.Model
	keys   KeyMap
	state  State
}

// New sizes a pager for a display of width x height cells. The last display
// row holds the status line.
func New(buf *grid.Buffer, width, height int) (Model, error) {
	if width <= 0 || height <= 0 {
		return Model{}, fmt.Errorf("display %dx%d: %w", height, width, grid.ErrAllocation)
	}
	m := Model{
		rows: buf.Lines(),
		keys: DefaultKeyMap(),
		view: viewport.New(0, 0),
	}
	m.scroll.Rows = len(m.rows)
	m.resize(width, height)
	return m, nil
}

func (m *Model) resize(width, height int) {
	vh := height - 1
	if vh < 1 {
		vh = 1
	}
	m.width = width
	m.scroll.Height = vh
	m.scroll.Clamp()

	m.view.Width = width
	m.view.Height = vh
}

// clip cuts every row to the display width.
func clip(rows []string, width int) string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = runewidth.Truncate(r, width, "")
	}
	return strings.Join(out, "\n")
}

func (m Model) State() State   { return m.state }
func (m Model) Scroll() Scroll { return m.scroll }

// WithKeyMap returns a copy of m using keys.
func (m Model) WithKeyMap(keys KeyMap) Model {
	m.keys = keys
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == Exiting {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The buffer keeps its layout; only the window changes.
		m.resize(msg.Width, msg.Height)
		log.Printf("pager: resize %dx%d offset=%d", msg.Width, msg.Height, m.scroll.Offset)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.state = Exiting
			log.Printf("pager: quit at offset=%d", m.scroll.Offset)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.scroll.Up()
		case key.Matches(msg, m.keys.Down):
			m.scroll.Down()
		case key.Matches(msg, m.keys.PageUp):
			m.scroll.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.scroll.PageDown()
		case key.Matches(msg, m.keys.Top):
			m.scroll.Top()
		case key.Matches(msg, m.keys.Bottom):
			m.scroll.Bottom()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.state == Exiting {
		return ""
	}
	from, to := m.scroll.Visible()
	m.view.SetContent(clip(m.rows[from:to], m.width))
	return m.view.View() + "\n" + m.statusView()
}

func (m Model) statusView() string {
	s := fmt.Sprintf("%d%% (press %s to quit)", m.scroll.Percent(), m.keys.Quit.Help().Key)
	return statusStyle.Render(runewidth.Truncate(s, m.width, ""))
}

// Run shows buf on the alternate screen until the quit key is pressed.
func Run(buf *grid.Buffer, width, height int, opts ...tea.ProgramOption) error {
	m, err := New(buf, width, height)
	if err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}
