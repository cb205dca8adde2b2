package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/evanfield/skald/editor"
)

const sampleText = `Hello, world!
This is a small demo document.
Search for a word above, then walk the matches.
Hello again — the search is case-insensitive and
matches whole words only, so "the" will not hit "there".

Type in the search box. Ctrl+N and Ctrl+P move between
matches, Ctrl+O jumps back to where you came from.`

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	JumpBack key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next match")),
		Prev:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev match")),
		JumpBack: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "jump back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

var statusStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	session *editor.Session
	input   textinput.Model
	view    viewport.Model
	keys    keyMap
	styles  editor.HighlightStyles

	// caret is the rune offset the user is standing at; navigation
	// moves it to the current match and feeds it back as the
	// jump-back position.
	caret  int
	notice string
}

func newModel() (model, error) {
	session, err := editor.NewSession(editor.Config{Text: sampleText})
	if err != nil {
		return model{}, err
	}

	input := textinput.New()
	input.Placeholder = "search"
	input.Prompt = "/ "
	input.Focus()

	m := model{
		session: session,
		input:   input,
		view:    viewport.New(0, 0),
		keys:    defaultKeyMap(),
		styles:  editor.DefaultHighlightStyles(),
	}
	m.rebuildContent()
	return m, nil
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 2 // input + status line
		m.rebuildContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if match, ok := m.session.Next(m.caret); ok {
				m.caret = match.Start
				m.notice = ""
				m.rebuildContent()
				m.followOffset(match.Start)
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if match, ok := m.session.Previous(m.caret); ok {
				m.caret = match.Start
				m.notice = ""
				m.rebuildContent()
				m.followOffset(match.Start)
			}
			return m, nil
		case key.Matches(msg, m.keys.JumpBack):
			if off, ok := m.session.JumpBack(); ok {
				m.caret = off
				m.notice = fmt.Sprintf("jumped back to offset %d", off)
				m.followOffset(off)
			} else {
				m.notice = "no jump-back recorded"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.session.Query() {
		m.session.SetQuery(q)
		m.notice = ""
		m.rebuildContent()
	}
	return m, cmd
}

func (m model) View() string {
	return m.input.View() + "\n" + m.view.View() + "\n" + m.statusLine()
}

func (m *model) rebuildContent() {
	rows := m.session.HighlightLines(m.styles)
	lines := strings.Split(m.session.Text(), "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = editor.RenderLine(line, rows[i])
	}
	m.view.SetContent(strings.Join(rendered, "\n"))
}

func (m *model) followOffset(off int) {
	row := rowOfOffset(m.session.Text(), off)
	h := m.view.Height
	if h <= 0 {
		return
	}
	if row < m.view.YOffset {
		m.view.SetYOffset(row)
	} else if row >= m.view.YOffset+h {
		m.view.SetYOffset(row - h + 1)
	}
}

// rowOfOffset returns the 0-based row holding the rune offset.
func rowOfOffset(text string, off int) int {
	row := 0
	for i, r := range []rune(text) {
		if i >= off {
			break
		}
		if r == '\n' {
			row++
		}
	}
	return row
}

func (m model) statusLine() string {
	metrics := m.session.Metrics()
	status := fmt.Sprintf("%d words · %d chars · %d lines", metrics.Words, metrics.Chars, metrics.Lines)
	if n := len(m.session.Matches()); n > 0 {
		status = fmt.Sprintf("match %d/%d · %s", m.session.CurrentIndex()+1, n, status)
	} else if m.session.Query() != "" {
		status = "no matches · " + status
	}
	if m.notice != "" {
		status = m.notice + " · " + status
	}
	if m.view.Width > 0 {
		status = runewidth.Truncate(status, m.view.Width, "…")
	}
	return statusStyle.Render(status)
}

func main() {
	m, err := newModel()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
