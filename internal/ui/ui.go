package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/asciimg/internal/converter"
)

type Option struct {
	Path    string
	Options []converter.Option
}

func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if m.err != nil {
		return m.err
	}

	return nil
}

var _ tea.Model = &model{}

type model struct {
	err error

	path string
	opts []converter.Option

	state        modelState
	windowHeight int
	windowWidth  int

	viewport viewport.Model
}

func newModel(opt *Option) *model {
	return &model{
		path:     opt.Path,
		opts:     opt.Options,
		state:    modelStateLoading,
		viewport: viewport.New(0, 0),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) View() string {
	switch m.state {
	case modelStateLoading:
		return m.loadingView()
	case modelStateViewing:
		return m.viewingView()
	}

	return ""
}

func (m *model) loadingView() string {
	return "loading..."
}

func (m *model) viewingView() string {
	return m.viewport.View() + "\n" + m.helpView()
}

func (m *model) helpView() string {
	b := new(strings.Builder)
	b.WriteString(color.New(color.BgBlue, color.FgWhite).Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100))
	b.WriteString(" ↑/↓ PgUp/PgDn scroll  q quit")
	return b.String()
}

type modelState string

const (
	modelStateLoading modelState = "loading"
	modelStateViewing modelState = "viewing"
)

type errMsg struct{ error }
type loadMsg struct {
	width int
	art   string
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}

	case errMsg:
		m.err = msg.error
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.windowWidth = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-1)
		return m, m.load(max(1, msg.Width-2))

	case loadMsg:
		// a newer resize is already rendering
		if msg.width != max(1, m.windowWidth-2) {
			return m, nil
		}
		m.viewport.SetContent(msg.art)
		m.state = modelStateViewing
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) load(width int) tea.Cmd {
	return func() tea.Msg {
		opts := append(append([]converter.Option{}, m.opts...), converter.WithWidth(width))
		art, err := converter.Convert(context.Background(), m.path, opts...)
		if err != nil {
			return errMsg{err}
		}
		return loadMsg{width, art}
	}
}
