package poolinfo

import (
	"errors"
	"io"

	"github.com/bnema/pool-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	info   application.Info
	opts   RenderOptions
	styles styles
	output string
}

func newModel(info application.Info, opts RenderOptions) model {
	return model{
		info:   info,
		opts:   opts.withDefaults(),
		styles: newStyles(opts.Plain),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.info, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render formats the info view of one pool.
func Render(info application.Info, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(info, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
