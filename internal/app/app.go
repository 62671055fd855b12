// Package app runs the terminal quiz player.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizblocks/internal/block"
	"github.com/abhisek/quizblocks/internal/render"
	"github.com/abhisek/quizblocks/internal/router"
	"github.com/abhisek/quizblocks/internal/screen"
	"github.com/abhisek/quizblocks/internal/screens/document"
	"github.com/abhisek/quizblocks/internal/screens/history"
	"github.com/abhisek/quizblocks/internal/store"
	"github.com/abhisek/quizblocks/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	// Path is the document path shown to the user and used as the source
	// path of every block.
	Path    string
	Results []block.Result

	// Renderer defaults to render.NewTerminal().
	Renderer render.Renderer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at root.
func newAppModel(root screen.Screen) AppModel {
	return AppModel{router: router.New(root)}
}

// documentRoot builds the document screen for opts.
func documentRoot(opts Options) screen.Screen {
	if opts.Renderer == nil {
		opts.Renderer = render.NewTerminal()
	}
	return document.New(opts.Path, opts.Results, opts.Renderer)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	info := ""
	if p, ok := active.(screen.HeaderInfoProvider); ok {
		info = p.HeaderInfo()
	}

	header := layout.RenderHeader(m.router.Trail(), info, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

// Run plays the quizzes of one document.
func Run(opts Options) error {
	return run(newAppModel(documentRoot(opts)))
}

// RunLog browses the LLM request log in repo.
func RunLog(repo store.EventRepo) error {
	return run(newAppModel(history.New(repo)))
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
