// Package document lists the quiz blocks of one markdown file.
package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizblocks/internal/block"
	"github.com/abhisek/quizblocks/internal/render"
	"github.com/abhisek/quizblocks/internal/router"
	"github.com/abhisek/quizblocks/internal/screen"
	quizscreen "github.com/abhisek/quizblocks/internal/screens/quiz"
	"github.com/abhisek/quizblocks/internal/ui/components"
	"github.com/abhisek/quizblocks/internal/ui/layout"
	"github.com/abhisek/quizblocks/internal/ui/theme"
)

const maxLabelLen = 60

// DocumentScreen is the root screen of `quizblocks play`.
type DocumentScreen struct {
	path     string
	results  []block.Result
	renderer render.Renderer
	menu     components.Menu

	// quizzes holds the screen of every block opened so far, so that a
	// quiz keeps its answers while the document stays open.
	quizzes map[int]*quizscreen.QuizScreen
}

var _ screen.Screen = (*DocumentScreen)(nil)
var _ screen.KeyHintProvider = (*DocumentScreen)(nil)
var _ screen.Resumer = (*DocumentScreen)(nil)

// New creates a DocumentScreen for the processed blocks of path.
func New(path string, results []block.Result, renderer render.Renderer) *DocumentScreen {
	s := &DocumentScreen{
		path:     path,
		results:  results,
		renderer: renderer,
		quizzes:  make(map[int]*quizscreen.QuizScreen),
	}

	items := make([]components.MenuItem, 0, len(results))
	for i, res := range results {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%d. %s", i+1, s.label(res)),
			Detail: s.detail(i),
			Broken: !res.OK(),
			Action: s.open(i),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *DocumentScreen) open(i int) func() tea.Cmd {
	return func() tea.Cmd {
		next, ok := s.quizzes[i]
		if !ok {
			next = quizscreen.New(s.results[i], s.renderer)
			s.quizzes[i] = next
		}
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

// label is the quiz prompt as one line of plain text.
func (s *DocumentScreen) label(res block.Result) string {
	if !res.OK() {
		first, _, _ := strings.Cut(res.Diagnostic.Message, "\n")
		return first
	}
	text, err := render.PlainText(context.Background(), s.renderer, res.Request.Quiz.Content, s.path)
	if err != nil || text == "" {
		text = "(untitled)"
	}
	if r := []rune(text); len(r) > maxLabelLen {
		text = string(r[:maxLabelLen-1]) + "…"
	}
	return text
}

func (s *DocumentScreen) detail(i int) string {
	res := s.results[i]
	lines := fmt.Sprintf("lines %d-%d", res.Block.LineStart+1, res.Block.LineEnd+1)
	if !res.OK() {
		return lines
	}
	d := fmt.Sprintf("%s · %s", res.Request.Quiz.Kind, lines)
	if q, ok := s.quizzes[i]; ok {
		if correct, total, checked := q.Checked(); checked {
			d += fmt.Sprintf(" · %d/%d", correct, total)
		}
	}
	return d
}

func (s *DocumentScreen) Init() tea.Cmd {
	return nil
}

// Resume picks up the score of a quiz checked since the document was last
// shown.
func (s *DocumentScreen) Resume() tea.Cmd {
	for i := range s.results {
		s.menu.Items[i].Detail = s.detail(i)
	}
	return nil
}

func (s *DocumentScreen) Title() string {
	return filepath.Base(s.path)
}

// HeaderInfo counts loaded, broken and checked blocks.
func (s *DocumentScreen) HeaderInfo() string {
	broken, checked := 0, 0
	for i, r := range s.results {
		if !r.OK() {
			broken++
		}
		if q, ok := s.quizzes[i]; ok {
			if _, _, done := q.Checked(); done {
				checked++
			}
		}
	}
	info := fmt.Sprintf("%d quizzes", len(s.results))
	if broken > 0 {
		info += fmt.Sprintf(", %d invalid", broken)
	}
	if checked > 0 {
		info += fmt.Sprintf(", %d checked", checked)
	}
	return info
}

func (s *DocumentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *DocumentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DocumentScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Subtitle.Render(s.path) + "\n\n")

	if len(s.results) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No quiz blocks in this document."))
		return b.String()
	}

	b.WriteString(s.menu.View())
	return b.String()
}
