// Package quiz is the interactive screen for one quiz block.
package quiz

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizblocks/internal/block"
	"github.com/abhisek/quizblocks/internal/engine"
	qz "github.com/abhisek/quizblocks/internal/quiz"
	"github.com/abhisek/quizblocks/internal/render"
	"github.com/abhisek/quizblocks/internal/router"
	"github.com/abhisek/quizblocks/internal/screen"
	"github.com/abhisek/quizblocks/internal/ui/components"
	"github.com/abhisek/quizblocks/internal/ui/layout"
	"github.com/abhisek/quizblocks/internal/ui/theme"
)

// QuizScreen mounts one block: the live widget for a render request, or
// the diagnostic for a block that failed to load.
type QuizScreen struct {
	result   block.Result
	widget   engine.Widget
	renderer render.Renderer

	view   render.View
	focus  int
	notice string
	errMsg string

	keys keyMap
	help help.Model
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen.
func New(result block.Result, renderer render.Renderer) *QuizScreen {
	s := &QuizScreen{
		result:   result,
		renderer: renderer,
		keys:     defaultKeys(),
		help:     help.New(),
	}
	if req := result.Request; req != nil {
		s.widget = engine.New(req.Quiz, req.StableID)
		s.refresh()
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.widget == nil {
		return "Invalid quiz block"
	}
	return fmt.Sprintf("%s quiz", s.widget.Kind())
}

// HeaderInfo shows the score once the quiz is checked.
func (s *QuizScreen) HeaderInfo() string {
	if s.widget == nil {
		return ""
	}
	correct, total := engine.Score(s.view.Snapshot)
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d correct", correct, total)
}

// Checked reports whether the quiz has been graded, with its score.
func (s *QuizScreen) Checked() (correct, total int, ok bool) {
	if s.widget == nil || s.widget.Phase() != engine.PhaseChecked {
		return 0, 0, false
	}
	correct, total = engine.Score(s.widget.Snapshot())
	return correct, total, true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.activeKeys().bindings()...)
}

func (s *QuizScreen) activeKeys() keyMap {
	if s.widget == nil {
		k := s.keys.forPhase(false, true, false)
		k.Reset.SetEnabled(false)
		return k
	}
	snap := s.view.Snapshot
	return s.keys.forPhase(snap.Kind == qz.KindChoice, snap.Phase == engine.PhaseChecked, snap.Actions.CheckEnabled)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if key.Matches(kmsg, s.keys.Back) {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.widget == nil {
		return s, nil
	}
	s.handleKey(kmsg)
	s.refresh()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) {
	k := s.activeKeys()
	switch {
	case key.Matches(msg, k.Up):
		if s.focus > 0 {
			s.focus--
		}
	case key.Matches(msg, k.Down):
		if s.focus < s.items()-1 {
			s.focus++
		}
	case key.Matches(msg, k.Select), key.Matches(msg, k.Next):
		s.notice = ""
		s.activate(1)
	case key.Matches(msg, k.Prev):
		s.notice = ""
		s.activate(-1)
	case key.Matches(msg, s.keys.Check):
		s.notice = s.widget.Check().Notice
	case key.Matches(msg, k.Reset):
		s.widget.Reset()
		s.notice = ""
		s.focus = 0
	}
}

// activate selects the focused row, or steps the focused question's
// dropdown by step.
func (s *QuizScreen) activate(step int) {
	switch w := s.widget.(type) {
	case *engine.OptionWidget:
		w.Select(s.focus)
	case *engine.ChoiceWidget:
		if s.focus >= len(s.view.Questions) {
			return
		}
		q := s.view.Questions[s.focus]
		if next, ok := cycle(q.Choices, q.Selected, step); ok {
			w.Choose(s.focus, next)
		}
	}
}

// cycle returns the choice step entries away from current. From the
// placeholder, forward starts at the first choice and back at the last.
func cycle(choices []render.ChoiceLabel, current string, step int) (string, bool) {
	n := len(choices)
	if n == 0 {
		return "", false
	}
	at := -1
	for i, c := range choices {
		if c.ID == current {
			at = i
			break
		}
	}
	if at < 0 {
		if step < 0 {
			return choices[n-1].ID, true
		}
		return choices[0].ID, true
	}
	return choices[((at+step)%n+n)%n].ID, true
}

func (s *QuizScreen) items() int {
	if s.view.Kind == qz.KindChoice {
		return len(s.view.Questions)
	}
	return len(s.view.Rows)
}

// refresh re-renders the widget snapshot.
func (s *QuizScreen) refresh() {
	v, err := render.Widget(context.Background(), s.renderer, s.result.Request.SourcePath, s.widget.Snapshot())
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.view = v
	if n := s.items(); s.focus >= n && n > 0 {
		s.focus = n - 1
	}
}

func (s *QuizScreen) View(width, height int) string {
	if d := s.result.Diagnostic; d != nil {
		where := fmt.Sprintf("lines %d-%d", d.LineStart+1, d.LineEnd+1)
		return "\n" + theme.Diagnostic.Width(width-2).Render(d.Message) + "\n" + theme.Hint.Render("  "+where)
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n" + lipgloss.NewStyle().Width(width-2).Render(theme.Title.Render(s.view.Title.Text)) + "\n\n")

	checked := s.view.Phase == engine.PhaseChecked
	if s.view.Kind == qz.KindChoice {
		for i, q := range s.view.Questions {
			b.WriteString(components.RenderQuestion(q, !checked && i == s.focus, width) + "\n\n")
		}
		answered := len(s.view.Questions) - s.remaining()
		b.WriteString(components.NewProgressBar("Answered", answered, len(s.view.Questions), min(width-4, 50)).View() + "\n\n")
	} else {
		for i, r := range s.view.Rows {
			b.WriteString(components.RenderRow(s.view.Kind, r, !checked && i == s.focus, width) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(s.actionsView() + "\n")
	if s.notice != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+s.notice) + "\n")
	}

	s.help.SetWidth(width)
	b.WriteString("\n  " + s.help.ShortHelpView(s.activeKeys().bindings()))
	return b.String()
}

func (s *QuizScreen) remaining() int {
	if w, ok := s.widget.(*engine.ChoiceWidget); ok {
		return w.Remaining()
	}
	return 0
}

func (s *QuizScreen) actionsView() string {
	a := s.view.Actions
	var parts []string
	if a.CheckVisible {
		label := a.CheckLabel
		if w, ok := s.widget.(*engine.ChoiceWidget); ok {
			label = w.CheckCaption()
		}
		parts = append(parts, components.NewButton(label, "c", a.CheckEnabled).View())
	}
	if a.ResetVisible {
		parts = append(parts, components.NewButton("Reset", "r", true).View())
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
