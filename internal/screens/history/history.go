// Package history browses the LLM request log written by quiz authoring.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizblocks/internal/router"
	"github.com/abhisek/quizblocks/internal/screen"
	"github.com/abhisek/quizblocks/internal/store"
	"github.com/abhisek/quizblocks/internal/ui/layout"
	"github.com/abhisek/quizblocks/internal/ui/theme"
)

// Limit is the number of events loaded.
const Limit = 50

// previewLines caps the response shown under an expanded event.
const previewLines = 8

type historyLoadedMsg struct {
	Events []store.LLMRequestEventRecord
	Err    error
}

// HistoryScreen displays LLM requests, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.LLMRequestEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Authoring log"
}

// HeaderInfo sums the tokens of the loaded events.
func (s *HistoryScreen) HeaderInfo() string {
	if len(s.events) == 0 {
		return ""
	}
	tokens := 0
	for _, e := range s.events {
		tokens += e.InputTokens + e.OutputTokens
	}
	return fmt.Sprintf("%d requests, %d tokens", len(s.events), tokens)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "r", Description: "Reload"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.events = msg.Events
		}
		s.loaded = true
		if s.selected >= len(s.events) {
			s.selected = max(len(s.events)-1, 0)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "r":
			s.expanded = make(map[int]bool)
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading requests...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No LLM requests yet. Run quizblocks generate to author a quiz.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-14s  %-28s  %5d→%-5d  %6dms",
			prefix, e.Timestamp.Local().Format("Jan 02 15:04"), e.Purpose, shorten(e.Model, 28),
			e.InputTokens, e.OutputTokens, e.LatencyMs)

		style := lipgloss.NewStyle().Foreground(statusColor(e))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(detail(e, width))
		}
	}

	return b.String()
}

// detail renders the provider, error and the head of the response.
func detail(e store.LLMRequestEventRecord, width int) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("      " + e.Provider + "  " + e.ID))
	b.WriteString("\n")
	if e.ErrorMessage != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("      " + e.ErrorMessage))
		b.WriteString("\n")
	}

	lines := strings.Split(strings.TrimSpace(e.ResponseBody), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return b.String()
	}
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "…")
	}
	for _, l := range lines {
		b.WriteString(theme.Hint.Render("      " + shorten(l, max(width-8, 10))))
		b.WriteString("\n")
	}
	return b.String()
}

func statusColor(e store.LLMRequestEventRecord) color.Color {
	if !e.Success {
		return theme.Error
	}
	return theme.Success
}

// shorten keeps the head of s within n runes.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
