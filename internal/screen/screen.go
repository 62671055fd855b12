// Package screen defines the contracts between the router and the screens
// of the quiz player.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizblocks/internal/ui/layout"
)

// Screen is one page of the player: the document index, a quiz, or the
// attempt history.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title names the screen in the header trail.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderInfoProvider is implemented by screens that show a short status
// on the right of the header, such as a score.
type HeaderInfoProvider interface {
	HeaderInfo() string
}

// Resumer is implemented by screens that refresh when they become active
// again, for example to pick up attempts recorded by a quiz pushed on top.
type Resumer interface {
	Resume() tea.Cmd
}
