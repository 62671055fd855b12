package components

import (
	"github.com/abhisek/quizblocks/internal/ui/theme"
)

// Button is a styled action label. Disabled buttons are drawn dimmed.
type Button struct {
	Label   string
	Hotkey  string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label, hotkey string, enabled bool) Button {
	return Button{Label: label, Hotkey: hotkey, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Hotkey != "" {
		label = "[" + b.Hotkey + "] " + label
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
