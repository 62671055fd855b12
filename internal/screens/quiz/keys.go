package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Prev   key.Binding
	Next   key.Binding
	Check  key.Binding
	Reset  key.Binding
	Back   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("space", "select")),
		Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		Next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Check:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// forPhase enables the bindings that do something in the current state.
func (k keyMap) forPhase(choice, checked, checkEnabled bool) keyMap {
	k.Up.SetEnabled(!checked)
	k.Down.SetEnabled(!checked)
	k.Select.SetEnabled(!checked)
	k.Prev.SetEnabled(choice && !checked)
	k.Next.SetEnabled(choice && !checked)
	k.Check.SetEnabled(!checked && checkEnabled)
	k.Reset.SetEnabled(checked)
	return k
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Prev, k.Next, k.Check, k.Reset, k.Back}
}
