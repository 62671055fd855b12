package engine

// Phase is the widget-level state.
type Phase int

const (
	PhaseUnanswered Phase = iota // Accepting selections
	PhaseChecked                 // Graded, controls disabled
)

func (p Phase) String() string {
	if p == PhaseChecked {
		return "checked"
	}
	return "unanswered"
}

// RowState is the visual sub-state of one option row.
type RowState string

const (
	StateUnanswered         RowState = "unanswered"
	StateUnansweredSelected RowState = "unanswered_selected"
	StateCorrectSelected    RowState = "correct_selected"
	StateCorrectNotSelected RowState = "correct_not_selected"
	StateWrongSelected      RowState = "wrong_selected"
	StateDisabledUnselected RowState = "disabled_unselected"
)

// ViewStyle is the outline variant of a row control.
type ViewStyle string

const (
	ViewDefault ViewStyle = "default"
	ViewOutline ViewStyle = "outline"
)

// Mark tags a control or feedback as correct or wrong.
type Mark string

const (
	MarkNone    Mark = ""
	MarkCorrect Mark = "correct"
	MarkWrong   Mark = "wrong"
)

// Icon is the glyph drawn inside a row control.
type Icon string

const (
	IconNone  Icon = "none"
	IconTick  Icon = "tick"
	IconMinus Icon = "minus"
	IconClose Icon = "close"
)

// Appearance is everything an adapter needs to draw a row control.
type Appearance struct {
	Disabled      bool
	PseudoChecked bool
	View          ViewStyle
	Mark          Mark
	Icon          Icon
}

// Appearance maps a row state to its fixed visual contract.
func (s RowState) Appearance() Appearance {
	switch s {
	case StateUnansweredSelected:
		return Appearance{PseudoChecked: true, View: ViewDefault, Icon: IconTick}
	case StateCorrectSelected:
		return Appearance{Disabled: true, PseudoChecked: true, View: ViewDefault, Mark: MarkCorrect, Icon: IconTick}
	case StateCorrectNotSelected:
		return Appearance{Disabled: true, PseudoChecked: true, View: ViewOutline, Mark: MarkCorrect, Icon: IconMinus}
	case StateWrongSelected:
		return Appearance{Disabled: true, PseudoChecked: true, View: ViewDefault, Mark: MarkWrong, Icon: IconClose}
	case StateDisabledUnselected:
		return Appearance{Disabled: true, View: ViewDefault, Icon: IconNone}
	}
	return Appearance{View: ViewDefault, Icon: IconNone}
}

// Grade maps one row's (correct, selected) pair to its checked state.
func Grade(correct, selected bool) RowState {
	switch {
	case correct && selected:
		return StateCorrectSelected
	case correct:
		return StateCorrectNotSelected
	case selected:
		return StateWrongSelected
	}
	return StateDisabledUnselected
}

// pendingState is the pre-check state of a row.
func pendingState(selected bool) RowState {
	if selected {
		return StateUnansweredSelected
	}
	return StateUnanswered
}

// MarkFor converts a correctness flag into a Mark.
func MarkFor(correct bool) Mark {
	if correct {
		return MarkCorrect
	}
	return MarkWrong
}
