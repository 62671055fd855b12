package engine

import "testing"

func TestGrade(t *testing.T) {
	cases := []struct {
		correct, selected bool
		want              RowState
	}{
		{true, true, StateCorrectSelected},
		{true, false, StateCorrectNotSelected},
		{false, true, StateWrongSelected},
		{false, false, StateDisabledUnselected},
	}
	for _, c := range cases {
		if got := Grade(c.correct, c.selected); got != c.want {
			t.Errorf("Grade(%v, %v) = %s, want %s", c.correct, c.selected, got, c.want)
		}
	}
}

func TestRowState_Appearance(t *testing.T) {
	cases := map[RowState]Appearance{
		StateUnanswered:         {View: ViewDefault, Icon: IconNone},
		StateUnansweredSelected: {PseudoChecked: true, View: ViewDefault, Icon: IconTick},
		StateCorrectSelected:    {Disabled: true, PseudoChecked: true, View: ViewDefault, Mark: MarkCorrect, Icon: IconTick},
		StateCorrectNotSelected: {Disabled: true, PseudoChecked: true, View: ViewOutline, Mark: MarkCorrect, Icon: IconMinus},
		StateWrongSelected:      {Disabled: true, PseudoChecked: true, View: ViewDefault, Mark: MarkWrong, Icon: IconClose},
		StateDisabledUnselected: {Disabled: true, View: ViewDefault, Icon: IconNone},
	}
	for state, want := range cases {
		if got := state.Appearance(); got != want {
			t.Errorf("%s.Appearance() = %+v, want %+v", state, got, want)
		}
	}
}
