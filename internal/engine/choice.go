package engine

import (
	"fmt"

	"github.com/abhisek/quizblocks/internal/quiz"
)

// Placeholder is the label of the empty entry offered before a question
// has been answered.
const Placeholder = "..."

// ChoiceWidget drives choice quizzes: one dropdown per question, all
// sharing the quiz's option pool.
type ChoiceWidget struct {
	quiz     quiz.Quiz
	stableID string
	phase    Phase
	choices  []Choice
	selected []string
	answers  []*Answer
}

// NewChoice builds an unanswered choice widget.
func NewChoice(q quiz.Quiz, stableID string) *ChoiceWidget {
	w := &ChoiceWidget{quiz: q, stableID: stableID}
	w.Reset()
	return w
}

func (w *ChoiceWidget) Kind() quiz.Kind { return w.quiz.Kind }

func (w *ChoiceWidget) Phase() Phase { return w.phase }

// Choices returns the options offered by every question's dropdown.
func (w *ChoiceWidget) Choices() []Choice {
	return append([]Choice(nil), w.choices...)
}

// Choose records the selected option for a question.
func (w *ChoiceWidget) Choose(question int, optionID string) {
	if w.phase != PhaseUnanswered || question < 0 || question >= len(w.selected) {
		return
	}
	if !w.offered(optionID) {
		return
	}
	w.selected[question] = optionID
}

func (w *ChoiceWidget) offered(id string) bool {
	for _, c := range w.choices {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Remaining counts questions still without a selection.
func (w *ChoiceWidget) Remaining() int {
	n := 0
	for _, s := range w.selected {
		if s == "" {
			n++
		}
	}
	return n
}

// CheckCaption is the check control label for the current selection.
func (w *ChoiceWidget) CheckCaption() string {
	if n := w.Remaining(); n > 0 {
		return fmt.Sprintf("%s (%d questions left)", CheckLabel, n)
	}
	return CheckLabel
}

// Check grades every question once all have a selection. With questions
// left it only reports a notice.
func (w *ChoiceWidget) Check() CheckResult {
	if w.phase != PhaseUnanswered {
		return CheckResult{}
	}
	if n := w.Remaining(); n > 0 {
		return CheckResult{Notice: fmt.Sprintf("%d questions left.", n)}
	}

	for i, q := range w.quiz.Questions {
		w.answers[i] = w.grade(q, w.selected[i])
	}
	w.phase = PhaseChecked
	return CheckResult{Applied: true}
}

func (w *ChoiceWidget) grade(q quiz.ChoiceQuestion, chosen string) *Answer {
	ans := &Answer{
		OptionID: chosen,
		Content:  chosen,
		Correct:  q.CorrectOption != nil && *q.CorrectOption == chosen,
	}
	if opt, ok := w.quiz.FindOption(chosen); ok {
		ans.Content = opt.Content
		ans.Resolved = true
	}
	if quiz.HasFeedback(q.Feedback) {
		ans.Feedback = &Feedback{Text: *q.Feedback, Correct: ans.Correct}
	}
	return ans
}

// Reset rebuilds the widget from the original quiz.
func (w *ChoiceWidget) Reset() {
	*w = ChoiceWidget{
		quiz:     w.quiz,
		stableID: w.stableID,
		selected: make([]string, len(w.quiz.Questions)),
		answers:  make([]*Answer, len(w.quiz.Questions)),
	}
	for _, opt := range w.quiz.Options {
		if id := opt.Key(); id != "" {
			w.choices = append(w.choices, Choice{ID: id, Content: opt.Content})
		}
	}
}

func (w *ChoiceWidget) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:      w.quiz.Kind,
		StableID:  w.stableID,
		GroupName: quiz.GroupName(w.stableID),
		Content:   w.quiz.Content,
		Phase:     w.phase,
		Questions: make([]QuestionSnapshot, len(w.quiz.Questions)),
		Actions: Actions{
			CheckVisible: w.phase == PhaseUnanswered,
			CheckEnabled: w.phase == PhaseUnanswered && w.Remaining() == 0,
			CheckLabel:   w.CheckCaption(),
			ResetVisible: w.phase == PhaseChecked,
		},
	}

	for i, q := range w.quiz.Questions {
		qs := QuestionSnapshot{
			Index:       i,
			Content:     q.Content,
			Selected:    w.selected[i],
			Placeholder: w.selected[i] == "",
		}
		if a := w.answers[i]; a != nil {
			cp := *a
			if a.Feedback != nil {
				fb := *a.Feedback
				cp.Feedback = &fb
			}
			qs.Answer = &cp
			qs.Placeholder = false
		} else {
			qs.Choices = w.Choices()
		}
		snap.Questions[i] = qs
	}
	return snap
}
