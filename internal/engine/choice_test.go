package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizblocks/internal/quiz"
)

func TestChoice_WrongAnswerShowsChosenContent(t *testing.T) {
	w := NewChoice(choiceQuiz(), "q")
	w.Choose(0, "o2")
	res := w.Check()
	require.True(t, res.Applied)

	q := w.Snapshot().Questions[0]
	require.NotNil(t, q.Answer)
	assert.False(t, q.Answer.Correct)
	assert.Equal(t, "Y", q.Answer.Content)
	assert.True(t, q.Answer.Resolved)
	assert.Nil(t, q.Choices, "graded question should drop its control")
	require.NotNil(t, q.Answer.Feedback)
	assert.Equal(t, MarkWrong, q.Answer.Feedback.Mark())
}

func TestChoice_CorrectAnswer(t *testing.T) {
	w := NewChoice(choiceQuiz(), "q")
	w.Choose(0, "o1")
	w.Check()

	a := w.Snapshot().Questions[0].Answer
	require.NotNil(t, a)
	assert.True(t, a.Correct)
	assert.Equal(t, "X", a.Content)
}

func TestChoice_UndefinedCorrectOptionIsAlwaysWrong(t *testing.T) {
	q := choiceQuiz()
	q.Questions[0].CorrectOption = nil
	w := NewChoice(q, "q")
	w.Choose(0, "o1")
	w.Check()

	assert.False(t, w.Snapshot().Questions[0].Answer.Correct)
}

func TestChoice_IncompleteCheckReportsRemaining(t *testing.T) {
	q := choiceQuiz()
	q.Questions = append(q.Questions,
		quiz.ChoiceQuestion{Content: "Q2", CorrectOption: strp("o2")},
		quiz.ChoiceQuestion{Content: "Q3", CorrectOption: strp("o2")},
	)
	w := NewChoice(q, "q")
	w.Choose(1, "o2")

	snap := w.Snapshot()
	assert.Equal(t, 2, w.Remaining())
	assert.Equal(t, "Check (2 questions left)", snap.Actions.CheckLabel)
	assert.False(t, snap.Actions.CheckEnabled)

	res := w.Check()
	assert.False(t, res.Applied)
	assert.Equal(t, "2 questions left.", res.Notice)
	assert.Equal(t, PhaseUnanswered, w.Phase())

	w.Choose(0, "o1")
	w.Choose(2, "o1")
	snap = w.Snapshot()
	assert.Equal(t, "Check", snap.Actions.CheckLabel)
	assert.True(t, snap.Actions.CheckEnabled)
}

func TestChoice_PlaceholderUntilSelected(t *testing.T) {
	w := NewChoice(choiceQuiz(), "q")
	assert.True(t, w.Snapshot().Questions[0].Placeholder)

	w.Choose(0, "o1")
	q := w.Snapshot().Questions[0]
	assert.False(t, q.Placeholder)
	assert.Equal(t, "o1", q.Selected)
}

func TestChoice_UnknownInputsIgnored(t *testing.T) {
	w := NewChoice(choiceQuiz(), "q")
	w.Choose(3, "o1")
	w.Choose(-1, "o1")
	w.Choose(0, "zzz")
	w.Choose(0, "")
	assert.Equal(t, 1, w.Remaining())
}

func TestChoice_OffersOnlyKeyedOptions(t *testing.T) {
	q := choiceQuiz()
	q.Options = append(q.Options, quiz.Option{Content: ""})
	w := NewChoice(q, "q")

	assert.Equal(t, []Choice{{ID: "o1", Content: "X"}, {ID: "o2", Content: "Y"}}, w.Choices())
}

func TestChoice_FeedbackOnlyWhenNonBlank(t *testing.T) {
	q := choiceQuiz()
	q.Questions[0].Feedback = strp("  ")
	w := NewChoice(q, "q")
	w.Choose(0, "o1")
	w.Check()

	assert.Nil(t, w.Snapshot().Questions[0].Answer.Feedback)
}

func TestChoice_CheckedIgnoresChoices(t *testing.T) {
	w := NewChoice(choiceQuiz(), "q")
	w.Choose(0, "o2")
	w.Check()
	w.Choose(0, "o1")

	assert.Equal(t, "o2", w.Snapshot().Questions[0].Selected)
	assert.False(t, w.Check().Applied)
}

func TestChoice_ResetRebuilds(t *testing.T) {
	w := NewChoice(choiceQuiz(), "q")
	w.Choose(0, "o2")
	w.Check()
	w.Reset()

	snap := w.Snapshot()
	assert.Equal(t, PhaseUnanswered, snap.Phase)
	q := snap.Questions[0]
	assert.Nil(t, q.Answer)
	assert.Empty(t, q.Selected)
	assert.True(t, q.Placeholder)
	assert.Len(t, q.Choices, 2)
	assert.True(t, snap.Actions.CheckVisible)
	assert.False(t, snap.Actions.ResetVisible)
}

func TestChoice_NoQuestionsChecksImmediately(t *testing.T) {
	q := choiceQuiz()
	q.Questions = []quiz.ChoiceQuestion{}
	w := NewChoice(q, "q")

	assert.Equal(t, "Check", w.CheckCaption())
	assert.True(t, w.Check().Applied)
}
