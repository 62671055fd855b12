package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizblocks/internal/engine"
	"github.com/abhisek/quizblocks/internal/quiz"
	"github.com/abhisek/quizblocks/internal/render"
	"github.com/abhisek/quizblocks/internal/ui/theme"
)

// Control draws the selection control of an option row from its
// appearance: round for radio, square for checkbox.
func Control(kind quiz.Kind, a engine.Appearance) string {
	left, right := "[", "]"
	if kind == quiz.KindRadio {
		left, right = "(", ")"
	}

	glyph := " "
	switch a.Icon {
	case engine.IconTick:
		glyph = "✓"
		if kind == quiz.KindRadio {
			glyph = "•"
		}
	case engine.IconMinus:
		glyph = "−"
	case engine.IconClose:
		glyph = "✗"
	}

	style := lipgloss.NewStyle().Foreground(markColor(a.Mark, a.PseudoChecked))
	if a.View == engine.ViewDefault && a.PseudoChecked {
		style = style.Bold(true)
	}
	if a.View == engine.ViewOutline {
		left, right = "⟨", "⟩"
	}
	if a.Disabled && a.Mark == engine.MarkNone {
		style = theme.Disabled
	}
	return style.Render(left + glyph + right)
}

// RenderRow draws one radio or checkbox option with its revealed
// feedback. focused rows carry the cursor.
func RenderRow(kind quiz.Kind, row render.RowView, focused bool, width int) string {
	a := row.Appearance()

	cursor := "  "
	if focused && !a.Disabled {
		cursor = theme.Selected.Render("▸ ")
	}

	label := row.Text.Text
	if a.Disabled && a.Mark == engine.MarkNone {
		label = theme.Disabled.Render(row.Text.Plain)
	}

	line := cursor + Control(kind, a) + " " + label
	if fb := row.Feedback; fb != nil {
		line += "\n" + feedbackLine(fb.Mark(), row.FeedbackText.Text, width)
	}
	return line
}

// RenderQuestion draws one choice question: its dropdown while open, or
// the graded answer once checked.
func RenderQuestion(q render.QuestionView, focused bool, width int) string {
	var b strings.Builder

	cursor := "  "
	if focused && q.Answer == nil {
		cursor = theme.Selected.Render("▸ ")
	}
	b.WriteString(cursor + q.Text.Text + "\n")

	if a := q.Answer; a != nil {
		mark := a.Mark()
		answer := q.AnswerText.Text
		if answer == "" {
			answer = a.OptionID
		}
		b.WriteString("    " + markStyle(mark).Render(markGlyph(mark)) + " " + answer)
		if a.Feedback != nil && q.FeedbackText.Text != "" {
			b.WriteString("\n" + feedbackLine(mark, q.FeedbackText.Text, width))
		}
		return b.String()
	}

	label := engine.Placeholder
	if q.Selected != "" {
		label = q.Selected
		for _, c := range q.Choices {
			if c.ID == q.Selected {
				label = c.Label
				break
			}
		}
	}
	style := theme.Unselected
	if focused {
		style = theme.Selected
	}
	b.WriteString("    " + style.Render("◂ "+label+" ▸"))
	return b.String()
}

func feedbackLine(mark engine.Mark, text string, width int) string {
	body := markStyle(mark).Render(markGlyph(mark))
	if text != "" {
		body += " " + lipgloss.NewStyle().Width(max(width-8, 10)).Render(text)
	}
	return lipgloss.NewStyle().PaddingLeft(6).Render(body)
}

func markGlyph(m engine.Mark) string {
	if m == engine.MarkCorrect {
		return "✓"
	}
	return "✗"
}

func markStyle(m engine.Mark) lipgloss.Style {
	if m == engine.MarkCorrect {
		return theme.Correct
	}
	return theme.Incorrect
}

func markColor(m engine.Mark, checked bool) color.Color {
	switch m {
	case engine.MarkCorrect:
		return theme.Success
	case engine.MarkWrong:
		return theme.Error
	}
	if checked {
		return theme.Primary
	}
	return theme.Text
}
