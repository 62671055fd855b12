package author

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizblocks/internal/quiz"
)

const systemPrompt = `You write short self-check quizzes that are embedded in Markdown notes.

Rules:
- Write one quiz of the requested type about the given topic.
- content and option text may use inline Markdown: **bold**, *emphasis*, ` + "`code`" + `, [links](url).
- Option ids are short lowercase slugs, unique within the quiz.
- feedback explains why an option is right or wrong in one or two sentences. Use an empty string for none.
- radio: exactly one option is correct.
- checkbox: one or more options are correct. Distractors should be plausible.
- choice: every option has correct=false. Each question describes a situation and correct_option is the id of the option that matches it. Options may be reused across questions.
- Do not repeat a quiz from the "already in the document" list.`

// kindGuide is the per-variant line of the user message.
var kindGuide = map[quiz.Kind]string{
	quiz.KindRadio:    "single answer (radio)",
	quiz.KindCheckbox: "multiple answers (checkbox)",
	quiz.KindChoice:   "matching questions to shared options (choice)",
}

// buildUserMessage renders the request for input, whose counts are
// already defaulted.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Type: %s\n", input.Kind)
	fmt.Fprintf(&b, "Style: %s\n", kindGuide[input.Kind])
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Options: %d\n", input.Options)
	if input.Kind == quiz.KindChoice {
		fmt.Fprintf(&b, "Questions: %d\n", input.Questions)
	}

	b.WriteString("\nAlready in the document:\n")
	b.WriteString(buildAvoid(input.Avoid, cfg.MaxAvoid))

	return b.String()
}

// buildAvoid formats existing prompts, keeping the last max.
func buildAvoid(prompts []string, max int) string {
	if len(prompts) == 0 {
		return "None"
	}
	if max > 0 && len(prompts) > max {
		prompts = prompts[len(prompts)-max:]
	}

	var b strings.Builder
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.Join(strings.Fields(p), " "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// repairMessage asks the model to fix the problems found in its last
// reply.
func repairMessage(problem error) string {
	var b strings.Builder
	b.WriteString("That quiz was rejected:\n")

	var verr *quiz.ValidationError
	if errors.As(problem, &verr) {
		for _, issue := range verr.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	} else {
		fmt.Fprintf(&b, "- %v\n", problem)
	}

	b.WriteString("\nReturn the corrected quiz in full.")
	return b.String()
}
