package quiz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Load parses and validates raw block text.
func Load(raw string) (Quiz, error) {
	value, err := Parse(raw)
	if err != nil {
		return Quiz{}, err
	}
	return Validate(value)
}

// Validate turns a generic tree into a Quiz. On failure it returns a
// *ValidationError listing every issue found, ordered by path.
func Validate(value any) (Quiz, error) {
	q, issues := validateQuiz(value)
	if len(issues) > 0 {
		return Quiz{}, &ValidationError{Issues: issues}
	}
	return q, nil
}

func validateQuiz(value any) (Quiz, []Issue) {
	obj, ok := value.(map[string]any)
	if !ok {
		return Quiz{}, []Issue{{Path: Path{}, Message: fmt.Sprintf("expected object, received %s", typeName(value))}}
	}

	tree, issues := canonicalQuiz(obj)

	kind, kindIssues := discriminate(tree)
	if len(kindIssues) > 0 {
		return Quiz{}, sortIssues(append(issues, kindIssues...))
	}

	issues = append(issues, requireFields(kind, tree)...)
	issues = append(issues, checkFields(kind, tree)...)
	if kind == KindChoice {
		issues = append(issues, checkChoiceRefs(tree, issues)...)
	}
	if len(issues) > 0 {
		return Quiz{}, sortIssues(issues)
	}
	return buildQuiz(kind, tree), nil
}

func discriminate(tree map[string]any) (Kind, []Issue) {
	raw, ok := tree["type"]
	if !ok {
		return "", []Issue{{Path: Path{"type"}, Message: "is required (expected one of " + kindList() + ")"}}
	}
	s, isString := raw.(string)
	if !isString || !Kind(s).Valid() {
		return "", []Issue{{
			Path:    Path{"type"},
			Message: fmt.Sprintf("invalid value %s (expected one of %s)", describe(raw), kindList()),
		}}
	}
	return Kind(s), nil
}

func requireFields(kind Kind, tree map[string]any) []Issue {
	var issues []Issue
	if _, ok := tree["options"]; !ok {
		issues = append(issues, Issue{Path: Path{"options"}, Message: "is required"})
	}
	if kind == KindChoice {
		if _, ok := tree["questions"]; !ok {
			issues = append(issues, Issue{Path: Path{"questions"}, Message: "is required for choice quizzes"})
		}
	}
	return issues
}

// checkChoiceRefs enforces the option identity rules of choice quizzes.
// Every occurrence of a duplicated id is reported, the first included.
func checkChoiceRefs(tree map[string]any, prior []Issue) []Issue {
	var issues []Issue
	options, _ := tree["options"].([]any)

	ids := make([]string, len(options))
	counts := map[string]int{}
	for i, item := range options {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, _ := m["id"].(string)
		path := Path{"options", i, "id"}
		if id == "" {
			if !hasIssueAt(prior, path) {
				issues = append(issues, Issue{
					Path:    path,
					Message: fmt.Sprintf("options[%d].id is required for choice quizzes", i),
				})
			}
			continue
		}
		ids[i] = id
		counts[id]++
	}
	for i, id := range ids {
		if id != "" && counts[id] > 1 {
			issues = append(issues, Issue{
				Path:    Path{"options", i, "id"},
				Message: fmt.Sprintf("duplicate option id: %s", id),
			})
		}
	}

	questions, _ := tree["questions"].([]any)
	for i, item := range questions {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ref, ok := m["correct_option"].(string)
		if !ok || ref == "" {
			continue
		}
		if counts[ref] == 0 {
			issues = append(issues, Issue{
				Path:    Path{"questions", i, "correct_option"},
				Message: fmt.Sprintf("questions[%d].correct_option references unknown option id: %s", i, ref),
			})
		}
	}
	return issues
}

// buildQuiz copies a canonical tree that passed every check into a Quiz.
func buildQuiz(kind Kind, tree map[string]any) Quiz {
	q := Quiz{Kind: kind}
	q.ID, _ = tree["id"].(string)
	q.Content, _ = tree["content"].(string)

	items, _ := tree["options"].([]any)
	q.Options = make([]Option, 0, len(items))
	for _, item := range items {
		m, _ := item.(map[string]any)
		o := Option{}
		o.ID, _ = m["id"].(string)
		o.Content, _ = m["content"].(string)
		o.Correct, _ = m["correct"].(bool)
		o.Feedback = optionalString(m["feedback"])
		q.Options = append(q.Options, o)
	}

	if kind == KindChoice {
		items, _ := tree["questions"].([]any)
		q.Questions = make([]ChoiceQuestion, 0, len(items))
		for _, item := range items {
			m, _ := item.(map[string]any)
			cq := ChoiceQuestion{}
			cq.ID, _ = m["id"].(string)
			cq.Content, _ = m["content"].(string)
			cq.CorrectOption = optionalString(m["correct_option"])
			cq.Feedback = optionalString(m["feedback"])
			q.Questions = append(q.Questions, cq)
		}
	}
	return q
}

func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func sortIssues(issues []Issue) []Issue {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path.compare(issues[j].Path) < 0
	})
	return issues
}

func kindList() string {
	names := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func describe(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case nil:
		return "null"
	case float64:
		return formatNumber(x)
	case bool:
		return strconv.FormatBool(x)
	}
	return "of type " + typeName(v)
}
