package quiz

import (
	"fmt"
	"math"
	"strconv"
)

// Alias priority lists. The first key holding a non-null value wins, so
// the canonical key always takes precedence over its aliases.
var (
	rootContentKeys     = []string{"content", "text", "question"}
	optionContentKeys   = []string{"content", "text", "answer", "option"}
	questionContentKeys = []string{"content", "text", "question"}
	correctOptionKeys   = []string{"correct_option", "correctOption", "correct", "correctId", "correct_option_id"}
)

// firstPresent returns the value of the first key in keys that is set to
// something other than null.
func firstPresent(obj map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// canonicalQuiz folds aliases, drops nulls, coerces ids and applies
// defaults. The returned tree only carries canonical keys. The root is
// handled before its children because the variant it names decides
// which schema the children are checked against.
func canonicalQuiz(obj map[string]any) (map[string]any, []Issue) {
	var issues []Issue
	out := map[string]any{}

	if raw := obj["id"]; raw != nil {
		id, idIssues := coerceID(raw, Path{"id"})
		issues = append(issues, idIssues...)
		if len(idIssues) == 0 {
			out["id"] = id
		}
	}
	if raw := obj["type"]; raw != nil {
		out["type"] = raw
	}
	if content, ok := firstPresent(obj, rootContentKeys); ok {
		out["content"] = content
	} else {
		out["content"] = ""
	}

	if raw := obj["options"]; raw != nil {
		items, ok := raw.([]any)
		if !ok {
			out["options"] = raw
		} else {
			options := make([]any, 0, len(items))
			for i, item := range items {
				m, ok := item.(map[string]any)
				if !ok {
					options = append(options, item)
					continue
				}
				option, optionIssues := canonicalOption(m, Path{"options", i})
				issues = append(issues, optionIssues...)
				options = append(options, option)
			}
			out["options"] = options
		}
	}

	if raw := obj["questions"]; raw != nil {
		items, ok := raw.([]any)
		if !ok {
			out["questions"] = raw
		} else {
			questions := make([]any, 0, len(items))
			for i, item := range items {
				m, ok := item.(map[string]any)
				if !ok {
					questions = append(questions, item)
					continue
				}
				question, questionIssues := canonicalQuestion(m, Path{"questions", i})
				issues = append(issues, questionIssues...)
				questions = append(questions, question)
			}
			out["questions"] = questions
		}
	}

	return out, issues
}

func canonicalOption(obj map[string]any, path Path) (map[string]any, []Issue) {
	var issues []Issue
	out := map[string]any{}

	content, hasContent := firstPresent(obj, optionContentKeys)
	if hasContent {
		out["content"] = content
	} else {
		out["content"] = ""
	}

	if raw := obj["id"]; raw != nil {
		id, idIssues := coerceID(raw, at(path, "id"))
		issues = append(issues, idIssues...)
		if len(idIssues) == 0 {
			out["id"] = id
		}
	} else if hasContent {
		// Content doubles as identity. Blank content yields a blank id,
		// which only matters to choice quizzes.
		if id, ok := scalarString(content); ok {
			out["id"] = id
		}
	}

	if raw := obj["correct"]; raw != nil {
		out["correct"] = raw
	} else {
		out["correct"] = false
	}
	if raw := obj["feedback"]; raw != nil {
		out["feedback"] = raw
	}
	return out, issues
}

func canonicalQuestion(obj map[string]any, path Path) (map[string]any, []Issue) {
	var issues []Issue
	out := map[string]any{}

	if content, ok := firstPresent(obj, questionContentKeys); ok {
		out["content"] = content
	} else {
		out["content"] = ""
	}
	if raw := obj["id"]; raw != nil {
		id, idIssues := coerceID(raw, at(path, "id"))
		issues = append(issues, idIssues...)
		if len(idIssues) == 0 {
			out["id"] = id
		}
	}
	if raw, ok := firstPresent(obj, correctOptionKeys); ok {
		ref, refIssues := coerceID(raw, at(path, "correct_option"))
		issues = append(issues, refIssues...)
		if len(refIssues) == 0 {
			out["correct_option"] = ref
		}
	}
	if raw := obj["feedback"]; raw != nil {
		out["feedback"] = raw
	}
	return out, issues
}

// coerceID accepts identity-like scalars and stringifies them so loosely
// typed YAML such as `id: 1` still works.
func coerceID(v any, path Path) (string, []Issue) {
	s, ok := scalarString(v)
	if !ok {
		return "", []Issue{{Path: path, Message: fmt.Sprintf("expected string, received %s", typeName(v))}}
	}
	if s == "" {
		return "", []Issue{{Path: path, Message: "must not be empty"}}
	}
	return s, nil
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return formatNumber(x), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}

// formatNumber prints numbers the way a YAML author reads them: 1 not 1.0.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
