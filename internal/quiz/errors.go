package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// EmptyInputError indicates the block had no non-whitespace content.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "empty quiz block"
}

// ParseError indicates the block is not well-formed YAML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse quiz block: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Path locates a field by walking the block structure. Segments are
// either map keys (string) or sequence indexes (int).
type Path []any

// String renders the path as options[2].id.
func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}
	var b strings.Builder
	for _, seg := range p {
		switch v := seg.(type) {
		case int:
			b.WriteString("[" + strconv.Itoa(v) + "]")
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(fmt.Sprint(v))
		}
	}
	return b.String()
}

// Equal reports whether two paths address the same field.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// compare orders paths segment by segment; indexes sort numerically and
// before keys at the same depth.
func (p Path) compare(other Path) int {
	for i := 0; i < len(p) && i < len(other); i++ {
		ai, aIsInt := p[i].(int)
		bi, bIsInt := other[i].(int)
		switch {
		case aIsInt && bIsInt:
			if ai != bi {
				if ai < bi {
					return -1
				}
				return 1
			}
		case aIsInt:
			return -1
		case bIsInt:
			return 1
		default:
			as, bs := fmt.Sprint(p[i]), fmt.Sprint(other[i])
			if c := strings.Compare(as, bs); c != 0 {
				return c
			}
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	}
	return 0
}

// Issue is a single validation complaint.
type Issue struct {
	Path    Path
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidationError reports every issue found in one validation pass.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(parts, "; "))
}

// IssuesAt returns the issues whose path equals path.
func (e *ValidationError) IssuesAt(path ...any) []Issue {
	var out []Issue
	for _, issue := range e.Issues {
		if issue.Path.Equal(Path(path)) {
			out = append(out, issue)
		}
	}
	return out
}

func hasIssueAt(issues []Issue, path Path) bool {
	for _, issue := range issues {
		if issue.Path.Equal(path) {
			return true
		}
	}
	return false
}

func at(base Path, segs ...any) Path {
	out := make(Path, 0, len(base)+len(segs))
	out = append(out, base...)
	return append(out, segs...)
}
