package block

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizblocks/internal/quiz"
)

// Document is a markdown source with its vault-relative path.
type Document struct {
	Path   string
	Source []byte
}

// RenderRequest is everything a host needs to mount one quiz widget.
type RenderRequest struct {
	Quiz       quiz.Quiz
	StableID   string
	GroupName  string
	SourcePath string
	LineStart  int
	LineEnd    int
}

// Diagnostic replaces a widget whose block failed to load.
type Diagnostic struct {
	Message   string
	Err       error
	LineStart int
	LineEnd   int
}

// Result is the outcome of one block: exactly one of Request and
// Diagnostic is set.
type Result struct {
	Block      Block
	Request    *RenderRequest
	Diagnostic *Diagnostic
}

// OK reports whether the block produced a render request.
func (r Result) OK() bool {
	return r.Request != nil
}

// Process loads every quiz block in doc.
func Process(doc Document) []Result {
	blocks := Scan(doc.Source, quiz.FenceLanguage)
	results := make([]Result, 0, len(blocks))
	for _, b := range blocks {
		results = append(results, Load(doc.Path, b))
	}
	return results
}

// Load parses and validates a single block.
func Load(sourcePath string, b Block) Result {
	q, err := quiz.Load(b.Source)
	if err != nil {
		return Result{
			Block: b,
			Diagnostic: &Diagnostic{
				Message:   Describe(err),
				Err:       err,
				LineStart: b.LineStart,
				LineEnd:   b.LineEnd,
			},
		}
	}

	stableID := quiz.StableID(q, quiz.Location{
		SourcePath: sourcePath,
		LineStart:  b.LineStart,
		LineEnd:    b.LineEnd,
	})
	return Result{
		Block: b,
		Request: &RenderRequest{
			Quiz:       q,
			StableID:   stableID,
			GroupName:  quiz.GroupName(stableID),
			SourcePath: sourcePath,
			LineStart:  b.LineStart,
			LineEnd:    b.LineEnd,
		},
	}
}

// Describe formats a load error as the text shown in place of a widget.
func Describe(err error) string {
	var (
		empty   *quiz.EmptyInputError
		parse   *quiz.ParseError
		invalid *quiz.ValidationError
	)
	switch {
	case errors.As(err, &empty):
		return "Error: Empty quiz block."
	case errors.As(err, &parse):
		return fmt.Sprintf("Error: Failed to parse quiz block as YAML.\n%v", parse.Err)
	case errors.As(err, &invalid):
		var sb strings.Builder
		sb.WriteString("Error: Invalid quiz block.")
		for _, issue := range invalid.Issues {
			sb.WriteString("\n")
			sb.WriteString(issue.String())
		}
		return sb.String()
	}
	return fmt.Sprintf("Error: %v", err)
}
