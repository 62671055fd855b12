// Package render turns the markdown fragments of a quiz into terminal
// text. Fragments are rendered one at a time in document order so output
// order never depends on renderer latency.
package render

import (
	"context"
	"strings"
)

// Fragment is one rendered piece of markdown.
type Fragment struct {
	// Text is the styled terminal rendering.
	Text string

	// Plain is the same text without any styling.
	Plain string
}

func (f Fragment) String() string { return f.Text }

// Renderer renders inline markdown. sourcePath resolves relative links.
type Renderer interface {
	Render(ctx context.Context, markdown, sourcePath string) (Fragment, error)
}

// PlainText renders md and reduces it to a single trimmed line, as used
// for dropdown labels that cannot host rich text.
func PlainText(ctx context.Context, r Renderer, md, sourcePath string) (string, error) {
	frag, err := r.Render(ctx, md, sourcePath)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(frag.Plain), " "), nil
}
