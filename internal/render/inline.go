package render

import (
	"context"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/abhisek/quizblocks/internal/ui/theme"
)

type span int

const (
	spanStrong span = iota
	spanEmph
	spanCode
	spanLink
	spanStrike
	spanMark
)

var mdParser = goldmark.New(goldmark.WithExtensions(extension.Strikethrough, Obsidian)).Parser()

// inline renders md to text, handing every styled span to wrap. Block
// structure is flattened: paragraphs and headings become lines and list
// items get a bullet.
func inline(md string, wrap func(span, string) string) string {
	src := []byte(md)
	doc := mdParser.Parse(text.NewReader(src))
	w := textWriter{src: src, wrap: wrap}
	return w.children(doc)
}

type textWriter struct {
	src  []byte
	wrap func(span, string) string
}

func (w textWriter) children(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		sb.WriteString(w.node(c))
	}
	return sb.String()
}

func (w textWriter) node(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Text:
		s := string(unescape(n.Segment.Value(w.src)))
		if n.SoftLineBreak() || n.HardLineBreak() {
			s += "\n"
		}
		return s
	case *ast.String:
		return string(n.Value)
	case *ast.CodeSpan:
		return w.wrap(spanCode, w.code(n))
	case *ast.Emphasis:
		if n.Level >= 2 {
			return w.wrap(spanStrong, w.children(n))
		}
		return w.wrap(spanEmph, w.children(n))
	case *ast.Link:
		return w.wrap(spanLink, w.children(n))
	case *ast.AutoLink:
		return w.wrap(spanLink, string(n.Label(w.src)))
	case *ast.Image:
		return w.children(n)
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(w.src))
		}
		return sb.String()
	case *extast.Strikethrough:
		return w.wrap(spanStrike, w.children(n))
	case *Highlight:
		return w.wrap(spanMark, w.children(n))
	case *WikiLink:
		return w.wrap(spanLink, string(n.Label))
	case *ast.List:
		return w.list(n)
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return w.wrap(spanCode, strings.TrimRight(w.lines(n), "\n")) + "\n"
	case *ast.ThematicBreak:
		return ""
	case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
		return w.children(n) + "\n"
	}
	return w.children(n)
}

// code joins the raw text of a code span. Escapes are literal in code.
func (w textWriter) code(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(w.src))
		case *ast.String:
			sb.Write(c.Value)
		}
	}
	return strings.ReplaceAll(sb.String(), "\n", " ")
}

func (w textWriter) lines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.WriteString(strings.Repeat(" ", seg.Padding))
		sb.Write(seg.Value(w.src))
	}
	return sb.String()
}

func (w textWriter) list(n *ast.List) string {
	var sb strings.Builder
	i := n.Start
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		marker := "• "
		if n.IsOrdered() {
			marker = strconv.Itoa(i) + ". "
			i++
		}
		sb.WriteString(marker + strings.TrimRight(w.children(c), "\n") + "\n")
	}
	return sb.String()
}

func unescape(b []byte) []byte {
	return util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(b)))
}

func unstyled(_ span, s string) string { return s }

// Plain renders markdown as bare text.
type Plain struct{}

func (Plain) Render(ctx context.Context, markdown, _ string) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}
	out := strings.TrimSpace(inline(markdown, unstyled))
	return Fragment{Text: out, Plain: out}, nil
}

// Terminal renders markdown with lipgloss styles for emphasis, code and
// links.
type Terminal struct {
	Strong lipgloss.Style
	Emph   lipgloss.Style
	Code   lipgloss.Style
	Link   lipgloss.Style
	Strike lipgloss.Style
	Mark   lipgloss.Style
}

// NewTerminal returns a Terminal renderer using the application theme.
func NewTerminal() *Terminal {
	return &Terminal{
		Strong: lipgloss.NewStyle().Bold(true),
		Emph:   lipgloss.NewStyle().Italic(true),
		Code:   lipgloss.NewStyle().Foreground(theme.Secondary),
		Link:   lipgloss.NewStyle().Foreground(theme.Primary).Underline(true),
		Strike: lipgloss.NewStyle().Strikethrough(true),
		Mark:   lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Accent),
	}
}

func (t *Terminal) style(kind span) lipgloss.Style {
	switch kind {
	case spanStrong:
		return t.Strong
	case spanEmph:
		return t.Emph
	case spanCode:
		return t.Code
	case spanLink:
		return t.Link
	case spanStrike:
		return t.Strike
	}
	return t.Mark
}

func (t *Terminal) Render(ctx context.Context, markdown, _ string) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}
	styled := inline(markdown, func(kind span, s string) string {
		return t.style(kind).Render(s)
	})
	return Fragment{
		Text:  strings.TrimSpace(styled),
		Plain: strings.TrimSpace(inline(markdown, unstyled)),
	}, nil
}
