// Package block finds quiz blocks in markdown documents and turns each one
// into either a render request or a diagnostic.
package block

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Block is one fenced quiz block. Line numbers are 0-based and point at
// the opening and closing fence lines.
type Block struct {
	Source    string
	Info      string
	LineStart int
	LineEnd   int
}

// lineIndex maps byte offsets of a source to 0-based line numbers.
type lineIndex struct {
	starts []int
	lines  []string
}

func newLineIndex(source []byte) lineIndex {
	lines := strings.Split(string(source), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	starts := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		starts[i] = off
		off += len(l) + 1
	}
	return lineIndex{starts: starts, lines: lines}
}

func (li lineIndex) lineOf(offset int) int {
	return sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
}

// fenceAt reads the fence run that ends right before the info string.
func fenceAt(source []byte, info int) (char byte, length int) {
	i := info - 1
	for i >= 0 && (source[i] == ' ' || source[i] == '\t') {
		i--
	}
	if i < 0 {
		return 0, 0
	}
	char = source[i]
	for i >= 0 && source[i] == char {
		length++
		i--
	}
	return char, length
}

// closes reports whether line is a closing fence for char repeated at
// least length times.
func closes(line string, char byte, length int) bool {
	rest := strings.TrimLeft(line, " >\t")
	n := 0
	for n < len(rest) && rest[n] == char {
		n++
	}
	return n >= length && strings.TrimSpace(rest[n:]) == ""
}

// Scan returns every fenced code block whose language is lang, in document
// order. Fences nested in other code blocks are content, not blocks. An
// unclosed fence runs to the end of its container.
func Scan(source []byte, lang string) []Block {
	source = bytes.ReplaceAll(source, []byte("\r\n"), []byte("\n"))
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	li := newLineIndex(source)

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if fcb.Info == nil || string(fcb.Language(source)) != lang {
			return ast.WalkSkipChildren, nil
		}
		blocks = append(blocks, li.block(source, fcb))
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

func (li lineIndex) block(source []byte, fcb *ast.FencedCodeBlock) Block {
	info := fcb.Info.Segment
	start := li.lineOf(info.Start)

	var sb strings.Builder
	last := start
	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.WriteString(strings.Repeat(" ", seg.Padding))
		sb.Write(seg.Value(source))
		last = li.lineOf(seg.Start)
	}
	body := sb.String()
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	end := last
	char, length := fenceAt(source, info.Start)
	if next := last + 1; next < len(li.lines) && closes(li.lines[next], char, length) {
		end = next
	}
	return Block{
		Source:    body,
		Info:      strings.TrimSpace(string(info.Value(source))),
		LineStart: start,
		LineEnd:   end,
	}
}
