package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindWikiLink is the node kind of an [[internal link]].
var KindWikiLink = ast.NewNodeKind("WikiLink")

// WikiLink is an [[internal link]] or ![[embed]]. Label is the alias when
// one is given, the target otherwise.
type WikiLink struct {
	ast.BaseInline
	Target []byte
	Label  []byte
	Embed  bool
}

func (n *WikiLink) Kind() ast.NodeKind { return KindWikiLink }

func (n *WikiLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Target": string(n.Target),
		"Label":  string(n.Label),
	}, nil)
}

type wikiLinkParser struct{}

func (wikiLinkParser) Trigger() []byte {
	return []byte{'!', '['}
}

func (wikiLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	embed := len(line) > 0 && line[0] == '!'
	start := 0
	if embed {
		start = 1
	}
	if !bytes.HasPrefix(line[start:], []byte("[[")) {
		return nil
	}
	body := line[start+2:]
	end := bytes.Index(body, []byte("]]"))
	if end <= 0 {
		return nil
	}
	inner := body[:end]

	target, alias, hasAlias := bytes.Cut(inner, []byte("|"))
	target, _, _ = bytes.Cut(target, []byte("#"))
	target = bytes.TrimSpace(target)
	if len(target) == 0 {
		return nil
	}
	label := target
	if hasAlias && len(bytes.TrimSpace(alias)) > 0 {
		label = bytes.TrimSpace(alias)
	}

	block.Advance(start + 2 + end + 2)
	return &WikiLink{Target: target, Label: label, Embed: embed}
}

// KindHighlight is the node kind of ==highlighted== text.
var KindHighlight = ast.NewNodeKind("Highlight")

// Highlight is ==highlighted== text.
type Highlight struct {
	ast.BaseInline
}

func (n *Highlight) Kind() ast.NodeKind { return KindHighlight }

func (n *Highlight) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type highlightDelimiterProcessor struct{}

func (highlightDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '='
}

func (highlightDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (highlightDelimiterProcessor) OnMatch(consumes int) ast.Node {
	return &Highlight{}
}

type highlightParser struct{}

func (highlightParser) Trigger() []byte {
	return []byte{'='}
}

func (highlightParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 2, highlightDelimiterProcessor{})
	if node == nil || node.OriginalLength != 2 || before == '=' {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type obsidian struct{}

// Obsidian adds [[wikilinks]] and ==highlights== to a goldmark parser.
// Wikilinks are tried before regular links.
var Obsidian goldmark.Extender = obsidian{}

func (obsidian) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(wikiLinkParser{}, 199),
		util.Prioritized(highlightParser{}, 500),
	))
}
