/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"

	packrat "github.com/launix-de/go-packrat/v2"
)

// taggedParser wraps a sub-parser so the resulting packrat.Node can be
// mapped straight to a NodeTag during extraction, the way ScmParser wraps
// a sub-parser to recognize itself in findVarNodes/ExtractScmer.
type taggedParser struct {
	Tag  NodeTag
	Sub  packrat.Parser
}

func (t *taggedParser) String() string { return t.Tag.String() }

func (t *taggedParser) Match(s *packrat.Scanner) *packrat.Node {
	m := t.Sub.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: t, Children: []*packrat.Node{m}}
}

func (k NodeTag) String() string {
	switch k {
	case TagRoot:
		return "root"
	case TagNumber:
		return "number"
	case TagSymbol:
		return "symbol"
	case TagString:
		return "string"
	case TagSexpr:
		return "sexpr"
	case TagQexpr:
		return "qexpr"
	case TagComment:
		return "comment"
	default:
		return "punct"
	}
}

// Grammar holds the compiled packrat parser for one program, grounded in
// the teacher's packrat.go wiring pattern (ScmParser.Root / Execute).
type Grammar struct {
	root packrat.Parser
}

// NewGrammar builds the Lispy grammar from spec.md §6:
//
//	program  := (comment | expr)* $
//	expr     := number | string | symbol | sexpr | qexpr
//	sexpr    := '(' expr* ')'
//	qexpr    := '{' expr* '}'
//	number   := /-?[0-9]+/
//	symbol   := /[a-zA-Z0-9_+\-*\/\\=<>!&]+/
//	string   := /"(\\.|[^"])*"/
//	comment  := /;[^\n]*/
func NewGrammar() *Grammar {
	number := &taggedParser{Tag: TagNumber, Sub: packrat.NewRegexParser(`-?[0-9]+`, false, true)}
	symbol := &taggedParser{Tag: TagSymbol, Sub: packrat.NewRegexParser(`[a-zA-Z0-9_+\-*/\\=<>!&]+`, false, true)}
	str := &taggedParser{Tag: TagString, Sub: packrat.NewRegexParser(`"(\\.|[^"])*"`, false, true)}
	comment := &taggedParser{Tag: TagComment, Sub: packrat.NewRegexParser(`;[^\n]*`, false, true)}

	lparen := packrat.NewAtomParser("(", false, true)
	rparen := packrat.NewAtomParser(")", false, true)
	lbrace := packrat.NewAtomParser("{", false, true)
	rbrace := packrat.NewAtomParser("}", false, true)

	var exprFwd forwardParser

	sexpr := &taggedParser{Tag: TagSexpr, Sub: packrat.NewAndParser(
		lparen,
		packrat.NewKleeneParser(&exprFwd, packrat.NewEmptyParser()),
		rparen,
	)}
	qexpr := &taggedParser{Tag: TagQexpr, Sub: packrat.NewAndParser(
		lbrace,
		packrat.NewKleeneParser(&exprFwd, packrat.NewEmptyParser()),
		rbrace,
	)}

	expr := packrat.NewOrParser(number, str, symbol, sexpr, qexpr)
	exprFwd.Parser = expr

	program := &taggedParser{Tag: TagRoot, Sub: packrat.NewAndParser(
		packrat.NewKleeneParser(packrat.NewOrParser(comment, &exprFwd), packrat.NewEmptyParser()),
		packrat.NewEndParser(true),
	)}

	return &Grammar{root: program}
}

// forwardParser lets sexpr/qexpr recurse into expr before expr itself is
// fully constructed, mirroring UndefinedParser's forward-declaration role
// in packrat.go.
type forwardParser struct {
	Parser packrat.Parser
}

func (f *forwardParser) Match(s *packrat.Scanner) *packrat.Node {
	return f.Parser.Match(s)
}

// Parse runs the grammar over src and extracts a ParseNode tree, ready for
// Read. It never panics on malformed input: a syntax error comes back as a
// Go error so the REPL/load path can turn it into an Error Value.
func (g *Grammar) Parse(src string) (*ParseNode, error) {
	scanner := packrat.NewScanner(src, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(g.root, scanner)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return extract(node), nil
}

func extract(n *packrat.Node) *ParseNode {
	switch p := n.Parser.(type) {
	case *taggedParser:
		out := &ParseNode{Tag: p.Tag, Text: n.Matched}
		if p.Tag == TagRoot || p.Tag == TagSexpr || p.Tag == TagQexpr {
			collectExprs(n, out)
		}
		return out
	default:
		return &ParseNode{Tag: TagPunct, Text: n.Matched}
	}
}

// collectExprs walks beneath a root/sexpr/qexpr node's KleeneParser
// children and appends every nested expr as a direct child of out,
// discarding comments and the punctuation and separator nodes the grammar produced
// along the way — matching packrat.go's ExtractScmer handling of
// KleeneParser pairs (match, separator, match, separator, ...).
func collectExprs(n *packrat.Node, out *ParseNode) {
	for _, c := range n.Children {
		switch p := c.Parser.(type) {
		case *taggedParser:
			if p.Tag == TagComment {
				continue // comments are skipped, never part of the value tree
			}
			out.Children = append(out.Children, extract(c))
		default:
			collectExprs(c, out)
		}
	}
}
