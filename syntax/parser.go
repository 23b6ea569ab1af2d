// Package syntax implements the declaration front end: it reads the global
// declarations of a source file and enters them into a compilation unit.
// Function bodies are compiled by the statement compiler, which is not part
// of this package.
package syntax

import (
	"bufio"
	"fmt"
	"hcc/progs"
	"hcc/report"
	"strings"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a source file.  It is a recursive descent parser
// which declares symbols in the unit as it parses.  All parsing functions
// assume that they begin with the parser centered on the first token of their
// production and must consume all tokens of their production, leaving the
// parser on the next token.  Parsers are created once per file.
type Parser struct {
	// u is the unit receiving the declarations.
	u *progs.Unit

	// fileName is the name of the file being parsed.
	fileName string

	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser for the given file.
func NewParser(u *progs.Unit, fileName string, src string) *Parser {
	return &Parser{
		u:        u,
		fileName: fileName,
		lexer:    NewLexer(fileName, bufio.NewReader(strings.NewReader(src))),
	}
}

// Parse parses the whole file.
func (p *Parser) Parse() error {
	if err := p.next(); err != nil {
		return err
	}

	return p.parseFile()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}

	p.tok = tok
	return nil
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assert checks if the parser is on a token of a given kind and rejects the
// token if not.
func (p *Parser) assert(kind int) error {
	if p.got(kind) {
		return nil
	}

	return p.reject(kind)
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) error {
	if err := p.assert(kind); err != nil {
		return err
	}

	return p.next()
}

// reject creates an unexpected token error on the current token.
func (p *Parser) reject(expected int) error {
	var found string
	switch p.tok.Kind {
	case TOK_EOF:
		found = "end of file"
	case TOK_STRING:
		found = fmt.Sprintf("\"%s\"", p.tok.Value)
	case TOK_VECTOR:
		found = fmt.Sprintf("'%s'", p.tok.Value)
	default:
		found = fmt.Sprintf("`%s`", p.tok.Value)
	}

	return p.errorf("expected %s but found %s", tokenNames[expected], found)
}

// errorf creates a compile error on the current token's line.
func (p *Parser) errorf(msg string, args ...interface{}) error {
	return report.Raise(p.fileName, p.tok.Line, msg, args...)
}

// fail converts an error returned by the unit into a compile error on the
// current line.  Capacity errors are returned unchanged: they are not the
// fault of the line that triggered them.
func (p *Parser) fail(err error) error {
	if progs.IsCapacity(err) {
		return err
	}

	return p.errorf("%s", err)
}
