package syntax

import (
	"bufio"
	"hcc/report"
	"io"
	"strings"
	"unicode"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	// fileName is the name of the file used in error messages.
	fileName string

	line, startLine int
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(fileName string, file *bufio.Reader) *Lexer {
	return &Lexer{
		file:     file,
		tokBuff:  &strings.Builder{},
		fileName: fileName,
		line:     1,
	}
}

// NextToken retrieves the next token from the input file. If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if err := l.skipComment(); err != nil {
				return nil, err
			}
		case '$':
			// model generation directives take up the rest of the line
			if err := l.skipLine(); err != nil {
				return nil, err
			}
		case '"':
			return l.lexStringLit()
		case '\'':
			return l.lexVectorLit()
		case '.':
			return l.lexDotOrNumber()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdent()
			} else {
				return l.lexPunct()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// punctPatterns maps single-rune punctuation to its token kind.
var punctPatterns = map[rune]int{
	';': TOK_SEMI,
	',': TOK_COMMA,
	'(': TOK_LPAREN,
	')': TOK_RPAREN,
	'{': TOK_LBRACE,
	'}': TOK_RBRACE,
	'[': TOK_LBRACKET,
	']': TOK_RBRACKET,
	'=': TOK_ASSIGN,
	'#': TOK_HASH,
	'-': TOK_MINUS,
}

// lexPunct lexes a punctuation symbol.
func (l *Lexer) lexPunct() (*Token, error) {
	l.mark()
	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	kind, ok := punctPatterns[c]
	if !ok {
		return nil, report.Raise(l.fileName, l.startLine, "unknown character `%c`", c)
	}

	return l.makeToken(kind), nil
}

// lexDotOrNumber lexes a `.`, a `...` or a number beginning with a decimal
// point.
func (l *Lexer) lexDotOrNumber() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if isDecimalDigit(c) {
		return l.lexNumericLit()
	}

	if c != '.' {
		return l.makeToken(TOK_DOT), nil
	}

	l.eat()
	if c, err = l.eat(); err != nil {
		return nil, err
	} else if c != '.' {
		return nil, report.Raise(l.fileName, l.startLine, "expected `...`")
	}

	return l.makeToken(TOK_ELLIPSIS), nil
}

// lexIdent lexes an identifier.  Type names and other keywords are lexed as
// identifiers and recognized by the parser.
func (l *Lexer) lexIdent() (*Token, error) {
	l.mark()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 || !(isFirstIdentChar(c) || isDecimalDigit(c)) {
			break
		}

		l.eat()
	}

	return l.makeToken(TOK_IDENT), nil
}

// lexNumericLit lexes a decimal number with an optional fractional part.  The
// lexer may already have consumed a leading decimal point.
func (l *Lexer) lexNumericLit() (*Token, error) {
	if l.tokBuff.Len() == 0 {
		l.mark()
	}

	sawDot := strings.HasPrefix(l.tokBuff.String(), ".")
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == '.' && !sawDot {
			sawDot = true
		} else if c == -1 || !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	return l.makeToken(TOK_NUMBER), nil
}

// lexStringLit lexes a double-quoted string literal.  The supported escapes
// are `\n`, `\"` and `\\`.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.skip()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(l.fileName, l.startLine, "unclosed string literal")
		case '"':
			return l.makeToken(TOK_STRING), nil
		case '\\':
			e, err := l.skip()
			if err != nil {
				return nil, err
			}

			switch e {
			case 'n':
				l.tokBuff.WriteRune('\n')
			case '"', '\\':
				l.tokBuff.WriteRune(e)
			default:
				return nil, report.Raise(l.fileName, l.line, "unknown escape sequence `\\%c`", e)
			}
		default:
			l.tokBuff.WriteRune(c)
		}
	}
}

// lexVectorLit lexes a single-quoted vector literal.
func (l *Lexer) lexVectorLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.skip()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1, '\n':
			return nil, report.Raise(l.fileName, l.startLine, "unclosed vector literal")
		case '\'':
			return l.makeToken(TOK_VECTOR), nil
		default:
			l.tokBuff.WriteRune(c)
		}
	}
}

// skipComment skips a line or block comment.  A lone `/` is an error: no
// operators appear in declarations.
func (l *Lexer) skipComment() error {
	l.mark()
	l.skip()

	c, err := l.skip()
	if err != nil {
		return err
	}

	switch c {
	case '/':
		return l.skipLine()
	case '*':
		for {
			c, err := l.skip()
			if err != nil {
				return err
			}

			if c == -1 {
				return report.Raise(l.fileName, l.startLine, "unclosed block comment")
			}

			if c == '*' {
				if next, err := l.peek(); err != nil {
					return err
				} else if next == '/' {
					l.skip()
					return nil
				}
			}
		}
	default:
		return report.Raise(l.fileName, l.startLine, "unexpected `/`")
	}
}

// skipLine skips up to and including the next newline.
func (l *Lexer) skipLine() error {
	for {
		c, err := l.skip()
		if err != nil {
			return err
		}

		if c == -1 || c == '\n' {
			return nil
		}
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line to its current line.
func (l *Lexer) mark() {
	l.startLine = l.line
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Line:  l.startLine,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, err := l.skip()
	if err == nil && c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c, err
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if c == '\n' {
		l.line++
	}

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
