package syntax

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  The value of a string token has its
	// quotes removed and its escapes resolved; the value of a vector token is
	// the text between the quotes.
	Value string

	// The one-based line the token starts on.
	Line int
}

// Enumeration of token kinds.
const (
	TOK_IDENT = iota
	TOK_NUMBER
	TOK_STRING
	TOK_VECTOR

	TOK_SEMI
	TOK_COMMA
	TOK_DOT
	TOK_ELLIPSIS
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_ASSIGN
	TOK_HASH
	TOK_MINUS

	TOK_EOF
)

// tokenNames is used to describe expected tokens in error messages.
var tokenNames = map[int]string{
	TOK_IDENT:    "identifier",
	TOK_NUMBER:   "number",
	TOK_STRING:   "string",
	TOK_VECTOR:   "vector",
	TOK_SEMI:     "`;`",
	TOK_COMMA:    "`,`",
	TOK_DOT:      "`.`",
	TOK_ELLIPSIS: "`...`",
	TOK_LPAREN:   "`(`",
	TOK_RPAREN:   "`)`",
	TOK_LBRACE:   "`{`",
	TOK_RBRACE:   "`}`",
	TOK_LBRACKET: "`[`",
	TOK_RBRACKET: "`]`",
	TOK_ASSIGN:   "`=`",
	TOK_HASH:     "`#`",
	TOK_MINUS:    "`-`",
	TOK_EOF:      "end of file",
}
