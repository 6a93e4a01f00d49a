package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE"

	// Identifiers and literals. Lowercase identifiers name values and
	// bindings, uppercase identifiers name types, enums and constructors.
	IDENT_LOWER TokenType = "IDENT_LOWER"
	IDENT_UPPER TokenType = "IDENT_UPPER"
	INT         TokenType = "INT"
	STRING      TokenType = "STRING"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	BANG     TokenType = "!"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "!="
	LT       TokenType = "<"
	GT       TokenType = ">"
	LT_EQ    TokenType = "<="
	GT_EQ    TokenType = ">="
	AND      TokenType = "&&"
	OR       TokenType = "||"
	ARROW    TokenType = "->"

	// Delimiters
	COMMA  TokenType = ","
	COLON  TokenType = ":"
	DOT    TokenType = "."
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"

	// Keywords
	MODULE TokenType = "MODULE"
	ENUM   TokenType = "ENUM"
	FN     TokenType = "FN"
	LET    TokenType = "LET"
	MUT    TokenType = "MUT"
	MATCH  TokenType = "MATCH"
	RETURN TokenType = "RETURN"
)

var keywords = map[string]TokenType{
	"module": MODULE,
	"enum":   ENUM,
	"fn":     FN,
	"let":    LET,
	"mut":    MUT,
	"match":  MATCH,
	"return": RETURN,
}

// LookupIdent distinguishes keywords from plain identifiers. Identifiers
// starting with an uppercase letter are constructor/type names.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if len(ident) > 0 && ident[0] >= 'A' && ident[0] <= 'Z' {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}
