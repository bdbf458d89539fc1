// Package parser reads animalchess move scripts.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	MoveNumber
	MoveToken
	ErrorToken
)

var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	TagToken:   "TAG",
	MoveNumber: "MOVE_NUMBER",
	MoveToken:  "MOVE",
	ErrorToken: "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is a lexical token with its source position.
// For TagToken, Text holds the tag name and Value the quoted value.
// For ErrorToken, Text holds the offending input and Value what was expected.
type Token struct {
	Type   TokenType
	Text   string
	Value  string
	Line   int
	Column int
}
