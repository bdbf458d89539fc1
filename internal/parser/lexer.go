package parser

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes move scripts one line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		l.eof = true
		return false
	}
	if err == io.EOF {
		l.eof = true
	}
	if l.lineNum == 0 {
		line = strings.TrimPrefix(line, "\uFEFF")
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		for l.pos < len(l.line) && isSpace(l.currentChar()) {
			l.pos++
		}
		if l.pos >= len(l.line) || l.currentChar() == '#' {
			if !l.readLine() {
				return &Token{Type: EOFToken, Line: l.lineNum, Column: l.pos + 1}
			}
			continue
		}

		start := l.pos
		var tok *Token
		if l.currentChar() == '[' {
			tok = l.gatherTag()
		} else {
			tok = l.gatherWord()
		}
		tok.Line = l.lineNum
		tok.Column = start + 1
		return tok
	}
}

// gatherWord collects a run of non-space characters, stopping at a comment.
func (l *Lexer) gatherWord() *Token {
	start := l.pos
	for l.pos < len(l.line) && !isSpace(l.currentChar()) && l.currentChar() != '#' {
		l.pos++
	}
	text := l.line[start:l.pos]
	if isMoveNumber(text) {
		return &Token{Type: MoveNumber, Text: text}
	}
	return &Token{Type: MoveToken, Text: text}
}

// isMoveNumber matches "12." and "12...".
func isMoveNumber(text string) bool {
	digits := strings.TrimRight(text, ".")
	if digits == "" || len(digits) == len(text) {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return false
		}
	}
	return true
}

// gatherTag reads [Name "value"]. Tags must fit on one line.
func (l *Lexer) gatherTag() *Token {
	l.pos++ // [
	for l.pos < len(l.line) && isSpace(l.currentChar()) {
		l.pos++
	}
	start := l.pos
	for l.pos < len(l.line) && isTagChar(l.currentChar()) {
		l.pos++
	}
	name := l.line[start:l.pos]
	if name == "" {
		return l.errorToken("tag name")
	}
	for l.pos < len(l.line) && isSpace(l.currentChar()) {
		l.pos++
	}
	if l.currentChar() != '"' {
		return l.errorToken("quoted tag value")
	}
	l.pos++

	var value strings.Builder
	closed := false
	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.pos++
		if ch == '\\' && l.pos < len(l.line) {
			value.WriteByte(l.currentChar())
			l.pos++
			continue
		}
		if ch == '"' {
			closed = true
			break
		}
		value.WriteByte(ch)
	}
	if !closed {
		return l.errorToken("closing quote")
	}
	for l.pos < len(l.line) && isSpace(l.currentChar()) {
		l.pos++
	}
	if l.currentChar() != ']' {
		return l.errorToken("]")
	}
	l.pos++
	return &Token{Type: TagToken, Text: name, Value: value.String()}
}

func isTagChar(ch byte) bool {
	return ch == '_' || isDigit(ch) || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// errorToken reports the rest of the line as unexpected and skips it.
func (l *Lexer) errorToken(expected string) *Token {
	got := strings.TrimRight(l.line[l.pos:], "\r\n")
	if got == "" {
		got = "end of line"
	}
	l.pos = len(l.line)
	return &Token{Type: ErrorToken, Text: got, Value: expected}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
