package parser

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/animalchess-go/internal/engine"
	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// Tag names recognised for player names.
const (
	Player0Tag = "Player0"
	Player1Tag = "Player1"
)

// ScriptMove is one parsed move token with its source position.
type ScriptMove struct {
	Text   string
	Move   engine.Move
	Line   int
	Column int
}

// Script is a parsed move script.
type Script struct {
	Name  string
	Tags  map[string]string
	Moves []ScriptMove
}

// GetTag returns the value of a tag, or "" if absent.
func (s *Script) GetTag(name string) string {
	return s.Tags[name]
}

// PlayerName returns the tagged name for seat, or def when untagged.
func (s *Script) PlayerName(seat shogi.Seat, def string) string {
	tag := Player0Tag
	if seat == shogi.Seat1 {
		tag = Player1Tag
	}
	if name := strings.TrimSpace(s.Tags[tag]); name != "" {
		return name
	}
	return def
}

// PlyCount returns the number of moves in the script.
func (s *Script) PlyCount() int {
	return len(s.Moves)
}

// Parser parses move scripts into Script structures.
type Parser struct {
	lexer        *Lexer
	name         string
	currentToken *Token
}

// NewParser creates a new parser for the given reader. name labels the
// script in errors and results.
func NewParser(r io.Reader, name string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		name:  name,
	}
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

func (p *Parser) errorAt(tok *Token, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.name,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
}

// Parse reads the whole script. Tags are only accepted before the first move.
func (p *Parser) Parse() (*Script, error) {
	script := &Script{Name: p.name, Tags: make(map[string]string)}
	p.nextToken()

	for p.currentToken.Type == TagToken {
		script.Tags[p.currentToken.Text] = p.currentToken.Value
		p.nextToken()
	}

	for {
		tok := p.currentToken
		switch tok.Type {
		case EOFToken:
			return script, nil
		case ErrorToken:
			return nil, p.errorAt(tok, tok.Value, tok.Text)
		case TagToken:
			return nil, p.errorAt(tok, "move", "tag "+tok.Text)
		case MoveNumber:
		case MoveToken:
			m, err := engine.ParseMove(tok.Text)
			if err != nil {
				return nil, p.errorAt(tok, "move", tok.Text)
			}
			script.Moves = append(script.Moves, ScriptMove{
				Text:   tok.Text,
				Move:   m,
				Line:   tok.Line,
				Column: tok.Column,
			})
		}
		p.nextToken()
	}
}

// ParseScript parses a single script from r.
func ParseScript(r io.Reader, name string) (*Script, error) {
	return NewParser(r, name).Parse()
}

// ParseFile opens and parses the script at path. The script is named by
// the file's base name.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScript(f, filepath.Base(path))
}
