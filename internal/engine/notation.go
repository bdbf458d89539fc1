package engine

import (
	"strings"

	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// Move is a parsed move in text notation. Board moves are written "c3-c4",
// "c3c4" or "c3xc4"; drops are written with the kind letter and a star,
// e.g. "H*b4".
type Move struct {
	From shogi.Coord
	To   shogi.Coord
	Drop bool
	Kind shogi.Kind // drops only
}

// ParseMove parses a move token.
func ParseMove(s string) (Move, error) {
	text := strings.TrimSpace(s)
	if len(text) == 4 && text[1] == '*' {
		kind, ok := shogi.KindFromLetter(text[0])
		if !ok {
			return Move{}, errors.Wrapf(errors.ErrParseFailure, "unknown piece letter in %q", s)
		}
		to, err := shogi.ParseCoord(text[2:])
		if err != nil {
			return Move{}, err
		}
		return Move{To: to, Drop: true, Kind: kind}, nil
	}

	var from, to string
	switch len(text) {
	case 4:
		from, to = text[:2], text[2:]
	case 5:
		if text[2] != '-' && text[2] != 'x' {
			return Move{}, errors.Wrapf(errors.ErrParseFailure, "move %q", s)
		}
		from, to = text[:2], text[3:]
	default:
		return Move{}, errors.Wrapf(errors.ErrParseFailure, "move %q", s)
	}

	fromC, err := shogi.ParseCoord(from)
	if err != nil {
		return Move{}, err
	}
	toC, err := shogi.ParseCoord(to)
	if err != nil {
		return Move{}, err
	}
	return Move{From: fromC, To: toC}, nil
}

// String returns the move in canonical notation.
func (m Move) String() string {
	if m.Drop {
		return string(m.Kind.Letter()) + "*" + m.To.String()
	}
	return m.From.String() + "-" + m.To.String()
}

// Play applies a parsed move for seat. Drops take a piece of the named kind
// from seat's hand; board moves ignore seat, since turn order is the
// caller's business.
func (g *Game) Play(seat shogi.Seat, m Move) (MoveResult, error) {
	if m.Drop {
		return g.Drop(seat, m.Kind, m.To)
	}
	return g.Move(m.From, m.To)
}
