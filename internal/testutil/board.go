package testutil

import (
	"testing"

	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// MustCoord parses a square like "c3" and fails the test on error.
func MustCoord(t *testing.T, s string) shogi.Coord {
	t.Helper()
	c, err := shogi.ParseCoord(s)
	if err != nil {
		t.Fatalf("ParseCoord(%q): %v", s, err)
	}
	return c
}

// MustCoords parses several squares.
func MustCoords(t *testing.T, squares ...string) []shogi.Coord {
	t.Helper()
	out := make([]shogi.Coord, 0, len(squares))
	for _, s := range squares {
		out = append(out, MustCoord(t, s))
	}
	return out
}

// NewPlayers returns fresh players for seats 0 and 1.
func NewPlayers(t *testing.T) (*shogi.Player, *shogi.Player) {
	t.Helper()
	p0, err := shogi.NewPlayer(0, "south")
	if err != nil {
		t.Fatalf("NewPlayer(0): %v", err)
	}
	p1, err := shogi.NewPlayer(1, "north")
	if err != nil {
		t.Fatalf("NewPlayer(1): %v", err)
	}
	return p0, p1
}

// EmptyBoard returns a board with no pieces, for ad hoc placement tests.
func EmptyBoard(t *testing.T) *shogi.Board {
	t.Helper()
	b, err := shogi.NewBoard(NewPlayers(t))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

// MustAddPiece places a new piece on an empty board square.
func MustAddPiece(t *testing.T, b *shogi.Board, kind shogi.Kind, owner shogi.Seat, square string) shogi.PieceID {
	t.Helper()
	id, err := b.AddPiece(kind, owner, MustCoord(t, square))
	if err != nil {
		t.Fatalf("AddPiece(%v, %v, %s): %v", kind, owner, square, err)
	}
	return id
}

// AssertBoardValid fails if the board's square/piece/hand bookkeeping disagrees.
func AssertBoardValid(t *testing.T, b *shogi.Board) {
	t.Helper()
	if err := b.Validate(); err != nil {
		t.Errorf("board invariant broken: %v\n%s", err, b)
	}
}
