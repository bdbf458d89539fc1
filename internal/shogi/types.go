// Package shogi provides the core types of the 6x5 animal shogi variant:
// coordinates, seats, piece kinds, the piece arena and the board grid.
package shogi

import (
	"fmt"

	"github.com/lgbarn/animalchess-go/internal/errors"
)

// Constants for board dimensions and notation.
const (
	Rows = 6
	Cols = 5

	ColBase  = 'a'
	RankBase = '1'
)

// Coord is a (row, col) board position. Row 0 is Seat0's back row.
type Coord struct {
	Row int
	Col int
}

// HasSquare reports whether (row, col) lies on the board.
func HasSquare(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Valid reports whether c lies on the board.
func (c Coord) Valid() bool {
	return HasSquare(c.Row, c.Col)
}

// Add returns c shifted by o.
func (c Coord) Add(o Offset) Coord {
	return Coord{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// IsPromotionZone reports whether a piece owned by seat is promoted on
// arrival at c. Rows 4-5 promote Seat0, rows 0-1 promote Seat1.
func (c Coord) IsPromotionZone(seat Seat) bool {
	switch seat {
	case Seat0:
		return c.Row >= Rows-2
	case Seat1:
		return c.Row < 2
	}
	return false
}

// String returns the square in notation form, e.g. "c1" for (0, 2).
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{byte(ColBase + c.Col), byte(RankBase + c.Row)})
}

// ParseCoord parses a square in notation form ("a1".."e6").
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, errors.Wrapf(errors.ErrParseFailure, "square %q", s)
	}
	col := s[0]
	if col >= 'A' && col <= 'Z' {
		col += 'a' - 'A'
	}
	c := Coord{Row: int(s[1]) - RankBase, Col: int(col) - ColBase}
	if !c.Valid() {
		return Coord{}, errors.Wrapf(errors.ErrOutOfBounds, "square %q", s)
	}
	return c, nil
}

// Seat identifies one of the two players.
type Seat int

const (
	Seat0 Seat = iota
	Seat1
)

// ParseSeat converts a player number into a Seat.
func ParseSeat(n int) (Seat, error) {
	if n != int(Seat0) && n != int(Seat1) {
		return 0, errors.Wrapf(errors.ErrInvalidPlayer, "seat %d", n)
	}
	return Seat(n), nil
}

// Valid reports whether s is Seat0 or Seat1.
func (s Seat) Valid() bool {
	return s == Seat0 || s == Seat1
}

// Direction returns the forward sign on the row axis: +1 for Seat0, -1 for Seat1.
func (s Seat) Direction() int {
	if s == Seat1 {
		return -1
	}
	return 1
}

// Opponent returns the other seat.
func (s Seat) Opponent() Seat {
	if s == Seat1 {
		return Seat0
	}
	return Seat1
}

// String returns the string representation of a seat.
func (s Seat) String() string {
	return fmt.Sprintf("player %d", int(s))
}

// Kind is a piece variant.
type Kind int

const (
	Lion Kind = iota
	Dog
	Cat
	Chick
	NumKinds
)

var kindNames = [NumKinds]string{"Lion", "Dog", "Cat", "Chick"}

// Letters used in move notation. Chick is H so it does not clash with Cat.
var kindLetters = [NumKinds]byte{'L', 'D', 'C', 'H'}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindLetters[k]
	}
	return '?'
}

// Promotable reports whether pieces of this kind can be promoted.
func (k Kind) Promotable() bool {
	return k == Cat || k == Chick
}

// KindFromLetter converts a notation letter (either case) into a Kind.
func KindFromLetter(c byte) (Kind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == c {
			return Kind(k), true
		}
	}
	return 0, false
}
