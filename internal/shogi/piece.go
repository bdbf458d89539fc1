package shogi

import "fmt"

// PieceID is a stable identifier into a Board's piece arena.
type PieceID int

// NoPiece marks an empty square or a missing piece.
const NoPiece PieceID = 0

// Piece is one entry of the arena. Pos is meaningful only while OnBoard;
// a piece that is not on the board sits in its owner's hand.
type Piece struct {
	ID       PieceID
	Kind     Kind
	Owner    Seat
	Home     Seat // seat the piece started with, never changes
	Promoted bool
	Pos      Coord
	OnBoard  bool
}

// String returns e.g. "Cat(player 0)@a1" or "Chick+(player 1) in hand".
func (p Piece) String() string {
	name := p.Kind.String()
	if p.Promoted {
		name += "+"
	}
	if !p.OnBoard {
		return fmt.Sprintf("%s(%s) in hand", name, p.Owner)
	}
	return fmt.Sprintf("%s(%s)@%s", name, p.Owner, p.Pos)
}

// Offsets returns the piece's current candidate offsets.
func (p Piece) Offsets() []Offset {
	return LegalOffsets(p.Kind, p.Promoted, p.Owner.Direction())
}
