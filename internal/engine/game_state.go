package engine

import "github.com/lgbarn/animalchess-go/internal/shogi"

// HasWon reports whether seat has captured the opposing Lion. It is derived
// from the piece arena on every call: the opponent's Lion now belongs to
// seat. Ownership changes only on capture and no move is accepted once the
// game is decided, so the answer never reverts.
func (g *Game) HasWon(seat shogi.Seat) bool {
	for _, p := range g.board.Pieces() {
		if p.Kind == shogi.Lion && p.Home == seat.Opponent() && p.Owner == seat {
			return true
		}
	}
	return false
}

// Winner returns the winning player, if any.
func (g *Game) Winner() (*shogi.Player, bool) {
	for _, seat := range []shogi.Seat{shogi.Seat0, shogi.Seat1} {
		if g.HasWon(seat) {
			p, err := g.board.Player(seat)
			if err != nil {
				return nil, false
			}
			return p, true
		}
	}
	return nil, false
}

// IsOver reports whether a Lion has been captured.
func (g *Game) IsOver() bool {
	_, over := g.Winner()
	return over
}
