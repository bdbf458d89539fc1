package shogi

import (
	"github.com/lgbarn/animalchess-go/internal/errors"
)

// Player is a seat, a display name and a hand of captured pieces.
// The hand stores piece ids; the pieces themselves live in the Board arena.
type Player struct {
	Seat Seat
	Name string

	hand []PieceID
}

// NewPlayer creates a player for the given seat number.
func NewPlayer(seat int, name string) (*Player, error) {
	s, err := ParseSeat(seat)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = s.String()
	}
	return &Player{Seat: s, Name: name}, nil
}

// Direction returns the player's forward sign on the row axis.
func (p *Player) Direction() int {
	return p.Seat.Direction()
}

// Hand returns a copy of the ids of the pieces held in hand. Order is not
// significant.
func (p *Player) Hand() []PieceID {
	out := make([]PieceID, len(p.hand))
	copy(out, p.hand)
	return out
}

// HandSize returns the number of pieces in hand.
func (p *Player) HandSize() int {
	return len(p.hand)
}

// holds reports whether id is in the hand.
func (p *Player) holds(id PieceID) bool {
	for _, h := range p.hand {
		if h == id {
			return true
		}
	}
	return false
}

func (p *Player) addToHand(id PieceID) {
	p.hand = append(p.hand, id)
}

// removeFromHand drops id from the hand, reporting whether it was there.
func (p *Player) removeFromHand(id PieceID) bool {
	for i, h := range p.hand {
		if h == id {
			p.hand[i] = p.hand[len(p.hand)-1]
			p.hand = p.hand[:len(p.hand)-1]
			return true
		}
	}
	return false
}

// String returns the player's name.
func (p *Player) String() string {
	return p.Name
}

// checkPlayers verifies p0 and p1 occupy seats 0 and 1.
func checkPlayers(p0, p1 *Player) error {
	if p0 == nil || p1 == nil {
		return errors.Wrap(errors.ErrInvalidPlayer, "nil player")
	}
	if p0.Seat != Seat0 {
		return errors.Wrapf(errors.ErrInvalidPlayer, "first player has seat %d", int(p0.Seat))
	}
	if p1.Seat != Seat1 {
		return errors.Wrapf(errors.ErrInvalidPlayer, "second player has seat %d", int(p1.Seat))
	}
	return nil
}
