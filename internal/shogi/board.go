package shogi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/animalchess-go/internal/errors"
)

// Board is the 6x5 grid plus the arena of every piece in the game.
//
// The grid stores piece ids and each Piece records its own position. Both
// sides are only ever changed together by place and clear, so a square's
// occupant and the occupant's position always agree.
type Board struct {
	grid    [Rows][Cols]PieceID
	pieces  []Piece // pieces[id-1]
	players [2]*Player
}

// NewBoard creates an empty board for the two players. The players' hands
// are reset: a Player belongs to exactly one board.
func NewBoard(p0, p1 *Player) (*Board, error) {
	if err := checkPlayers(p0, p1); err != nil {
		return nil, err
	}
	p0.hand = nil
	p1.hand = nil
	return &Board{players: [2]*Player{p0, p1}}, nil
}

// Square is a read-only view of one board cell.
type Square struct {
	Coord
	Occupant PieceID
}

// IsOccupied reports whether a piece stands on the square.
func (s Square) IsOccupied() bool {
	return s.Occupant != NoPiece
}

// IsPromotionZone reports whether the square promotes pieces owned by seat.
func (s Square) IsPromotionZone(seat Seat) bool {
	return s.Coord.IsPromotionZone(seat)
}

// HasSquare reports whether (row, col) lies on the board.
func (b *Board) HasSquare(row, col int) bool {
	return HasSquare(row, col)
}

// Square returns the square at (row, col).
func (b *Board) Square(row, col int) (Square, error) {
	return b.SquareAt(Coord{Row: row, Col: col})
}

// SquareAt returns the square at c.
func (b *Board) SquareAt(c Coord) (Square, error) {
	if !c.Valid() {
		return Square{}, errors.Wrapf(errors.ErrOutOfBounds, "square (%d, %d)", c.Row, c.Col)
	}
	return Square{Coord: c, Occupant: b.grid[c.Row][c.Col]}, nil
}

// Player returns the player in the given seat.
func (b *Board) Player(seat Seat) (*Player, error) {
	if !seat.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidPlayer, "seat %d", int(seat))
	}
	return b.players[seat], nil
}

// Piece returns a copy of the arena entry for id.
func (b *Board) Piece(id PieceID) (Piece, error) {
	p := b.lookup(id)
	if p == nil {
		return Piece{}, errors.Wrapf(errors.ErrNoPiece, "piece id %d", id)
	}
	return *p, nil
}

// PieceAt returns the piece standing on c, if any.
func (b *Board) PieceAt(c Coord) (Piece, bool) {
	if !c.Valid() {
		return Piece{}, false
	}
	p := b.lookup(b.grid[c.Row][c.Col])
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Pieces returns a copy of the arena in id order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

func (b *Board) lookup(id PieceID) *Piece {
	if id <= NoPiece || int(id) > len(b.pieces) {
		return nil
	}
	return &b.pieces[id-1]
}

func (b *Board) newPiece(kind Kind, owner Seat) (*Piece, error) {
	if kind < 0 || kind >= NumKinds {
		return nil, errors.Wrapf(errors.ErrNoPiece, "unknown kind %d", int(kind))
	}
	if !owner.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidPlayer, "seat %d", int(owner))
	}
	b.pieces = append(b.pieces, Piece{
		ID:    PieceID(len(b.pieces) + 1),
		Kind:  kind,
		Owner: owner,
		Home:  owner,
	})
	return &b.pieces[len(b.pieces)-1], nil
}

// AddPiece creates a new piece owned by owner and places it on at.
func (b *Board) AddPiece(kind Kind, owner Seat, at Coord) (PieceID, error) {
	sq, err := b.SquareAt(at)
	if err != nil {
		return NoPiece, err
	}
	if sq.IsOccupied() {
		return NoPiece, errors.Wrapf(errors.ErrSquareOccupied, "square %s", at)
	}
	p, err := b.newPiece(kind, owner)
	if err != nil {
		return NoPiece, err
	}
	b.place(p, at)
	return p.ID, nil
}

// AddToHand creates a new unpromoted piece directly in owner's hand.
func (b *Board) AddToHand(kind Kind, owner Seat) (PieceID, error) {
	p, err := b.newPiece(kind, owner)
	if err != nil {
		return NoPiece, err
	}
	b.players[owner].addToHand(p.ID)
	return p.ID, nil
}

// Place puts an off-board piece onto an empty square, taking it out of its
// owner's hand. Placing onto an occupied square fails with
// ErrSquareOccupied and changes nothing.
func (b *Board) Place(id PieceID, at Coord) error {
	p := b.lookup(id)
	if p == nil {
		return errors.Wrapf(errors.ErrNoPiece, "piece id %d", id)
	}
	sq, err := b.SquareAt(at)
	if err != nil {
		return err
	}
	if p.OnBoard {
		return errors.Wrapf(errors.ErrSquareOccupied, "%s is already on the board", p)
	}
	if sq.IsOccupied() {
		return errors.Wrapf(errors.ErrSquareOccupied, "square %s", at)
	}
	b.players[p.Owner].removeFromHand(id)
	b.place(p, at)
	return nil
}

// Clear removes the occupant of at, if any, and returns its id. The piece
// is left off the board and outside every hand; callers hand it on.
func (b *Board) Clear(at Coord) (PieceID, error) {
	sq, err := b.SquareAt(at)
	if err != nil {
		return NoPiece, err
	}
	if !sq.IsOccupied() {
		return NoPiece, nil
	}
	b.clear(at)
	return sq.Occupant, nil
}

// Relocate moves an on-board piece to an empty square. It does not check
// move legality.
func (b *Board) Relocate(id PieceID, to Coord) error {
	p := b.lookup(id)
	if p == nil || !p.OnBoard {
		return errors.Wrapf(errors.ErrNoPiece, "piece id %d is not on the board", id)
	}
	sq, err := b.SquareAt(to)
	if err != nil {
		return err
	}
	if sq.IsOccupied() {
		return errors.Wrapf(errors.ErrSquareOccupied, "square %s", to)
	}
	b.clear(p.Pos)
	b.place(p, to)
	return nil
}

// Capture takes an on-board piece off the board and gives it to capturer:
// ownership flips, promotion is cleared and the piece joins the capturer's hand.
func (b *Board) Capture(id PieceID, capturer Seat) error {
	p := b.lookup(id)
	if p == nil || !p.OnBoard {
		return errors.Wrapf(errors.ErrNoPiece, "piece id %d is not on the board", id)
	}
	if !capturer.Valid() {
		return errors.Wrapf(errors.ErrInvalidPlayer, "seat %d", int(capturer))
	}
	b.clear(p.Pos)
	p.Owner = capturer
	p.Promoted = false
	b.players[capturer].addToHand(id)
	return nil
}

// Promote sets the promoted flag on a promotable piece. It reports whether
// the flag changed.
func (b *Board) Promote(id PieceID) (bool, error) {
	p := b.lookup(id)
	if p == nil {
		return false, errors.Wrapf(errors.ErrNoPiece, "piece id %d", id)
	}
	if !p.Kind.Promotable() || p.Promoted {
		return false, nil
	}
	p.Promoted = true
	return true, nil
}

// place and clear are the only writers of grid cells and piece positions.
func (b *Board) place(p *Piece, at Coord) {
	b.grid[at.Row][at.Col] = p.ID
	p.Pos = at
	p.OnBoard = true
}

func (b *Board) clear(at Coord) {
	if p := b.lookup(b.grid[at.Row][at.Col]); p != nil {
		p.OnBoard = false
		p.Pos = Coord{}
	}
	b.grid[at.Row][at.Col] = NoPiece
}

// LegalMoves returns the squares the piece may move to, ignoring whose turn
// it is. For an on-board piece each candidate offset is kept if it stays on
// the board and does not land on a piece of the same owner. A piece in hand
// may be redeployed onto any empty square.
func (b *Board) LegalMoves(id PieceID) ([]Coord, error) {
	p := b.lookup(id)
	if p == nil {
		return nil, errors.Wrapf(errors.ErrNoPiece, "piece id %d", id)
	}
	if !p.OnBoard {
		return b.emptySquares(), nil
	}

	offsets := p.Offsets()
	moves := make([]Coord, 0, len(offsets))
	for _, o := range offsets {
		to := p.Pos.Add(o)
		if !to.Valid() {
			continue
		}
		if occ := b.lookup(b.grid[to.Row][to.Col]); occ != nil && occ.Owner == p.Owner {
			continue
		}
		moves = append(moves, to)
	}
	return moves, nil
}

// IsLegalMove reports whether to is in the piece's legal destination set.
func (b *Board) IsLegalMove(id PieceID, to Coord) bool {
	moves, err := b.LegalMoves(id)
	if err != nil {
		return false
	}
	for _, m := range moves {
		if m == to {
			return true
		}
	}
	return false
}

func (b *Board) emptySquares() []Coord {
	var out []Coord
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.grid[row][col] == NoPiece {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// HandKinds returns the multiset of kinds held by seat.
func (b *Board) HandKinds(seat Seat) map[Kind]int {
	out := make(map[Kind]int)
	if !seat.Valid() {
		return out
	}
	for _, id := range b.players[seat].hand {
		if p := b.lookup(id); p != nil {
			out[p.Kind]++
		}
	}
	return out
}

// FindInHand returns the id of a piece of kind held by seat.
func (b *Board) FindInHand(seat Seat, kind Kind) (PieceID, bool) {
	if !seat.Valid() {
		return NoPiece, false
	}
	for _, id := range b.players[seat].hand {
		if p := b.lookup(id); p != nil && p.Kind == kind {
			return id, true
		}
	}
	return NoPiece, false
}

// Validate checks that grid cells, piece positions and hands agree: every
// occupant points back at its square, every off-board piece is in exactly
// its owner's hand, and no hand holds a piece twice.
func (b *Board) Validate() error {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			id := b.grid[row][col]
			if id == NoPiece {
				continue
			}
			at := Coord{Row: row, Col: col}
			p := b.lookup(id)
			if p == nil {
				return fmt.Errorf("square %s holds unknown piece id %d", at, id)
			}
			if !p.OnBoard || p.Pos != at {
				return fmt.Errorf("square %s holds %s which does not point back", at, p)
			}
		}
	}

	seen := make(map[PieceID]Seat)
	for _, pl := range b.players {
		for _, id := range pl.hand {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("piece id %d held twice", id)
			}
			seen[id] = pl.Seat
		}
	}

	for i := range b.pieces {
		p := &b.pieces[i]
		holder, inHand := seen[p.ID]
		if p.OnBoard {
			if b.grid[p.Pos.Row][p.Pos.Col] != p.ID {
				return fmt.Errorf("%s is not on its square", p)
			}
			if inHand {
				return fmt.Errorf("%s is on the board and in a hand", p)
			}
			continue
		}
		if !inHand {
			return fmt.Errorf("piece id %d is neither on the board nor in a hand", p.ID)
		}
		if holder != p.Owner {
			return fmt.Errorf("%s is held by %s", p, holder)
		}
		if p.Promoted {
			return fmt.Errorf("%s is promoted while in hand", p)
		}
	}
	return nil
}

// Copy creates a deep copy of the board, including fresh Player values.
func (b *Board) Copy() *Board {
	nb := &Board{grid: b.grid}
	nb.pieces = make([]Piece, len(b.pieces))
	copy(nb.pieces, b.pieces)
	for i, pl := range b.players {
		np := *pl
		np.hand = pl.Hand()
		nb.players[i] = &np
	}
	return nb
}

// String renders the board with row 6 at the top. Seat0 pieces are upper
// case, Seat1 lower case, and promoted pieces carry a '+'.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		line := []byte{byte(RankBase + row), ' '}
		for col := 0; col < Cols; col++ {
			cell := [2]byte{' ', '.'}
			if p := b.lookup(b.grid[row][col]); p != nil {
				cell[1] = pieceLetter(p)
				if p.Promoted {
					cell[0] = '+'
				}
			}
			if col > 0 {
				line = append(line, ' ')
			}
			line = append(line, cell[0], cell[1])
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < Cols; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(ColBase + col))
		if col < Cols-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	for _, pl := range b.players {
		fmt.Fprintf(&sb, "hand %s: %s\n", pl.Seat, b.handString(pl))
	}
	return sb.String()
}

func (b *Board) handString(pl *Player) string {
	if len(pl.hand) == 0 {
		return "-"
	}
	letters := make([]string, 0, len(pl.hand))
	for _, id := range pl.hand {
		if p := b.lookup(id); p != nil {
			letters = append(letters, string(pieceLetter(p)))
		}
	}
	sort.Strings(letters)
	return strings.Join(letters, " ")
}

func pieceLetter(p *Piece) byte {
	l := p.Kind.Letter()
	if p.Owner == Seat1 {
		l += 'a' - 'A'
	}
	return l
}
