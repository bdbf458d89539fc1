// Package engine provides move validation and state transitions for animal shogi.
package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// Game owns one board and applies moves to it. A Game is not safe for
// concurrent use; run one Game per goroutine.
type Game struct {
	board *shogi.Board
	log   logrus.FieldLogger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger that receives move, capture and win events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGame creates a game with the standard starting position. p0 must sit
// in seat 0 and p1 in seat 1.
func NewGame(p0, p1 *shogi.Player, opts ...Option) (*Game, error) {
	g, err := NewEmptyGame(p0, p1, opts...)
	if err != nil {
		return nil, err
	}
	if err := setupInitialPosition(g.board); err != nil {
		return nil, err
	}
	return g, nil
}

// NewEmptyGame creates a game whose board has no pieces, for ad hoc
// positions built with Board().AddPiece and Board().AddToHand.
func NewEmptyGame(p0, p1 *shogi.Player, opts ...Option) (*Game, error) {
	board, err := shogi.NewBoard(p0, p1)
	if err != nil {
		return nil, err
	}
	g := &Game{board: board, log: discardLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Board returns the game's board.
func (g *Game) Board() *shogi.Board {
	return g.board
}

// Square returns the square at (row, col).
func (g *Game) Square(row, col int) (shogi.Square, error) {
	return g.board.Square(row, col)
}

// Player returns the player for seat number n (0 or 1).
func (g *Game) Player(n int) (*shogi.Player, error) {
	seat, err := shogi.ParseSeat(n)
	if err != nil {
		return nil, err
	}
	return g.board.Player(seat)
}

// LegalMoves returns the squares the piece may move to, ignoring whose turn
// it is. A piece in hand may go to any empty square.
func (g *Game) LegalMoves(id shogi.PieceID) ([]shogi.Square, error) {
	coords, err := g.board.LegalMoves(id)
	if err != nil {
		return nil, err
	}
	squares := make([]shogi.Square, 0, len(coords))
	for _, c := range coords {
		sq, err := g.board.SquareAt(c)
		if err != nil {
			return nil, errors.Wrap(err, "legal move")
		}
		squares = append(squares, sq)
	}
	return squares, nil
}
