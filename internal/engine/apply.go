package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// MoveResult describes an applied move.
type MoveResult struct {
	Piece    shogi.PieceID
	Kind     shogi.Kind
	Owner    shogi.Seat
	From     shogi.Coord // zero for a drop
	To       shogi.Coord
	Drop     bool
	Promoted bool // the piece was promoted by this move

	Captured     shogi.PieceID // NoPiece if nothing was captured
	CapturedKind shogi.Kind

	Decided bool       // this move captured a Lion
	Winner  shogi.Seat // valid when Decided
}

// ApplyMove moves piece id to the target square.
//
// A piece on the board must move to a square in its legal set; anything
// else is ErrIllegalMove and leaves the game untouched. An opposing piece on
// the target is captured into the mover's hand. A piece in hand is
// redeployed onto the target, which must be empty (ErrSquareOccupied).
// Promotion applies only to board moves that end in the mover's promotion
// zone. Once a Lion has been captured every move fails with ErrGameOver.
func (g *Game) ApplyMove(id shogi.PieceID, to shogi.Coord) (MoveResult, error) {
	if !to.Valid() {
		return MoveResult{}, errors.Wrapf(errors.ErrOutOfBounds, "target (%d, %d)", to.Row, to.Col)
	}
	if g.IsOver() {
		return MoveResult{}, errors.ErrGameOver
	}
	p, err := g.board.Piece(id)
	if err != nil {
		return MoveResult{}, err
	}
	if !p.OnBoard {
		return g.redeploy(p, to)
	}
	if !g.board.IsLegalMove(id, to) {
		return MoveResult{}, errors.Wrapf(errors.ErrIllegalMove, "%s to %s", p, to)
	}

	res := MoveResult{
		Piece: id,
		Kind:  p.Kind,
		Owner: p.Owner,
		From:  p.Pos,
		To:    to,
	}

	if occ, ok := g.board.PieceAt(to); ok {
		if err := g.capture(occ, p.Owner); err != nil {
			return MoveResult{}, err
		}
		res.Captured = occ.ID
		res.CapturedKind = occ.Kind
	}

	if err := g.board.Relocate(id, to); err != nil {
		return MoveResult{}, errors.Wrap(err, "relocate")
	}

	if to.IsPromotionZone(p.Owner) {
		promoted, err := g.board.Promote(id)
		if err != nil {
			return MoveResult{}, err
		}
		res.Promoted = promoted
		if promoted {
			g.log.WithFields(logrus.Fields{"piece": p.Kind, "owner": p.Owner, "square": to}).Debug("promoted")
		}
	}

	if winner, ok := g.Winner(); ok {
		res.Decided = true
		res.Winner = winner.Seat
	}

	g.log.WithFields(logrus.Fields{
		"piece": p.Kind,
		"owner": p.Owner,
		"from":  res.From,
		"to":    to,
	}).Debug("move applied")
	return res, nil
}

// capture moves an opposing piece into the mover's hand and reports a
// captured Lion.
func (g *Game) capture(victim shogi.Piece, mover shogi.Seat) error {
	if err := g.board.Capture(victim.ID, mover); err != nil {
		return errors.Wrapf(err, "capture %s", victim)
	}
	fields := logrus.Fields{"piece": victim.Kind, "square": victim.Pos, "by": mover}
	g.log.WithFields(fields).Info("captured")
	if victim.Kind == shogi.Lion {
		g.log.WithFields(logrus.Fields{"winner": mover}).Info("lion captured, game over")
	}
	return nil
}

func (g *Game) redeploy(p shogi.Piece, to shogi.Coord) (MoveResult, error) {
	if err := g.board.Place(p.ID, to); err != nil {
		return MoveResult{}, err
	}
	g.log.WithFields(logrus.Fields{"piece": p.Kind, "owner": p.Owner, "to": to}).Debug("redeployed")
	return MoveResult{
		Piece: p.ID,
		Kind:  p.Kind,
		Owner: p.Owner,
		To:    to,
		Drop:  true,
	}, nil
}

// Move moves the piece standing on from to to.
func (g *Game) Move(from, to shogi.Coord) (MoveResult, error) {
	if !from.Valid() {
		return MoveResult{}, errors.Wrapf(errors.ErrOutOfBounds, "origin (%d, %d)", from.Row, from.Col)
	}
	p, ok := g.board.PieceAt(from)
	if !ok {
		return MoveResult{}, errors.Wrapf(errors.ErrNoPiece, "square %s", from)
	}
	return g.ApplyMove(p.ID, to)
}

// Drop redeploys a piece of kind from seat's hand onto to.
func (g *Game) Drop(seat shogi.Seat, kind shogi.Kind, to shogi.Coord) (MoveResult, error) {
	if !seat.Valid() {
		return MoveResult{}, errors.Wrapf(errors.ErrInvalidPlayer, "seat %d", int(seat))
	}
	id, ok := g.board.FindInHand(seat, kind)
	if !ok {
		return MoveResult{}, errors.Wrapf(errors.ErrNotInHand, "%s has no %s", seat, kind)
	}
	return g.ApplyMove(id, to)
}
