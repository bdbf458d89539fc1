package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/shogi"
	"github.com/lgbarn/animalchess-go/internal/testutil"
)

func TestApplyMove_IllegalLeavesBoardUnchanged(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"onto own piece", "b1", "a1"},
		{"lion two squares", "c1", "c3"},
		{"chick sideways", "c3", "d3"},
		{"chick backwards", "c3", "c2"},
		{"cat two squares", "a1", "a3"},
		{"seat1 chick forward for seat0", "c4", "c5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			before := g.Board().Copy()

			_, err := g.Move(testutil.MustCoord(t, tt.from), testutil.MustCoord(t, tt.to))
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertEqual(t, g.Board().Pieces(), before.Pieces())
			testutil.AssertBoardValid(t, g.Board())
		})
	}
}

func TestApplyMove_Errors(t *testing.T) {
	g := newTestGame(t)

	_, err := g.Move(testutil.MustCoord(t, "a3"), testutil.MustCoord(t, "a4"))
	testutil.AssertErrorIs(t, err, errors.ErrNoPiece, "empty origin")

	_, err = g.Move(shogi.Coord{Row: -1, Col: 0}, testutil.MustCoord(t, "a4"))
	testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds, "origin off board")

	sq, _ := g.Square(0, 2)
	_, err = g.ApplyMove(sq.Occupant, shogi.Coord{Row: -1, Col: 2})
	testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds, "target off board")

	_, err = g.ApplyMove(999, testutil.MustCoord(t, "c2"))
	testutil.AssertErrorIs(t, err, errors.ErrNoPiece, "unknown piece")

	_, err = g.Drop(shogi.Seat0, shogi.Chick, testutil.MustCoord(t, "a3"))
	testutil.AssertErrorIs(t, err, errors.ErrNotInHand)

	_, err = g.Drop(shogi.Seat(5), shogi.Chick, testutil.MustCoord(t, "a3"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPlayer)
}

func TestApplyMove_SimpleMove(t *testing.T) {
	g := newTestGame(t)
	res := mustMove(t, g, "c1", "c2")

	testutil.AssertEqual(t, res.Kind, shogi.Lion)
	testutil.AssertEqual(t, res.From, testutil.MustCoord(t, "c1"))
	testutil.AssertEqual(t, res.To, testutil.MustCoord(t, "c2"))
	testutil.AssertEqual(t, res.Captured, shogi.NoPiece)
	testutil.AssertFalse(t, res.Drop)

	from, _ := g.Square(0, 2)
	to, _ := g.Square(1, 2)
	testutil.AssertFalse(t, from.IsOccupied())
	testutil.AssertEqual(t, to.Occupant, res.Piece)
	testutil.AssertBoardValid(t, g.Board())
}

func TestApplyMove_Capture(t *testing.T) {
	g := newTestGame(t)
	victim, _ := g.Square(3, 1)

	res := mustMove(t, g, "b3", "b4")
	testutil.AssertEqual(t, res.Captured, victim.Occupant)
	testutil.AssertEqual(t, res.CapturedKind, shogi.Chick)
	testutil.AssertFalse(t, res.Decided)

	captured, err := g.Board().Piece(victim.Occupant)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, captured.Owner, shogi.Seat0, "ownership flips to the capturer")
	testutil.AssertFalse(t, captured.OnBoard)

	p0, _ := g.Player(0)
	testutil.AssertEqual(t, p0.Hand(), []shogi.PieceID{victim.Occupant})
	testutil.AssertEqual(t, g.Board().HandKinds(shogi.Seat0), map[shogi.Kind]int{shogi.Chick: 1})
	testutil.AssertBoardValid(t, g.Board())
}

func TestApplyMove_ChickPromotion(t *testing.T) {
	g := newEmptyTestGame(t)
	b := g.Board()
	id := testutil.MustAddPiece(t, b, shogi.Chick, shogi.Seat0, "c4")

	moves, _ := b.LegalMoves(id)
	testutil.AssertEqual(t, len(moves), 1, "unpromoted chick")

	res := mustMove(t, g, "c4", "c5")
	testutil.AssertTrue(t, res.Promoted, "row 5 promotes seat 0")

	moves, err := b.LegalMoves(id)
	testutil.AssertNoError(t, err)
	testutil.AssertSameCoords(t, moves, testutil.MustCoords(t, "c6", "c4", "b5", "d5", "b6", "d6"))

	res = mustMove(t, g, "c5", "c4")
	testutil.AssertFalse(t, res.Promoted)
	p, _ := b.Piece(id)
	testutil.AssertTrue(t, p.Promoted, "promotion is kept after leaving the zone")
}

func TestApplyMove_PromotionZones(t *testing.T) {
	tests := []struct {
		name     string
		kind     shogi.Kind
		owner    shogi.Seat
		from     string
		to       string
		promoted bool
	}{
		{"seat1 cat into row 2", shogi.Cat, shogi.Seat1, "b3", "b2", true},
		{"seat1 cat into row 1", shogi.Cat, shogi.Seat1, "b2", "a1", true},
		{"seat1 chick stays outside", shogi.Chick, shogi.Seat1, "c4", "c3", false},
		{"seat0 cat into row 5", shogi.Cat, shogi.Seat0, "b4", "c5", true},
		{"seat0 cat into own zone", shogi.Cat, shogi.Seat0, "b3", "a2", false},
		{"seat0 dog never promotes", shogi.Dog, shogi.Seat0, "b5", "b6", false},
		{"seat1 lion never promotes", shogi.Lion, shogi.Seat1, "c2", "c1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newEmptyTestGame(t)
			id := testutil.MustAddPiece(t, g.Board(), tt.kind, tt.owner, tt.from)

			res := mustMove(t, g, tt.from, tt.to)
			testutil.AssertEqual(t, res.Promoted, tt.promoted)
			p, _ := g.Board().Piece(id)
			testutil.AssertEqual(t, p.Promoted, tt.promoted)
		})
	}
}

func TestApplyMove_Redeploy(t *testing.T) {
	g := newTestGame(t)
	victim, _ := g.Square(3, 1)
	mustMove(t, g, "b3", "b4")

	t.Run("onto occupied square", func(t *testing.T) {
		_, err := g.Drop(shogi.Seat0, shogi.Chick, testutil.MustCoord(t, "c4"))
		testutil.AssertErrorIs(t, err, errors.ErrSquareOccupied)
		p0, _ := g.Player(0)
		testutil.AssertEqual(t, p0.HandSize(), 1, "failed drop keeps the piece in hand")
	})

	t.Run("onto empty square in promotion zone", func(t *testing.T) {
		res, err := g.Drop(shogi.Seat0, shogi.Chick, testutil.MustCoord(t, "a5"))
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, res.Drop)
		testutil.AssertEqual(t, res.Piece, victim.Occupant)
		testutil.AssertFalse(t, res.Promoted, "drops never promote")

		p, _ := g.Board().Piece(victim.Occupant)
		testutil.AssertEqual(t, p.Owner, shogi.Seat0)
		testutil.AssertFalse(t, p.Promoted)
		testutil.AssertEqual(t, p.Pos, testutil.MustCoord(t, "a5"))

		p0, _ := g.Player(0)
		testutil.AssertEqual(t, p0.HandSize(), 0)
		testutil.AssertBoardValid(t, g.Board())
	})

	t.Run("redeployed piece moves for its new owner", func(t *testing.T) {
		moves, err := g.Board().LegalMoves(victim.Occupant)
		testutil.AssertNoError(t, err)
		testutil.AssertSameCoords(t, moves, testutil.MustCoords(t, "a6"), "forward for seat 0 is up")

		res := mustMove(t, g, "a5", "a6")
		testutil.AssertEqual(t, res.CapturedKind, shogi.Cat)
		testutil.AssertTrue(t, res.Promoted)
	})
}

func TestApplyMove_CaptureRoundTrip(t *testing.T) {
	g := newEmptyTestGame(t)
	b := g.Board()
	cat := testutil.MustAddPiece(t, b, shogi.Cat, shogi.Seat1, "b3")
	testutil.MustAddPiece(t, b, shogi.Dog, shogi.Seat0, "b1")
	testutil.MustAddPiece(t, b, shogi.Dog, shogi.Seat1, "e4")

	mustMove(t, g, "b3", "b2") // seat1 cat promotes
	p, _ := b.Piece(cat)
	testutil.AssertTrue(t, p.Promoted)

	mustMove(t, g, "b1", "b2") // seat0 dog captures
	p, _ = b.Piece(cat)
	testutil.AssertEqual(t, p.Owner, shogi.Seat0)
	testutil.AssertFalse(t, p.Promoted)

	_, err := g.ApplyMove(cat, testutil.MustCoord(t, "e5"))
	testutil.AssertNoError(t, err)

	mustMove(t, g, "e4", "e5") // seat1 dog recaptures
	p, _ = b.Piece(cat)
	testutil.AssertEqual(t, p, shogi.Piece{
		ID:    cat,
		Kind:  shogi.Cat,
		Owner: shogi.Seat1,
		Home:  shogi.Seat1,
	})

	p0, _ := g.Player(0)
	p1, _ := g.Player(1)
	testutil.AssertEqual(t, p0.HandSize(), 0)
	testutil.AssertEqual(t, p1.Hand(), []shogi.PieceID{cat})
	testutil.AssertBoardValid(t, b)
}

func TestApplyMove_LionCaptureWins(t *testing.T) {
	g := newEmptyTestGame(t)
	b := g.Board()
	testutil.MustAddPiece(t, b, shogi.Lion, shogi.Seat0, "c3")
	testutil.MustAddPiece(t, b, shogi.Lion, shogi.Seat1, "c4")
	testutil.MustAddPiece(t, b, shogi.Dog, shogi.Seat1, "a6")

	res := mustMove(t, g, "c3", "c4")
	testutil.AssertTrue(t, res.Decided)
	testutil.AssertEqual(t, res.Winner, shogi.Seat0)
	testutil.AssertEqual(t, res.CapturedKind, shogi.Lion)

	winner, ok := g.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner.Seat, shogi.Seat0)
	testutil.AssertTrue(t, g.HasWon(shogi.Seat0))
	testutil.AssertFalse(t, g.HasWon(shogi.Seat1))

	_, err := g.Move(testutil.MustCoord(t, "a6"), testutil.MustCoord(t, "a5"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	_, err = g.Drop(shogi.Seat0, shogi.Lion, testutil.MustCoord(t, "a1"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	winner, ok = g.Winner()
	testutil.AssertTrue(t, ok, "winner persists")
	testutil.AssertEqual(t, winner.Seat, shogi.Seat0)
}

func TestApplyMove_FullGameLionCapture(t *testing.T) {
	g := newTestGame(t)
	// Seat 1's lion walks into seat 0's reach and is taken.
	mustMove(t, g, "c6", "c5")
	mustMove(t, g, "c5", "b5")
	mustMove(t, g, "b3", "b4")
	mustMove(t, g, "b4", "b5")

	winner, ok := g.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner.Seat, shogi.Seat0)
	testutil.AssertTrue(t, g.IsOver())
	testutil.AssertBoardValid(t, g.Board())
}

func TestApplyMove_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := newEmptyTestGame(t, WithLogger(logger))
	b := g.Board()
	testutil.MustAddPiece(t, b, shogi.Chick, shogi.Seat0, "c4")
	testutil.MustAddPiece(t, b, shogi.Lion, shogi.Seat1, "c5")

	mustMove(t, g, "c4", "c5")

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	testutil.AssertEqual(t, messages, []string{"captured", "lion captured, game over", "promoted", "move applied"})

	last := hook.LastEntry()
	testutil.AssertEqual(t, last.Level, logrus.DebugLevel)
	testutil.AssertEqual(t, last.Data["to"], testutil.MustCoord(t, "c5"))
}
