package processing

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lgbarn/animalchess-go/internal/config"
	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/parser"
	"github.com/lgbarn/animalchess-go/internal/shogi"
	"github.com/lgbarn/animalchess-go/internal/testutil"
)

// lionHunt ends with Seat0's promoted Chick taking the Lion on c5.
const lionHunt = `[Player0 "Ann"]
[Player1 "Bo"]
1. b3xb4 c6-c5
2. b4-b5 a6-a5
3. b5xc5
`

func parseScript(t *testing.T, src string) *parser.Script {
	t.Helper()
	script, err := parser.ParseScript(strings.NewReader(src), "test")
	testutil.AssertNoError(t, err)
	return script
}

func replay(t *testing.T, src string, cfg *config.Config) Result {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return Replay(parseScript(t, src), cfg, logger)
}

func moveError(t *testing.T, err error) *errors.MoveError {
	t.Helper()
	var me *errors.MoveError
	if !stderrors.As(err, &me) {
		t.Fatalf("expected *MoveError, got %T (%v)", err, err)
	}
	return me
}

func TestReplay_LionCapture(t *testing.T) {
	res := replay(t, lionHunt, config.NewConfig())

	testutil.AssertNoError(t, res.Err)
	testutil.AssertEqual(t, res.Plies, 5)
	if !res.Decided() || res.Winner.Seat != shogi.Seat0 || res.Winner.Name != "Ann" {
		t.Fatalf("winner = %v, want Ann in seat 0", res.Winner)
	}
	testutil.AssertEqual(t, res.Summary(), "test: Ann wins after 5 plies")
	testutil.AssertBoardValid(t, res.Board)

	p, ok := res.Board.PieceAt(testutil.MustCoord(t, "c5"))
	testutil.AssertTrue(t, ok, "c5 should be occupied")
	if p.Kind != shogi.Chick || !p.Promoted || p.Owner != shogi.Seat0 {
		t.Errorf("c5 holds %v, want promoted seat 0 Chick", p)
	}
	testutil.AssertEqual(t, res.Board.HandKinds(shogi.Seat0), map[shogi.Kind]int{shogi.Chick: 1, shogi.Lion: 1})
}

func TestReplay_MovesAfterWinRejected(t *testing.T) {
	res := replay(t, lionHunt+"a5-a4\n", config.NewConfig())

	testutil.AssertErrorIs(t, res.Err, errors.ErrGameOver)
	me := moveError(t, res.Err)
	testutil.AssertEqual(t, me.PlyNum, 6)
	testutil.AssertEqual(t, me.MoveText, "a5-a4")
	testutil.AssertEqual(t, me.Line, 6)
	testutil.AssertEqual(t, res.Plies, 5)
	testutil.AssertTrue(t, res.Decided(), "winner should survive the rejected move")
}

func TestReplay_NoWinner(t *testing.T) {
	res := replay(t, "b3xb4 c4xc3 H*c2", config.NewConfig())

	testutil.AssertNoError(t, res.Err)
	testutil.AssertEqual(t, res.Plies, 3)
	testutil.AssertFalse(t, res.Decided())
	testutil.AssertEqual(t, res.Summary(), "test: no winner after 3 plies")
	testutil.AssertEqual(t, res.Board.HandKinds(shogi.Seat0), map[shogi.Kind]int{})
	testutil.AssertEqual(t, res.Board.HandKinds(shogi.Seat1), map[shogi.Kind]int{shogi.Chick: 1})
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		err   error
		ply   int
		plies int
	}{
		{"illegal distance", "b3-b5", errors.ErrIllegalMove, 1, 0},
		{"empty origin", "c3-c4 a3-a4", errors.ErrNoPiece, 2, 1},
		{"out of turn", "b4xb3", errors.ErrIllegalMove, 1, 0},
		{"drop without hand", "H*c2", errors.ErrNotInHand, 1, 0},
		{"drop on occupied", "b3xb4 c4xc3 H*b1", errors.ErrSquareOccupied, 3, 2},
		{"own piece", "b1-b2 b6-b5 c1-b2", errors.ErrIllegalMove, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := replay(t, tt.src, config.NewConfig())
			testutil.AssertErrorIs(t, res.Err, tt.err)
			testutil.AssertEqual(t, moveError(t, res.Err).PlyNum, tt.ply)
			testutil.AssertEqual(t, res.Plies, tt.plies)
			testutil.AssertContains(t, res.Summary(), "test: error:")
			testutil.AssertBoardValid(t, res.Board)
		})
	}
}

func TestReplay_TurnsNotEnforced(t *testing.T) {
	cfg := config.NewConfigBuilder().EnforceTurns(false).Build()
	res := replay(t, "b4xb3", cfg)

	testutil.AssertNoError(t, res.Err)
	testutil.AssertEqual(t, res.Plies, 1)
	testutil.AssertEqual(t, res.Board.HandKinds(shogi.Seat1), map[shogi.Kind]int{shogi.Chick: 1})
}

func TestReplay_DefaultNames(t *testing.T) {
	cfg := config.NewConfigBuilder().WithPlayerNames("south", "north").Build()
	res := replay(t, "[Player1 \"Bo\"]\n", cfg)

	testutil.AssertEqual(t, res.Player0, "south")
	testutil.AssertEqual(t, res.Player1, "Bo")
	testutil.AssertEqual(t, res.Plies, 0)
}

func TestReplay_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	Replay(parseScript(t, lionHunt), config.NewConfig(), logger)

	last := hook.LastEntry()
	if last == nil || last.Message != "replay finished" {
		t.Fatalf("last entry = %v, want replay finished", last)
	}
	testutil.AssertEqual(t, last.Data["plies"], 5)
	testutil.AssertEqual(t, last.Data["script"], "test")

	var won bool
	for _, e := range hook.AllEntries() {
		if e.Message == "lion captured, game over" {
			won = true
			testutil.AssertEqual(t, e.Data["script"], "test")
		}
	}
	testutil.AssertTrue(t, won, "expected a lion capture entry")
}

func TestReplayReader_ParseError(t *testing.T) {
	res := ReplayReader(strings.NewReader("c3-c4 bogus"), "broken", config.NewConfig(), nil)

	testutil.AssertErrorIs(t, res.Err, errors.ErrParseFailure)
	if res.Board != nil {
		t.Error("expected no board for unparsed script")
	}
	testutil.AssertEqual(t, res.Name, "broken")
}

func TestReplayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunt.acs")
	if err := os.WriteFile(path, []byte(lionHunt), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewConfigBuilder().WithLogFile(nil).Build()
	res := ReplayFile(path, cfg, nil)
	testutil.AssertNoError(t, res.Err)
	testutil.AssertEqual(t, res.Name, "hunt.acs")
	testutil.AssertTrue(t, res.Decided())

	missing := ReplayFile(filepath.Join(t.TempDir(), "none.acs"), cfg, nil)
	if missing.Err == nil {
		t.Error("expected error for missing file")
	}
}
