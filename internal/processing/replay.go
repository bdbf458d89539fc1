// Package processing replays move scripts against the rules engine.
package processing

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/animalchess-go/internal/config"
	"github.com/lgbarn/animalchess-go/internal/engine"
	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/lgbarn/animalchess-go/internal/parser"
	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// Result holds the outcome of replaying one script.
type Result struct {
	Name    string
	Player0 string
	Player1 string
	Plies   int          // moves applied successfully
	Winner  *shogi.Player // nil when no Lion was captured
	Board   *shogi.Board  // final position; nil if the script never parsed
	Err     error
}

// Decided reports whether the replay ended with a Lion capture.
func (r *Result) Decided() bool {
	return r.Winner != nil
}

// Summary returns the one-line report printed by the CLI.
func (r *Result) Summary() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Name, r.Err)
	}
	outcome := "no winner"
	if r.Winner != nil {
		outcome = r.Winner.Name + " wins"
	}
	return fmt.Sprintf("%s: %s after %d plies", r.Name, outcome, r.Plies)
}

// Replay plays script from the starting position. Seat 0 moves first and
// turns alternate; replay stops at the first failing move, which is
// reported as a *errors.MoveError.
func Replay(script *parser.Script, cfg *config.Config, logger logrus.FieldLogger) Result {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = cfg.NewLogger()
	}
	log := logger.WithField("script", script.Name)

	res := Result{
		Name:    script.Name,
		Player0: script.PlayerName(shogi.Seat0, cfg.Player0Name),
		Player1: script.PlayerName(shogi.Seat1, cfg.Player1Name),
	}
	p0, err := shogi.NewPlayer(0, res.Player0)
	if err != nil {
		res.Err = err
		return res
	}
	p1, err := shogi.NewPlayer(1, res.Player1)
	if err != nil {
		res.Err = err
		return res
	}
	game, err := engine.NewGame(p0, p1, engine.WithLogger(log))
	if err != nil {
		res.Err = err
		return res
	}

	turn := shogi.Seat0
	for i, sm := range script.Moves {
		err := checkTurn(game, cfg, turn, sm.Move)
		if err == nil {
			_, err = game.Play(turn, sm.Move)
		}
		if err != nil {
			res.Err = &errors.MoveError{
				Err:      err,
				Script:   script.Name,
				PlyNum:   i + 1,
				MoveText: sm.Text,
				Line:     sm.Line,
			}
			break
		}
		res.Plies++
		turn = turn.Opponent()
	}

	res.Board = game.Board()
	if winner, ok := game.Winner(); ok {
		res.Winner = winner
	}

	fields := logrus.Fields{"plies": res.Plies, "decided": res.Decided()}
	if res.Err != nil {
		log.WithFields(fields).WithError(res.Err).Warn("replay stopped")
	} else {
		log.WithFields(fields).Info("replay finished")
	}
	return res
}

// checkTurn rejects any move once the game is decided, and a board move of
// the side not on move.
func checkTurn(game *engine.Game, cfg *config.Config, turn shogi.Seat, m engine.Move) error {
	if game.IsOver() {
		return errors.ErrGameOver
	}
	if !cfg.EnforceTurns || m.Drop {
		return nil
	}
	p, ok := game.Board().PieceAt(m.From)
	if ok && p.Owner != turn {
		return errors.Wrapf(errors.ErrIllegalMove, "%s moved on %s's turn", p, turn)
	}
	return nil
}

// ReplayReader parses a script from r and replays it. Parse failures are
// returned in Result.Err with no board.
func ReplayReader(r io.Reader, name string, cfg *config.Config, logger logrus.FieldLogger) Result {
	script, err := parser.ParseScript(r, name)
	if err != nil {
		return Result{Name: name, Err: err}
	}
	return Replay(script, cfg, logger)
}

// ReplayFile parses and replays the script at path.
func ReplayFile(path string, cfg *config.Config, logger logrus.FieldLogger) Result {
	script, err := parser.ParseFile(path)
	if err != nil {
		return Result{Name: path, Err: err}
	}
	return Replay(script, cfg, logger)
}
