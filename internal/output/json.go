package output

import (
	"strings"

	"github.com/lgbarn/animalchess-go/internal/processing"
	"github.com/lgbarn/animalchess-go/internal/shogi"
)

// JSONResult is a replay result in JSON form.
type JSONResult struct {
	Name    string      `json:"name"`
	Players [2]string   `json:"players"`
	Plies   int         `json:"plies"`
	Winner  *JSONWinner `json:"winner,omitempty"`
	Error   string      `json:"error,omitempty"`
	Board   []string    `json:"board,omitempty"`
	Hands   [2][]string `json:"hands"`
}

// JSONWinner identifies the winning player.
type JSONWinner struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result. The board diagram is included
// only when withBoard is set.
func ResultToJSON(r *processing.Result, withBoard bool) *JSONResult {
	jr := &JSONResult{
		Name:    r.Name,
		Players: [2]string{r.Player0, r.Player1},
		Plies:   r.Plies,
		Hands:   [2][]string{{}, {}},
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	if r.Winner != nil {
		jr.Winner = &JSONWinner{Seat: int(r.Winner.Seat), Name: r.Winner.Name}
	}
	if r.Board == nil {
		return jr
	}
	for _, seat := range []shogi.Seat{shogi.Seat0, shogi.Seat1} {
		jr.Hands[seat] = handLetters(r.Board, seat)
	}
	if withBoard {
		jr.Board = boardRows(r.Board)
	}
	return jr
}

// handLetters lists the kinds held by seat in Lion, Dog, Cat, Chick order.
func handLetters(b *shogi.Board, seat shogi.Seat) []string {
	counts := b.HandKinds(seat)
	letters := []string{}
	for k := shogi.Lion; k < shogi.NumKinds; k++ {
		for i := 0; i < counts[k]; i++ {
			letters = append(letters, string(k.Letter()))
		}
	}
	return letters
}

// boardRows returns the grid lines of the board diagram, top row first.
func boardRows(b *shogi.Board) []string {
	lines := strings.Split(b.String(), "\n")
	if len(lines) > shogi.Rows {
		lines = lines[:shogi.Rows]
	}
	return lines
}
