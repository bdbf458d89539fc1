package engine

import "github.com/lgbarn/animalchess-go/internal/shogi"

// backRow is the layout of each side's back row, column a to e.
var backRow = [shogi.Cols]shogi.Kind{shogi.Cat, shogi.Dog, shogi.Lion, shogi.Dog, shogi.Cat}

// setupInitialPosition places both sides: back rows on rows 1 and 6, Chicks
// on columns b-d of rows 3 and 4.
func setupInitialPosition(b *shogi.Board) error {
	place := func(kind shogi.Kind, owner shogi.Seat, row, col int) error {
		_, err := b.AddPiece(kind, owner, shogi.Coord{Row: row, Col: col})
		return err
	}

	for col, kind := range backRow {
		if err := place(kind, shogi.Seat0, 0, col); err != nil {
			return err
		}
	}
	for col := 1; col <= 3; col++ {
		if err := place(shogi.Chick, shogi.Seat0, 2, col); err != nil {
			return err
		}
	}
	for col := 1; col <= 3; col++ {
		if err := place(shogi.Chick, shogi.Seat1, 3, col); err != nil {
			return err
		}
	}
	for col, kind := range backRow {
		if err := place(kind, shogi.Seat1, shogi.Rows-1, col); err != nil {
			return err
		}
	}
	return nil
}
