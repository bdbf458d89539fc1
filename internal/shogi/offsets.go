package shogi

// Offset is a relative move (Δrow, Δcol).
type Offset struct {
	DRow int
	DCol int
}

// moveSet indexes the offset table.
type moveSet int

const (
	lionMoves moveSet = iota
	dogMoves
	catMoves
	chickMoves
)

// offsetTable holds each move set with rows expressed in "forward" units:
// a DRow of 1 means one step in the owner's direction.
var offsetTable = [...][]Offset{
	lionMoves: {
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	},
	dogMoves: {
		{1, 0}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 1},
	},
	catMoves: {
		{1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	},
	chickMoves: {
		{1, 0},
	},
}

// movesFor selects the move set for a piece. Promoted Cats and Chicks move
// like a Dog; the flag is ignored for Lion and Dog.
func movesFor(kind Kind, promoted bool) moveSet {
	switch kind {
	case Lion:
		return lionMoves
	case Dog:
		return dogMoves
	}
	if promoted {
		return dogMoves
	}
	if kind == Cat {
		return catMoves
	}
	return chickMoves
}

// LegalOffsets returns the candidate offsets for a piece of the given kind
// and promotion state whose owner moves in direction (+1 or -1). The
// returned slice is freshly allocated.
func LegalOffsets(kind Kind, promoted bool, direction int) []Offset {
	base := offsetTable[movesFor(kind, promoted)]
	out := make([]Offset, len(base))
	for i, o := range base {
		out[i] = Offset{DRow: o.DRow * direction, DCol: o.DCol}
	}
	return out
}
