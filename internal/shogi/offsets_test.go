package shogi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sortOffsets(a, b Offset) bool {
	if a.DRow != b.DRow {
		return a.DRow < b.DRow
	}
	return a.DCol < b.DCol
}

func TestLegalOffsets(t *testing.T) {
	dog := func(dir int) []Offset {
		return []Offset{{dir, 0}, {-dir, 0}, {0, -1}, {0, 1}, {dir, -1}, {dir, 1}}
	}

	tests := []struct {
		name     string
		kind     Kind
		promoted bool
		dir      int
		want     []Offset
	}{
		{"lion forward", Lion, false, 1, []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}},
		{"lion backward ignores direction", Lion, false, -1, []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}},
		{"lion promoted flag ignored", Lion, true, 1, []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}},
		{"dog seat0", Dog, false, 1, dog(1)},
		{"dog seat1", Dog, false, -1, dog(-1)},
		{"cat seat0", Cat, false, 1, []Offset{{1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}},
		{"cat seat1", Cat, false, -1, []Offset{{-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}},
		{"chick seat0", Chick, false, 1, []Offset{{1, 0}}},
		{"chick seat1", Chick, false, -1, []Offset{{-1, 0}}},
		{"promoted cat moves like dog", Cat, true, 1, dog(1)},
		{"promoted chick moves like dog", Chick, true, -1, dog(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegalOffsets(tt.kind, tt.promoted, tt.dir)
			if diff := cmp.Diff(tt.want, got, cmpopts.SortSlices(sortOffsets)); diff != "" {
				t.Errorf("LegalOffsets(%v, %v, %d) mismatch (-want +got):\n%s", tt.kind, tt.promoted, tt.dir, diff)
			}
		})
	}
}

func TestLegalOffsets_DoesNotAliasTable(t *testing.T) {
	got := LegalOffsets(Chick, false, 1)
	got[0] = Offset{DRow: 9, DCol: 9}
	if again := LegalOffsets(Chick, false, 1); again[0] != (Offset{DRow: 1}) {
		t.Errorf("table was modified through returned slice: %v", again)
	}
}
