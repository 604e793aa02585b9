package board

import (
	"reflect"
	"testing"
)

func TestIsSafe(t *testing.T) {
	tests := []struct {
		name string
		a    Assignment
		row  int
		col  int
		want bool
	}{
		{
			name: "empty board is always safe",
			a:    Assignment{},
			row:  3,
			col:  3,
			want: true,
		},
		{
			name: "same column",
			a:    Assignment{0: 2},
			row:  3,
			col:  2,
			want: false,
		},
		{
			name: "descending diagonal",
			a:    Assignment{0: 0},
			row:  2,
			col:  2,
			want: false,
		},
		{
			name: "ascending diagonal",
			a:    Assignment{0: 3},
			row:  2,
			col:  1,
			want: false,
		},
		{
			name: "knight move apart is safe",
			a:    Assignment{0: 0},
			row:  2,
			col:  1,
			want: true,
		},
		{
			name: "clear of both queens",
			a:    Assignment{0: 1, 1: 3},
			row:  2,
			col:  0,
			want: true,
		},
		{
			name: "second queen attacks diagonally",
			a:    Assignment{0: 1, 1: 3},
			row:  2,
			col:  2,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafe(tt.a, tt.row, tt.col); got != tt.want {
				t.Errorf("IsSafe(%v, %d, %d) = %v, want %v", tt.a, tt.row, tt.col, got, tt.want)
			}
		})
	}
}

// bruteSafe re-implements the safety rule with explicit loops so
// AvailableColumns can be cross-checked against independent logic.
func bruteSafe(a Assignment, row, col int) bool {
	for r, c := range a {
		if c == col {
			return false
		}
		dr, dc := r-row, c-col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		if dr == dc {
			return false
		}
	}
	return true
}

// TestAvailableColumnsExhaustive enumerates every placement of up to
// three queens on the top rows of boards up to size six and verifies the
// candidate set for each remaining row against brute force.
func TestAvailableColumnsExhaustive(t *testing.T) {
	for n := 1; n <= 6; n++ {
		// Every column combination for the first k rows, safe or not:
		// AvailableColumns must be consistent with the predicate either way.
		for k := 0; k <= 3 && k <= n; k++ {
			combos := 1
			for i := 0; i < k; i++ {
				combos *= n
			}
			for enc := 0; enc < combos; enc++ {
				a := make(Assignment, k)
				rem := enc
				for row := 0; row < k; row++ {
					a[row] = rem % n
					rem /= n
				}
				for row := k; row < n; row++ {
					got := AvailableColumns(n, a, row)
					var want []int
					for col := 0; col < n; col++ {
						if bruteSafe(a, row, col) {
							want = append(want, col)
						}
					}
					if !reflect.DeepEqual(got, normalize(want)) {
						t.Fatalf("AvailableColumns(%d, %v, %d) = %v, want %v", n, a, row, got, want)
					}
				}
			}
		}
	}
}

// normalize maps a nil slice to the empty slice AvailableColumns returns.
func normalize(cols []int) []int {
	if cols == nil {
		return []int{}
	}
	return cols
}

func TestAvailableColumnsAscending(t *testing.T) {
	a := Assignment{0: 1}
	cols := AvailableColumns(4, a, 2)
	for i := 1; i < len(cols); i++ {
		if cols[i-1] >= cols[i] {
			t.Fatalf("AvailableColumns not ascending: %v", cols)
		}
	}
}

func TestCountConflicts(t *testing.T) {
	// Queen at (0,0) on a 4-board blocks two squares in each of the three
	// remaining rows: the shared column plus one diagonal square.
	got := CountConflicts(4, Assignment{}, 0, 0)
	if got != 6 {
		t.Errorf("CountConflicts(4, {}, 0, 0) = %d, want 6", got)
	}
}

func TestCountConflictsDoesNotMutate(t *testing.T) {
	a := Assignment{0: 1}
	CountConflicts(5, a, 2, 4)
	if len(a) != 1 || a[0] != 1 {
		t.Errorf("CountConflicts mutated its input: %v", a)
	}
}

func TestCloneIndependence(t *testing.T) {
	a := Assignment{0: 1, 1: 3}
	b := a.Clone()
	b[2] = 0
	b[0] = 2

	if len(a) != 2 || a[0] != 1 {
		t.Errorf("Clone() shares storage with original: %v", a)
	}
	if len(b) != 3 || b[0] != 2 {
		t.Errorf("clone missing writes: %v", b)
	}
}

func TestColumnsRoundTrip(t *testing.T) {
	cols := []int{1, 3, 0, 2}
	a := FromColumns(cols)
	got := Columns(4, a)
	if !reflect.DeepEqual(got, cols) {
		t.Errorf("Columns(FromColumns(%v)) = %v", cols, got)
	}
}

func TestColumnsIncomplete(t *testing.T) {
	if got := Columns(4, Assignment{0: 1}); got != nil {
		t.Errorf("Columns() on incomplete assignment = %v, want nil", got)
	}
}

func TestRows(t *testing.T) {
	a := Assignment{3: 0, 1: 2, 0: 1}
	if got := a.Rows(); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("Rows() = %v, want [0 1 3]", got)
	}
}
