package board

import "fmt"

// Validate re-checks a complete assignment pair by pair, independently of
// any solver. It returns nil when all n queens are mutually non-attacking
// and a descriptive error naming the first violation otherwise.
//
// Validate is a post-condition check: a solver-produced solution failing
// it means the solver and the safety predicate disagree, which is a
// programming defect rather than a user-facing error. Callers should
// treat a non-nil result for solver output as fatal.
func Validate(n int, a Assignment) error {
	if len(a) != n {
		return fmt.Errorf("incomplete assignment: %d of %d rows placed", len(a), n)
	}
	for r1 := 0; r1 < n; r1++ {
		c1, ok := a[r1]
		if !ok {
			return fmt.Errorf("incomplete assignment: row %d has no queen", r1)
		}
		if c1 < 0 || c1 >= n {
			return fmt.Errorf("row %d column %d out of range [0,%d)", r1, c1, n)
		}
		for r2 := r1 + 1; r2 < n; r2++ {
			c2 := a[r2]
			if c1 == c2 {
				return fmt.Errorf("column conflict: queens (%d,%d) and (%d,%d)", r1, c1, r2, c2)
			}
			if abs(r1-r2) == abs(c1-c2) {
				return fmt.Errorf("diagonal conflict: queens (%d,%d) and (%d,%d)", r1, c1, r2, c2)
			}
		}
	}
	return nil
}
