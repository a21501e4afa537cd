package bezier

// MaxDegree is the highest curve degree a [Binomial] is built for. Row 32 of
// Pascal's triangle still fits comfortably in an int.
const MaxDegree = 32

// Binomial holds row n of Pascal's triangle, C(n,0) through C(n,n).
// Only the first half of the row is stored; the rest follows by symmetry.
// A Binomial is read-only once built and must be rebuilt when the degree
// changes.
type Binomial struct {
	n    int
	half []int
}

// NewBinomial builds the coefficients for degree n, clamped to
// [0, MaxDegree]. Each row is derived from the previous one.
func NewBinomial(n int) Binomial {
	n = max(0, min(n, MaxDegree))

	half := []int{1}
	for row := 1; row <= n; row++ {
		next := make([]int, row/2+1)
		next[0] = 1
		for j := 1; j < len(next); j++ {
			if j < len(half) {
				next[j] = half[j-1] + half[j]
			} else {
				// Rows of odd length gain a middle entry, C(row-1, j) == C(row-1, j-1).
				next[j] = 2 * half[j-1]
			}
		}
		half = next
	}
	return Binomial{n: n, half: half}
}

// Degree returns n.
func (b Binomial) Degree() int { return b.n }

// Coefficient returns C(n,k), or 0 when k lies outside [0,n].
func (b Binomial) Coefficient(k int) int {
	if k < 0 || k > b.n || len(b.half) == 0 {
		return 0
	}
	if k <= b.n/2 {
		return b.half[k]
	}
	return b.half[b.n-k]
}

// Row returns the full row C(n,0)..C(n,n) as a new slice.
func (b Binomial) Row() []int {
	row := make([]int, b.n+1)
	for k := range row {
		row[k] = b.Coefficient(k)
	}
	return row
}
