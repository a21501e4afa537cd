package bezier

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func randomCurve(r *rand.Rand, n int) Curve {
	c := make(Curve, n+1)
	for i := range c {
		c[i] = Pt(r.Float64()*1.2-0.1, r.Float64())
	}
	return c
}
