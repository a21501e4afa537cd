package motion

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/ribbon/internal/bezier"
)

func testMover(seed int64) Mover {
	return Mover{
		Speed:     0.001,
		Spread:    0.4,
		ClampLow:  0,
		ClampHigh: 1,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

func TestStepZeroElapsedIsNoop(t *testing.T) {
	m := testMover(1)
	c := Seed(8, 0.1, Free, m)
	before := append(Curve(nil), c...)

	c.Step(m, 0)
	assert.Equal(t, before, c)

	c.Step(m, -16)
	assert.Equal(t, before, c)
}

func TestStepSnapsToTargetAndRetargets(t *testing.T) {
	m := testMover(2)
	p := ControlPoint{Point: bezier.Pt(0.2, 0.2), Mode: Free}
	p.Target = bezier.Pt(0.5, 0.6)
	p.Dir = p.Target.Sub(p.Point).Normalize()
	old := p.Target

	// 0.5 units away, budget is 0.001*1e6.
	m.Step(&p, 3, 8, 1e6)

	assert.Equal(t, old, p.Point, "point must land exactly on its old target")
	assert.NotEqual(t, old, p.Target, "a new target must be drawn")
	assert.InDelta(t, 1.0, p.Dir.Hypot2(), 1e-9)
}

func TestStepExactBudgetSnaps(t *testing.T) {
	m := testMover(3)
	m.Speed = 0.5
	p := ControlPoint{Point: bezier.Pt(0, 0), Target: bezier.Pt(0.5, 0), Dir: bezier.Vec(1, 0)}

	m.Step(&p, 1, 4, 1)
	assert.Equal(t, bezier.Pt(0.5, 0), p.Point)
}

func TestStepMovesAtBoundedSpeed(t *testing.T) {
	m := testMover(4)
	p := ControlPoint{Point: bezier.Pt(0, 0), Target: bezier.Pt(1, 0), Dir: bezier.Vec(1, 0)}

	m.Step(&p, 1, 4, 16)
	assert.InDelta(t, 0.016, p.X, 1e-12)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, bezier.Pt(1, 0), p.Target, "target is kept while seeking")
}

func TestStepNeverOvershoots(t *testing.T) {
	m := testMover(5)
	// Direction deliberately stale: the step would carry the point past
	// the target.
	p := ControlPoint{Point: bezier.Pt(0, 0), Target: bezier.Pt(0.1, 0.1), Dir: bezier.Vec(1, 0)}
	m.Speed = 0.1

	m.Step(&p, 1, 4, 1)
	assert.Equal(t, bezier.Pt(0.1, 0.1), p.Point)
}

func TestStepRecoversZeroDirection(t *testing.T) {
	m := testMover(6)
	p := ControlPoint{Point: bezier.Pt(0, 0), Target: bezier.Pt(0, 1)}

	m.Step(&p, 1, 4, 10)
	assert.InDelta(t, 0.01, p.Y, 1e-12)
}

func TestPinnedNeverMoves(t *testing.T) {
	m := testMover(7)
	p := ControlPoint{Point: bezier.Pt(-0.1, 0.5), Target: bezier.Pt(0.3, 0.3), Mode: Pinned}

	m.Step(&p, 0, 8, 1e9)
	assert.Equal(t, bezier.Pt(-0.1, 0.5), p.Point)
}

func TestVerticalKeepsX(t *testing.T) {
	m := testMover(8)
	c := Seed(8, 0.1, Vertical, m)
	for range 500 {
		c.Step(m, 50)
	}
	assert.Equal(t, -0.1, c[0].X)
	assert.Equal(t, 1.1, c[8].X)
}

func TestRetargetStaysInSlot(t *testing.T) {
	m := testMover(9)
	const n = 10
	for slot := 1; slot < n; slot++ {
		lo := float64(slot) / n * (1 - m.Spread)
		for range 100 {
			p := ControlPoint{Point: bezier.Pt(0.5, 0.5)}
			m.Retarget(&p, slot, n)
			require.GreaterOrEqual(t, p.Target.X, lo)
			require.Less(t, p.Target.X, lo+m.Spread)
			require.GreaterOrEqual(t, p.Target.Y, 0.0)
			require.Less(t, p.Target.Y, 1.0)
		}
	}
}

func TestSeedAnchorsEndpoints(t *testing.T) {
	m := testMover(10)
	c := Seed(8, 0.1, Pinned, m)

	require.Len(t, c, 9)
	assert.Equal(t, 8, c.Degree())
	assert.Equal(t, bezier.Pt(-0.1, 0.5), c[0].Point)
	assert.Equal(t, bezier.Pt(1.1, 0.5), c[8].Point)
	for i := 1; i < 8; i++ {
		assert.Equal(t, Free, c[i].Mode)
		assert.NotEqual(t, c[i].Point, c[i].Target)
	}
}

func TestCurveLengthIsStable(t *testing.T) {
	m := testMover(11)
	c := Seed(12, 0.1, Free, m)
	for range 1000 {
		c.Step(m, 33)
	}
	assert.Len(t, c, 13)
}

func TestSnapshotCopiesPositions(t *testing.T) {
	m := testMover(12)
	c := Seed(4, 0.1, Pinned, m)

	snap := c.Snapshot(nil)
	require.Len(t, snap, 5)
	c.Step(m, 100)
	assert.Equal(t, bezier.Pt(-0.1, 0.5), snap[0])
	assert.NotEqual(t, c[2].Point, snap[2], "snapshot must not alias the live curve")
}

func TestSetEndpoints(t *testing.T) {
	m := testMover(13)
	c := Seed(6, 0.1, Pinned, m)

	c.SetEndpoints(Vertical, m)
	assert.Equal(t, Vertical, c[0].Mode)
	assert.Equal(t, Vertical, c[6].Mode)
	assert.Equal(t, -0.1, c[0].Target.X)

	Curve(nil).SetEndpoints(Free, m)
}

func TestModeNext(t *testing.T) {
	assert.Equal(t, Vertical, Free.Next())
	assert.Equal(t, Pinned, Vertical.Next())
	assert.Equal(t, Free, Pinned.Next())
	assert.Equal(t, "pinned", Pinned.String())
}
