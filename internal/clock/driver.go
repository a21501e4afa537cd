// Package clock turns a stream of real frame timestamps into simulation
// time for the animation engine.
package clock

// Target is driven once per frame: Update always runs before Draw, and
// neither runs while Ready reports false.
type Target interface {
	Ready() bool
	Update(now, elapsed float64)
	Draw(now float64)
}

// Defaults for NewDriver.
const (
	DefaultStep     = 16.0
	DefaultPauseGap = 1000.0
)

// Driver converts real timestamps (ms) into a continuous simulation clock.
// It pre-rolls the simulation with Warmup and absorbs long gaps between
// frames, such as a suspended terminal, so simulated time never jumps.
type Driver struct {
	Step     float64 // synthetic step for warm-up and for absorbed gaps
	PauseGap float64 // real gaps longer than this are treated as a pause
	// OnGap, when set, is told about every absorbed gap.
	OnGap func(gap float64)

	target   Target
	warm     float64 // simulated time covered by warm-up
	baseline float64 // real timestamp matching simulated time warm
	lastReal float64
	now      float64
	started  bool // a real frame has been seen
	updated  bool // the target has been updated at least once
}

// NewDriver returns a driver for t with the default step and pause gap.
func NewDriver(t Target) *Driver {
	return &Driver{
		Step:     DefaultStep,
		PauseGap: DefaultPauseGap,
		target:   t,
	}
}

// Now returns the simulated time of the last update.
func (d *Driver) Now() float64 { return d.now }

// Warmup advances the simulation from 0 to total in Step increments without
// drawing, so the first real frame already shows a full picture. It returns
// the number of updates made.
func (d *Driver) Warmup(total float64) int {
	if total < 0 || d.Step <= 0 || !d.target.Ready() {
		return 0
	}

	count := 0
	last := -1.0
	for k := 0; ; k++ {
		t := float64(k) * d.Step
		if t > total {
			break
		}
		d.update(t)
		last = t
		count++
	}
	if last < total {
		d.update(total)
		count++
	}
	d.warm = total
	return count
}

// Frame handles one real frame at timestamp real (ms): it updates the
// target to the matching simulated time, then draws it.
func (d *Driver) Frame(real float64) {
	if !d.started {
		d.started = true
		d.baseline = real
		d.lastReal = real
	}

	gap := real - d.lastReal
	switch {
	case gap < 0:
		// Timestamps went backwards; hold simulated time.
		d.baseline += gap
	case d.PauseGap > 0 && gap > d.PauseGap:
		d.baseline += gap - max(d.Step, 0)
		if d.OnGap != nil {
			d.OnGap(gap)
		}
	}
	d.lastReal = real

	if !d.target.Ready() {
		return
	}
	now := d.warm + (real - d.baseline)
	d.update(now)
	d.target.Draw(now)
}

// Skip discards the real time between the previous frame and real, as after
// the program was paused on purpose.
func (d *Driver) Skip(real float64) {
	if !d.started {
		return
	}
	d.baseline += real - d.lastReal
	d.lastReal = real
}

func (d *Driver) update(now float64) {
	elapsed := 0.0
	if d.updated {
		elapsed = max(now-d.now, 0)
	}
	d.target.Update(now, elapsed)
	d.now = now
	d.updated = true
}
