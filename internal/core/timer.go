package core

import "time"

// Pacer holds a driver loop to a fixed frame interval. A frame that overruns
// the interval is followed immediately by the next one; there is no catch-up.
type Pacer struct {
	step  time.Duration
	start time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer targeting the given frames per second.
func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the frame rate.
func (p *Pacer) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	p.step = time.Second / time.Duration(fps)
}

// Step returns the target frame interval.
func (p *Pacer) Step() time.Duration { return p.step }

// Begin marks the start of a frame.
func (p *Pacer) Begin() {
	p.start = p.now()
}

// Wait sleeps for whatever remains of the frame started by Begin and returns
// the duration slept.
func (p *Pacer) Wait() time.Duration {
	elapsed := p.now().Sub(p.start)
	if elapsed >= p.step {
		return 0
	}
	rest := p.step - elapsed
	p.sleep(rest)
	return rest
}

// Grace reports whether a startup window is still open.
type Grace struct {
	start  time.Time
	period time.Duration
	now    func() time.Time
}

// NewGrace starts a grace window of the given length now.
func NewGrace(period time.Duration) *Grace {
	return newGraceAt(period, time.Now)
}

func newGraceAt(period time.Duration, now func() time.Time) *Grace {
	return &Grace{start: now(), period: period, now: now}
}

// Active reports whether the window has not yet elapsed.
func (g *Grace) Active() bool {
	return g.now().Sub(g.start) < g.period
}

// Elapsed returns the time since the window opened.
func (g *Grace) Elapsed() time.Duration {
	return g.now().Sub(g.start)
}
