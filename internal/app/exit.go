package app

import (
	"time"

	"digirain/internal/core"
)

// ExitPolicy decides which input ends the program. Nothing but an explicit
// quit counts during the grace period; afterwards any key, any button, or
// pointer motion beyond the threshold does.
type ExitPolicy struct {
	grace     *core.Grace
	threshold int

	originX, originY int
	hasOrigin        bool
}

// NewExitPolicy starts the grace window now.
func NewExitPolicy(grace time.Duration, threshold int) *ExitPolicy {
	return &ExitPolicy{grace: core.NewGrace(grace), threshold: threshold}
}

// InGrace reports whether input is still being ignored.
func (p *ExitPolicy) InGrace() bool { return p.grace.Active() }

// SetOrigin records the pointer position motion is measured from.
func (p *ExitPolicy) SetOrigin(x, y int) {
	p.originX, p.originY = x, y
	p.hasOrigin = true
}

// Quit reports whether an explicit quit request exits. It always does.
func (p *ExitPolicy) Quit() bool { return true }

// Key reports whether a key press exits.
func (p *ExitPolicy) Key() bool { return !p.grace.Active() }

// Button reports whether a mouse button press exits.
func (p *ExitPolicy) Button() bool { return !p.grace.Active() }

// Motion reports whether the pointer moving to (x, y) exits. The first
// position seen becomes the origin when none was set.
func (p *ExitPolicy) Motion(x, y int) bool {
	if !p.hasOrigin {
		p.SetOrigin(x, y)
		return false
	}
	if p.grace.Active() {
		return false
	}
	return abs(x-p.originX) > p.threshold || abs(y-p.originY) > p.threshold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
