package anim

// Bound is the inclusive limit of the bounce domain on both axes.
const Bound = 2.0

// Per-frame step magnitudes of the star.
const (
	StepX = 0.4 / 50
	StepY = 0.6 / 50
)

// Side reports which boundary an axis crossed during one frame.
type Side int8

const (
	SideNone Side = iota
	SideLow       // candidate <= -Bound
	SideHigh      // candidate >= +Bound
)

// sign is the travel direction after touching this side.
func (s Side) sign() float64 {
	if s == SideHigh {
		return -1
	}
	return 1
}

func (s Side) String() string {
	switch s {
	case SideLow:
		return "low"
	case SideHigh:
		return "high"
	default:
		return "none"
	}
}

// Hit is the per-axis boundary report of one frame.
type Hit struct {
	X, Y Side
}

// Any reports whether either axis crossed a boundary.
func (h Hit) Any() bool { return h.X != SideNone || h.Y != SideNone }

// Bouncer is the star's motion state: one travel sign per axis plus the collision
// flag used for recoloring.
type Bouncer struct {
	SignX, SignY float64
	Collided     bool
}

// Delta returns the displacement applied to every vertex for the current signs.
func (b Bouncer) Delta() (dx, dy float64) {
	return b.SignX * StepX, b.SignY * StepY
}

// Step moves every vertex by one displacement, bouncing off the ±Bound walls.
//
// Candidates are tested against the pre-frame signs. A hit on one axis sets that
// axis' sign toward the interior and flips the other axis only when the other axis
// did not hit as well. The collision flag toggles on any hit. The input shape is not
// modified.
func (b Bouncer) Step(shape Shape) (Shape, Bouncer, Hit) {
	dx, dy := b.Delta()

	var hit Hit
	for _, v := range shape {
		if side := crossing(v.X + dx); side != SideNone {
			hit.X = side
		}
		if side := crossing(v.Y + dy); side != SideNone {
			hit.Y = side
		}
	}

	if hit.X != SideNone {
		b.SignX = hit.X.sign()
		if hit.Y == SideNone {
			b.SignY = -b.SignY
		}
	}
	if hit.Y != SideNone {
		b.SignY = hit.Y.sign()
		if hit.X == SideNone {
			b.SignX = -b.SignX
		}
	}
	if hit.Any() {
		b.Collided = !b.Collided
	}

	dx, dy = b.Delta()
	out := make(Shape, len(shape))
	for i, v := range shape {
		out[i] = Vertex{X: v.X + dx, Y: v.Y + dy, Z: v.Z}
	}
	return out, b, hit
}

func crossing(candidate float64) Side {
	switch {
	case candidate >= Bound:
		return SideHigh
	case candidate <= -Bound:
		return SideLow
	default:
		return SideNone
	}
}
