package cursor

import "math"

// DefaultFactor is the share of the remaining distance covered per frame
const DefaultFactor = 0.2

// Follower trails the pointer with exponential smoothing. Move and Step
// are called from the same event loop.
type Follower struct {
	Factor float64

	x, y   float64
	tx, ty float64
}

// NewFollower returns a follower resting at the origin
func NewFollower(factor float64) *Follower {
	if factor <= 0 || factor > 1 {
		factor = DefaultFactor
	}
	return &Follower{Factor: factor}
}

// Move records the latest pointer position
func (f *Follower) Move(x, y float64) {
	f.tx, f.ty = x, y
}

// Step advances one animation frame and returns the smoothed position
func (f *Follower) Step() (x, y float64) {
	f.x += (f.tx - f.x) * f.Factor
	f.y += (f.ty - f.y) * f.Factor
	return f.x, f.y
}

// Position returns the smoothed position without advancing
func (f *Follower) Position() (x, y float64) {
	return f.x, f.y
}

// Settled reports whether the follower is within eps of the pointer
func (f *Follower) Settled(eps float64) bool {
	return math.Abs(f.tx-f.x) <= eps && math.Abs(f.ty-f.y) <= eps
}
