package game

import "github.com/vovakirdan/pipe-bird/internal/config"

// Bird is the player-controlled entity.
// X grows by one cell per gravity step, Y grows downward and never goes
// above row 0.
type Bird struct {
	X        int
	Y        int
	Velocity float64

	physics config.Physics
}

// NewBird creates a bird at rest at the given position.
func NewBird(x, y int, physics config.Physics) Bird {
	return Bird{
		X:       x,
		Y:       y,
		physics: physics,
	}
}

// Fall applies one gravity step: accelerate up to the terminal velocity,
// move by the whole part of the velocity, advance one cell forward and
// clamp to the top of the screen.
func (b *Bird) Fall() {
	if b.Velocity < b.physics.MaxVelocity {
		b.Velocity = min(b.Velocity+b.physics.Gravity, b.physics.MaxVelocity)
	}
	b.Y += int(b.Velocity)
	b.X++

	if b.Y < 0 {
		b.Y = 0
	}
}

// Flap gives the bird an upward impulse.
func (b *Bird) Flap() {
	b.Velocity = b.physics.FlapVelocity
}
