package entity

import "math/rand"

// Velocity is the per-tick displacement of the ball.
// Both components always have magnitude Speed; only their signs change.
type Velocity struct {
	X, Y  int
	Speed int
}

// NewVelocity creates a velocity of the given speed with a random sign on each axis
func NewVelocity(speed int, rng *rand.Rand) Velocity {
	return Velocity{
		X:     randomSign(rng) * speed,
		Y:     randomSign(rng) * speed,
		Speed: speed,
	}
}

func randomSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// FlipHorizontal reverses the horizontal direction
func (v *Velocity) FlipHorizontal() {
	v.X = -v.X
}

// FlipVertical reverses the vertical direction
func (v *Velocity) FlipVertical() {
	v.Y = -v.Y
}
