package entity

import "math/rand"

// Ball is the square ball bouncing between the paddles
type Ball struct {
	Rect
	Velocity Velocity

	court Court
}

// NewBall spawns a ball horizontally centered at a random height within the
// middle 80% of the court, moving diagonally in a random direction.
func NewBall(court Court, speed int, rng *rand.Rand) *Ball {
	b := &Ball{
		Rect:     Rect{W: court.BallSize, H: court.BallSize},
		Velocity: NewVelocity(speed, rng),
		court:    court,
	}
	minY := court.Height / 10
	maxY := 9 * court.Height / 10
	b.SetCenterX(court.Width / 2)
	b.SetCenterY(minY + rng.Intn(maxY-minY+1))
	return b
}

// Advance moves the ball by its velocity. Bounds are checked separately.
func (b *Ball) Advance() {
	b.X += b.Velocity.X
	b.Y += b.Velocity.Y
}

// IsHit reports whether the ball overlaps either paddle
func (b *Ball) IsHit(left, right *Paddle) bool {
	return Intersects(b.Rect, left.Rect) || Intersects(b.Rect, right.Rect)
}

// Hit returns the ball after a paddle collision.
// The ball is placed flush against the face of the paddle on its half of the
// court so the same collision cannot trigger again on the next frame.
func (b *Ball) Hit() {
	if b.X < b.court.Width/2 {
		b.X = b.court.Offset + b.court.PaddleWidth/2
	} else {
		b.X = b.court.Width - b.court.Offset - b.court.PaddleWidth/2 - b.court.BallSize
	}
	b.Velocity.FlipHorizontal()
}

// IsBounced reports whether the ball touches the top or bottom wall
func (b *Ball) IsBounced() bool {
	return b.Y <= 0 || b.Y >= b.court.Height-b.court.BallSize
}

// Bounce reflects the ball off a horizontal wall.
// Position is left untouched, so IsBounced may stay true for a few frames
// until the flipped velocity carries the ball clear.
func (b *Ball) Bounce() {
	b.Velocity.FlipVertical()
}

// OutOfBounds reports whether the ball reached a side wall, and which side won the point
func (b *Ball) OutOfBounds() (winner Side, ok bool) {
	if b.X >= b.court.Width-b.court.BallSize {
		return SideLeft, true
	}
	if b.X <= 0 {
		return SideRight, true
	}
	return SideLeft, false
}

// Bounds returns the ball rectangle
func (b *Ball) Bounds() Rect { return b.Rect }

// Update advances the ball one tick
func (b *Ball) Update() { b.Advance() }

func (*Ball) isSprite() {}
