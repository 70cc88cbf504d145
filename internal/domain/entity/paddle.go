package entity

// Paddle is a vertically moving bat on one side of the court
type Paddle struct {
	Rect
	Speed int // Pixels per tick
	Side  Side

	maxY int
}

// NewPaddle creates a paddle vertically centered on the given side.
// The left paddle is centered at court.Offset, the right one at court.Width - court.Offset.
func NewPaddle(side Side, court Court, speed int) *Paddle {
	p := &Paddle{
		Rect:  Rect{W: court.PaddleWidth, H: court.PaddleHeight},
		Speed: speed,
		Side:  side,
		maxY:  court.Height - court.PaddleHeight,
	}
	p.SetCenterY(court.Height / 2)
	if side == SideLeft {
		p.SetCenterX(court.Offset)
	} else {
		p.SetCenterX(court.Width - court.Offset)
	}
	return p
}

// MoveUp moves the paddle up by Speed, stopping at the top wall
func (p *Paddle) MoveUp() {
	p.Y -= p.Speed
	if p.Y < 0 {
		p.Y = 0
	}
}

// MoveDown moves the paddle down by Speed, stopping at the bottom wall
func (p *Paddle) MoveDown() {
	p.Y += p.Speed
	if p.Y > p.maxY {
		p.Y = p.maxY
	}
}

// MaxY returns the largest y the paddle may occupy
func (p *Paddle) MaxY() int {
	return p.maxY
}

// Bounds returns the paddle rectangle
func (p *Paddle) Bounds() Rect { return p.Rect }

// Update is a no-op; paddles only move on input.
func (p *Paddle) Update() {}

func (*Paddle) isSprite() {}
