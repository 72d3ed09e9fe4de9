package game

import (
	"github.com/vovakirdan/pipe-bird/internal/config"
	"github.com/vovakirdan/pipe-bird/internal/core"
)

// Visual characters for rendering
const (
	PipeChar = '|'
	BirdChar = '@'
)

// Rand is the random source used to place gaps. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a vertical pipe with a single gap for the bird to pass through.
type Obstacle struct {
	X    int // Absolute world position
	GapY int // Vertical center of the gap
	Size int // Total gap height
}

// Span is a half-open vertical range [From, To) of wall cells in one column.
type Span struct {
	From int
	To   int
}

// Len returns the number of cells in the span.
func (s Span) Len() int {
	return max(0, s.To-s.From)
}

// NewObstacle creates an obstacle at world position x. The gap center is
// drawn from rng and the gap narrows as score grows.
func NewObstacle(x, score int, rng Rand, cfg config.Obstacles) Obstacle {
	return Obstacle{
		X:    x,
		GapY: cfg.GapCenterMin + rng.Intn(cfg.GapCenterSpan()),
		Size: cfg.GapSize(score),
	}
}

// HitBy reports whether the bird collides with the pipe.
// Collision is only possible in the pipe's own column; since the bird
// advances exactly one cell per step it always lands on that column once.
func (o Obstacle) HitBy(b Bird) bool {
	halfSize := o.Size / 2
	xMatch := b.X == o.X
	aboveGap := b.Y < o.GapY-halfSize
	belowGap := b.Y > o.GapY+halfSize
	return xMatch && (aboveGap || belowGap)
}

// Segments returns the pipe's screen column relative to the bird and the two
// wall spans above and below the gap.
func (o Obstacle) Segments(birdX, screenH int) (screenX int, top, bottom Span) {
	screenX = o.X - birdX
	halfSize := o.Size / 2
	top = Span{From: 0, To: o.GapY - halfSize}
	bottom = Span{From: o.GapY + halfSize, To: screenH}
	return screenX, top, bottom
}

// Render draws both wall segments onto dst.
func (o Obstacle) Render(dst *core.Screen, birdX int) {
	screenX, top, bottom := o.Segments(birdX, dst.Height())
	dst.DrawVLine(screenX, top.From, top.Len(), core.ColorRed, core.ColorBlack, PipeChar)
	dst.DrawVLine(screenX, bottom.From, bottom.Len(), core.ColorRed, core.ColorBlack, PipeChar)
}
