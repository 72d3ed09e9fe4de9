package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pipe-bird/internal/config"
	"github.com/vovakirdan/pipe-bird/internal/core"
)

// fixedRand always returns the same value, reduced into range.
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

func TestNewObstacleGapSize(t *testing.T) {
	cfg := config.Default().Obstacles

	for score := 0; score < 18; score++ {
		o := NewObstacle(80, score, fixedRand(0), cfg)
		if o.Size != 20-score {
			t.Errorf("score %d: Size = %d, expected %d", score, o.Size, 20-score)
		}
	}

	o := NewObstacle(80, 25, fixedRand(0), cfg)
	if o.Size != 2 {
		t.Errorf("score 25: Size = %d, expected 2", o.Size)
	}
	if o.X != 80 {
		t.Errorf("X = %d, expected 80", o.X)
	}
}

func TestNewObstacleGapCenterRange(t *testing.T) {
	cfg := config.Default().Obstacles

	if o := NewObstacle(0, 0, fixedRand(0), cfg); o.GapY != 10 {
		t.Errorf("lowest draw: GapY = %d, expected 10", o.GapY)
	}
	if o := NewObstacle(0, 0, fixedRand(29), cfg); o.GapY != 39 {
		t.Errorf("highest draw: GapY = %d, expected 39", o.GapY)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		o := NewObstacle(0, 0, rng, cfg)
		if o.GapY < 10 || o.GapY >= 40 {
			t.Fatalf("GapY = %d outside [10, 40)", o.GapY)
		}
	}
}

func TestNewObstacleSeeded(t *testing.T) {
	cfg := config.Default().Obstacles
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		oa := NewObstacle(i, i, a, cfg)
		ob := NewObstacle(i, i, b, cfg)
		if oa != ob {
			t.Fatalf("same seed produced different obstacles: %+v vs %+v", oa, ob)
		}
	}
}

func TestObstacleHitBy(t *testing.T) {
	o := Obstacle{X: 100, GapY: 25, Size: 10} // Safe rows are [20, 30]

	for y := -5; y <= 60; y++ {
		b := newTestBird(100, y)
		want := y < 20 || y > 30
		if got := o.HitBy(b); got != want {
			t.Errorf("x=100 y=%d: HitBy = %v, expected %v", y, got, want)
		}
	}

	for _, x := range []int{0, 99, 101, 180} {
		for y := -5; y <= 60; y++ {
			if o.HitBy(newTestBird(x, y)) {
				t.Errorf("x=%d y=%d: HitBy should be false off the pipe column", x, y)
			}
		}
	}
}

func TestObstacleHitByOddSize(t *testing.T) {
	o := Obstacle{X: 10, GapY: 20, Size: 3} // half size 1, safe rows [19, 21]

	cases := map[int]bool{18: true, 19: false, 20: false, 21: false, 22: true}
	for y, want := range cases {
		if got := o.HitBy(newTestBird(10, y)); got != want {
			t.Errorf("y=%d: HitBy = %v, expected %v", y, got, want)
		}
	}
}

func TestObstacleSegments(t *testing.T) {
	o := Obstacle{X: 100, GapY: 25, Size: 10}

	screenX, top, bottom := o.Segments(30, 50)
	if screenX != 70 {
		t.Errorf("screenX = %d, expected 70", screenX)
	}
	if top != (Span{From: 0, To: 20}) {
		t.Errorf("top = %+v, expected [0, 20)", top)
	}
	if bottom != (Span{From: 30, To: 50}) {
		t.Errorf("bottom = %+v, expected [30, 50)", bottom)
	}
	if top.Len() != 20 || bottom.Len() != 20 {
		t.Errorf("span lengths = %d, %d, expected 20, 20", top.Len(), bottom.Len())
	}
}

func TestObstacleRender(t *testing.T) {
	screen := core.NewScreen(80, 50)
	o := Obstacle{X: 40, GapY: 25, Size: 4}

	o.Render(screen, 10)

	for y := 0; y < 50; y++ {
		cell := screen.GetCell(30, y)
		wall := y < 23 || y >= 27
		if wall && (cell.Rune != PipeChar || cell.Fg != core.ColorRed) {
			t.Errorf("row %d: expected red pipe, got %+v", y, cell)
		}
		if !wall && cell.Rune != ' ' {
			t.Errorf("row %d: expected gap, got %q", y, cell.Rune)
		}
	}

	// Off-screen pipes are clipped without panicking
	o.Render(screen, 200)
}
