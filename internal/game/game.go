// Package game implements Pipe Bird: a bird falls under gravity and must fly
// through the gaps in an endless row of pipes, scoring one point per pipe.
package game

import (
	"fmt"

	"github.com/vovakirdan/pipe-bird/internal/config"
	"github.com/vovakirdan/pipe-bird/internal/core"
)

// Mode is the top-level game flow state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Game is the tick-driven controller. A frontend loop owns exactly one Game
// and calls Tick once per rendered frame.
type Game struct {
	mode      Mode
	bird      Bird
	obstacle  Obstacle
	score     int
	frameTime float64 // Milliseconds since the last gravity step

	cfg config.Config
	rng Rand
}

// New creates a game sitting in the menu. rng decides where gaps open;
// pass a seeded *rand.Rand for reproducible runs.
func New(cfg config.Config, rng Rand) *Game {
	g := &Game{
		cfg: cfg,
		rng: rng,
	}
	g.reset()
	g.mode = ModeMenu
	return g
}

// reset puts a fresh bird and the first pipe in place.
func (g *Game) reset() {
	g.bird = NewBird(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Physics)
	g.obstacle = NewObstacle(g.cfg.Screen.Width, 0, g.rng, g.cfg.Obstacles)
	g.score = 0
	g.frameTime = 0
}

// restart begins a new round.
func (g *Game) restart() {
	g.reset()
	g.mode = ModePlaying
}

// Tick advances the game by one rendered frame.
func (g *Game) Tick(f *core.Frame) {
	switch g.mode {
	case ModeMenu:
		g.menu(f)
	case ModePlaying:
		g.play(f)
	case ModeEnd:
		g.end(f)
	}
}

// menu shows the title screen and waits for play or quit.
func (g *Game) menu(f *core.Frame) {
	f.Screen.Clear()
	f.Screen.DrawTextCentered(5, "Welcome to Pipe Bird")
	f.Screen.DrawTextCentered(8, "(P) Play Game")
	f.Screen.DrawTextCentered(9, "(Q) Quit Game")

	g.handleMenuKey(f)
}

// end shows the final score and waits for play or quit.
func (g *Game) end(f *core.Frame) {
	f.Screen.Clear()
	f.Screen.DrawTextCentered(5, "Game Over!")
	f.Screen.DrawTextCentered(6, fmt.Sprintf("Score: %d", g.score))
	f.Screen.DrawTextCentered(8, "(P) Play Game")
	f.Screen.DrawTextCentered(9, "(Q) Quit Game")

	g.handleMenuKey(f)
}

func (g *Game) handleMenuKey(f *core.Frame) {
	switch f.Action {
	case core.ActionPlay:
		g.restart()
	case core.ActionQuit:
		f.Quit = true
	}
}

// play runs one frame of the round.
func (g *Game) play(f *core.Frame) {
	f.Screen.ClearBg(core.ColorNavy)

	// Physics only advances in fixed steps, whatever the render rate
	g.frameTime += f.ElapsedMs
	if g.frameTime > g.cfg.Timing.FrameDurationMs {
		g.frameTime = 0
		g.bird.Fall()
	}

	// Input is read every frame, not only on gravity steps
	if f.Action == core.ActionFlap {
		g.bird.Flap()
	}

	// Column 0 is where pipes at obstacle.X - bird.X meet the bird
	f.Screen.Set(0, g.bird.Y, core.ColorYellow, core.ColorBlack, BirdChar)
	f.Screen.DrawText(0, 0, "Press (Space) to Flap")
	f.Screen.DrawText(0, 1, fmt.Sprintf("Score: %d", g.score))
	g.obstacle.Render(f.Screen, g.bird.X)

	if g.bird.X > g.obstacle.X {
		g.score++
		g.obstacle = NewObstacle(g.bird.X+g.cfg.Screen.Width, g.score, g.rng, g.cfg.Obstacles)
	}

	if g.bird.Y > g.cfg.Screen.Height || g.obstacle.HitBy(g.bird) {
		g.mode = ModeEnd
	}
}

// Mode returns the current flow state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of pipes passed in the current or last round.
func (g *Game) Score() int {
	return g.score
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Obstacle returns a copy of the current pipe.
func (g *Game) Obstacle() Obstacle {
	return g.obstacle
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}
