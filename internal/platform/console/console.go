// Package console runs the game directly on a tcell screen.
// The loop owns timing: a ticker fires at the configured rate, key events
// are polled on a separate goroutine and handed to the game one per tick.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pipe-bird/internal/core"
	"github.com/vovakirdan/pipe-bird/internal/game"
)

const defaultTickRate = 60

// palette maps core.Color to tcell colors.
var palette = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBlack:   tcell.ColorBlack,
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorMagenta: tcell.ColorPurple,
	core.ColorCyan:    tcell.ColorTeal,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorNavy:    tcell.ColorNavy,
	core.ColorGray:    tcell.ColorGray,
}

// Style converts a cell's colors to a tcell style.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[c.Fg]).Background(palette[c.Bg])
}

// MapKey translates a tcell key event to a game action.
// The second result is true for Ctrl+C, which leaves without asking the game.
func MapKey(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionNone, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return core.ActionPlay, false
		case 'q', 'Q':
			return core.ActionQuit, false
		case ' ':
			return core.ActionFlap, false
		}
	}
	return core.ActionNone, false
}

// Blit copies the game's screen buffer onto the tcell screen and shows it.
func Blit(dst tcell.Screen, src *core.Screen) {
	dst.Clear()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, Style(cell))
		}
	}
	dst.Show()
}

// Loop drives a single game on a tcell screen.
type Loop struct {
	screen   tcell.Screen
	game     *game.Game
	buffer   *core.Screen
	input    *core.InputQueue
	tickRate int
	logger   *log.Logger
}

// NewLoop creates a loop for g on an already initialized screen.
// A nil logger discards all output.
func NewLoop(screen tcell.Screen, g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	gameCfg := g.Config()

	return &Loop{
		screen:   screen,
		game:     g,
		buffer:   core.NewScreen(gameCfg.Screen.Width, gameCfg.Screen.Height),
		input:    core.NewInputQueue(core.DefaultQueueSize),
		tickRate: tickRate,
		logger:   logger,
	}
}

// Run ticks the game until it asks to quit, Ctrl+C is pressed or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	mode := l.game.Mode()
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("context done", "err", ctx.Err())
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, force := MapKey(ev)
				if force {
					l.logger.Debug("force quit")
					return nil
				}
				l.input.Push(action)
			case *tcell.EventResize:
				l.screen.Sync()
			}

		case now := <-ticker.C:
			if l.Step(float64(now.Sub(last)) / float64(time.Millisecond)) {
				return nil
			}
			last = now
			mode = l.logMode(mode)
		}
	}
}

// Step runs one frame with the given elapsed time and draws it.
// Returns true when the game asked to quit.
func (l *Loop) Step(elapsedMs float64) bool {
	frame := core.Frame{
		ElapsedMs: elapsedMs,
		Action:    l.input.Pop(),
		Screen:    l.buffer,
	}
	l.game.Tick(&frame)
	if frame.Quit {
		l.logger.Debug("quit requested", "mode", l.game.Mode())
		return true
	}
	Blit(l.screen, l.buffer)
	return false
}

// Push queues an action as if its key had been pressed.
func (l *Loop) Push(a core.Action) {
	l.input.Push(a)
}

func (l *Loop) logMode(last game.Mode) game.Mode {
	mode := l.game.Mode()
	if mode == last {
		return last
	}
	l.logger.Debug("mode changed", "from", last, "to", mode)
	if mode == game.ModeEnd {
		l.logger.Info("game over", "score", l.game.Score())
	}
	return mode
}

// Run creates a tcell screen, plays g on it and restores the terminal.
// Failing to initialize the screen is returned before any frame is drawn.
func Run(ctx context.Context, g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return NewLoop(screen, g, cfg, logger).Run(ctx)
}
