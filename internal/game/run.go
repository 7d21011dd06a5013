package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomwalk/internal/telemetry"
	"github.com/samdwyer/roomwalk/internal/ui"
)

// Run shows the game in the terminal. Space or enter advances one tick,
// r runs to the end, q or escape quits.
func (g *Game) Run(ctx context.Context) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()
	return g.loop(ctx, screen)
}

func (g *Game) loop(ctx context.Context, screen *ui.Screen) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	renderer := ui.NewRenderer(screen)
	running := true
	for running {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderer.Render(g.frame())

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			running = g.handleKey(ctx, ev)
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// screen finalized
			running = false
		}
	}

	span.SetAttributes(
		attribute.String("state", g.state.String()),
		attribute.Int("ticks", g.campaign.Ticks()),
	)
	return nil
}

// handleKey applies one key press. It returns false when the player quits.
func (g *Game) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		g.advance(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			g.advance(ctx)
		case 'r', 'R':
			for !g.state.IsOver() && g.campaign.Ticks() < g.cfg.MaxTicks {
				g.advance(ctx)
			}
		}
	}
	return true
}

func (g *Game) advance(ctx context.Context) {
	if g.campaign.Ticks() >= g.cfg.MaxTicks {
		g.log.Addf("Out of time after %d ticks.", g.campaign.Ticks())
		return
	}
	if err := g.Step(ctx); err != nil {
		g.log.Addf("The game is over (%s). Press q to quit.", g.state)
	}
}

func (g *Game) frame() ui.Frame {
	return ui.Frame{
		Layout:   g.layout,
		Rooms:    g.campaign.Rooms(),
		Party:    g.party,
		Monsters: g.Group,
		Status:   fmt.Sprintf("%s, tick %d", g.state, g.campaign.Ticks()),
		Log:      g.log.Lines(),
	}
}
