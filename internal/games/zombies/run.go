package zombies

import (
	"context"
	"fmt"
	"time"
)

// MenuChooser blocks until the player picks a start menu button.
type MenuChooser interface {
	Choose(ctx context.Context) (MenuChoice, error)
}

// InputSource provides the input for the next tick.
type InputSource interface {
	Poll() Input
}

// Renderer receives every tick result.
type Renderer interface {
	Render(res TickResult)
}

// Pacer blocks until the next tick is due.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Run drives the session from the start menu to the end.
//
// Context cancellation acts as a quit request and is checked once per tick.
// After a win or loss the final frame is rendered for the configured game-over
// hold before Run returns.
func (s *Session) Run(ctx context.Context, menu MenuChooser, input InputSource, out Renderer, pacer Pacer) (SessionResult, error) {
	for s.Phase() == PhaseMenu {
		choice, err := menu.Choose(ctx)
		if err != nil {
			if ctx.Err() != nil {
				s.Quit()
				out.Render(s.RunTick(Input{}))
				return s.Result(), nil
			}
			return s.Result(), fmt.Errorf("start menu: %w", err)
		}
		if err := s.ChooseMenu(choice); err != nil {
			return s.Result(), err
		}
	}

	for {
		if err := pacer.Wait(ctx); err != nil {
			if ctx.Err() == nil {
				return s.Result(), fmt.Errorf("tick pacing: %w", err)
			}
			s.Quit()
		}

		res := s.RunTick(input.Poll())
		out.Render(res)

		switch res.Kind {
		case TickExited:
			return s.Result(), nil
		case TickWon, TickLost:
			s.hold(ctx, res, out, pacer)
			return s.Result(), nil
		}
	}
}

// hold keeps the terminal frame on screen for the game-over duration.
func (s *Session) hold(ctx context.Context, res TickResult, out Renderer, pacer Pacer) {
	for range s.cfg.Timing.GameOverTicks {
		if err := pacer.Wait(ctx); err != nil {
			return
		}
		out.Render(res)
	}
}

// TickerPacer paces ticks with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer firing rate times per second.
func NewTickerPacer(rate int) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(max(rate, 1)))}
}

// Wait blocks until the next tick or until ctx is done.
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
