package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/galton/audio"
	"github.com/lixenwraith/galton/core"
	"github.com/lixenwraith/galton/engine"
	"github.com/lixenwraith/galton/render"
)

// app owns the screen and runs the session, the only goroutine touching the board
type app struct {
	screen   tcell.Screen
	session  *engine.Session
	clock    *engine.PausableClock
	player   *audio.Player
	buf      *render.Buffer
	renderer *render.BoardRenderer
	logger   zerolog.Logger
	interval time.Duration
}

func newApp(screen tcell.Screen, session *engine.Session, clock *engine.PausableClock, player *audio.Player, interval time.Duration, logger zerolog.Logger) *app {
	w, h := screen.Size()
	buf := render.NewBuffer(w, h, render.StyleBackground)
	screen.SetStyle(render.StyleBackground)
	return &app{
		screen:   screen,
		session:  session,
		clock:    clock,
		player:   player,
		buf:      buf,
		renderer: render.NewBoardRenderer(buf),
		logger:   logger,
		interval: interval,
	}
}

// run loops until the user quits (nil) or the session fails (the error)
func (a *app) run() error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	if minW, minH := render.MinSize(a.session.Board()); a.buf.Width() < minW || a.buf.Height() < minH {
		a.logger.Warn().
			Int("width", a.buf.Width()).Int("height", a.buf.Height()).
			Int("min_width", minW).Int("min_height", minH).
			Msg("terminal smaller than the board, output is clipped")
	}

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				a.logger.Info().Msg("quit requested")
				return nil
			}
		case <-ticker.C:
			if err := a.tick(); err != nil {
				a.logger.Error().Err(err).Msg("simulation halted")
				return err
			}
		}
	}
}

// tick advances the session once, plays its cues and draws the frame
// While paused only the frame is drawn
func (a *app) tick() error {
	paused := a.clock.IsPaused()
	if !paused {
		report, err := a.session.Tick()
		if err != nil {
			return err
		}

		a.player.Landed(report.Landed)
		if report.BatchDone {
			a.player.BatchDone()
		}
	}

	if err := a.renderer.Render(render.Frame{
		Board:      a.session.Board(),
		Remaining:  a.session.BatchRemaining(),
		ShowCounts: a.session.ShowCounts(),
		Paused:     paused,
	}); err != nil {
		return err
	}
	a.buf.Flush(a.screen)
	return nil
}

// handleEvent returns false when the user asked to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P', ' ':
				paused := a.clock.Toggle()
				a.logger.Info().Bool("paused", paused).Dur("total_paused", a.clock.TotalPauseDuration()).Msg("pause toggled")
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.buf.Resize(w, h)
		a.screen.Sync()
		a.logger.Debug().Int("width", w).Int("height", h).Msg("resized")
	}
	return true
}
