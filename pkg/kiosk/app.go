package kiosk

import (
	"context"
	"time"

	"github.com/moonwhale/setup/pkg/kiosk/constants"
	"github.com/moonwhale/setup/pkg/kiosk/internal"
	"github.com/moonwhale/setup/pkg/kiosk/session"
	"github.com/veandco/go-sdl2/sdl"
)

// Run drives the frame loop until the session exits or ctx is cancelled.
// Each frame drains pending input, renders, presents and then sleeps out the
// rest of the frame budget.
func (a *App) Run(ctx context.Context) error {
	logger := internal.GetLogger()
	frame := a.config.FrameDuration()
	a.session.Start(time.Now())

	for {
		start := time.Now()

		if ctx.Err() != nil {
			logger.Info("Shutting down", "reason", context.Cause(ctx).Error())
			return nil
		}

		if a.pollEvents() == session.ResultExit {
			logger.Info("Session ended", "reason", string(a.session.ExitReason()))
			return nil
		}

		if err := a.render(); err != nil {
			return err
		}

		if elapsed := time.Since(start); elapsed < frame {
			sdl.Delay(uint32((frame - elapsed) / time.Millisecond))
		}
	}
}

// pollEvents hands up to MaxEventsPerFrame pending SDL and remote events to
// the session, in arrival order per source.
func (a *App) pollEvents() session.Result {
	processed := 0

	for processed < constants.MaxEventsPerFrame {
		event := sdl.PollEvent()
		if event == nil {
			break
		}

		if a.controllers.HandleDeviceEvent(event) {
			continue
		}

		ev, ok := internal.TranslateEvent(event)
		if !ok {
			continue
		}
		processed++

		if a.session.Handle(ev, time.Now()) == session.ResultExit {
			return session.ResultExit
		}
	}

	for _, ev := range a.remote.Poll(constants.MaxEventsPerFrame - processed) {
		if a.session.Handle(ev, time.Now()) == session.ResultExit {
			return session.ResultExit
		}
	}

	return session.ResultContinue
}
