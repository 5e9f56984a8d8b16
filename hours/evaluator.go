package hours

import (
	"log"
	"time"

	"oh-server/models"
	"oh-server/models/schedule"
)

// Evaluator computes the open/closed status of a location at an instant.
// Pure computation over the weekly schedule; safe for concurrent use.
type Evaluator struct {
	clock WallClock
}

// NewEvaluator constructs an Evaluator with the given wall-clock resolver.
func NewEvaluator(clock WallClock) *Evaluator {
	return &Evaluator{clock: clock}
}

// closed is the single fail-closed terminal value. Every error path in the
// engine resolves here: a public status badge must always render something,
// and under-promising availability beats showing a wrong "open".
var closed = models.StatusResult{IsOpen: false}

// Evaluate returns the status of a location at the given instant.
//
// Yesterday's midnight-spanning window is checked before today's own row:
// a day can be closed in its own entry while still hosting the tail end of
// the previous day's overnight window. The open interval is half-open,
// [open, close): the exact close instant counts as closed, the exact open
// instant as open.
func (e *Evaluator) Evaluate(ws schedule.WeeklySchedule, timezone string, alwaysOpen bool, instant time.Time) models.StatusResult {
	if alwaysOpen {
		return models.StatusResult{IsOpen: true}
	}

	today, nowMin, err := e.clock.Resolve(instant, timezone)
	if err != nil {
		log.Printf("[Evaluator] Failed to resolve wall clock for tz=%q, failing closed: %v", timezone, err)
		return closed
	}

	// Spillover from yesterday's overnight window.
	if win, ok := ws.Day(today - 1).Window(); ok && win.SpansMidnight {
		if nowMin < win.CloseMin {
			return models.StatusResult{
				IsOpen:   true,
				ClosesIn: FormatCountdown(win.CloseMin - nowMin),
			}
		}
	}

	// Today's own window. Malformed entries evaluate as closed days.
	win, ok := ws.Day(today).Window()
	if !ok {
		return closed
	}

	closeMin := win.CloseMin
	if win.SpansMidnight {
		closeMin += schedule.MinutesPerDay
	}
	if win.OpenMin <= nowMin && nowMin < closeMin {
		return models.StatusResult{
			IsOpen:   true,
			ClosesIn: FormatCountdown(closeMin - nowMin),
		}
	}

	return closed
}
