package elevator

import (
	"context"
	"time"

	"github.com/wesleywatkins/KernelElevator/internal/elevevent"
)

// run ticks until ctx is cancelled. Cancellation interrupts the tick in
// progress at its next pause, so a car in travel stops short of the next
// floor instead of arriving there; Shutdown then parks it.
func (e *Elevator) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			Log.Warn().Msg("Scheduler has been signaled to stop")
			return
		default:
		}
		e.tick(ctx)
	}
}

// pause sleeps outside the lock. Cancellation cuts it short; the rest of the
// tick then fails to take the lock and is skipped.
func (e *Elevator) pause(ctx context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (e *Elevator) stateChanged() elevevent.ElevatorEvent {
	return elevevent.StateChangeEvent{State: e.state.State, Floor: e.state.CurrentFloor}.Wrap()
}

// tick is one pass of the scheduler: unload, load, pick a direction, travel.
// A failed lock acquisition skips the remainder of the tick.
func (e *Elevator) tick(ctx context.Context) {
	var events []elevevent.ElevatorEvent

	if err := e.acquire(ctx); err != nil {
		return
	}

	if e.registry.Empty() {
		var changed bool
		if e.state.Running {
			changed = e.state.SetIdle()
		} else {
			changed = e.state.SetOffline()
		}
		if changed {
			events = append(events, e.stateChanged())
		}
		e.release()
		e.publish(events...)
		e.pause(ctx, e.timing.Idle)
		return
	}

	floor := e.state.CurrentFloor
	unloaded := e.registry.UnloadReady(e.state)
	for _, p := range unloaded {
		Log.Debug().Msgf("Unloaded %v at floor %d", p, floor)
		events = append(events, elevevent.PassengerUnloadedEvent{Passenger: p, Floor: floor}.Wrap())
	}
	if !e.state.Load.Full() {
		loaded := e.registry.LoadReady(e.state)
		for _, p := range loaded {
			Log.Debug().Msgf("Loaded %v at floor %d", p, floor)
			events = append(events, elevevent.PassengerLoadedEvent{Passenger: p, Floor: floor}.Wrap())
		}
	}
	transferred := len(events) > 0
	if transferred && e.state.SetLoading() {
		events = append(events, e.stateChanged())
	}
	e.release()
	e.publish(events...)
	events = nil

	if transferred {
		e.pause(ctx, e.timing.Loading)
	}

	if err := e.acquire(ctx); err != nil {
		return
	}
	if e.registry.Empty() {
		if e.state.Stopping && e.state.SetOffline() {
			Log.Info().Msg("Elevator drained and offline")
			events = append(events, e.stateChanged())
		}
		e.release()
		e.publish(events...)
		return
	}
	if e.state.ChooseDirection() {
		events = append(events, e.stateChanged())
	}
	e.release()
	e.publish(events...)
	events = nil

	e.pause(ctx, e.timing.BetweenFloors)

	if err := e.acquire(ctx); err != nil {
		return
	}
	e.state.AdvanceFloor()
	events = append(events, elevevent.FloorArrivalEvent{Floor: e.state.CurrentFloor, NextFloor: e.state.NextFloor}.Wrap())
	e.release()
	e.publish(events...)
}
