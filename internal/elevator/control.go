package elevator

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesleywatkins/KernelElevator/internal/elevcmd"
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/elevevent"
	"github.com/wesleywatkins/KernelElevator/internal/elevpassenger"
	"github.com/wesleywatkins/KernelElevator/internal/elevstatus"
)

// StartElevator lets the elevator accept requests. Queues are untouched.
func (e *Elevator) StartElevator(ctx context.Context) error {
	if err := e.acquire(ctx); err != nil {
		return err
	}
	defer e.release()

	if e.state.Running {
		Log.Warn().Msg("Elevator already started")
		return ErrAlreadyStarted
	}
	e.state.Running = true
	e.state.Stopping = false

	Log.Info().Msg("Elevator started")
	return nil
}

// IssueRequest queues a passenger of type pt waiting at start for
// destination. While a stop is draining the request is dropped without error.
// If ctx ends before the lock is obtained nothing is queued.
func (e *Elevator) IssueRequest(ctx context.Context, pt elevconsts.PassengerType, start int, destination int) error {
	if !pt.Valid() {
		return fmt.Errorf("%w: passenger type %d", ErrInvalidArgument, int(pt))
	}
	if !elevconsts.ValidFloor(start) {
		return fmt.Errorf("%w: start floor %d", ErrInvalidArgument, start)
	}
	if !elevconsts.ValidFloor(destination) {
		return fmt.Errorf("%w: destination floor %d", ErrInvalidArgument, destination)
	}

	if err := e.acquire(ctx); err != nil {
		return err
	}
	defer e.release()

	if !e.state.Running {
		return ErrNotStarted
	}
	if e.state.Stopping {
		Log.Debug().Msgf("Elevator stopping, dropping request %v %d->%d", pt, start, destination)
		return nil
	}

	passenger := elevpassenger.Passenger{Type: pt, Start: start, Destination: destination}
	if err := e.registry.EnqueueWaiting(passenger); err != nil {
		if errors.Is(err, elevpassenger.ErrRegistryFull) {
			return fmt.Errorf("%w: %v", ErrResourceExhausted, err)
		}
		return err
	}

	Log.Debug().Msgf("Request queued: %v", passenger)
	return nil
}

// StopElevator refuses further requests and discards everyone still
// waiting. Passengers aboard are delivered before the elevator goes offline.
func (e *Elevator) StopElevator(ctx context.Context) error {
	if err := e.acquire(ctx); err != nil {
		return err
	}

	if e.state.Stopping {
		e.release()
		return ErrAlreadyStopping
	}
	if !e.state.Running {
		e.release()
		return ErrNotStarted
	}
	e.state.Stopping = true
	e.state.Running = false
	discarded := e.registry.DiscardWaiting()
	aboard := e.registry.AboardCount()
	e.release()

	Log.Info().Msgf("Elevator stopping, discarded %d waiting, delivering %d aboard", len(discarded), aboard)
	if len(discarded) > 0 {
		e.publish(elevevent.PassengersDiscardedEvent{Count: len(discarded)}.Wrap())
	}
	return nil
}

// Snapshot copies every reported field in a single locked section.
func (e *Elevator) Snapshot(ctx context.Context) (elevstatus.Status, error) {
	if err := e.acquire(ctx); err != nil {
		return elevstatus.Status{}, err
	}
	defer e.release()

	waiting, serviced, err := e.registry.Tallies()
	if err != nil {
		return elevstatus.Status{}, err
	}

	return elevstatus.Status{
		State:            e.state.State,
		CurrentFloor:     e.state.CurrentFloor,
		NextFloor:        e.state.NextFloor,
		Passengers:       e.state.Load.Passengers,
		Weight:           e.state.Load.Weight,
		Serviced:         e.registry.Serviced(),
		WaitingPerFloor:  waiting,
		ServicedPerFloor: serviced,
		Running:          e.state.Running,
		Stopping:         e.state.Stopping,
	}, nil
}

// Execute applies a start, request or stop command. Other commands are for
// the caller to handle.
func (e *Elevator) Execute(ctx context.Context, cmd elevcmd.ElevatorCommand) error {
	switch c := cmd.Value.(type) {
	case elevcmd.StartCommand:
		return e.StartElevator(ctx)
	case elevcmd.RequestCommand:
		return e.IssueRequest(ctx, c.Type, c.Start, c.Destination)
	case elevcmd.StopCommand:
		return e.StopElevator(ctx)
	default:
		return fmt.Errorf("%w: %v", elevcmd.ErrUnknownCommand, cmd.CommandType())
	}
}
