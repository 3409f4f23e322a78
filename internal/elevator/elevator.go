package elevator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/elevevent"
	"github.com/wesleywatkins/KernelElevator/internal/elevpassenger"
	"github.com/wesleywatkins/KernelElevator/internal/elevstate"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
	"golang.org/x/sync/semaphore"
)

var Log = logger.GetLogger()

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotStarted        = errors.New("elevator not started")
	ErrAlreadyStarted    = errors.New("elevator already started")
	ErrAlreadyStopping   = errors.New("elevator already stopping")
	ErrResourceExhausted = errors.New("resource exhausted")
)

type Timing struct {
	BetweenFloors time.Duration
	Loading       time.Duration
	Idle          time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		BetweenFloors: elevconsts.TIME_BETWEEN_FLOORS,
		Loading:       elevconsts.TIME_FOR_LOADING,
		Idle:          elevconsts.DEFAULT_SLEEP_TIME,
	}
}

// Elevator is the whole simulation: the car, its passengers and the
// scheduler goroutine. Registry and state are only touched while holding
// lock, a one-slot semaphore so that waiting for it can be cancelled.
type Elevator struct {
	lock     *semaphore.Weighted
	state    *elevstate.ElevatorState
	registry *elevpassenger.Registry
	timing   Timing

	eventChannel chan<- elevevent.ElevatorEvent //optional, never blocks the loop

	//used for graceful shutdown
	lifecycle sync.Mutex
	launched  bool
	waitGroup *sync.WaitGroup
	cancel    context.CancelFunc
}

// NewElevator builds an offline elevator at floor 1. eventChannel may be nil;
// events that do not fit in its buffer are dropped.
func NewElevator(timing Timing, eventChannel chan<- elevevent.ElevatorEvent) *Elevator {
	return &Elevator{
		lock:         semaphore.NewWeighted(1),
		state:        elevstate.NewElevatorState(),
		registry:     elevpassenger.NewRegistry(elevconsts.MAX_WAITING_PASSENGERS),
		timing:       timing,
		eventChannel: eventChannel,
		waitGroup:    &sync.WaitGroup{},
	}
}

// acquire fails once ctx is done, even when the lock happens to be free.
func (e *Elevator) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.lock.Acquire(ctx, 1)
}

func (e *Elevator) release() {
	e.lock.Release(1)
}

func (e *Elevator) publish(events ...elevevent.ElevatorEvent) {
	if e.eventChannel == nil {
		return
	}
	for _, event := range events {
		select {
		case e.eventChannel <- event:
		default:
			Log.Debug().Msgf("Event channel full, dropping %v", event.EventType())
		}
	}
}

// Launch starts the scheduler goroutine. It stops when parent is cancelled
// or Shutdown is called.
func (e *Elevator) Launch(parent context.Context) error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if e.launched {
		return errors.New("scheduler already launched")
	}

	ctx, cancel := context.WithCancel(parent)
	e.cancel = cancel
	e.waitGroup.Add(1)
	go func() {
		defer e.waitGroup.Done()
		e.run(ctx)
	}()

	e.launched = true
	Log.Info().Msg("Scheduler launched")
	return nil
}

// Shutdown stops the scheduler, waits for it to exit and then discards every
// passenger still waiting or aboard.
func (e *Elevator) Shutdown() error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if !e.launched {
		return errors.New("scheduler not launched, so cannot shut it down")
	}

	Log.Debug().Msg("Stopping Scheduler")
	e.cancel()
	e.waitGroup.Wait()

	// Nothing else can hold the lock for long once the loop is gone.
	if err := e.acquire(context.Background()); err != nil {
		return err
	}
	drained := e.registry.DrainAll()
	e.state.Running = false
	e.state.Park()
	e.release()

	if len(drained) > 0 {
		Log.Warn().Msgf("Discarded %d passengers at shutdown", len(drained))
		e.publish(elevevent.PassengersDiscardedEvent{Count: len(drained)}.Wrap())
	}

	e.launched = false
	Log.Debug().Msg("Stopped Scheduler")
	return nil
}
