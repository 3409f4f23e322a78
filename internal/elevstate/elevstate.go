package elevstate

import (
	"github.com/wesleywatkins/KernelElevator/internal/elevcapacity"
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

var Log = logger.GetLogger()

// ElevatorState is the car itself. It carries no lock of its own; the owner
// serialises every access.
type ElevatorState struct {
	State        elevconsts.ElevatorStateKind
	CurrentFloor int
	NextFloor    int
	Load         elevcapacity.Load

	Stopping bool //stop requested, draining passengers already aboard
	Running  bool //started and accepting requests
}

func NewElevatorState() *ElevatorState {
	return &ElevatorState{
		State:        elevconsts.Offline,
		CurrentFloor: elevconsts.BOTTOM_FLOOR,
		NextFloor:    elevconsts.BOTTOM_FLOOR + 1,
	}
}

func (es *ElevatorState) setState(next elevconsts.ElevatorStateKind) bool {
	if es.State == next {
		return false
	}
	Log.Debug().Msgf("Elevator state %v -> %v at floor %d", es.State, next, es.CurrentFloor)
	es.State = next
	return true
}

// SetLoading is entered when someone boarded or left this tick.
func (es *ElevatorState) SetLoading() bool {
	return es.setState(elevconsts.Loading)
}

// SetIdle is entered when both queues are empty and the elevator is running.
func (es *ElevatorState) SetIdle() bool {
	return es.setState(elevconsts.Idle)
}

// SetOffline is entered when both queues are empty and the elevator is not
// running. A pending stop is complete at that point.
func (es *ElevatorState) SetOffline() bool {
	es.Stopping = false
	return es.setState(elevconsts.Offline)
}

// ChooseDirection compares NextFloor with CurrentFloor. Equal floors count as
// down, which cannot happen while AdvanceFloor maintains NextFloor.
func (es *ElevatorState) ChooseDirection() bool {
	if es.NextFloor > es.CurrentFloor {
		return es.setState(elevconsts.MovingUp)
	}
	return es.setState(elevconsts.MovingDown)
}

// AdvanceFloor moves one floor in the current direction and aims NextFloor
// one further, turning around at the top and bottom floors. It does not route
// toward any particular destination.
func (es *ElevatorState) AdvanceFloor() {
	switch es.State {
	case elevconsts.MovingUp:
		es.CurrentFloor++
		if es.CurrentFloor == elevconsts.TOP_FLOOR {
			es.NextFloor = es.CurrentFloor - 1
		} else {
			es.NextFloor = es.CurrentFloor + 1
		}
	case elevconsts.MovingDown:
		es.CurrentFloor--
		if es.CurrentFloor == elevconsts.BOTTOM_FLOOR {
			es.NextFloor = es.CurrentFloor + 1
		} else {
			es.NextFloor = es.CurrentFloor - 1
		}
	}
}

// Park returns the car to its initial position, empty and offline, for use
// once every passenger has been removed.
func (es *ElevatorState) Park() bool {
	es.Load = elevcapacity.Load{}
	es.CurrentFloor = elevconsts.BOTTOM_FLOOR
	es.NextFloor = elevconsts.BOTTOM_FLOOR + 1
	return es.SetOffline()
}
