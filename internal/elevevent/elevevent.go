package elevevent

import (
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/elevpassenger"
)

type ElevatorEvent struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

type PassengerLoadedEvent struct {
	Passenger elevpassenger.Passenger
	Floor     int
}

func (ple PassengerLoadedEvent) Wrap() ElevatorEvent {
	return ElevatorEvent{Value: ple}
}

type PassengerUnloadedEvent struct {
	Passenger elevpassenger.Passenger
	Floor     int
}

func (pue PassengerUnloadedEvent) Wrap() ElevatorEvent {
	return ElevatorEvent{Value: pue}
}

type FloorArrivalEvent struct {
	Floor     int
	NextFloor int
}

func (fae FloorArrivalEvent) Wrap() ElevatorEvent {
	return ElevatorEvent{Value: fae}
}

type StateChangeEvent struct {
	State elevconsts.ElevatorStateKind
	Floor int
}

func (sce StateChangeEvent) Wrap() ElevatorEvent {
	return ElevatorEvent{Value: sce}
}

// PassengersDiscardedEvent reports waiting passengers dropped by a stop, or
// everyone left over at shutdown.
type PassengersDiscardedEvent struct {
	Count int
}

func (pde PassengersDiscardedEvent) Wrap() ElevatorEvent {
	return ElevatorEvent{Value: pde}
}

func (e *ElevatorEvent) EventType() string {
	switch e.Value.(type) {
	case PassengerLoadedEvent:
		return "PassengerLoadedEvent"
	case PassengerUnloadedEvent:
		return "PassengerUnloadedEvent"
	case FloorArrivalEvent:
		return "FloorArrivalEvent"
	case StateChangeEvent:
		return "StateChangeEvent"
	case PassengersDiscardedEvent:
		return "PassengersDiscardedEvent"
	default:
		return "UnknownEvent"
	}
}
