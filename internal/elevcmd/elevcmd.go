package elevcmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
)

var ErrUnknownCommand = errors.New("unknown command")

type ElevatorCommand struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

type StartCommand struct {
}

type StopCommand struct {
}

type RequestCommand struct {
	Type        elevconsts.PassengerType
	Start       int
	Destination int
}

type StatusCommand struct {
}

type QuitCommand struct {
}

func (e *ElevatorCommand) CommandType() string {
	switch e.Value.(type) {
	case StartCommand:
		return "StartCommand"
	case StopCommand:
		return "StopCommand"
	case RequestCommand:
		return "RequestCommand"
	case StatusCommand:
		return "StatusCommand"
	case QuitCommand:
		return "QuitCommand"
	default:
		return "UnknownCommand"
	}
}

// Parse reads one console line:
//
//	start
//	request <type 1-4> <start floor> <destination floor>
//	stop
//	status
//	quit
//
// Range checks on the request arguments are left to the elevator.
func Parse(line string) (ElevatorCommand, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ElevatorCommand{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	switch fields[0] {
	case "start":
		return ElevatorCommand{Value: StartCommand{}}, nil
	case "stop":
		return ElevatorCommand{Value: StopCommand{}}, nil
	case "status", "print":
		return ElevatorCommand{Value: StatusCommand{}}, nil
	case "quit", "exit":
		return ElevatorCommand{Value: QuitCommand{}}, nil
	case "request", "req":
		if len(fields) != 4 {
			return ElevatorCommand{}, fmt.Errorf("request takes 3 arguments, got %d", len(fields)-1)
		}
		var args [3]int
		for i := range args {
			value, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return ElevatorCommand{}, fmt.Errorf("request argument %q: %w", fields[i+1], err)
			}
			args[i] = value
		}
		return ElevatorCommand{Value: RequestCommand{
			Type:        elevconsts.PassengerType(args[0]),
			Start:       args[1],
			Destination: args[2],
		}}, nil
	default:
		return ElevatorCommand{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}
