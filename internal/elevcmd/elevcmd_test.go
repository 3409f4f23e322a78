package elevcmd

import (
	"errors"
	"testing"

	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
)

func TestElevatorCommand(t *testing.T) {
	elevatorCommandArray := []ElevatorCommand{
		{Value: StartCommand{}},
		{Value: StopCommand{}},
		{Value: RequestCommand{}},
		{Value: StatusCommand{}},
		{Value: QuitCommand{}},
		{Value: struct{}{}},
	}

	elevatorCommandStringArray := []string{
		"StartCommand",
		"StopCommand",
		"RequestCommand",
		"StatusCommand",
		"QuitCommand",
		"UnknownCommand",
	}

	for index, elevatorCommand := range elevatorCommandArray {
		if elevatorCommand.CommandType() != elevatorCommandStringArray[index] {
			t.Errorf("ElevatorCommand.CommandType() returned %v, expected %v", elevatorCommand.CommandType(), elevatorCommandStringArray[index])
		}
	}
}

func TestParse(t *testing.T) {
	lines := []string{"start", "  STOP ", "status", "quit", "request 3 2 9"}
	types := []string{"StartCommand", "StopCommand", "StatusCommand", "QuitCommand", "RequestCommand"}

	for index, line := range lines {
		cmd, err := Parse(line)
		if err != nil {
			t.Errorf("Parse(%q) returned error %v", line, err)
			continue
		}
		if cmd.CommandType() != types[index] {
			t.Errorf("Parse(%q) = %v, expected %v", line, cmd.CommandType(), types[index])
		}
	}

	cmd, _ := Parse("request 3 2 9")
	req, ok := cmd.Value.(RequestCommand)
	if !ok {
		t.Fatalf("Parse() did not return a RequestCommand")
	}
	expected := RequestCommand{Type: elevconsts.RoomService, Start: 2, Destination: 9}
	if req != expected {
		t.Errorf("Parse() = %+v, expected %+v", req, expected)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Parse(\"\") = %v, expected %v", err, ErrUnknownCommand)
	}
	if _, err := Parse("dance"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Parse(\"dance\") = %v, expected %v", err, ErrUnknownCommand)
	}
	if _, err := Parse("request 1 2"); err == nil {
		t.Errorf("Parse() accepted a request with two arguments")
	}
	if _, err := Parse("request 1 two 3"); err == nil {
		t.Errorf("Parse() accepted a non-numeric floor")
	}
}
