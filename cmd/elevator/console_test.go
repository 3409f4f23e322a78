package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/wesleywatkins/KernelElevator/internal/elevator"
	"github.com/wesleywatkins/KernelElevator/internal/elevcmd"
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

func TestRandomRequestIsValid(t *testing.T) {
	for i := 0; i < 1000; i++ {
		req := randomRequest()
		if !req.Type.Valid() || !elevconsts.ValidFloor(req.Start) || !elevconsts.ValidFloor(req.Destination) {
			t.Fatalf("randomRequest() = %+v, expected a valid request", req)
		}
	}
}

func TestConsoleCloseRestoresKeyboardOnce(t *testing.T) {
	closed := 0
	c := &console{commands: make(chan elevcmd.ElevatorCommand), closeKeys: func() { closed++ }}

	c.Close()
	c.Close()
	if closed != 1 {
		t.Errorf("keyboard closed %d times, expected 1", closed)
	}

	lines := &console{commands: make(chan elevcmd.ElevatorCommand)}
	lines.Close()
}

func TestRunConsole(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	elev := elevator.NewElevator(elevator.Timing{Idle: time.Millisecond}, nil)
	commands := make(chan elevcmd.ElevatorCommand)

	done := make(chan error)
	go func() {
		done <- runConsole(context.Background(), elev, commands)
	}()

	commands <- elevcmd.ElevatorCommand{Value: elevcmd.StartCommand{}}
	commands <- elevcmd.ElevatorCommand{Value: elevcmd.RequestCommand{Type: elevconsts.Adult, Start: 2, Destination: 8}}
	commands <- elevcmd.ElevatorCommand{Value: elevcmd.RequestCommand{Type: elevconsts.Adult, Start: 0, Destination: 8}}
	commands <- elevcmd.ElevatorCommand{Value: elevcmd.QuitCommand{}}

	if err := <-done; !errors.Is(err, errQuit) {
		t.Errorf("runConsole() = %v, expected %v", err, errQuit)
	}

	status, err := elev.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() returned %v", err)
	}
	if !status.Running || status.WaitingPerFloor[1] != 1 || status.TotalWaiting() != 1 {
		t.Errorf("Expected a running elevator with one adult waiting at floor 2, got %v", status)
	}
}

func TestRunConsoleStopsOnCancel(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	elev := elevator.NewElevator(elevator.DefaultTiming(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runConsole(ctx, elev, make(chan elevcmd.ElevatorCommand)); err != nil {
		t.Errorf("runConsole() = %v, expected nil after cancel", err)
	}
}
