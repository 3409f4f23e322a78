package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/eiannone/keyboard"
	"github.com/wesleywatkins/KernelElevator/internal/elevator"
	"github.com/wesleywatkins/KernelElevator/internal/elevcmd"
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
)

var errQuit = errors.New("quit requested")

// console feeds commands from single key presses, or from stdin lines.
type console struct {
	commands  chan elevcmd.ElevatorCommand
	closeKeys func() //nil in line mode
	closeOnce sync.Once
}

// openConsole reads keys unless lines is set or there is no terminal to
// read keys from.
func openConsole(lines bool) *console {
	c := &console{commands: make(chan elevcmd.ElevatorCommand)}

	if !lines {
		err := keyboard.Open()
		if err == nil {
			c.closeKeys = func() { keyboard.Close() }
			go c.readKeys()
			return c
		}
		Logger.Warn().Msgf("No keyboard available (%v), reading commands from stdin", err)
	}

	go readLines(c.commands)
	return c
}

// Close puts the terminal back into its normal mode. A key reader still
// blocked in GetKey is left behind, so main calls this once it is done.
func (c *console) Close() {
	c.closeOnce.Do(func() {
		if c.closeKeys != nil {
			c.closeKeys()
		}
	})
}

func (c *console) readKeys() {
	defer c.Close()
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			Logger.Error().Msgf("Error reading key: %v", err)
			c.commands <- elevcmd.ElevatorCommand{Value: elevcmd.QuitCommand{}}
			return
		}
		if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
			c.commands <- elevcmd.ElevatorCommand{Value: elevcmd.QuitCommand{}}
			return
		}

		switch char {
		case 's':
			c.commands <- elevcmd.ElevatorCommand{Value: elevcmd.StartCommand{}}
		case 'x':
			c.commands <- elevcmd.ElevatorCommand{Value: elevcmd.StopCommand{}}
		case 'r':
			c.commands <- elevcmd.ElevatorCommand{Value: randomRequest()}
		case 'p':
			c.commands <- elevcmd.ElevatorCommand{Value: elevcmd.StatusCommand{}}
		case 'q':
			c.commands <- elevcmd.ElevatorCommand{Value: elevcmd.QuitCommand{}}
			return
		}
	}
}

func readLines(commands chan<- elevcmd.ElevatorCommand) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cmd, err := elevcmd.Parse(scanner.Text())
		if err != nil {
			Logger.Warn().Msgf("%v", err)
			continue
		}
		commands <- cmd
	}
	commands <- elevcmd.ElevatorCommand{Value: elevcmd.QuitCommand{}}
}

func randomRequest() elevcmd.RequestCommand {
	return elevcmd.RequestCommand{
		Type:        elevconsts.PassengerType(rand.Intn(4) + 1),
		Start:       rand.Intn(elevconsts.FLOORS) + 1,
		Destination: rand.Intn(elevconsts.FLOORS) + 1,
	}
}

func runConsole(ctx context.Context, elev *elevator.Elevator, commands <-chan elevcmd.ElevatorCommand) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-commands:
			switch c := cmd.Value.(type) {
			case elevcmd.QuitCommand:
				Logger.Info().Msg("Quit requested")
				return errQuit
			case elevcmd.StatusCommand:
				status, err := elev.Snapshot(ctx)
				if err != nil {
					Logger.Error().Msgf("Error taking snapshot: %v", err)
					continue
				}
				fmt.Print(status.Report())
			case elevcmd.RequestCommand:
				if err := elev.Execute(ctx, cmd); err != nil {
					Logger.Warn().Msgf("Request %v %d->%d refused: %v", c.Type, c.Start, c.Destination, err)
				} else {
					Logger.Info().Msgf("Request %v %d->%d issued", c.Type, c.Start, c.Destination)
				}
			default:
				if err := elev.Execute(ctx, cmd); err != nil {
					Logger.Warn().Msgf("%v refused: %v", cmd.CommandType(), err)
				}
			}
		}
	}
}
