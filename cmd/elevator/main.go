package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/wesleywatkins/KernelElevator/internal/elevator"
	"github.com/wesleywatkins/KernelElevator/internal/elevconfig"
	"github.com/wesleywatkins/KernelElevator/internal/elevevent"
	"github.com/wesleywatkins/KernelElevator/internal/elevmetadata"
	"github.com/wesleywatkins/KernelElevator/internal/elevnet"
	"github.com/wesleywatkins/KernelElevator/internal/elevutils"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
	"golang.org/x/sync/errgroup"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

const EVENT_CHANNEL_SIZE = 64

func main() {
	cmdArgs := elevutils.ProcessCmdArgs()

	cfg, err := elevconfig.Load(cmdArgs.ConfigPath, cmdArgs.EnvPath)
	if err != nil {
		Logger.Fatal().Msgf("Error loading configuration: %v", err)
	}
	if cmdArgs.Identifier != "" {
		cfg.Identifier = cmdArgs.Identifier
	}
	if cmdArgs.BroadcastAddress != "" {
		cfg.BroadcastAddress = cmdArgs.BroadcastAddress
	}
	level, _ := logger.ParseLevel(cfg.LogLevel) //checked by Load
	logger.GetLoggerConfigured(level)

	// Starting Programme
	Logger.Info().Msg("Starting Elevator Programme")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventChannel := make(chan elevevent.ElevatorEvent, EVENT_CHANNEL_SIZE)
	elev := elevator.NewElevator(elevator.DefaultTiming(), eventChannel)
	metaData := elevmetadata.NewElevMetaData(cfg.Identifier, elevutils.GetGitHash(), cfg.BroadcastAddress)
	Logger.Info().Msgf("Elevator: %v", metaData.String())

	group, groupCtx := errgroup.WithContext(ctx)
	if err := elev.Launch(groupCtx); err != nil {
		Logger.Fatal().Msgf("Error launching scheduler: %v", err)
	}

	group.Go(func() error {
		logEvents(groupCtx, eventChannel)
		return nil
	})

	group.Go(func() error {
		if cfg.BroadcastPeriod == 0 {
			Logger.Info().Msg("Status broadcasting disabled")
			return nil
		}
		wg := &sync.WaitGroup{}
		broadcast := elevnet.NewElevNetBroadcast(metaData, elev.Snapshot)
		if err := broadcast.Start(groupCtx, wg, cfg.BroadcastPeriod); err != nil {
			Logger.Error().Msgf("Status broadcasting not started: %v", err)
			return nil
		}
		wg.Wait()
		return nil
	})

	input := openConsole(cmdArgs.LineConsole)
	group.Go(func() error {
		return runConsole(groupCtx, elev, input.commands)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, errQuit) {
		Logger.Error().Msgf("Elevator Programme failed: %v", err)
	}
	input.Close()

	if err := elev.Shutdown(); err != nil {
		Logger.Error().Msgf("Error shutting down scheduler: %v", err)
	}
	Logger.Info().Msg("Stopped Elevator Programme")
}

func logEvents(ctx context.Context, eventChannel <-chan elevevent.ElevatorEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-eventChannel:
			switch evnt := event.Value.(type) {
			case elevevent.PassengerLoadedEvent:
				Logger.Info().Msgf("Loaded %v at floor %d", evnt.Passenger, evnt.Floor)
			case elevevent.PassengerUnloadedEvent:
				Logger.Info().Msgf("Unloaded %v at floor %d", evnt.Passenger, evnt.Floor)
			case elevevent.FloorArrivalEvent:
				Logger.Debug().Msgf("Arrived at floor %d, next floor %d", evnt.Floor, evnt.NextFloor)
			case elevevent.StateChangeEvent:
				Logger.Info().Msgf("Elevator is %v at floor %d", evnt.State, evnt.Floor)
			case elevevent.PassengersDiscardedEvent:
				Logger.Warn().Msgf("%d passengers discarded", evnt.Count)
			default:
				Logger.Error().Msgf("Unexpected event %v", event.EventType())
			}
		}
	}
}
