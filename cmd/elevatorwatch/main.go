package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/wesleywatkins/KernelElevator/internal/elevconfig"
	"github.com/wesleywatkins/KernelElevator/internal/elevnet"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	address := flag.String("listen", elevconfig.DEFAULT_BROADCAST_ADDRESS, "UDP address to receive status packets on")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}
	listen := elevnet.NewElevNetListen(*address)
	if err := listen.Start(ctx, wg); err != nil {
		Logger.Fatal().Msgf("Error starting listener: %v", err)
	}
	Logger.Info().Msgf("Watching for elevators on %v", listen.Addr())

	for packet := range listen.StatusReceived {
		fmt.Printf("== %v (%v)\n", packet.MetaData.Identifier, packet.MetaData.SoftwareVersion)
		fmt.Print(packet.Status.Report())
	}
	wg.Wait()
}
