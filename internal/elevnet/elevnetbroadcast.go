package elevnet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/wesleywatkins/KernelElevator/internal/elevmetadata"
	"github.com/wesleywatkins/KernelElevator/internal/elevstatus"
)

// StatusProvider returns the snapshot to send. It is called once per period.
type StatusProvider func(ctx context.Context) (elevstatus.Status, error)

type ElevNetBroadcast struct {
	conn     *net.UDPConn               //internal variable
	metaData *elevmetadata.ElevMetaData //internal variable
	provider StatusProvider             //internal variable
}

func NewElevNetBroadcast(metaData *elevmetadata.ElevMetaData, provider StatusProvider) *ElevNetBroadcast {
	return &ElevNetBroadcast{
		metaData: metaData,
		provider: provider,
	}
}

// Start sends a StatusPacket to the metadata broadcast address every period
// until ctx is cancelled.
func (enb *ElevNetBroadcast) Start(ctx context.Context, waitGroup *sync.WaitGroup, period time.Duration) error {
	if enb.metaData == nil {
		return errors.New("metaData is nil")
	}
	if enb.provider == nil {
		return errors.New("status provider is nil")
	}
	if period <= 0 {
		return fmt.Errorf("broadcast period must be positive, got %v", period)
	}

	udpAddress, err := net.ResolveUDPAddr("udp", enb.metaData.BroadcastAddress)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %v", err)
	}

	enb.conn, err = net.DialUDP("udp", nil, udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %v", err)
	}
	enb.conn.SetWriteBuffer(BUFFER_LENGTH)

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		timeTicker := time.NewTicker(period)
		defer timeTicker.Stop()
		defer enb.conn.Close()

		for {
			select {
			case <-timeTicker.C:
				enb.send(ctx)
			case <-ctx.Done():
				Log.Info().Msgf("Stopping Broadcasting task...")
				return
			}
		}
	}()

	Log.Info().Msgf("Started To Broadcast to %v", enb.metaData.BroadcastAddress)
	return nil
}

func (enb *ElevNetBroadcast) send(ctx context.Context) {
	status, err := enb.provider(ctx)
	if err != nil {
		Log.Debug().Msgf("No status to broadcast: %v", err)
		return
	}

	jsonData, err := json.Marshal(StatusPacket{MetaData: *enb.metaData, Status: status})
	if err != nil {
		Log.Error().Msgf("Error marshalling JSON: %v", err)
		return
	}
	if _, err = enb.conn.Write(jsonData); err != nil {
		Log.Error().Msgf("Error writing to UDP Socket: %v", err)
		return
	}

	Log.Trace().Msgf("Sent Packet: %v", string(jsonData))
}
