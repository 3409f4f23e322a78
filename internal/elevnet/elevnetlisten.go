package elevnet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
)

type ElevNetListen struct {
	StatusReceived chan StatusPacket //packets from simulators on the network

	conn    *net.UDPConn //internal variable
	address string       //internal variable
}

func NewElevNetListen(address string) *ElevNetListen {
	return &ElevNetListen{
		StatusReceived: make(chan StatusPacket),
		address:        address,
	}
}

// Start listens until ctx is cancelled. StatusReceived is closed on exit.
func (enl *ElevNetListen) Start(ctx context.Context, waitGroup *sync.WaitGroup) error {
	udpAddress, err := net.ResolveUDPAddr("udp", enl.address)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %v", err)
	}

	enl.conn, err = net.ListenUDP("udp", udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %v", err)
	}

	// Closing the socket is what unblocks ReadFromUDP.
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		<-ctx.Done()
		Log.Info().Msgf("Stopping Listening task...")
		enl.conn.Close()
	}()

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		defer close(enl.StatusReceived)
		listenBuffer := make([]byte, BUFFER_LENGTH)
		for {
			n, _, err := enl.conn.ReadFromUDP(listenBuffer)
			if errors.Is(err, net.ErrClosed) {
				return
			}
			if err != nil {
				Log.Error().Msgf("Error reading UDP message: %v", err)
				continue
			}
			var packet StatusPacket
			if err = json.Unmarshal(listenBuffer[:n], &packet); err != nil {
				Log.Error().Msgf("Error deserialising JSON: %v", err)
				continue
			}
			select {
			case enl.StatusReceived <- packet:
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Addr is the bound address, useful when listening on port 0.
func (enl *ElevNetListen) Addr() string {
	if enl.conn == nil {
		return enl.address
	}
	return enl.conn.LocalAddr().String()
}
