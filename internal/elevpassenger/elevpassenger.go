package elevpassenger

import (
	"errors"
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/elevstate"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

var Log = logger.GetLogger()

var ErrRegistryFull = errors.New("waiting queue is full")

type Passenger struct {
	Type        elevconsts.PassengerType `json:"type"`
	Start       int                      `json:"start"`
	Destination int                      `json:"destination"`
}

func (p Passenger) String() string {
	return fmt.Sprintf("%v(%d->%d)", p.Type, p.Start, p.Destination)
}

// Registry owns every live passenger. A passenger sits in exactly one of
// waiting or aboard. Callers hold the elevator lock for every method.
type Registry struct {
	waiting []Passenger
	aboard  []Passenger

	serviced         int
	waitingPerFloor  []int
	servicedPerFloor []int
	maxWaiting       int
}

func NewRegistry(maxWaiting int) *Registry {
	return &Registry{
		waitingPerFloor:  make([]int, elevconsts.FLOORS),
		servicedPerFloor: make([]int, elevconsts.FLOORS),
		maxWaiting:       maxWaiting,
	}
}

func (r *Registry) EnqueueWaiting(p Passenger) error {
	if r.maxWaiting > 0 && len(r.waiting) >= r.maxWaiting {
		Log.Warn().Msgf("Waiting queue full at %d, refusing %v", r.maxWaiting, p)
		return ErrRegistryFull
	}
	r.waiting = append(r.waiting, p)
	r.waitingPerFloor[p.Start-1]++
	return nil
}

// UnloadReady removes everyone aboard whose destination is the current
// floor, in boarding order, and returns them.
func (r *Registry) UnloadReady(es *elevstate.ElevatorState) []Passenger {
	var unloaded []Passenger
	kept := r.aboard[:0]
	for _, p := range r.aboard {
		if p.Destination != es.CurrentFloor {
			kept = append(kept, p)
			continue
		}
		es.Load.Remove(p.Type)
		r.serviced++
		// Counted at the floor the passenger leaves on, which is its
		// destination, not its origin.
		r.servicedPerFloor[es.CurrentFloor-1]++
		unloaded = append(unloaded, p)
	}
	clear(r.aboard[len(kept):])
	r.aboard = kept
	return unloaded
}

// LoadReady boards waiting passengers at the current floor in request order.
// A passenger that does not fit is skipped, not removed, so a smaller one
// further back may still board.
func (r *Registry) LoadReady(es *elevstate.ElevatorState) []Passenger {
	var loaded []Passenger
	kept := r.waiting[:0]
	for _, p := range r.waiting {
		if p.Start != es.CurrentFloor || !es.Load.Fits(p.Type) {
			kept = append(kept, p)
			continue
		}
		es.Load.Add(p.Type)
		r.waitingPerFloor[p.Start-1]--
		r.aboard = append(r.aboard, p)
		loaded = append(loaded, p)
	}
	clear(r.waiting[len(kept):])
	r.waiting = kept
	return loaded
}

// DiscardWaiting empties the waiting queue and zeroes the per-floor waiting
// tallies. Nothing else is counted.
func (r *Registry) DiscardWaiting() []Passenger {
	discarded := r.waiting
	r.waiting = nil
	clear(r.waitingPerFloor)
	return discarded
}

// DrainAll empties both queues for teardown.
func (r *Registry) DrainAll() []Passenger {
	drained := append(r.DiscardWaiting(), r.aboard...)
	r.aboard = nil
	return drained
}

func (r *Registry) Empty() bool {
	return len(r.waiting) == 0 && len(r.aboard) == 0
}

func (r *Registry) WaitingCount() int {
	return len(r.waiting)
}

func (r *Registry) AboardCount() int {
	return len(r.aboard)
}

func (r *Registry) Serviced() int {
	return r.serviced
}

// Tallies returns copies of the per-floor counters, index 0 is floor 1.
func (r *Registry) Tallies() (waiting []int, serviced []int, err error) {
	if err = deepcopy.Copy(&waiting, r.waitingPerFloor); err != nil {
		return nil, nil, fmt.Errorf("copying waiting tallies: %w", err)
	}
	if err = deepcopy.Copy(&serviced, r.servicedPerFloor); err != nil {
		return nil, nil, fmt.Errorf("copying serviced tallies: %w", err)
	}
	return waiting, serviced, nil
}
