package elevcapacity

import (
	"fmt"

	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
)

// Occupancy units per passenger type.
const (
	ADULT        = 1
	CHILD        = 1
	ROOM_SERVICE = 2
	BELLHOP      = 2
)

// Weight units per passenger type, doubled.
const (
	ADULT_WEIGHT        = 2
	CHILD_WEIGHT        = 1
	ROOM_SERVICE_WEIGHT = 4
	BELLHOP_WEIGHT      = 8
)

func UnitOf(pt elevconsts.PassengerType) int {
	switch pt {
	case elevconsts.Adult:
		return ADULT
	case elevconsts.Child:
		return CHILD
	case elevconsts.RoomService:
		return ROOM_SERVICE
	case elevconsts.Bellhop:
		return BELLHOP
	default:
		return 0
	}
}

func WeightOf(pt elevconsts.PassengerType) int {
	switch pt {
	case elevconsts.Adult:
		return ADULT_WEIGHT
	case elevconsts.Child:
		return CHILD_WEIGHT
	case elevconsts.RoomService:
		return ROOM_SERVICE_WEIGHT
	case elevconsts.Bellhop:
		return BELLHOP_WEIGHT
	default:
		return 0
	}
}

// Load is what the car currently carries.
type Load struct {
	Passengers int `json:"passengers"`
	Weight     int `json:"weight"` //doubled
}

// Fits reports whether a passenger of type pt can board without exceeding
// MAX_PASSENGERS or MAX_WEIGHT.
func (l Load) Fits(pt elevconsts.PassengerType) bool {
	return l.Passengers+UnitOf(pt) <= elevconsts.MAX_PASSENGERS &&
		l.Weight+WeightOf(pt) <= elevconsts.MAX_WEIGHT
}

// Full is true once either limit has been reached exactly. The loop skips
// loading entirely in that case.
func (l Load) Full() bool {
	return l.Passengers >= elevconsts.MAX_PASSENGERS || l.Weight >= elevconsts.MAX_WEIGHT
}

func (l *Load) Add(pt elevconsts.PassengerType) {
	l.Passengers += UnitOf(pt)
	l.Weight += WeightOf(pt)
}

func (l *Load) Remove(pt elevconsts.PassengerType) {
	l.Passengers -= UnitOf(pt)
	l.Weight -= WeightOf(pt)
}

// WeightString renders the doubled weight as "7" or "7.5".
func WeightString(weight int) string {
	if weight%2 == 0 {
		return fmt.Sprintf("%d", weight/2)
	}
	return fmt.Sprintf("%d.5", weight/2)
}
