package elevconsts

import "time"

// Building and car limits. Weight is kept at double resolution so that a
// child (0.5) is representable as an integer.
const (
	FLOORS         = 10
	MAX_PASSENGERS = 10
	MAX_WEIGHT     = 30

	TIME_BETWEEN_FLOORS = 2 * time.Second
	TIME_FOR_LOADING    = 1 * time.Second
	DEFAULT_SLEEP_TIME  = 1 * time.Second

	// Upper bound on queued requests. Requests beyond it are refused rather
	// than growing the waiting queue without limit.
	MAX_WAITING_PASSENGERS = 10000

	BOTTOM_FLOOR = 1
	TOP_FLOOR    = FLOORS
)

type PassengerType int

const (
	Adult PassengerType = iota + 1
	Child
	RoomService
	Bellhop
)

func (pt PassengerType) String() string {
	switch pt {
	case Adult:
		return "Adult"
	case Child:
		return "Child"
	case RoomService:
		return "RoomService"
	case Bellhop:
		return "Bellhop"
	default:
		return "Undefined"
	}
}

func (pt PassengerType) Valid() bool {
	return pt >= Adult && pt <= Bellhop
}

// ValidFloor reports whether floor lies in [BOTTOM_FLOOR, TOP_FLOOR].
func ValidFloor(floor int) bool {
	return floor >= BOTTOM_FLOOR && floor <= TOP_FLOOR
}

type ElevatorStateKind int

const (
	Offline ElevatorStateKind = iota // 0
	Idle
	Loading
	MovingUp
	MovingDown
)

// String returns the name printed in the status report.
func (sk ElevatorStateKind) String() string {
	switch sk {
	case Offline:
		return "OFFLINE"
	case Idle:
		return "IDLE"
	case Loading:
		return "LOADING"
	case MovingUp:
		return "UP"
	case MovingDown:
		return "DOWN"
	default:
		return "UNDEFINED"
	}
}
