package elevstatus

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleywatkins/KernelElevator/internal/elevcapacity"
	"github.com/wesleywatkins/KernelElevator/internal/elevconsts"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

var Log = logger.GetLogger()

// Status is a copy of every reported field, taken in one locked section.
type Status struct {
	State            elevconsts.ElevatorStateKind `json:"state"`
	CurrentFloor     int                          `json:"current_floor"`
	NextFloor        int                          `json:"next_floor"`
	Passengers       int                          `json:"passengers"`
	Weight           int                          `json:"weight"` //doubled
	Serviced         int                          `json:"serviced"`
	WaitingPerFloor  []int                        `json:"waiting_per_floor"`
	ServicedPerFloor []int                        `json:"serviced_per_floor"`
	Running          bool                         `json:"running"`
	Stopping         bool                         `json:"stopping"`
}

// Report renders the status in the same layout as the /proc/elevator file.
func (s Status) Report() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Elevator state: %v\n", s.State)
	fmt.Fprintf(&sb, "Current floor: %d\n", s.CurrentFloor)
	fmt.Fprintf(&sb, "Next floor: %d\n", s.NextFloor)
	fmt.Fprintf(&sb, "Passengers load: %d\n", s.Passengers)
	fmt.Fprintf(&sb, "Weight load: %s\n", elevcapacity.WeightString(s.Weight))
	fmt.Fprintf(&sb, "Total Passengers Serviced: %d\n", s.Serviced)
	for i, count := range s.WaitingPerFloor {
		fmt.Fprintf(&sb, "Waiting Passengers on Floor %d: %d\n", i+1, count)
	}
	for i, count := range s.ServicedPerFloor {
		fmt.Fprintf(&sb, "Passengers Serviced on Floor %d: %d\n", i+1, count)
	}

	return sb.String()
}

func (s Status) String() string {
	jsonData, err := json.Marshal(s)
	if err != nil {
		Log.Error().Msg("Error Serialising Status Object to JSON")
		return ""
	}
	return string(jsonData)
}

// TotalWaiting sums the per-floor waiting counts.
func (s Status) TotalWaiting() int {
	total := 0
	for _, count := range s.WaitingPerFloor {
		total += count
	}
	return total
}
