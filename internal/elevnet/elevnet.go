package elevnet

import (
	"encoding/json"

	"github.com/wesleywatkins/KernelElevator/internal/elevmetadata"
	"github.com/wesleywatkins/KernelElevator/internal/elevstatus"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

var Log = logger.GetLogger()

const (
	BUFFER_LENGTH = 4096 //for receiving and transmitting
)

// StatusPacket is what a running simulator sends to watchers.
type StatusPacket struct {
	MetaData elevmetadata.ElevMetaData `json:"metadata"`
	Status   elevstatus.Status         `json:"status"`
}

func (sp *StatusPacket) String() string {
	jsonData, err := json.Marshal(sp)
	if err != nil {
		Log.Error().Msg("Error Serialising StatusPacket Object to JSON")
		return ""
	}
	return string(jsonData)
}
