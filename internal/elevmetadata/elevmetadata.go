package elevmetadata

import (
	"encoding/json"

	"github.com/wesleywatkins/KernelElevator/internal/logger"
	"github.com/xyproto/randomstring"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

// ElevMetaData identifies one running simulator on the network.
type ElevMetaData struct {
	SoftwareVersion  string `json:"software_version"`
	Identifier       string `json:"identifier"`
	BroadcastAddress string `json:"broadcast_address"`
}

func NewElevMetaData(identifier string, softwareVersion string, broadcastAddress string) *ElevMetaData {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN) //this should be random enough
		Log.Warn().Msgf("No elevator identifier provided, generated random identifier \"%v\"", identifier)
	}

	return &ElevMetaData{
		SoftwareVersion:  softwareVersion,
		Identifier:       identifier,
		BroadcastAddress: broadcastAddress,
	}
}

func (elevMetaData *ElevMetaData) String() string {
	jsonData, err := json.Marshal(elevMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising ElevMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
