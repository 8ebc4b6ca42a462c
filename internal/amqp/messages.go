package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// ExportRequestMessage asks the worker to snapshot one direction's
// transactions and append them to the spreadsheet backend. The payload is
// deliberately small: the worker re-reads the data from the gateway, so the
// exported rows are current at processing time, not at request time.
type ExportRequestMessage struct {
	Direction   core.Direction `json:"direction"`
	RequestedBy string         `json:"requested_by"`
	Timestamp   time.Time      `json:"timestamp"`
}

func NewExportRequestMessage(dir core.Direction, requestedBy string) *ExportRequestMessage {
	return &ExportRequestMessage{
		Direction:   dir,
		RequestedBy: requestedBy,
		Timestamp:   time.Now(),
	}
}

func (m *ExportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ExportRequestMessageFromJSON(data []byte) (*ExportRequestMessage, error) {
	var msg ExportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
