package protocol

import (
	"encoding/json"
)

const (
	MsgSimulate = "simulate"
	MsgDiagram  = "diagram"
	MsgError    = "error"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
