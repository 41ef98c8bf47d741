package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

const (
	actionState = "game:state"
	actionTurn  = "game:turn"
	actionReset = "game:reset"
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Session *render.SessionView `json:"session,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}
