package types

import (
	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
	"github.com/DoyleJ11/lol-stats-backend/internal/recommend"
)

const (
	MsgSelectChampion = "SelectChampion"
	MsgClearSlot      = "ClearSlot"
	MsgSetRole        = "SetRole"
	MsgReset          = "Reset"

	MsgStateSnapshot = "StateSnapshot"
	MsgError         = "Error"
)

type ClientMessage struct {
	Type     string `json:"type"`
	Side     string `json:"side,omitempty"`
	Slot     int    `json:"slot"`
	Champion string `json:"champion,omitempty"`
	Role     string `json:"role,omitempty"`
}

type ServerMessage struct {
	Type        string                 `json:"type"` // "StateSnapshot" | "Error"
	Version     int                    `json:"version,omitempty"`
	State       *engine.State          `json:"state,omitempty"`
	Suggestions []recommend.Suggestion `json:"suggestions,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// RecommendRequest is the POST /recommendations body. Names are champion
// names or ids.
type RecommendRequest struct {
	Enemies []string `json:"enemies"`
	Allies  []string `json:"allies"`
	Role    string   `json:"role,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
