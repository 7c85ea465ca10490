package engine

import (
	"errors"
	"slices"
	"strings"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
)

var ErrUnknownSide = errors.New("unknown side")
var ErrSlotOutOfRange = errors.New("slot out of range")
var ErrMissingChampion = errors.New("missing champion")
var ErrChampionTaken = errors.New("champion already selected")
var ErrUnknownRole = errors.New("unknown role")
var ErrUnsupportedCommand = errors.New("unsupported command")

const TeamSize = 5

type Side string

const (
	SideAlly  Side = "ally"
	SideEnemy Side = "enemy"
)

// State is the planning board. Empty slots hold "".
type State struct {
	Allies  []string     `json:"allies"`
	Enemies []string     `json:"enemies"`
	Role    catalog.Role `json:"role,omitempty"`
}

type CommandType string

const (
	CmdSelectChampion CommandType = "SelectChampion"
	CmdClearSlot      CommandType = "ClearSlot"
	CmdSetRole        CommandType = "SetRole"
	CmdReset          CommandType = "Reset"
)

/*
	CmdSelectChampion -> EvtChampionSelected
	CmdClearSlot      -> EvtSlotCleared, nothing when the slot is already empty
	CmdSetRole        -> EvtRoleChanged, nothing when the role is unchanged
	CmdReset          -> EvtBoardReset
*/

type Command struct {
	Type     CommandType
	Side     Side
	Slot     int
	Champion string
	Role     catalog.Role
}

type EventType string

const (
	EvtChampionSelected EventType = "ChampionSelected"
	EvtSlotCleared      EventType = "SlotCleared"
	EvtRoleChanged      EventType = "RoleChanged"
	EvtBoardReset       EventType = "BoardReset"
)

type Event struct {
	Type     EventType    `json:"type"`
	Side     Side         `json:"side,omitempty"`
	Slot     int          `json:"slot"`
	Champion string       `json:"champion,omitempty"`
	Role     catalog.Role `json:"role,omitempty"`
}

// Apply validates cmd against s and returns the resulting events and state.
// s is never modified.
func Apply(s State, cmd Command) ([]Event, State, error) {
	newState := s.Clone()

	switch cmd.Type {
	case CmdSelectChampion:
		slots, err := newState.slots(cmd.Side)
		if err != nil {
			return nil, s, err
		}
		if !validSlot(cmd.Slot) {
			return nil, s, ErrSlotOutOfRange
		}
		champ := strings.TrimSpace(cmd.Champion)
		if champ == "" {
			return nil, s, ErrMissingChampion
		}
		if side, slot, ok := s.Find(champ); ok && (side != cmd.Side || slot != cmd.Slot) {
			return nil, s, ErrChampionTaken
		}

		slots[cmd.Slot] = champ
		return []Event{{Type: EvtChampionSelected, Side: cmd.Side, Slot: cmd.Slot, Champion: champ}}, newState, nil

	case CmdClearSlot:
		slots, err := newState.slots(cmd.Side)
		if err != nil {
			return nil, s, err
		}
		if !validSlot(cmd.Slot) {
			return nil, s, ErrSlotOutOfRange
		}
		if slots[cmd.Slot] == "" {
			return nil, s, nil
		}

		slots[cmd.Slot] = ""
		return []Event{{Type: EvtSlotCleared, Side: cmd.Side, Slot: cmd.Slot}}, newState, nil

	case CmdSetRole:
		role := cmd.Role
		if role != "" {
			parsed, ok := catalog.ParseRole(string(role))
			if !ok {
				return nil, s, ErrUnknownRole
			}
			role = parsed
		}
		if role == s.Role {
			return nil, s, nil
		}

		newState.Role = role
		return []Event{{Type: EvtRoleChanged, Role: role}}, newState, nil

	case CmdReset:
		return []Event{{Type: EvtBoardReset}}, NewEmptyState(), nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

// Reduce rebuilds a board from its event log.
func Reduce(events []Event) State {
	s := NewEmptyState()
	for _, event := range events {
		switch event.Type {
		case EvtChampionSelected:
			if slots, err := s.slots(event.Side); err == nil && validSlot(event.Slot) {
				slots[event.Slot] = event.Champion
			}
		case EvtSlotCleared:
			if slots, err := s.slots(event.Side); err == nil && validSlot(event.Slot) {
				slots[event.Slot] = ""
			}
		case EvtRoleChanged:
			s.Role = event.Role
		case EvtBoardReset:
			s = NewEmptyState()
		}
	}
	return s
}

// Find reports where champion sits on the board, ignoring case.
func (s State) Find(champion string) (Side, int, bool) {
	if i := slices.IndexFunc(s.Allies, func(c string) bool { return c != "" && strings.EqualFold(c, champion) }); i >= 0 {
		return SideAlly, i, true
	}
	if i := slices.IndexFunc(s.Enemies, func(c string) bool { return c != "" && strings.EqualFold(c, champion) }); i >= 0 {
		return SideEnemy, i, true
	}
	return "", 0, false
}

func (s State) Clone() State {
	return State{
		Allies:  padded(s.Allies),
		Enemies: padded(s.Enemies),
		Role:    s.Role,
	}
}

func (s State) slots(side Side) ([]string, error) {
	switch side {
	case SideAlly:
		return s.Allies, nil
	case SideEnemy:
		return s.Enemies, nil
	default:
		return nil, ErrUnknownSide
	}
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < TeamSize
}

func padded(slots []string) []string {
	out := make([]string, TeamSize)
	copy(out, slots)
	return out
}
