package engine

import (
	"errors"
	"testing"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
)

func boardWith(allies, enemies []string) State {
	s := NewEmptyState()
	copy(s.Allies, allies)
	copy(s.Enemies, enemies)
	return s
}

func TestApply_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		setup   State
		cmd     Command
		wantErr error
	}{
		{
			name:    "unknown side",
			setup:   NewEmptyState(),
			cmd:     Command{Type: CmdSelectChampion, Side: "spectator", Slot: 0, Champion: "Ahri"},
			wantErr: ErrUnknownSide,
		},
		{
			name:    "slot below range",
			setup:   NewEmptyState(),
			cmd:     Command{Type: CmdSelectChampion, Side: SideAlly, Slot: -1, Champion: "Ahri"},
			wantErr: ErrSlotOutOfRange,
		},
		{
			name:    "slot above range",
			setup:   NewEmptyState(),
			cmd:     Command{Type: CmdClearSlot, Side: SideEnemy, Slot: TeamSize},
			wantErr: ErrSlotOutOfRange,
		},
		{
			name:    "blank champion",
			setup:   NewEmptyState(),
			cmd:     Command{Type: CmdSelectChampion, Side: SideAlly, Slot: 0, Champion: "  "},
			wantErr: ErrMissingChampion,
		},
		{
			name:    "champion already on the other side",
			setup:   boardWith(nil, []string{"Zed"}),
			cmd:     Command{Type: CmdSelectChampion, Side: SideAlly, Slot: 2, Champion: "zed"},
			wantErr: ErrChampionTaken,
		},
		{
			name:    "champion already in another ally slot",
			setup:   boardWith([]string{"Ahri"}, nil),
			cmd:     Command{Type: CmdSelectChampion, Side: SideAlly, Slot: 1, Champion: "Ahri"},
			wantErr: ErrChampionTaken,
		},
		{
			name:    "unknown role",
			setup:   NewEmptyState(),
			cmd:     Command{Type: CmdSetRole, Role: "roamer"},
			wantErr: ErrUnknownRole,
		},
		{
			name:    "unsupported command",
			setup:   NewEmptyState(),
			cmd:     Command{Type: "LockPick"},
			wantErr: ErrUnsupportedCommand,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events, got, err := Apply(tc.setup, tc.cmd)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if events != nil {
				t.Fatalf("expected no events on rejection, got %+v", events)
			}
			if got.Role != tc.setup.Role {
				t.Fatalf("state changed on rejection")
			}
		})
	}
}

func TestApply_SelectDoesNotMutateInput(t *testing.T) {
	s := NewEmptyState()
	events, next, err := Apply(s, Command{Type: CmdSelectChampion, Side: SideEnemy, Slot: 3, Champion: "Yasuo"})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if !ContainsEvent(events, EvtChampionSelected) {
		t.Fatalf("expected EvtChampionSelected")
	}
	if next.Enemies[3] != "Yasuo" {
		t.Fatalf("want Yasuo in enemy slot 3, got %+v", next.Enemies)
	}
	if s.Enemies[3] != "" {
		t.Fatalf("input state was mutated: %+v", s.Enemies)
	}
}

func TestApply_ReselectSameSlotIsAllowed(t *testing.T) {
	s := boardWith([]string{"Ahri"}, nil)
	_, next, err := Apply(s, Command{Type: CmdSelectChampion, Side: SideAlly, Slot: 0, Champion: "Ahri"})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if next.Allies[0] != "Ahri" {
		t.Fatalf("got %+v", next.Allies)
	}
}

func TestApply_ClearEmptySlotIsNoop(t *testing.T) {
	events, _, err := Apply(NewEmptyState(), Command{Type: CmdClearSlot, Side: SideAlly, Slot: 0})
	if err != nil || events != nil {
		t.Fatalf("want no events and no error, got %+v, %v", events, err)
	}
}

func TestApply_SetRoleNormalizesAliases(t *testing.T) {
	events, next, err := Apply(NewEmptyState(), Command{Type: CmdSetRole, Role: "bottom"})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if next.Role != catalog.RoleADC || !ContainsEvent(events, EvtRoleChanged) {
		t.Fatalf("want adc role change, got %q %+v", next.Role, events)
	}

	events, _, err = Apply(next, Command{Type: CmdSetRole, Role: catalog.RoleADC})
	if err != nil || events != nil {
		t.Fatalf("same role should be a no-op, got %+v, %v", events, err)
	}
}

func TestPicked(t *testing.T) {
	s := boardWith([]string{"", "Lee Sin", "", "Jinx"}, nil)
	got := Picked(s, SideAlly)
	if len(got) != 2 || got[0] != "Lee Sin" || got[1] != "Jinx" {
		t.Fatalf("got %+v", got)
	}
	if len(Picked(s, SideEnemy)) != 0 {
		t.Fatalf("expected no enemies")
	}
}

func TestReduce_ReplaysApply(t *testing.T) {
	cmds := []Command{
		{Type: CmdSelectChampion, Side: SideAlly, Slot: 0, Champion: "Malphite"},
		{Type: CmdSelectChampion, Side: SideEnemy, Slot: 2, Champion: "Zed"},
		{Type: CmdSetRole, Role: catalog.RoleMid},
		{Type: CmdClearSlot, Side: SideAlly, Slot: 0},
		{Type: CmdSelectChampion, Side: SideAlly, Slot: 4, Champion: "Malphite"},
	}

	s := NewEmptyState()
	var log []Event
	for _, cmd := range cmds {
		events, next, err := Apply(s, cmd)
		if err != nil {
			t.Fatalf("unexpected err %v", err)
		}
		log = append(log, events...)
		s = next
	}

	replayed := Reduce(log)
	if replayed.Role != s.Role || replayed.Allies[4] != "Malphite" || replayed.Allies[0] != "" || replayed.Enemies[2] != "Zed" {
		t.Fatalf("replay mismatch: got %+v, want %+v", replayed, s)
	}
}

func TestReduce_ResetClearsBoard(t *testing.T) {
	s := Reduce([]Event{
		{Type: EvtChampionSelected, Side: SideAlly, Slot: 1, Champion: "Vi"},
		{Type: EvtRoleChanged, Role: catalog.RoleTop},
		{Type: EvtBoardReset},
	})
	if len(Picked(s, SideAlly)) != 0 || s.Role != "" {
		t.Fatalf("expected empty board, got %+v", s)
	}
}
