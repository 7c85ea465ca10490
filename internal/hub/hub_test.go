package hub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
	"github.com/DoyleJ11/lol-stats-backend/internal/lobby"
)

type fakeStore struct {
	events  map[string][]engine.Event
	version map[string]int
	loadErr error
}

func (f *fakeStore) Append(_ context.Context, code string, version int, events []engine.Event) error {
	f.events[code] = append(f.events[code], events...)
	f.version[code] = version
	return nil
}

func (f *fakeStore) Load(_ context.Context, code string) ([]engine.Event, int, error) {
	if f.loadErr != nil {
		return nil, 0, f.loadErr
	}
	return f.events[code], f.version[code], nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{events: map[string][]engine.Event{}, version: map[string]int{}}
}

func recvLobby(t *testing.T, ch <-chan *lobby.Lobby) *lobby.Lobby {
	t.Helper()
	select {
	case lb := <-ch:
		return lb
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for hub reply")
		return nil
	}
}

func viewOf(t *testing.T, lb *lobby.Lobby) lobby.View {
	t.Helper()
	reply := make(chan lobby.View, 1)
	lb.Inbox() <- lobby.GetState{Reply: reply}
	select {
	case v := <-reply:
		return v
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for view")
		return lobby.View{}
	}
}

func TestHub_Create_Get_SamePointer(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, nil, nil)
	reply := make(chan *lobby.Lobby, 1)

	state := engine.NewEmptyState()
	h.Inbox() <- CreateLobby{Code: "ZED123", State: state, Reply: reply}
	lb1 := recvLobby(t, reply)

	h.Inbox() <- GetLobby{Code: "ZED123", Reply: reply}
	lb2 := recvLobby(t, reply)

	if lb1 == nil || lb2 == nil || lb1 != lb2 {
		t.Fatalf("expected same lobby pointer")
	}

	h.Inbox() <- ShutdownHub{}
}

func TestHub_GetUnknownIsNil(t *testing.T) {
	h := NewHub(context.Background(), nil, nil)
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- GetLobby{Code: "NOPE00", Reply: reply}
	if lb := recvLobby(t, reply); lb != nil {
		t.Fatalf("expected nil lobby")
	}
}

func TestHub_RemoveLobbyStopsIt(t *testing.T) {
	h := NewHub(context.Background(), nil, nil)
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- CreateLobby{Code: "ZED123", State: engine.NewEmptyState(), Reply: reply}
	lb := recvLobby(t, reply)

	h.Inbox() <- RemoveLobby{Code: "ZED123"}
	select {
	case <-lb.Done():
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("removed lobby did not stop")
	}

	h.Inbox() <- GetLobby{Code: "ZED123", Reply: reply}
	if got := recvLobby(t, reply); got != nil {
		t.Fatalf("expected removed lobby to be gone")
	}
}

func TestHub_EnsureLobby_RestoresFromStore(t *testing.T) {
	store := newFakeStore()
	store.events["ZED123"] = []engine.Event{
		{Type: engine.EvtChampionSelected, Side: engine.SideEnemy, Slot: 1, Champion: "Yasuo"},
		{Type: engine.EvtRoleChanged, Role: catalog.RoleMid},
	}
	store.version["ZED123"] = 2

	h := NewHub(context.Background(), store, nil)
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- EnsureLobby{Code: "ZED123", State: engine.NewEmptyState(), Reply: reply}
	lb := recvLobby(t, reply)

	v := viewOf(t, lb)
	if v.Version != 2 || v.State.Enemies[1] != "Yasuo" || v.State.Role != catalog.RoleMid {
		t.Fatalf("lobby not restored: %+v", v)
	}

	// new commands continue recording after the restored version
	errc := make(chan error, 1)
	lb.Inbox() <- lobby.FromClient{
		Cmd:   engine.Command{Type: engine.CmdSelectChampion, Side: engine.SideAlly, Slot: 0, Champion: "Malzahar"},
		Reply: errc,
	}
	if err := <-errc; err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if viewOf(t, lb).Version != 3 {
		t.Fatalf("want version 3 after restore + select")
	}
	if len(store.events["ZED123"]) != 3 || store.version["ZED123"] != 3 {
		t.Fatalf("expected the new event appended at version 3, got %+v", store.events["ZED123"])
	}

	h.Inbox() <- ShutdownHub{}
}

func TestHub_EnsureLobby_LoadFailureFallsBack(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("db down")

	h := NewHub(context.Background(), store, nil)
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- EnsureLobby{Code: "ZED123", State: engine.NewEmptyState(), Reply: reply}
	lb := recvLobby(t, reply)
	if lb == nil {
		t.Fatalf("expected a fresh lobby")
	}
	if v := viewOf(t, lb); v.Version != 0 {
		t.Fatalf("want fresh lobby at version 0, got %d", v.Version)
	}
}

func TestHub_RestoreLobby(t *testing.T) {
	store := newFakeStore()
	store.events["ZED123"] = []engine.Event{
		{Type: engine.EvtChampionSelected, Side: engine.SideAlly, Slot: 0, Champion: "Ahri"},
	}
	store.version["ZED123"] = 1

	h := NewHub(context.Background(), store, nil)
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- RestoreLobby{Code: "NOPE00", Reply: reply}
	if lb := recvLobby(t, reply); lb != nil {
		t.Fatalf("unknown code must not create a lobby")
	}

	h.Inbox() <- RestoreLobby{Code: "ZED123", Reply: reply}
	lb := recvLobby(t, reply)
	if lb == nil {
		t.Fatalf("expected stored lobby to be restored")
	}
	if v := viewOf(t, lb); v.Version != 1 || v.State.Allies[0] != "Ahri" {
		t.Fatalf("unexpected restored view %+v", v)
	}

	h.Inbox() <- GetLobby{Code: "ZED123", Reply: reply}
	if got := recvLobby(t, reply); got != lb {
		t.Fatalf("restored lobby should be live afterwards")
	}

	h.Inbox() <- ShutdownHub{}
}

func TestHub_RestoreLobby_WithoutStore(t *testing.T) {
	h := NewHub(context.Background(), nil, nil)
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- RestoreLobby{Code: "ZED123", Reply: reply}
	if lb := recvLobby(t, reply); lb != nil {
		t.Fatalf("expected nil without a store")
	}

	h.Inbox() <- CreateLobby{Code: "ZED123", State: engine.NewEmptyState(), Reply: reply}
	created := recvLobby(t, reply)
	h.Inbox() <- RestoreLobby{Code: "ZED123", Reply: reply}
	if lb := recvLobby(t, reply); lb != created {
		t.Fatalf("expected the live lobby")
	}
}

func TestHub_StoppedHubRejectsRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(ctx, nil, nil)
	cancel()

	select {
	case <-h.Done():
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("hub did not stop")
	}

	if h.Send(GetLobby{Code: "ZED123", Reply: make(chan *lobby.Lobby, 1)}) {
		t.Fatalf("send after stop should report false")
	}

	_, err := h.Lobby(context.Background(), func(reply chan *lobby.Lobby) HubMsg {
		return GetLobby{Code: "ZED123", Reply: reply}
	})
	if !errors.Is(err, ErrHubStopped) {
		t.Fatalf("want ErrHubStopped, got %v", err)
	}
}

func TestHub_LobbyRequestHonoursContext(t *testing.T) {
	h := NewHub(context.Background(), nil, nil)
	defer h.Send(ShutdownHub{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The reply may still win the race; either outcome is fine as long as
	// the call returns.
	done := make(chan struct{})
	go func() {
		_, _ = h.Lobby(ctx, func(reply chan *lobby.Lobby) HubMsg {
			return GetLobby{Code: "ZED123", Reply: reply}
		})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("request did not return")
	}

	lb, err := h.Lobby(context.Background(), func(reply chan *lobby.Lobby) HubMsg {
		return CreateLobby{Code: "ZED123", State: engine.NewEmptyState(), Reply: reply}
	})
	if err != nil || lb == nil {
		t.Fatalf("expected a lobby, got %v %v", lb, err)
	}
}
