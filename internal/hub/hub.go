package hub

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
	"github.com/DoyleJ11/lol-stats-backend/internal/lobby"
)

type HubMsg interface{ isHubMsg() }

type CreateLobby struct {
	Code  string
	State engine.State
	Reply chan *lobby.Lobby
}

type GetLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

// EnsureLobby returns the live lobby for Code, restoring it from the event
// store when possible and otherwise starting it from State.
type EnsureLobby struct {
	Code  string
	State engine.State // only used if creation happens
	Reply chan *lobby.Lobby
}

// RestoreLobby returns the live lobby for Code or rebuilds it from the event
// store. Reply receives nil when neither has it.
type RestoreLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

type RemoveLobby struct {
	Code string
}

type ShutdownHub struct{}

func (CreateLobby) isHubMsg()  {}
func (GetLobby) isHubMsg()     {}
func (EnsureLobby) isHubMsg()  {}
func (RestoreLobby) isHubMsg() {}
func (RemoveLobby) isHubMsg()  {}
func (ShutdownHub) isHubMsg()  {}

// Store is the event log lobbies record into and are restored from.
type Store interface {
	lobby.Recorder
	Load(ctx context.Context, code string) ([]engine.Event, int, error)
}

const loadTimeout = 3 * time.Second

var ErrHubStopped = errors.New("hub stopped")

type Hub struct {
	inbox   chan HubMsg
	lobbies map[string]*lobby.Lobby
	store   Store
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewHub starts the hub loop. store may be nil, in which case lobbies live
// only in memory.
func NewHub(parent context.Context, store Store, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	if log == nil {
		log = zap.NewNop()
	}
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		lobbies: make(map[string]*lobby.Lobby),
		store:   store,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Done is closed once the hub loop has exited.
func (h *Hub) Done() <-chan struct{} { return h.done }

// Send delivers m unless the hub has already stopped.
func (h *Hub) Send(m HubMsg) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.inbox <- m:
		return true
	case <-h.done:
		return false
	}
}

// Lobby sends the message built by msg and waits for its reply. It returns
// ErrHubStopped if the hub exits first, or ctx's error if ctx ends first.
func (h *Hub) Lobby(ctx context.Context, msg func(reply chan *lobby.Lobby) HubMsg) (*lobby.Lobby, error) {
	reply := make(chan *lobby.Lobby, 1)
	if !h.Send(msg(reply)) {
		return nil, ErrHubStopped
	}
	select {
	case lb := <-reply:
		return lb, nil
	case <-h.done:
		select {
		case lb := <-reply:
			return lb, nil
		default:
			return nil, ErrHubStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) loop() {
	defer close(h.done)
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateLobby:
				if lb := h.live(msg.Code); lb != nil {
					msg.Reply <- lb
					break
				}
				msg.Reply <- h.start(msg.Code, msg.State, 0)

			case GetLobby:
				msg.Reply <- h.live(msg.Code) // May be nil

			case EnsureLobby:
				if lb := h.live(msg.Code); lb != nil {
					msg.Reply <- lb
					break
				}
				state, version := h.restore(msg.Code, msg.State)
				msg.Reply <- h.start(msg.Code, state, version)

			case RestoreLobby:
				if lb := h.live(msg.Code); lb != nil {
					msg.Reply <- lb
					break
				}
				state, version := h.restore(msg.Code, engine.State{})
				if version == 0 {
					msg.Reply <- nil
					break
				}
				msg.Reply <- h.start(msg.Code, state, version)

			case RemoveLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					lb.Send(lobby.Shutdown{})
					delete(h.lobbies, msg.Code)
				}

			case ShutdownHub:
				h.shutdown()
				h.cancel()
				return
			}
		}
	}
}

// live returns the running lobby for code, forgetting it if it has stopped.
func (h *Hub) live(code string) *lobby.Lobby {
	lb := h.lobbies[code]
	if lb == nil {
		return nil
	}
	select {
	case <-lb.Done():
		delete(h.lobbies, code)
		return nil
	default:
		return lb
	}
}

func (h *Hub) start(code string, state engine.State, version int) *lobby.Lobby {
	cfg := lobby.Config{Code: code, Version: version, Log: h.log}
	if h.store != nil {
		cfg.Recorder = h.store
	}
	lb := lobby.NewLobby(h.ctx, state, cfg)
	h.lobbies[code] = lb
	h.log.Info("lobby started", zap.String("lobby", code), zap.Int("version", version))
	return lb
}

func (h *Hub) restore(code string, fallback engine.State) (engine.State, int) {
	if h.store == nil {
		return fallback, 0
	}
	ctx, cancel := context.WithTimeout(h.ctx, loadTimeout)
	defer cancel()

	events, version, err := h.store.Load(ctx, code)
	if err != nil {
		h.log.Warn("restore lobby", zap.String("lobby", code), zap.Error(err))
		return fallback, 0
	}
	if len(events) == 0 {
		return fallback, 0
	}
	return engine.Reduce(events), version
}

func (h *Hub) shutdown() {
	for _, lb := range h.lobbies {
		lb.Send(lobby.Shutdown{})
	}
	clear(h.lobbies)
}
