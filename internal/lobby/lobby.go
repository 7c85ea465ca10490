package lobby

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
)

type Msg interface{ isLobbyMsg() }

// FromClient applies a planner command. Reply, when set, receives exactly one
// value: nil on success or the rejection error.
type FromClient struct {
	Cmd   engine.Command
	Reply chan error
}

func (FromClient) isLobbyMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

type Snapshot struct {
	Version int
	State   engine.State
}

type View struct {
	Code       string
	Version    int
	NumClients int
	State      engine.State
}

// Recorder persists applied events. version is the lobby version the events
// produced.
type Recorder interface {
	Append(ctx context.Context, code string, version int, events []engine.Event) error
}

type Config struct {
	Code     string
	Version  int // starting version, non-zero when restored from a recorder
	Recorder Recorder
	Log      *zap.Logger
}

const recordTimeout = 3 * time.Second

type Lobby struct {
	inbox    chan Msg
	code     string
	state    engine.State
	version  int
	clients  map[string]chan Snapshot
	recorder Recorder
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewLobby(parent context.Context, initial engine.State, cfg Config) *Lobby {
	ctx, cancel := context.WithCancel(parent)

	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	l := &Lobby{
		inbox:    make(chan Msg, 64), // Small buffer
		code:     cfg.Code,
		state:    initial.Clone(),
		version:  cfg.Version,
		clients:  make(map[string]chan Snapshot),
		recorder: cfg.Recorder,
		log:      log.With(zap.String("lobby", cfg.Code)),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go l.loop()
	return l
}

func (l *Lobby) loop() {
	defer close(l.done)
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				l.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: l.version, State: l.state.Clone()}
				l.log.Debug("client joined", zap.String("client", msg.ClientID), zap.Int("clients", len(l.clients)))

			case Leave:
				if _, ok := l.clients[msg.ClientID]; ok {
					delete(l.clients, msg.ClientID)
					l.log.Debug("client left", zap.String("client", msg.ClientID))
				}

			case FromClient:
				err := l.apply(msg.Cmd)
				if msg.Reply != nil {
					msg.Reply <- err
				}

			case GetState:
				msg.Reply <- View{
					Code:       l.code,
					Version:    l.version,
					NumClients: len(l.clients),
					State:      l.state.Clone(),
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) apply(cmd engine.Command) error {
	events, newState, err := engine.Apply(l.state, cmd)
	if err != nil {
		l.log.Debug("command rejected", zap.String("cmd", string(cmd.Type)), zap.Error(err))
		return err
	}
	if len(events) == 0 {
		return nil
	}

	l.state = newState
	l.version++
	l.record(events)
	l.broadcast(Snapshot{Version: l.version, State: l.state.Clone()})
	return nil
}

func (l *Lobby) record(events []engine.Event) {
	if l.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(l.ctx, recordTimeout)
	defer cancel()
	if err := l.recorder.Append(ctx, l.code, l.version, events); err != nil {
		// The in-memory board stays authoritative; a lost write only affects restores.
		l.log.Warn("record events", zap.Int("version", l.version), zap.Error(err))
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch) // Tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(l.clients, id)
			l.log.Info("dropped slow client", zap.String("client", id))
		}
	}
}

// Expose the inbox so tests or WS layer can send messages.
func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

// Done is closed once the lobby loop has exited.
func (l *Lobby) Done() <-chan struct{} { return l.done }

func (l *Lobby) Code() string { return l.code }

// Send delivers m unless the lobby has already stopped.
func (l *Lobby) Send(m Msg) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.inbox <- m:
		return true
	case <-l.done:
		return false
	}
}
