package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
	"github.com/DoyleJ11/lol-stats-backend/internal/hub"
	"github.com/DoyleJ11/lol-stats-backend/internal/lobby"
	"github.com/DoyleJ11/lol-stats-backend/internal/recommend"
	"github.com/DoyleJ11/lol-stats-backend/internal/types"
)

var ErrUnknownMessage = errors.New("unknown message type")

const writeTimeout = 3 * time.Second

type Options struct {
	ReadTimeout time.Duration
	Log         *zap.Logger
}

func Handler(h *hub.Hub, cat *catalog.Catalog, opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("code")))
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		lb, err := h.Lobby(r.Context(), func(reply chan *lobby.Lobby) hub.HubMsg {
			return hub.RestoreLobby{Code: code, Reply: reply}
		})
		if err != nil {
			http.Error(w, "planner unavailable", http.StatusServiceUnavailable)
			return
		}
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			log.Debug("ws accept", zap.Error(err))
			return
		}
		defer conn.CloseNow()

		clientID := uuid.NewString()
		clog := log.With(zap.String("lobby", code), zap.String("client", clientID))

		out := make(chan lobby.Snapshot, 8)
		if !lb.Send(lobby.Join{ClientID: clientID, Outbox: out}) {
			conn.Close(websocket.StatusGoingAway, "lobby closed")
			return
		}
		defer lb.Send(lobby.Leave{ClientID: clientID})

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		errs := make(chan string, 4)
		go writeLoop(ctx, conn, cat, out, errs, clog)

		for {
			readCtx, cancelRead := context.WithTimeout(ctx, readTimeout)
			_, data, err := conn.Read(readCtx)
			cancelRead()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					clog.Debug("client closed")
				default:
					clog.Debug("read ended", zap.Error(err))
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				report(errs, "bad json")
				continue
			}

			cmd, err := toEngineCommand(cm, cat)
			if err != nil {
				report(errs, err.Error())
				continue
			}

			res := make(chan error, 1)
			if !lb.Send(lobby.FromClient{Cmd: cmd, Reply: res}) {
				return
			}
			select {
			case err := <-res:
				if err != nil {
					report(errs, err.Error())
				}
			case <-lb.Done():
				return
			}
		}
	}
}

// writeLoop is the only writer on conn.
func writeLoop(ctx context.Context, conn *websocket.Conn, cat *catalog.Catalog, out <-chan lobby.Snapshot, errs <-chan string, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-out:
			if !ok {
				// Lobby shut down or dropped us as a slow reader.
				conn.Close(websocket.StatusGoingAway, "lobby closed")
				return
			}
			if err := write(ctx, conn, snapshotMessage(cat, snap)); err != nil {
				log.Debug("write snapshot", zap.Error(err))
				return
			}

		case msg := <-errs:
			if err := write(ctx, conn, types.ServerMessage{Type: types.MsgError, Error: msg}); err != nil {
				log.Debug("write error", zap.Error(err))
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}

func report(errs chan<- string, msg string) {
	select {
	case errs <- msg:
	default:
	}
}

// snapshotMessage attaches suggestions for the board's current picks.
func snapshotMessage(cat *catalog.Catalog, snap lobby.Snapshot) types.ServerMessage {
	state := snap.State
	suggestions := recommend.Suggest(
		cat.Champions(catalog.Filter{}),
		cat.Resolve(engine.Picked(state, engine.SideEnemy)),
		cat.Resolve(engine.Picked(state, engine.SideAlly)),
		state.Role,
	)
	return types.ServerMessage{
		Type:        types.MsgStateSnapshot,
		Version:     snap.Version,
		State:       &state,
		Suggestions: suggestions,
	}
}

func toEngineCommand(m types.ClientMessage, cat *catalog.Catalog) (engine.Command, error) {
	switch m.Type {
	case types.MsgSelectChampion:
		side, ok := engine.ParseSide(m.Side)
		if !ok {
			return engine.Command{}, engine.ErrUnknownSide
		}
		if strings.TrimSpace(m.Champion) == "" {
			return engine.Command{}, engine.ErrMissingChampion
		}
		ch, err := cat.Champion(m.Champion)
		if err != nil {
			return engine.Command{}, err
		}
		return engine.Command{Type: engine.CmdSelectChampion, Side: side, Slot: m.Slot, Champion: ch.Name}, nil
	case types.MsgClearSlot:
		side, ok := engine.ParseSide(m.Side)
		if !ok {
			return engine.Command{}, engine.ErrUnknownSide
		}
		return engine.Command{Type: engine.CmdClearSlot, Side: side, Slot: m.Slot}, nil
	case types.MsgSetRole:
		return engine.Command{Type: engine.CmdSetRole, Role: catalog.Role(strings.ToLower(m.Role))}, nil
	case types.MsgReset:
		return engine.Command{Type: engine.CmdReset}, nil
	default:
		return engine.Command{}, ErrUnknownMessage
	}
}
