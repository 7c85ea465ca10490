package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
	"github.com/DoyleJ11/lol-stats-backend/internal/hub"
	"github.com/DoyleJ11/lol-stats-backend/internal/lobby"
	"github.com/DoyleJ11/lol-stats-backend/internal/recent"
	"github.com/DoyleJ11/lol-stats-backend/internal/recommend"
	"github.com/DoyleJ11/lol-stats-backend/internal/types"
)

var ErrBadRequest = errors.New("bad request")

const (
	defaultMatchLimit = 10
	maxMatchLimit     = 20
	clientHeader      = "X-Client-ID"
)

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func CreateLobby(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				writeError(w, err)
				return
			}
			existing, err := h.Lobby(r.Context(), func(reply chan *lobby.Lobby) hub.HubMsg {
				return hub.RestoreLobby{Code: c, Reply: reply}
			})
			if err != nil {
				writeError(w, err)
				return
			}
			if existing == nil {
				code = c
				break
			}
			log.Debug("collision on code, regenerating", zap.String("code", c))
		}

		lb, err := h.Lobby(r.Context(), func(reply chan *lobby.Lobby) hub.HubMsg {
			return hub.CreateLobby{Code: code, State: engine.NewEmptyState(), Reply: reply}
		})
		if err != nil {
			writeError(w, err)
			return
		}
		if lb == nil {
			writeError(w, errors.New("failed to create lobby"))
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}

func ListChampions(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := roleParam(r)
		if err != nil {
			writeError(w, err)
			return
		}
		tier := catalog.Tier(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("tier"))))
		if tier != "" && !lo.Contains(catalog.Tiers, tier) {
			writeError(w, badRequest("unknown tier %q", tier))
			return
		}

		champs := cat.Champions(catalog.Filter{Role: role, Tier: tier, Query: r.URL.Query().Get("q")})
		writeJSON(w, http.StatusOK, championViews(champs))
	}
}

func GetChampion(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch, err := cat.Champion(pathParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newChampionView(ch))
	}
}

func TierList(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := roleParam(r)
		if err != nil {
			writeError(w, err)
			return
		}
		groups := lo.Map(cat.TierList(role), func(g catalog.TierGroup, _ int) tierGroupView {
			return tierGroupView{Tier: g.Tier, Champions: championViews(g.Champions)}
		})
		writeJSON(w, http.StatusOK, groups)
	}
}

func GetPlayer(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := cat.Player(pathParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newPlayerView(p))
	}
}

func PlayerMatches(cat *catalog.Catalog, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultMatchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, badRequest("limit must be a positive integer"))
				return
			}
			limit = min(n, maxMatchLimit)
		}

		p, err := cat.Player(pathParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		history, err := cat.Matches(p.RiotID(), limit)
		if err != nil {
			writeError(w, err)
			return
		}

		at := now()
		writeJSON(w, http.StatusOK, historyView{
			Player:  newPlayerView(p),
			Summary: newSummaryView(catalog.Summarize(p.Name, history)),
			Matches: lo.Map(history, func(m catalog.Match, _ int) matchView { return newMatchView(cat, m, at) }),
		})
	}
}

func GetMatch(cat *catalog.Catalog, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := cat.Match(pathParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newMatchView(cat, m, now()))
	}
}

type searchResponse struct {
	Query     string         `json:"query"`
	Players   []playerView   `json:"players"`
	Champions []championView `json:"champions"`
	Recent    []string       `json:"recent,omitempty"`
}

// Search records the query in the caller's recent searches when a client id
// is supplied. A failing recent store does not fail the search.
func Search(cat *catalog.Catalog, rs recent.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			writeError(w, badRequest("missing q"))
			return
		}

		res := cat.Search(q)
		resp := searchResponse{
			Query:     q,
			Players:   lo.Map(res.Players, func(p catalog.Player, _ int) playerView { return newPlayerView(p) }),
			Champions: championViews(res.Champions),
		}

		if client := clientID(r); client != "" {
			list, err := rs.Add(r.Context(), client, q)
			if err != nil {
				log.Warn("record recent search", zap.String("client", client), zap.Error(err))
			} else {
				resp.Recent = list
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type recentResponse struct {
	Recent []string `json:"recent"`
}

func ListRecent(rs recent.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := rs.List(r.Context(), clientID(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recentResponse{Recent: list})
	}
}

func RemoveRecent(rs recent.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := rs.Remove(r.Context(), clientID(r), pathParam(r, "query"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recentResponse{Recent: list})
	}
}

func ClearRecent(rs recent.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rs.Clear(r.Context(), clientID(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type recommendResponse struct {
	Suggestions []recommend.Suggestion `json:"suggestions"`
}

// Recommend scores the catalog against the posted board. Unknown names are
// ignored.
func Recommend(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, badRequest("bad json"))
			return
		}
		var role catalog.Role
		if req.Role != "" {
			parsed, ok := catalog.ParseRole(strings.ToLower(req.Role))
			if !ok {
				writeError(w, badRequest("unknown role %q", req.Role))
				return
			}
			role = parsed
		}

		suggestions := recommend.Suggest(
			cat.Champions(catalog.Filter{}),
			cat.Resolve(req.Enemies),
			cat.Resolve(req.Allies),
			role,
		)
		writeJSON(w, http.StatusOK, recommendResponse{Suggestions: suggestions})
	}
}

func roleParam(r *http.Request) (catalog.Role, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("role")))
	if raw == "" {
		return "", nil
	}
	role, ok := catalog.ParseRole(raw)
	if !ok {
		return "", badRequest("unknown role %q", raw)
	}
	return role, nil
}

// pathParam returns the decoded value of a chi URL parameter. chi matches on
// RawPath when it is set, leaving the parameter escaped.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func clientID(r *http.Request) string {
	if c := strings.TrimSpace(r.URL.Query().Get("client")); c != "" {
		return c
	}
	return strings.TrimSpace(r.Header.Get(clientHeader))
}
