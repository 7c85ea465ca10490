package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/hub"
	"github.com/DoyleJ11/lol-stats-backend/internal/logging"
	"github.com/DoyleJ11/lol-stats-backend/internal/recent"
	"github.com/DoyleJ11/lol-stats-backend/internal/ws"
)

type Deps struct {
	Hub           *hub.Hub
	Catalog       *catalog.Catalog
	Recent        recent.Store
	Log           *zap.Logger
	WSReadTimeout time.Duration
	Now           func() time.Time // defaults to time.Now
}

func SetupRoutes(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware(d.Log))

	// Public routes
	r.Get("/healthz", Healthz)

	r.Get("/champions", ListChampions(d.Catalog))
	r.Get("/champions/{name}", GetChampion(d.Catalog))
	r.Get("/tierlist", TierList(d.Catalog))

	r.Get("/players/{name}", GetPlayer(d.Catalog))
	r.Get("/players/{name}/matches", PlayerMatches(d.Catalog, d.Now))
	r.Get("/matches/{id}", GetMatch(d.Catalog, d.Now))

	r.Get("/search", Search(d.Catalog, d.Recent, d.Log))
	r.Get("/recent", ListRecent(d.Recent))
	r.Delete("/recent", ClearRecent(d.Recent))
	r.Delete("/recent/{query}", RemoveRecent(d.Recent))

	r.Post("/recommendations", Recommend(d.Catalog))

	r.Post("/lobbies", CreateLobby(d.Hub, d.Log))
	r.Get("/ws", ws.Handler(d.Hub, d.Catalog, ws.Options{ReadTimeout: d.WSReadTimeout, Log: d.Log}))
	return r
}
