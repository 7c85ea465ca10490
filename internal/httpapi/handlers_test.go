package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/hub"
	"github.com/DoyleJ11/lol-stats-backend/internal/lobby"
	"github.com/DoyleJ11/lol-stats-backend/internal/recent"
)

var testNow = time.Date(2024, time.May, 18, 22, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (http.Handler, *hub.Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := hub.NewHub(ctx, nil, nil)
	return SetupRoutes(Deps{
		Hub:     h,
		Catalog: catalog.New(),
		Recent:  recent.NewMemoryStore(recent.DefaultLimit),
		Now:     func() time.Time { return testNow },
	}), h
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorBody struct {
	Error string `json:"error"`
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestListChampions(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name       string
		target     string
		wantStatus int
		wantNames  []string
	}{
		{"by role", "/champions?role=mid", http.StatusOK, []string{"Ahri", "Yasuo", "Zed", "Lux", "Malzahar"}},
		{"role alias and tier", "/champions?role=bottom&tier=s%2B", http.StatusOK, []string{"Kai'Sa"}},
		{"query", "/champions?q=lee", http.StatusOK, []string{"Lee Sin"}},
		{"bad role", "/champions?role=wizard", http.StatusBadRequest, nil},
		{"bad tier", "/champions?tier=Z", http.StatusBadRequest, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, r, http.MethodGet, tc.target, "")
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				assert.NotEmpty(t, decode[errorBody](t, rec).Error)
				return
			}
			got := decode[[]struct {
				Name         string `json:"name"`
				IconURL      string `json:"icon_url"`
				WinRateLabel string `json:"win_rate_label"`
			}](t, rec)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
				assert.NotEmpty(t, c.IconURL)
				assert.True(t, strings.HasSuffix(c.WinRateLabel, "%"))
			}
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestGetChampion(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/champions/kaisa", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[struct {
		Name         string  `json:"name"`
		WinRate      float64 `json:"win_rate"`
		WinRateLabel string  `json:"win_rate_label"`
	}](t, rec)
	assert.Equal(t, "Kai'Sa", got.Name)
	assert.Equal(t, 50.9, got.WinRate)
	assert.Equal(t, "50.9%", got.WinRateLabel)

	rec = do(t, r, http.MethodGet, "/champions/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, catalog.ErrChampionNotFound.Error(), decode[errorBody](t, rec).Error)
}

func TestTierList(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/tierlist?role=mid", "")
	require.Equal(t, http.StatusOK, rec.Code)
	groups := decode[[]struct {
		Tier      string `json:"tier"`
		Champions []struct {
			Name string `json:"name"`
		} `json:"champions"`
	}](t, rec)
	require.Len(t, groups, 4)
	assert.Equal(t, "S+", groups[0].Tier)
	assert.Equal(t, "Ahri", groups[0].Champions[0].Name)
	assert.Equal(t, "Malzahar", groups[2].Champions[0].Name)
}

func TestGetPlayer(t *testing.T) {
	r, _ := newTestRouter(t)

	type rank struct {
		Label   string `json:"label"`
		Short   string `json:"short"`
		WinRate string `json:"win_rate"`
	}
	type player struct {
		RiotID string `json:"riot_id"`
		Rank   string `json:"rank"`
		Ranks  []rank `json:"ranks"`
	}

	rec := do(t, r, http.MethodGet, "/players/Faker%23KR1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[player](t, rec)
	assert.Equal(t, "Faker#KR1", p.RiotID)
	assert.Equal(t, "Challenger 1,204 LP", p.Rank)
	require.Len(t, p.Ranks, 2)
	assert.Equal(t, "C", p.Ranks[0].Short)

	rec = do(t, r, http.MethodGet, "/players/doublelift", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p = decode[player](t, rec)
	assert.Equal(t, "Diamond II", p.Rank)
	assert.Equal(t, "D2", p.Ranks[0].Short)

	rec = do(t, r, http.MethodGet, "/players/Rekkles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Unranked", decode[player](t, rec).Rank)

	rec = do(t, r, http.MethodGet, "/players/Nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayerMatches(t *testing.T) {
	r, _ := newTestRouter(t)

	type history struct {
		Summary struct {
			Games   int    `json:"games"`
			Wins    int    `json:"wins"`
			WinRate string `json:"win_rate"`
			KDA     string `json:"kda"`
		} `json:"summary"`
		Matches []struct {
			ID            string `json:"id"`
			DurationLabel string `json:"duration_label"`
			Played        string `json:"played"`
		} `json:"matches"`
	}

	rec := do(t, r, http.MethodGet, "/players/Faker/matches?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	h := decode[history](t, rec)
	require.Len(t, h.Matches, 1)
	assert.Equal(t, "KR_7034512291", h.Matches[0].ID)
	assert.Equal(t, "31:42", h.Matches[0].DurationLabel)
	assert.Equal(t, "2 hours ago", h.Matches[0].Played)
	assert.Equal(t, 1, h.Summary.Games)
	assert.Equal(t, "100%", h.Summary.WinRate)
	assert.Equal(t, "16.00", h.Summary.KDA)

	rec = do(t, r, http.MethodGet, "/players/Faker/matches", "")
	require.Equal(t, http.StatusOK, rec.Code)
	h = decode[history](t, rec)
	assert.Equal(t, 2, h.Summary.Games)
	assert.Equal(t, "50%", h.Summary.WinRate)

	rec = do(t, r, http.MethodGet, "/players/Faker/matches?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMatch(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/matches/KR_7034512291", "")
	require.Equal(t, http.StatusOK, rec.Code)
	m := decode[struct {
		Participants []struct {
			Player       string `json:"player"`
			KDA          string `json:"kda"`
			GoldLabel    string `json:"gold_label"`
			ChampionIcon string `json:"champion_icon_url"`
		} `json:"participants"`
	}](t, rec)
	require.Len(t, m.Participants, 10)
	faker := m.Participants[2]
	assert.Equal(t, "Faker", faker.Player)
	assert.Equal(t, "16.00", faker.KDA)
	assert.Equal(t, "14.1k", faker.GoldLabel)
	assert.Contains(t, faker.ChampionIcon, "Ahri.png")

	rec = do(t, r, http.MethodGet, "/matches/NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchRecordsRecent(t *testing.T) {
	r, _ := newTestRouter(t)

	type recentBody struct {
		Recent []string `json:"recent"`
	}

	rec := do(t, r, http.MethodGet, "/search?q=faker&client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[struct {
		Players []struct {
			RiotID string `json:"riot_id"`
		} `json:"players"`
		Recent []string `json:"recent"`
	}](t, rec)
	require.Len(t, res.Players, 1)
	assert.Equal(t, "Faker#KR1", res.Players[0].RiotID)
	assert.Equal(t, []string{"faker"}, res.Recent)

	do(t, r, http.MethodGet, "/search?q=Ahri&client=abc", "")
	rec = do(t, r, http.MethodGet, "/recent?client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Ahri", "faker"}, decode[recentBody](t, rec).Recent)

	rec = do(t, r, http.MethodDelete, "/recent/faker?client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Ahri"}, decode[recentBody](t, rec).Recent)

	rec = do(t, r, http.MethodDelete, "/recent?client=abc", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, r, http.MethodGet, "/recent?client=abc", "")
	assert.Empty(t, decode[recentBody](t, rec).Recent)

	rec = do(t, r, http.MethodGet, "/recent", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/search?q=%20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendations(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/recommendations", `{"enemies":["Yasuo","zed"],"allies":[],"role":"MID"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[struct {
		Suggestions []struct {
			Champion struct {
				Name string `json:"name"`
			} `json:"champion"`
			Score   int      `json:"score"`
			Reasons []string `json:"reasons"`
			Type    string   `json:"type"`
		} `json:"suggestions"`
	}](t, rec)
	require.NotEmpty(t, got.Suggestions)
	assert.LessOrEqual(t, len(got.Suggestions), 3)
	assert.Equal(t, "Malzahar", got.Suggestions[0].Champion.Name)
	assert.Contains(t, got.Suggestions[0].Reasons, "multi-counter")

	rec = do(t, r, http.MethodPost, "/recommendations", `{"enemies":[],"allies":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPost, "/recommendations", `{"role":"wizard"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/recommendations", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLobby(t *testing.T) {
	r, h := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/lobbies", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	code := decode[struct {
		Code string `json:"code"`
	}](t, rec).Code
	require.Len(t, code, 6)

	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- hub.GetLobby{Code: code, Reply: reply}
	assert.NotNil(t, <-reply)
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z0-9]{6}$`, code)
}

func TestLobbyRoutes_HubStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := hub.NewHub(ctx, nil, nil)
	cancel()
	<-h.Done()

	r := SetupRoutes(Deps{Hub: h, Catalog: catalog.New(), Recent: recent.NewMemoryStore(recent.DefaultLimit)})

	cases := []struct {
		name   string
		method string
		target string
	}{
		{"create lobby", http.MethodPost, "/lobbies"},
		{"websocket", http.MethodGet, "/ws?code=ABCDEF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			done := make(chan *httptest.ResponseRecorder, 1)
			go func() { done <- do(t, r, tc.method, tc.target, "") }()
			select {
			case rec := <-done:
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			case <-time.After(2 * time.Second):
				t.Fatalf("%s %s hung after the hub stopped", tc.method, tc.target)
			}
		})
	}
}

func TestRemoveRecent_LiteralPercent(t *testing.T) {
	r, _ := newTestRouter(t)

	type recentBody struct {
		Recent []string `json:"recent"`
	}

	rec := do(t, r, http.MethodGet, "/search?q=100%2525&client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, r, http.MethodGet, "/search?q=ahri&client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/recent?client=abc", "")
	require.Equal(t, []string{"ahri", "100%25"}, decode[recentBody](t, rec).Recent)

	// the stored entry is the literal text "100%25"
	rec = do(t, r, http.MethodDelete, "/recent/100%2525?client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ahri"}, decode[recentBody](t, rec).Recent)

	rec = do(t, r, http.MethodGet, "/search?q=a%2Fb&client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, r, http.MethodDelete, "/recent/a%2Fb?client=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ahri"}, decode[recentBody](t, rec).Recent)
}
