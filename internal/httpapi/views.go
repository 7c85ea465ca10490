package httpapi

import (
	"time"

	"github.com/samber/lo"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/format"
)

const soloQueue = "RANKED_SOLO_5x5"

type championView struct {
	catalog.Champion
	IconURL       string   `json:"icon_url"`
	ItemURLs      []string `json:"core_item_icon_urls"`
	WinRateLabel  string   `json:"win_rate_label"`
	PickRateLabel string   `json:"pick_rate_label"`
	BanRateLabel  string   `json:"ban_rate_label"`
}

func newChampionView(c catalog.Champion) championView {
	return championView{
		Champion:      c,
		IconURL:       c.IconURL(),
		ItemURLs:      lo.Map(c.Build.Core, func(id int, _ int) string { return catalog.ItemIconURL(id) }),
		WinRateLabel:  format.Percent(c.WinRate),
		PickRateLabel: format.Percent(c.PickRate),
		BanRateLabel:  format.Percent(c.BanRate),
	}
}

func championViews(cs []catalog.Champion) []championView {
	return lo.Map(cs, func(c catalog.Champion, _ int) championView { return newChampionView(c) })
}

type tierGroupView struct {
	Tier      catalog.Tier   `json:"tier"`
	Champions []championView `json:"champions"`
}

type rankView struct {
	catalog.RankEntry
	Label   string `json:"label"`
	Short   string `json:"short"`
	WinRate string `json:"win_rate"`
	Games   int    `json:"games"`
}

type playerView struct {
	catalog.Player
	RiotID  string     `json:"riot_id"`
	IconURL string     `json:"icon_url"`
	Rank    string     `json:"rank"`
	Ranks   []rankView `json:"ranks"`
}

func newPlayerView(p catalog.Player) playerView {
	v := playerView{
		Player:  p,
		RiotID:  p.RiotID(),
		IconURL: p.IconURL(),
		Rank:    format.Unranked,
		Ranks: lo.Map(p.Ranks, func(r catalog.RankEntry, _ int) rankView {
			return rankView{
				RankEntry: r,
				Label:     format.RankLabel(r.Tier, r.Division, r.LP),
				Short:     format.ShortRank(r.Tier, r.Division),
				WinRate:   format.Percent(format.WinRate(r.Wins, r.Losses)),
				Games:     r.Wins + r.Losses,
			}
		}),
	}
	if solo, ok := lo.Find(v.Ranks, func(r rankView) bool { return r.Queue == soloQueue }); ok {
		v.Rank = solo.Label
	}
	return v
}

type participantView struct {
	catalog.Participant
	KDA          string `json:"kda"`
	ChampionIcon string `json:"champion_icon_url,omitempty"`
	GoldLabel    string `json:"gold_label"`
}

type matchView struct {
	catalog.Match
	Participants  []participantView `json:"participants"`
	DurationLabel string            `json:"duration_label"`
	Played        string            `json:"played"`
}

func newMatchView(cat *catalog.Catalog, m catalog.Match, now time.Time) matchView {
	return matchView{
		Match: m,
		Participants: lo.Map(m.Participants, func(p catalog.Participant, _ int) participantView {
			v := participantView{
				Participant: p,
				KDA:         format.FormatKDA(p.Kills, p.Deaths, p.Assists),
				GoldLabel:   format.Compact(int64(p.Gold)),
			}
			if ch, err := cat.Champion(p.Champion); err == nil {
				v.ChampionIcon = ch.IconURL()
			}
			return v
		}),
		DurationLabel: format.Duration(m.Duration),
		Played:        format.Ago(m.StartedAt, now),
	}
}

type summaryView struct {
	catalog.Summary
	WinRate string `json:"win_rate"`
	KDA     string `json:"kda"`
}

type historyView struct {
	Player  playerView  `json:"player"`
	Summary summaryView `json:"summary"`
	Matches []matchView `json:"matches"`
}

func newSummaryView(s catalog.Summary) summaryView {
	return summaryView{
		Summary: s,
		WinRate: format.Percent(format.WinRate(s.Wins, s.Losses)),
		KDA:     format.FormatKDA(s.Kills, s.Deaths, s.Assists),
	}
}
