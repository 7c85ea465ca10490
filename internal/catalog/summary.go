package catalog

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

type ChampionPlays struct {
	Champion string `json:"champion"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
}

// Summary aggregates one player's lines over a match history.
type Summary struct {
	Games      int             `json:"games"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	Kills      int             `json:"kills"`
	Deaths     int             `json:"deaths"`
	Assists    int             `json:"assists"`
	MostPlayed []ChampionPlays `json:"most_played"`
}

func Summarize(player string, history []Match) Summary {
	var s Summary
	plays := map[string]*ChampionPlays{}
	var order []string

	for _, m := range history {
		p, ok := m.Participant(player)
		if !ok {
			continue
		}
		s.Games++
		if p.Win {
			s.Wins++
		}
		s.Kills += p.Kills
		s.Deaths += p.Deaths
		s.Assists += p.Assists

		cp, seen := plays[p.Champion]
		if !seen {
			cp = &ChampionPlays{Champion: p.Champion}
			plays[p.Champion] = cp
			order = append(order, p.Champion)
		}
		cp.Games++
		if p.Win {
			cp.Wins++
		}
	}
	s.Losses = s.Games - s.Wins

	s.MostPlayed = lo.Map(order, func(name string, _ int) ChampionPlays { return *plays[name] })
	slices.SortStableFunc(s.MostPlayed, func(a, b ChampionPlays) int {
		return cmp.Compare(b.Games, a.Games)
	})
	return s
}
