// Package recommend ranks champion-select picks against the current enemy and
// ally selections.
package recommend

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
)

// Point values. Kept as tuned, not derived.
const (
	counterBonus      = 20
	counteredPenalty  = 15
	synergyBonus      = 18
	multiCounterBonus = 25
	multiSynergyBonus = 20

	winRateHigh      = 52.0
	winRateHighBonus = 5
	winRateEven      = 50.0
	winRateEvenBonus = 2

	maxResults     = 6
	maxRoleResults = 3
	maxMetaPicks   = 3
)

var tierBonus = map[catalog.Tier]int{
	catalog.TierSPlus: 10,
	catalog.TierS:     7,
	catalog.TierA:     4,
}

const (
	ReasonMetaPick     = "meta pick"
	ReasonMultiCounter = "multi-counter"
	ReasonTeamSynergy  = "team synergy"

	counterPrefix = "counters "
	synergyPrefix = "synergy with "
)

type ReasonType string

const (
	TypeCounter ReasonType = "counter"
	TypeSynergy ReasonType = "synergy"
	TypeBoth    ReasonType = "both"
	TypeMeta    ReasonType = "meta"
)

type Suggestion struct {
	Champion catalog.Champion `json:"champion"`
	Score    int              `json:"score"`
	Reasons  []string         `json:"reasons"`
	Type     ReasonType       `json:"type"`
}

// Suggest scores every pool champion that is not already selected and returns
// the best ones, highest score first. Equal scores keep pool order. With no
// enemies and no allies it falls back to up to three S+/S champions.
func Suggest(pool, enemies, allies []catalog.Champion, role catalog.Role) []Suggestion {
	taken := lo.SliceToMap(append(slices.Clone(enemies), allies...), func(c catalog.Champion) (string, bool) {
		return key(c.Name), true
	})
	candidates := lo.Filter(pool, func(c catalog.Champion, _ int) bool {
		if taken[key(c.Name)] {
			return false
		}
		return role == "" || c.PlaysRole(role)
	})

	if len(enemies) == 0 && len(allies) == 0 {
		return metaPicks(candidates)
	}

	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		s := score(c, enemies, allies)
		if s.Score <= 0 {
			continue
		}
		out = append(out, s)
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})

	limit := maxResults
	if role != "" {
		limit = maxRoleResults
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func score(c catalog.Champion, enemies, allies []catalog.Champion) Suggestion {
	s := Suggestion{Champion: c, Reasons: []string{}}

	countered := 0
	for _, e := range enemies {
		if names(e.Counters, c.Name) {
			s.Score += counterBonus
			s.Reasons = append(s.Reasons, counterPrefix+e.Name)
			countered++
		}
		if names(c.Counters, e.Name) {
			s.Score -= counteredPenalty
		}
	}

	synergies := 0
	for _, a := range allies {
		if names(a.Synergies, c.Name) || names(c.Synergies, a.Name) {
			s.Score += synergyBonus
			s.Reasons = append(s.Reasons, synergyPrefix+a.Name)
			synergies++
		}
	}

	if countered >= 2 {
		s.Score += multiCounterBonus
		s.Reasons = append(s.Reasons, ReasonMultiCounter)
	}
	if synergies >= 2 {
		s.Score += multiSynergyBonus
		s.Reasons = append(s.Reasons, ReasonTeamSynergy)
	}

	s.Score += tierBonus[c.Tier] + winRateBonus(c.WinRate)
	s.Type = classify(s.Reasons)
	return s
}

func metaPicks(candidates []catalog.Champion) []Suggestion {
	out := []Suggestion{}
	for _, c := range candidates {
		if c.Tier != catalog.TierSPlus && c.Tier != catalog.TierS {
			continue
		}
		out = append(out, Suggestion{
			Champion: c,
			Score:    tierBonus[c.Tier] + winRateBonus(c.WinRate),
			Reasons:  []string{ReasonMetaPick},
			Type:     TypeMeta,
		})
		if len(out) == maxMetaPicks {
			break
		}
	}
	return out
}

func winRateBonus(wr float64) int {
	switch {
	case wr >= winRateHigh:
		return winRateHighBonus
	case wr >= winRateEven:
		return winRateEvenBonus
	}
	return 0
}

func classify(reasons []string) ReasonType {
	counter := lo.SomeBy(reasons, func(r string) bool { return strings.HasPrefix(r, counterPrefix) })
	synergy := lo.SomeBy(reasons, func(r string) bool { return strings.HasPrefix(r, synergyPrefix) })
	switch {
	case counter && synergy:
		return TypeBoth
	case counter:
		return TypeCounter
	case synergy:
		return TypeSynergy
	}
	return TypeMeta
}

func names(list []string, name string) bool {
	return lo.ContainsBy(list, func(n string) bool { return key(n) == key(name) })
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
