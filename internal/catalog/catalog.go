// Package catalog holds the static champion, player and match fixtures and the
// read-only queries served over them.
package catalog

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var ErrChampionNotFound = errors.New("champion not found")
var ErrPlayerNotFound = errors.New("player not found")
var ErrMatchNotFound = errors.New("match not found")

type Catalog struct {
	champions []Champion
	players   []Player
	matches   []Match
}

// New returns a catalog over the compiled-in fixtures.
func New() *Catalog {
	return NewFrom(champions, players, matches)
}

func NewFrom(champs []Champion, ps []Player, ms []Match) *Catalog {
	return &Catalog{champions: champs, players: ps, matches: ms}
}

// Filter narrows a champion listing. Zero values match everything.
type Filter struct {
	Role  Role
	Tier  Tier
	Query string
}

func (c *Catalog) Champions(f Filter) []Champion {
	q := normalizeName(f.Query)
	return lo.Filter(c.champions, func(ch Champion, _ int) bool {
		if f.Role != "" && !ch.PlaysRole(f.Role) {
			return false
		}
		if f.Tier != "" && ch.Tier != f.Tier {
			return false
		}
		if q != "" && !strings.Contains(normalizeName(ch.Name), q) {
			return false
		}
		return true
	})
}

// Champion looks a champion up by display name or Data Dragon id, ignoring
// case, spaces and punctuation.
func (c *Catalog) Champion(name string) (Champion, error) {
	ch, ok := lo.Find(c.champions, func(ch Champion) bool {
		return equalName(ch.Name, name) || equalName(ch.ID, name)
	})
	if !ok {
		return Champion{}, ErrChampionNotFound
	}
	return ch, nil
}

// Resolve maps names to champions in order, skipping unknown ones.
func (c *Catalog) Resolve(names []string) []Champion {
	out := make([]Champion, 0, len(names))
	for _, name := range names {
		if ch, err := c.Champion(name); err == nil {
			out = append(out, ch)
		}
	}
	return out
}

type TierGroup struct {
	Tier      Tier       `json:"tier"`
	Champions []Champion `json:"champions"`
}

// TierList groups champions by tier, strongest first; champions inside a tier
// are ordered by win rate.
func (c *Catalog) TierList(role Role) []TierGroup {
	byTier := lo.GroupBy(c.Champions(Filter{Role: role}), func(ch Champion) Tier { return ch.Tier })

	groups := make([]TierGroup, 0, len(byTier))
	for tier, champs := range byTier {
		slices.SortStableFunc(champs, func(a, b Champion) int {
			return cmp.Compare(b.WinRate, a.WinRate)
		})
		groups = append(groups, TierGroup{Tier: tier, Champions: champs})
	}
	slices.SortFunc(groups, func(a, b TierGroup) int {
		return cmp.Compare(a.Tier.Rank(), b.Tier.Rank())
	})
	return groups
}

// Player accepts either "Name" or "Name#TAG".
func (c *Catalog) Player(riotID string) (Player, error) {
	name, tag, hasTag := strings.Cut(riotID, "#")
	p, ok := lo.Find(c.players, func(p Player) bool {
		if !equalName(p.Name, name) {
			return false
		}
		return !hasTag || strings.EqualFold(p.Tag, tag)
	})
	if !ok {
		return Player{}, ErrPlayerNotFound
	}
	return p, nil
}

// Matches returns up to limit of the player's matches, newest first. A limit
// <= 0 returns all of them.
func (c *Catalog) Matches(riotID string, limit int) ([]Match, error) {
	p, err := c.Player(riotID)
	if err != nil {
		return nil, err
	}
	history := lo.Filter(c.matches, func(m Match, _ int) bool {
		_, ok := m.Participant(p.Name)
		return ok
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

func (c *Catalog) Match(id string) (Match, error) {
	m, ok := lo.Find(c.matches, func(m Match) bool { return strings.EqualFold(m.ID, id) })
	if !ok {
		return Match{}, ErrMatchNotFound
	}
	return m, nil
}

type SearchResult struct {
	Players   []Player   `json:"players"`
	Champions []Champion `json:"champions"`
}

// Search does a substring match over player names and champion names.
func (c *Catalog) Search(query string) SearchResult {
	name, _, _ := strings.Cut(query, "#")
	q := normalizeName(name)
	if q == "" {
		return SearchResult{Players: []Player{}, Champions: []Champion{}}
	}
	return SearchResult{
		Players: lo.Filter(c.players, func(p Player, _ int) bool {
			return strings.Contains(normalizeName(p.Name), q)
		}),
		Champions: c.Champions(Filter{Query: name}),
	}
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '\'', '.', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func equalName(a, b string) bool {
	return normalizeName(a) == normalizeName(b)
}
