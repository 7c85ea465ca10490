// Package format renders stats for display: ratios, percentages, counts,
// durations and rank labels.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const Perfect = "Perfect"

// KDA is (kills + assists) / deaths. With zero deaths the ratio is undefined
// and ok is false.
func KDA(kills, deaths, assists int) (ratio float64, ok bool) {
	if deaths == 0 {
		return 0, false
	}
	return float64(kills+assists) / float64(deaths), true
}

func FormatKDA(kills, deaths, assists int) string {
	ratio, ok := KDA(kills, deaths, assists)
	if !ok {
		return Perfect
	}
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}

// WinRate returns the win percentage, 0 when no games were played.
func WinRate(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0
	}
	return float64(wins) * 100 / float64(games)
}

// Percent formats a percentage with one decimal, dropping a trailing ".0".
func Percent(v float64) string {
	return trimFloat(v) + "%"
}

func Number(n int64) string {
	return humanize.Comma(n)
}

// Compact abbreviates large counts: 950, 15.8k, 1.2M.
func Compact(n int64) string {
	abs := math.Abs(float64(n))
	switch {
	// 999,950 rounds to 1000.0k, which is 1M.
	case abs >= 1_000_000 || math.Round(abs/100) >= 10_000:
		return trimFloat(float64(n)/1_000_000) + "M"
	case abs >= 1_000:
		return trimFloat(float64(n)/1_000) + "k"
	}
	return strconv.FormatInt(n, 10)
}

// Duration renders a game length as m:ss, or h:mm:ss past an hour.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

var apexTiers = map[string]string{
	"MASTER":      "M",
	"GRANDMASTER": "GM",
	"CHALLENGER":  "C",
}

var tierShort = map[string]string{
	"IRON":     "I",
	"BRONZE":   "B",
	"SILVER":   "S",
	"GOLD":     "G",
	"PLATINUM": "P",
	"EMERALD":  "E",
	"DIAMOND":  "D",
}

var divisions = map[string]int{"I": 1, "II": 2, "III": 3, "IV": 4}

const Unranked = "Unranked"

// TierLabel turns "GRANDMASTER" into "Grandmaster".
func TierLabel(tier string) string {
	tier = strings.TrimSpace(tier)
	if tier == "" {
		return Unranked
	}
	return strings.ToUpper(tier[:1]) + strings.ToLower(tier[1:])
}

// RankLabel is "Gold II" for divisional tiers and "Master 87 LP" for apex
// tiers, which have no divisions.
func RankLabel(tier, division string, lp int) string {
	if strings.TrimSpace(tier) == "" {
		return Unranked
	}
	if _, apex := apexTiers[strings.ToUpper(tier)]; apex {
		return fmt.Sprintf("%s %s LP", TierLabel(tier), humanize.Comma(int64(lp)))
	}
	return TierLabel(tier) + " " + strings.ToUpper(division)
}

// ShortRank is the compact badge form: "G2", "D4", "GM".
func ShortRank(tier, division string) string {
	t := strings.ToUpper(strings.TrimSpace(tier))
	if short, ok := apexTiers[t]; ok {
		return short
	}
	short, ok := tierShort[t]
	if !ok {
		return "-"
	}
	if n, ok := divisions[strings.ToUpper(division)]; ok {
		return short + strconv.Itoa(n)
	}
	return short
}
