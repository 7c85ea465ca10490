package catalog

import (
	"fmt"
	"time"
)

// PatchVersion is the Data Dragon version used for every CDN asset URL.
const PatchVersion = "14.10.1"

const (
	championIconURL = "https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s.png"
	itemIconURL     = "https://ddragon.leagueoflegends.com/cdn/%s/img/item/%d.png"
	profileIconURL  = "https://ddragon.leagueoflegends.com/cdn/%s/img/profileicon/%d.png"
)

type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
)

var Roles = []Role{RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport:
		return Role(s), true
	case "bot", "bottom":
		return RoleADC, true
	case "middle":
		return RoleMid, true
	case "utility":
		return RoleSupport, true
	}
	return "", false
}

type Tier string

const (
	TierSPlus Tier = "S+"
	TierS     Tier = "S"
	TierA     Tier = "A"
	TierB     Tier = "B"
	TierC     Tier = "C"
	TierD     Tier = "D"
)

var Tiers = []Tier{TierSPlus, TierS, TierA, TierB, TierC, TierD}

// Rank orders tiers for sorting, lower is stronger. Unknown tiers sort last.
func (t Tier) Rank() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return len(Tiers)
}

type Build struct {
	Starting []int `json:"starting"`
	Core     []int `json:"core"`
	Boots    int   `json:"boots"`
}

type Runes struct {
	Primary   string   `json:"primary"`
	Keystone  string   `json:"keystone"`
	Secondary string   `json:"secondary"`
	Minor     []string `json:"minor"`
}

// ProBuild is an example build played by a professional on this champion.
type ProBuild struct {
	Player  string `json:"player"`
	Team    string `json:"team"`
	Region  string `json:"region"`
	Items   []int  `json:"items"`
	Kills   int    `json:"kills"`
	Deaths  int    `json:"deaths"`
	Assists int    `json:"assists"`
	Win     bool   `json:"win"`
}

type Champion struct {
	ID       string     `json:"id"`
	Key      int        `json:"key"`
	Name     string     `json:"name"`
	Title    string     `json:"title"`
	Roles    []Role     `json:"roles"`
	Tier     Tier       `json:"tier"`
	WinRate  float64    `json:"win_rate"`
	PickRate float64    `json:"pick_rate"`
	BanRate  float64    `json:"ban_rate"`
	Build    Build      `json:"build"`
	Runes    Runes      `json:"runes"`
	Spells   []string   `json:"spells"`
	Pros     []ProBuild `json:"pro_builds"`
	// Counters lists champions that beat this one in lane.
	Counters  []string `json:"counters"`
	Synergies []string `json:"synergies"`
}

func (c Champion) IconURL() string {
	return fmt.Sprintf(championIconURL, PatchVersion, c.ID)
}

func (c Champion) PlaysRole(r Role) bool {
	for _, role := range c.Roles {
		if role == r {
			return true
		}
	}
	return false
}

func ItemIconURL(id int) string {
	return fmt.Sprintf(itemIconURL, PatchVersion, id)
}

type Team string

const (
	TeamBlue Team = "blue"
	TeamRed  Team = "red"
)

type Participant struct {
	Player   string `json:"player"`
	Champion string `json:"champion"`
	Team     Team   `json:"team"`
	Role     Role   `json:"role"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Assists  int    `json:"assists"`
	CS       int    `json:"cs"`
	Gold     int    `json:"gold"`
	Items    []int  `json:"items"`
	Win      bool   `json:"win"`
}

type Objectives struct {
	Towers  int `json:"towers"`
	Dragons int `json:"dragons"`
	Barons  int `json:"barons"`
	Heralds int `json:"heralds"`
}

type Match struct {
	ID           string              `json:"id"`
	Queue        string              `json:"queue"`
	StartedAt    time.Time           `json:"started_at"`
	Duration     time.Duration       `json:"duration"`
	Participants []Participant       `json:"participants"`
	Objectives   map[Team]Objectives `json:"objectives"`
}

// Participant returns the named player's line in this match.
func (m Match) Participant(player string) (Participant, bool) {
	for _, p := range m.Participants {
		if equalName(p.Player, player) {
			return p, true
		}
	}
	return Participant{}, false
}

type RankEntry struct {
	Queue    string `json:"queue"`
	Tier     string `json:"tier"`
	Division string `json:"division"`
	LP       int    `json:"lp"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

type Player struct {
	Name   string      `json:"name"`
	Tag    string      `json:"tag"`
	Region string      `json:"region"`
	Level  int         `json:"level"`
	IconID int         `json:"icon_id"`
	Ranks  []RankEntry `json:"ranks"`
}

func (p Player) IconURL() string {
	return fmt.Sprintf(profileIconURL, PatchVersion, p.IconID)
}

// RiotID is the display form "Name#TAG".
func (p Player) RiotID() string {
	return p.Name + "#" + p.Tag
}
