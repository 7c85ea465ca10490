package catalog

var players = []Player{
	{
		Name: "Faker", Tag: "KR1", Region: "KR", Level: 742, IconID: 6,
		Ranks: []RankEntry{
			{Queue: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Division: "I", LP: 1204, Wins: 312, Losses: 241},
			{Queue: "RANKED_FLEX_SR", Tier: "MASTER", Division: "I", LP: 87, Wins: 21, Losses: 14},
		},
	},
	{
		Name: "Caps", Tag: "EUW", Region: "EUW", Level: 611, IconID: 4658,
		Ranks: []RankEntry{
			{Queue: "RANKED_SOLO_5x5", Tier: "GRANDMASTER", Division: "I", LP: 612, Wins: 203, Losses: 170},
		},
	},
	{
		Name: "Doublelift", Tag: "NA1", Region: "NA", Level: 508, IconID: 4025,
		Ranks: []RankEntry{
			{Queue: "RANKED_SOLO_5x5", Tier: "DIAMOND", Division: "II", LP: 45, Wins: 98, Losses: 91},
			{Queue: "RANKED_FLEX_SR", Tier: "PLATINUM", Division: "IV", LP: 12, Wins: 8, Losses: 11},
		},
	},
	{
		Name: "Rekkles", Tag: "EUW", Region: "EUW", Level: 433, IconID: 3543,
		Ranks: []RankEntry{},
	},
}
