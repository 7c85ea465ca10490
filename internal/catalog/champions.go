package catalog

// Item ids follow Data Dragon.
const (
	itemDoransBlade    = 1055
	itemDoransRing     = 1056
	itemDoransShield   = 1054
	itemWorldAtlas     = 3865
	itemJungleScorch   = 1101
	itemBerserkers     = 3006
	itemSorcerers      = 3020
	itemPlated         = 3047
	itemMercs          = 3111
	itemIonian         = 3158
	itemMobility       = 3117
	itemStridebreaker  = 6631
	itemSteraks        = 3053
	itemDeadMans       = 3742
	itemSunfire        = 3068
	itemThornmail      = 3075
	itemFrozenHeart    = 3110
	itemEclipse        = 6692
	itemBlackCleaver   = 3071
	itemLudens         = 6655
	itemShadowflame    = 4645
	itemRabadons       = 3089
	itemLiandry        = 6653
	itemMalignance     = 3118
	itemKrakenSlayer   = 6672
	itemInfinityEdge   = 3031
	itemRunaans        = 3085
	itemTrinity        = 3078
	itemManamune       = 3004
	itemGaleforce      = 6671
	itemCollector      = 6676
	itemLocket         = 3190
	itemZekes          = 3050
	itemMoonstone      = 6617
	itemRedemption     = 3107
	itemYoumuus        = 3142
	itemEdgeOfNight    = 3814
	itemHeartsteel     = 3084
	itemTitanic        = 3748
	itemBotrk          = 3153
	itemRylais         = 3116
	itemSeraphs        = 3040
)

var champions = []Champion{
	{
		ID: "Darius", Key: 122, Name: "Darius", Title: "the Hand of Noxus",
		Roles: []Role{RoleTop}, Tier: TierS, WinRate: 51.2, PickRate: 8.4, BanRate: 14.1,
		Build:  Build{Starting: []int{itemDoransShield}, Core: []int{itemStridebreaker, itemSteraks, itemDeadMans}, Boots: itemPlated},
		Runes:  Runes{Primary: "Precision", Keystone: "Conqueror", Secondary: "Resolve", Minor: []string{"Triumph", "Legend: Tenacity", "Last Stand", "Second Wind", "Unflinching"}},
		Spells: []string{"Flash", "Ghost"},
		Pros: []ProBuild{
			{Player: "Kiin", Team: "Gen.G", Region: "KR", Items: []int{itemStridebreaker, itemSteraks, itemPlated, itemDeadMans}, Kills: 6, Deaths: 2, Assists: 4, Win: true},
		},
		Counters:  []string{"Teemo", "Fiora", "Malphite"},
		Synergies: []string{"Amumu", "Leona"},
	},
	{
		ID: "Garen", Key: 86, Name: "Garen", Title: "The Might of Demacia",
		Roles: []Role{RoleTop}, Tier: TierA, WinRate: 52.4, PickRate: 7.9, BanRate: 3.2,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemStridebreaker, itemDeadMans, itemSteraks}, Boots: itemBerserkers},
		Runes:  Runes{Primary: "Precision", Keystone: "Conqueror", Secondary: "Resolve", Minor: []string{"Triumph", "Legend: Alacrity", "Last Stand", "Conditioning", "Overgrowth"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Teemo", "Darius"},
		Synergies: []string{"Lux"},
	},
	{
		ID: "Malphite", Key: 54, Name: "Malphite", Title: "Shard of the Monolith",
		Roles: []Role{RoleTop, RoleSupport}, Tier: TierSPlus, WinRate: 52.8, PickRate: 9.6, BanRate: 12.7,
		Build:  Build{Starting: []int{itemDoransRing}, Core: []int{itemSunfire, itemThornmail, itemFrozenHeart}, Boots: itemPlated},
		Runes:  Runes{Primary: "Sorcery", Keystone: "Phase Rush", Secondary: "Resolve", Minor: []string{"Manaflow Band", "Transcendence", "Scorch", "Second Wind", "Overgrowth"}},
		Spells: []string{"Flash", "Teleport"},
		Pros: []ProBuild{
			{Player: "Zeus", Team: "T1", Region: "KR", Items: []int{itemSunfire, itemThornmail, itemPlated}, Kills: 2, Deaths: 3, Assists: 14, Win: true},
		},
		Counters:  []string{"Sett", "Fiora"},
		Synergies: []string{"Yasuo", "Amumu", "Ahri"},
	},
	{
		ID: "Fiora", Key: 114, Name: "Fiora", Title: "the Grand Duelist",
		Roles: []Role{RoleTop}, Tier: TierA, WinRate: 50.6, PickRate: 6.1, BanRate: 6.5,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemTitanic, itemSteraks, itemBlackCleaver}, Boots: itemPlated},
		Runes:  Runes{Primary: "Precision", Keystone: "Grasp of the Undying", Secondary: "Resolve", Minor: []string{"Demolish", "Second Wind", "Overgrowth", "Triumph", "Legend: Alacrity"}},
		Spells: []string{"Flash", "Teleport"},
		Counters:  []string{"Malphite", "Teemo"},
		Synergies: []string{"Lulu"},
	},
	{
		ID: "Teemo", Key: 17, Name: "Teemo", Title: "the Swift Scout",
		Roles: []Role{RoleTop}, Tier: TierB, WinRate: 49.8, PickRate: 5.2, BanRate: 9.8,
		Build:  Build{Starting: []int{itemDoransRing}, Core: []int{itemLiandry, itemMalignance, itemRylais}, Boots: itemSorcerers},
		Runes:  Runes{Primary: "Precision", Keystone: "Press the Attack", Secondary: "Sorcery", Minor: []string{"Presence of Mind", "Legend: Alacrity", "Last Stand", "Manaflow Band", "Scorch"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Sett", "Malphite"},
		Synergies: []string{"Amumu"},
	},
	{
		ID: "Sett", Key: 875, Name: "Sett", Title: "the Boss",
		Roles: []Role{RoleTop, RoleSupport}, Tier: TierS, WinRate: 51.0, PickRate: 7.3, BanRate: 4.4,
		Build:  Build{Starting: []int{itemDoransShield}, Core: []int{itemStridebreaker, itemSteraks, itemBlackCleaver}, Boots: itemPlated},
		Runes:  Runes{Primary: "Precision", Keystone: "Conqueror", Secondary: "Resolve", Minor: []string{"Triumph", "Legend: Tenacity", "Last Stand", "Bone Plating", "Unflinching"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Fiora", "Darius"},
		Synergies: []string{"Yasuo", "Jinx"},
	},
	{
		ID: "LeeSin", Key: 64, Name: "Lee Sin", Title: "the Blind Monk",
		Roles: []Role{RoleJungle}, Tier: TierA, WinRate: 48.9, PickRate: 14.2, BanRate: 10.3,
		Build:  Build{Starting: []int{itemJungleScorch}, Core: []int{itemEclipse, itemBlackCleaver, itemSteraks}, Boots: itemPlated},
		Runes:  Runes{Primary: "Precision", Keystone: "Conqueror", Secondary: "Domination", Minor: []string{"Triumph", "Legend: Alacrity", "Last Stand", "Sudden Impact", "Treasure Hunter"}},
		Spells: []string{"Flash", "Smite"},
		Pros: []ProBuild{
			{Player: "Oner", Team: "T1", Region: "KR", Items: []int{itemEclipse, itemBlackCleaver, itemPlated}, Kills: 4, Deaths: 1, Assists: 11, Win: true},
			{Player: "Canyon", Team: "Gen.G", Region: "KR", Items: []int{itemEclipse, itemSteraks, itemMercs}, Kills: 1, Deaths: 4, Assists: 5, Win: false},
		},
		Counters:  []string{"Amumu", "Vi"},
		Synergies: []string{"Yasuo", "Ahri"},
	},
	{
		ID: "Amumu", Key: 32, Name: "Amumu", Title: "the Sad Mummy",
		Roles: []Role{RoleJungle, RoleSupport}, Tier: TierS, WinRate: 52.1, PickRate: 6.8, BanRate: 5.5,
		Build:  Build{Starting: []int{itemJungleScorch}, Core: []int{itemLiandry, itemSunfire, itemThornmail}, Boots: itemMercs},
		Runes:  Runes{Primary: "Resolve", Keystone: "Aftershock", Secondary: "Sorcery", Minor: []string{"Demolish", "Conditioning", "Overgrowth", "Celerity", "Waterwalking"}},
		Spells: []string{"Flash", "Smite"},
		Counters:  []string{"Kha'Zix", "Lee Sin"},
		Synergies: []string{"Malphite", "Jinx", "Yasuo"},
	},
	{
		ID: "Vi", Key: 254, Name: "Vi", Title: "the Piltover Enforcer",
		Roles: []Role{RoleJungle}, Tier: TierA, WinRate: 51.3, PickRate: 9.1, BanRate: 2.6,
		Build:  Build{Starting: []int{itemJungleScorch}, Core: []int{itemEclipse, itemBlackCleaver, itemSteraks}, Boots: itemPlated},
		Runes:  Runes{Primary: "Precision", Keystone: "Conqueror", Secondary: "Inspiration", Minor: []string{"Triumph", "Legend: Alacrity", "Last Stand", "Magical Footwear", "Cosmic Insight"}},
		Spells: []string{"Flash", "Smite"},
		Counters:  []string{"Kha'Zix"},
		Synergies: []string{"Ahri", "Yasuo"},
	},
	{
		ID: "Khazix", Key: 121, Name: "Kha'Zix", Title: "the Voidreaver",
		Roles: []Role{RoleJungle}, Tier: TierS, WinRate: 50.8, PickRate: 10.4, BanRate: 8.9,
		Build:  Build{Starting: []int{itemJungleScorch}, Core: []int{itemYoumuus, itemEdgeOfNight, itemBlackCleaver}, Boots: itemIonian},
		Runes:  Runes{Primary: "Domination", Keystone: "Dark Harvest", Secondary: "Precision", Minor: []string{"Sudden Impact", "Eyeball Collection", "Treasure Hunter", "Triumph", "Coup de Grace"}},
		Spells: []string{"Flash", "Smite"},
		Counters:  []string{"Lee Sin", "Amumu"},
		Synergies: []string{"Zed"},
	},
	{
		ID: "Ahri", Key: 103, Name: "Ahri", Title: "the Nine-Tailed Fox",
		Roles: []Role{RoleMid}, Tier: TierSPlus, WinRate: 51.9, PickRate: 11.3, BanRate: 6.2,
		Build:  Build{Starting: []int{itemDoransRing}, Core: []int{itemMalignance, itemShadowflame, itemRabadons}, Boots: itemSorcerers},
		Runes:  Runes{Primary: "Domination", Keystone: "Electrocute", Secondary: "Sorcery", Minor: []string{"Taste of Blood", "Eyeball Collection", "Ultimate Hunter", "Manaflow Band", "Transcendence"}},
		Spells: []string{"Flash", "Ignite"},
		Pros: []ProBuild{
			{Player: "Faker", Team: "T1", Region: "KR", Items: []int{itemMalignance, itemShadowflame, itemSorcerers}, Kills: 7, Deaths: 1, Assists: 9, Win: true},
			{Player: "Chovy", Team: "Gen.G", Region: "KR", Items: []int{itemLudens, itemShadowflame, itemRabadons}, Kills: 5, Deaths: 0, Assists: 6, Win: true},
		},
		Counters:  []string{"Yasuo", "Malzahar"},
		Synergies: []string{"Lee Sin", "Vi", "Malphite"},
	},
	{
		ID: "Yasuo", Key: 157, Name: "Yasuo", Title: "the Unforgiven",
		Roles: []Role{RoleMid, RoleTop}, Tier: TierB, WinRate: 49.4, PickRate: 15.6, BanRate: 18.2,
		Build:  Build{Starting: []int{itemDoransShield}, Core: []int{itemInfinityEdge, itemBotrk, itemDeadMans}, Boots: itemBerserkers},
		Runes:  Runes{Primary: "Precision", Keystone: "Lethal Tempo", Secondary: "Resolve", Minor: []string{"Triumph", "Legend: Alacrity", "Last Stand", "Second Wind", "Overgrowth"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Malzahar", "Garen", "Lux"},
		Synergies: []string{"Malphite", "Amumu", "Rakan", "Sett"},
	},
	{
		ID: "Zed", Key: 238, Name: "Zed", Title: "the Master of Shadows",
		Roles: []Role{RoleMid}, Tier: TierA, WinRate: 50.2, PickRate: 12.0, BanRate: 22.5,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemYoumuus, itemEdgeOfNight, itemBlackCleaver}, Boots: itemIonian},
		Runes:  Runes{Primary: "Domination", Keystone: "Electrocute", Secondary: "Precision", Minor: []string{"Sudden Impact", "Eyeball Collection", "Treasure Hunter", "Triumph", "Coup de Grace"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Malzahar", "Lux"},
		Synergies: []string{"Kha'Zix"},
	},
	{
		ID: "Lux", Key: 99, Name: "Lux", Title: "the Lady of Luminosity",
		Roles: []Role{RoleMid, RoleSupport}, Tier: TierS, WinRate: 51.5, PickRate: 10.7, BanRate: 3.9,
		Build:  Build{Starting: []int{itemDoransRing}, Core: []int{itemLudens, itemShadowflame, itemRabadons}, Boots: itemSorcerers},
		Runes:  Runes{Primary: "Sorcery", Keystone: "Arcane Comet", Secondary: "Inspiration", Minor: []string{"Manaflow Band", "Transcendence", "Scorch", "Biscuit Delivery", "Cosmic Insight"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Zed", "Kha'Zix"},
		Synergies: []string{"Leona", "Garen", "Ezreal"},
	},
	{
		ID: "Malzahar", Key: 90, Name: "Malzahar", Title: "the Prophet of the Void",
		Roles: []Role{RoleMid}, Tier: TierA, WinRate: 52.3, PickRate: 5.4, BanRate: 4.1,
		Build:  Build{Starting: []int{itemDoransRing}, Core: []int{itemLiandry, itemMalignance, itemRylais}, Boots: itemSorcerers},
		Runes:  Runes{Primary: "Sorcery", Keystone: "Arcane Comet", Secondary: "Inspiration", Minor: []string{"Manaflow Band", "Transcendence", "Scorch", "Biscuit Delivery", "Cosmic Insight"}},
		Spells: []string{"Flash", "Teleport"},
		Counters:  []string{"Ahri"},
		Synergies: []string{"Amumu"},
	},
	{
		ID: "Jinx", Key: 222, Name: "Jinx", Title: "the Loose Cannon",
		Roles: []Role{RoleADC}, Tier: TierS, WinRate: 51.4, PickRate: 17.8, BanRate: 7.7,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemKrakenSlayer, itemInfinityEdge, itemRunaans}, Boots: itemBerserkers},
		Runes:  Runes{Primary: "Precision", Keystone: "Lethal Tempo", Secondary: "Sorcery", Minor: []string{"Presence of Mind", "Legend: Bloodline", "Cut Down", "Absolute Focus", "Gathering Storm"}},
		Spells: []string{"Flash", "Heal"},
		Pros: []ProBuild{
			{Player: "Gumayusi", Team: "T1", Region: "KR", Items: []int{itemKrakenSlayer, itemInfinityEdge, itemBerserkers}, Kills: 9, Deaths: 2, Assists: 7, Win: true},
		},
		Counters:  []string{"Caitlyn", "Nautilus"},
		Synergies: []string{"Lulu", "Thresh", "Amumu"},
	},
	{
		ID: "Caitlyn", Key: 51, Name: "Caitlyn", Title: "the Sheriff of Piltover",
		Roles: []Role{RoleADC}, Tier: TierA, WinRate: 49.7, PickRate: 16.1, BanRate: 11.0,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemGaleforce, itemInfinityEdge, itemCollector}, Boots: itemBerserkers},
		Runes:  Runes{Primary: "Precision", Keystone: "Fleet Footwork", Secondary: "Inspiration", Minor: []string{"Absorb Life", "Legend: Bloodline", "Coup de Grace", "Magical Footwear", "Biscuit Delivery"}},
		Spells: []string{"Flash", "Heal"},
		Counters:  []string{"Leona", "Nautilus"},
		Synergies: []string{"Lux"},
	},
	{
		ID: "Ezreal", Key: 81, Name: "Ezreal", Title: "the Prodigal Explorer",
		Roles: []Role{RoleADC}, Tier: TierB, WinRate: 48.8, PickRate: 19.3, BanRate: 3.0,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemManamune, itemTrinity, itemSeraphs}, Boots: itemIonian},
		Runes:  Runes{Primary: "Precision", Keystone: "Conqueror", Secondary: "Inspiration", Minor: []string{"Presence of Mind", "Legend: Alacrity", "Cut Down", "Magical Footwear", "Biscuit Delivery"}},
		Spells: []string{"Flash", "Heal"},
		Counters:  []string{"Caitlyn", "Jinx"},
		Synergies: []string{"Lux", "Thresh"},
	},
	{
		ID: "Kaisa", Key: 145, Name: "Kai'Sa", Title: "Daughter of the Void",
		Roles: []Role{RoleADC}, Tier: TierSPlus, WinRate: 50.9, PickRate: 21.5, BanRate: 9.4,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemKrakenSlayer, itemRunaans, itemInfinityEdge}, Boots: itemBerserkers},
		Runes:  Runes{Primary: "Precision", Keystone: "Lethal Tempo", Secondary: "Domination", Minor: []string{"Presence of Mind", "Legend: Alacrity", "Cut Down", "Sudden Impact", "Treasure Hunter"}},
		Spells: []string{"Flash", "Heal"},
		Pros: []ProBuild{
			{Player: "Ruler", Team: "Gen.G", Region: "KR", Items: []int{itemKrakenSlayer, itemRunaans, itemBerserkers}, Kills: 8, Deaths: 3, Assists: 5, Win: true},
		},
		Counters:  []string{"Caitlyn"},
		Synergies: []string{"Nautilus", "Leona"},
	},
	{
		ID: "Xayah", Key: 498, Name: "Xayah", Title: "the Rebel",
		Roles: []Role{RoleADC}, Tier: TierA, WinRate: 50.4, PickRate: 8.9, BanRate: 2.2,
		Build:  Build{Starting: []int{itemDoransBlade}, Core: []int{itemGaleforce, itemInfinityEdge, itemCollector}, Boots: itemBerserkers},
		Runes:  Runes{Primary: "Precision", Keystone: "Lethal Tempo", Secondary: "Inspiration", Minor: []string{"Presence of Mind", "Legend: Bloodline", "Cut Down", "Magical Footwear", "Biscuit Delivery"}},
		Spells: []string{"Flash", "Heal"},
		Counters:  []string{"Caitlyn", "Leona"},
		Synergies: []string{"Rakan"},
	},
	{
		ID: "Thresh", Key: 412, Name: "Thresh", Title: "the Chain Warden",
		Roles: []Role{RoleSupport}, Tier: TierS, WinRate: 50.6, PickRate: 13.5, BanRate: 5.1,
		Build:  Build{Starting: []int{itemWorldAtlas}, Core: []int{itemLocket, itemZekes, itemFrozenHeart}, Boots: itemMobility},
		Runes:  Runes{Primary: "Resolve", Keystone: "Guardian", Secondary: "Inspiration", Minor: []string{"Font of Life", "Bone Plating", "Unflinching", "Hextech Flashtraption", "Cosmic Insight"}},
		Spells: []string{"Flash", "Ignite"},
		Pros: []ProBuild{
			{Player: "Keria", Team: "T1", Region: "KR", Items: []int{itemLocket, itemZekes, itemMobility}, Kills: 1, Deaths: 2, Assists: 18, Win: true},
		},
		Counters:  []string{"Lulu", "Leona"},
		Synergies: []string{"Jinx", "Ezreal"},
	},
	{
		ID: "Leona", Key: 89, Name: "Leona", Title: "the Radiant Dawn",
		Roles: []Role{RoleSupport}, Tier: TierSPlus, WinRate: 52.2, PickRate: 12.8, BanRate: 8.0,
		Build:  Build{Starting: []int{itemWorldAtlas}, Core: []int{itemLocket, itemZekes, itemThornmail}, Boots: itemPlated},
		Runes:  Runes{Primary: "Resolve", Keystone: "Aftershock", Secondary: "Inspiration", Minor: []string{"Font of Life", "Bone Plating", "Unflinching", "Hextech Flashtraption", "Cosmic Insight"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Thresh", "Lulu"},
		Synergies: []string{"Kai'Sa", "Lux", "Darius"},
	},
	{
		ID: "Lulu", Key: 117, Name: "Lulu", Title: "the Fae Sorceress",
		Roles: []Role{RoleSupport}, Tier: TierA, WinRate: 51.7, PickRate: 9.2, BanRate: 4.6,
		Build:  Build{Starting: []int{itemWorldAtlas}, Core: []int{itemMoonstone, itemRedemption, itemZekes}, Boots: itemIonian},
		Runes:  Runes{Primary: "Sorcery", Keystone: "Summon Aery", Secondary: "Resolve", Minor: []string{"Manaflow Band", "Transcendence", "Scorch", "Font of Life", "Revitalize"}},
		Spells: []string{"Flash", "Exhaust"},
		Counters:  []string{"Nautilus"},
		Synergies: []string{"Jinx", "Kai'Sa", "Fiora"},
	},
	{
		ID: "Rakan", Key: 497, Name: "Rakan", Title: "the Charmer",
		Roles: []Role{RoleSupport}, Tier: TierA, WinRate: 50.3, PickRate: 7.6, BanRate: 1.8,
		Build:  Build{Starting: []int{itemWorldAtlas}, Core: []int{itemLocket, itemRedemption, itemZekes}, Boots: itemMobility},
		Runes:  Runes{Primary: "Resolve", Keystone: "Guardian", Secondary: "Inspiration", Minor: []string{"Font of Life", "Bone Plating", "Revitalize", "Hextech Flashtraption", "Cosmic Insight"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Leona"},
		Synergies: []string{"Xayah", "Yasuo"},
	},
	{
		ID: "Nautilus", Key: 111, Name: "Nautilus", Title: "the Titan of the Depths",
		Roles: []Role{RoleSupport}, Tier: TierS, WinRate: 51.1, PickRate: 11.9, BanRate: 6.3,
		Build:  Build{Starting: []int{itemWorldAtlas}, Core: []int{itemLocket, itemHeartsteel, itemThornmail}, Boots: itemPlated},
		Runes:  Runes{Primary: "Resolve", Keystone: "Aftershock", Secondary: "Inspiration", Minor: []string{"Font of Life", "Bone Plating", "Unflinching", "Hextech Flashtraption", "Cosmic Insight"}},
		Spells: []string{"Flash", "Ignite"},
		Counters:  []string{"Lulu", "Thresh"},
		Synergies: []string{"Kai'Sa", "Yasuo"},
	},
}
