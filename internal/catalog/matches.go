package catalog

import "time"

var fixtureEpoch = time.Date(2024, time.May, 18, 20, 0, 0, 0, time.UTC)

func line(player, champion string, team Team, role Role, k, d, a, cs, gold int, win bool, items ...int) Participant {
	return Participant{
		Player: player, Champion: champion, Team: team, Role: role,
		Kills: k, Deaths: d, Assists: a, CS: cs, Gold: gold, Items: items, Win: win,
	}
}

// Matches are ordered newest first.
var matches = []Match{
	{
		ID: "KR_7034512291", Queue: "Ranked Solo/Duo",
		StartedAt: fixtureEpoch,
		Duration:  31*time.Minute + 42*time.Second,
		Participants: []Participant{
			line("Zeus", "Malphite", TeamBlue, RoleTop, 2, 3, 14, 211, 11200, true, itemSunfire, itemThornmail, itemPlated),
			line("Oner", "Lee Sin", TeamBlue, RoleJungle, 4, 1, 11, 168, 11900, true, itemEclipse, itemBlackCleaver, itemPlated),
			line("Faker", "Ahri", TeamBlue, RoleMid, 7, 1, 9, 265, 14100, true, itemMalignance, itemShadowflame, itemSorcerers),
			line("Gumayusi", "Jinx", TeamBlue, RoleADC, 9, 2, 7, 301, 15800, true, itemKrakenSlayer, itemInfinityEdge, itemBerserkers),
			line("Keria", "Thresh", TeamBlue, RoleSupport, 1, 2, 18, 34, 8300, true, itemLocket, itemZekes, itemMobility),
			line("Kiin", "Darius", TeamRed, RoleTop, 3, 5, 2, 230, 10800, false, itemStridebreaker, itemSteraks, itemPlated),
			line("Canyon", "Kha'Zix", TeamRed, RoleJungle, 1, 4, 5, 150, 9100, false, itemYoumuus, itemEdgeOfNight, itemIonian),
			line("Chovy", "Zed", TeamRed, RoleMid, 3, 4, 2, 270, 11900, false, itemYoumuus, itemEdgeOfNight, itemIonian),
			line("Ruler", "Kai'Sa", TeamRed, RoleADC, 2, 3, 3, 288, 12400, false, itemKrakenSlayer, itemRunaans, itemBerserkers),
			line("Duro", "Nautilus", TeamRed, RoleSupport, 0, 7, 6, 29, 7200, false, itemLocket, itemHeartsteel, itemPlated),
		},
		Objectives: map[Team]Objectives{
			TeamBlue: {Towers: 9, Dragons: 4, Barons: 1, Heralds: 1},
			TeamRed:  {Towers: 2, Dragons: 1, Barons: 0, Heralds: 0},
		},
	},
	{
		ID: "KR_7034498810", Queue: "Ranked Solo/Duo",
		StartedAt: fixtureEpoch.Add(-3 * time.Hour),
		Duration:  26*time.Minute + 5*time.Second,
		Participants: []Participant{
			line("Faker", "Lux", TeamRed, RoleMid, 2, 5, 6, 201, 9200, false, itemLudens, itemShadowflame, itemSorcerers),
			line("Doran", "Garen", TeamRed, RoleTop, 3, 6, 1, 190, 9000, false, itemStridebreaker, itemDeadMans, itemBerserkers),
			line("Peanut", "Vi", TeamRed, RoleJungle, 1, 4, 4, 140, 8200, false, itemEclipse, itemBlackCleaver, itemPlated),
			line("Peyz", "Caitlyn", TeamRed, RoleADC, 3, 3, 2, 240, 10100, false, itemGaleforce, itemInfinityEdge, itemBerserkers),
			line("Lehends", "Lulu", TeamRed, RoleSupport, 0, 4, 7, 22, 6400, false, itemMoonstone, itemRedemption, itemIonian),
			line("Kingen", "Fiora", TeamBlue, RoleTop, 6, 1, 3, 215, 11800, true, itemTitanic, itemSteraks, itemPlated),
			line("Pyosik", "Amumu", TeamBlue, RoleJungle, 2, 2, 14, 150, 9900, true, itemLiandry, itemSunfire, itemMercs),
			line("Bdd", "Malzahar", TeamBlue, RoleMid, 5, 1, 8, 240, 11500, true, itemLiandry, itemMalignance, itemSorcerers),
			line("Aiming", "Xayah", TeamBlue, RoleADC, 8, 2, 6, 260, 12900, true, itemGaleforce, itemInfinityEdge, itemBerserkers),
			line("Kellin", "Rakan", TeamBlue, RoleSupport, 1, 3, 16, 30, 7700, true, itemLocket, itemRedemption, itemMobility),
		},
		Objectives: map[Team]Objectives{
			TeamBlue: {Towers: 8, Dragons: 3, Barons: 1, Heralds: 1},
			TeamRed:  {Towers: 1, Dragons: 1, Barons: 0, Heralds: 0},
		},
	},
	{
		ID: "EUW1_6901123345", Queue: "Ranked Solo/Duo",
		StartedAt: fixtureEpoch.Add(-26 * time.Hour),
		Duration:  35*time.Minute + 18*time.Second,
		Participants: []Participant{
			line("BrokenBlade", "Sett", TeamBlue, RoleTop, 4, 4, 6, 250, 12500, true, itemStridebreaker, itemSteraks, itemPlated),
			line("Yike", "Kha'Zix", TeamBlue, RoleJungle, 9, 3, 5, 170, 13300, true, itemYoumuus, itemEdgeOfNight, itemIonian),
			line("Caps", "Yasuo", TeamBlue, RoleMid, 11, 4, 7, 298, 16100, true, itemInfinityEdge, itemBotrk, itemBerserkers),
			line("Rekkles", "Ezreal", TeamBlue, RoleADC, 5, 2, 10, 310, 14900, true, itemManamune, itemTrinity, itemIonian),
			line("Mikyx", "Rakan", TeamBlue, RoleSupport, 1, 5, 20, 40, 8900, true, itemLocket, itemRedemption, itemMobility),
			line("Wunder", "Teemo", TeamRed, RoleTop, 5, 6, 3, 240, 11800, false, itemLiandry, itemMalignance, itemSorcerers),
			line("Jankos", "Lee Sin", TeamRed, RoleJungle, 3, 7, 6, 160, 10200, false, itemEclipse, itemBlackCleaver, itemPlated),
			line("Perkz", "Zed", TeamRed, RoleMid, 6, 5, 4, 280, 13000, false, itemYoumuus, itemEdgeOfNight, itemIonian),
			line("Upset", "Jinx", TeamRed, RoleADC, 4, 5, 5, 300, 13400, false, itemKrakenSlayer, itemInfinityEdge, itemBerserkers),
			line("Hylissang", "Leona", TeamRed, RoleSupport, 0, 7, 11, 35, 7800, false, itemLocket, itemZekes, itemPlated),
		},
		Objectives: map[Team]Objectives{
			TeamBlue: {Towers: 10, Dragons: 3, Barons: 2, Heralds: 1},
			TeamRed:  {Towers: 4, Dragons: 2, Barons: 0, Heralds: 1},
		},
	},
	{
		ID: "NA1_5012987734", Queue: "Ranked Flex",
		StartedAt: fixtureEpoch.Add(-50 * time.Hour),
		Duration:  28*time.Minute + 51*time.Second,
		Participants: []Participant{
			line("Impact", "Malphite", TeamRed, RoleTop, 1, 2, 9, 200, 9800, true, itemSunfire, itemThornmail, itemPlated),
			line("Blaber", "Vi", TeamRed, RoleJungle, 6, 2, 8, 155, 11000, true, itemEclipse, itemBlackCleaver, itemPlated),
			line("Jensen", "Ahri", TeamRed, RoleMid, 7, 2, 6, 255, 12800, true, itemMalignance, itemShadowflame, itemSorcerers),
			line("Doublelift", "Kai'Sa", TeamRed, RoleADC, 10, 0, 5, 290, 14600, true, itemKrakenSlayer, itemRunaans, itemBerserkers),
			line("CoreJJ", "Nautilus", TeamRed, RoleSupport, 0, 3, 17, 31, 7600, true, itemLocket, itemHeartsteel, itemPlated),
			line("Bwipo", "Darius", TeamBlue, RoleTop, 2, 5, 1, 205, 9300, false, itemStridebreaker, itemSteraks, itemPlated),
			line("Spica", "Amumu", TeamBlue, RoleJungle, 1, 4, 3, 140, 7900, false, itemLiandry, itemSunfire, itemMercs),
			line("Bjergsen", "Lux", TeamBlue, RoleMid, 2, 4, 3, 240, 9800, false, itemLudens, itemShadowflame, itemSorcerers),
			line("Berserker", "Caitlyn", TeamBlue, RoleADC, 2, 5, 2, 270, 10400, false, itemGaleforce, itemInfinityEdge, itemBerserkers),
			line("Vulcan", "Thresh", TeamBlue, RoleSupport, 0, 6, 6, 28, 6200, false, itemLocket, itemZekes, itemMobility),
		},
		Objectives: map[Team]Objectives{
			TeamBlue: {Towers: 1, Dragons: 0, Barons: 0, Heralds: 1},
			TeamRed:  {Towers: 9, Dragons: 4, Barons: 1, Heralds: 1},
		},
	},
}
