package directory

// builtInRegion lists the manufacturers seeded for one region.
type builtInRegion struct {
	region        string
	manufacturers []string
}

// builtInRanking is a ranking seeded for a manufacturer.
type builtInRanking struct {
	region string
	name   string
	rank   int
}

var builtInRegions = []builtInRegion{
	{region: "taipei", manufacturers: []string{"佳德", "新東陽", "郭元益", "台北犁記", "鼎泰豐"}},
	{region: "taichung", manufacturers: []string{"日出", "紅櫻花", "微熱山丘"}},
	{region: "kaohsiung", manufacturers: []string{"舊振南", "呷百二"}},
	{region: "keelung", manufacturers: []string{"李鵠"}},
}

var builtInRankings = []builtInRanking{
	{region: "taipei", name: "佳德", rank: 10},
	{region: "taipei", name: "新東陽", rank: 7},
	{region: "taipei", name: "台北犁記", rank: 8},
}
