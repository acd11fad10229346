package statlabel

// rule replaces every occurrence of trigger with replacement.
type rule struct {
	trigger     string
	replacement string
}

// rules run top to bottom. Longer abbreviations sharing a prefix with a
// shorter one (xGC before xG) must come first.
var rules = []rule{
	{trigger: "perf", replacement: " performance"},
	{trigger: "pp", replacement: "per % possession"},
	{trigger: "pShot", replacement: " per shot"},
	{trigger: "p90", replacement: " per 90"},
	{trigger: "xGC", replacement: "Expected goal contributions"},
	{trigger: "xG", replacement: "Expected goals"},
	{trigger: "xA", replacement: "Expected assists"},
	{trigger: "+", replacement: " plus "},
}
