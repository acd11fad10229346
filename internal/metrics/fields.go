package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrKind        = "data_kind"
	AttrCompetition = "competition"
	AttrCommand     = "command"
)

// Data kinds recorded by the loader.
const (
	KindPlayers = "players"
	KindTeams   = "teams"
	KindMatches = "matches"
)
