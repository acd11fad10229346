package config

const (
	// Relative to the working directory, mirroring the layout of the game exports.
	defaultDataDir     = "Data"
	defaultTeamsFile   = "utilities/teams.json"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultServiceName = "fm-stats"
)
