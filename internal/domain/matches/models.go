package matches

// Competitions loaded when none are configured.
const (
	LaLiga = "LaLiga"
	UCL    = "UCL"
	Copa   = "Copa"
)

// DefaultCompetitions lists the match files looked up for every season.
func DefaultCompetitions() []string {
	return []string{LaLiga, UCL, Copa}
}

// Match is a single match record. Its shape varies by competition so it is
// kept as decoded JSON.
type Match map[string]any

// ByCompetition groups a season's matches by competition name.
type ByCompetition map[string][]Match

// Count returns the total number of matches across competitions.
func (b ByCompetition) Count() int {
	n := 0
	for _, ms := range b {
		n += len(ms)
	}
	return n
}
