package statlabel

import "sort"

// Stat pairs a raw stat code with its readable label and value.
type Stat struct {
	Code  string
	Label string
	Value float64
}

// FormatStats labels every entry in values and returns them ordered by label,
// then by code for labels that collide.
func FormatStats(values map[string]float64) []Stat {
	out := make([]Stat, 0, len(values))
	for code, v := range values {
		out = append(out, Stat{Code: code, Label: Format(code), Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Code < out[j].Code
	})
	return out
}
