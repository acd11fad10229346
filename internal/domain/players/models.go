package players

import (
	"encoding/json"
	"fmt"
)

// Roster statuses that take a player out of the active squad.
const (
	StatusSold   = "Sold"
	StatusOnLoan = "On Loan"
)

// Player is one record of a season's players file. Any numeric field besides
// the identity fields is treated as a stat keyed by its stat code.
type Player struct {
	ID        int                `json:"Id"`
	FirstName string             `json:"FirstName"`
	LastName  string             `json:"LastName"`
	Status    string             `json:"Status"`
	Stats     map[string]float64 `json:"-"`
}

var identityKeys = map[string]struct{}{
	"Id":        {},
	"FirstName": {},
	"LastName":  {},
	"Status":    {},
}

// FullName joins first and last name with a single space.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// UnmarshalJSON decodes identity fields and collects numeric stats.
func (p *Player) UnmarshalJSON(data []byte) error {
	type identity Player
	var id identity
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	stats := make(map[string]float64)
	for key, val := range raw {
		if _, ok := identityKeys[key]; ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(val, &f); err != nil {
			// Non-numeric attributes (nationality, position, ...) are not stats.
			continue
		}
		stats[key] = f
	}
	*p = Player(id)
	p.Stats = stats
	return nil
}

// MarshalJSON writes identity fields and stats back as a flat object.
func (p Player) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Stats)+len(identityKeys))
	for k, v := range p.Stats {
		if _, ok := identityKeys[k]; ok {
			return nil, fmt.Errorf("stat %q collides with player field", k)
		}
		out[k] = v
	}
	out["Id"] = p.ID
	out["FirstName"] = p.FirstName
	out["LastName"] = p.LastName
	out["Status"] = p.Status
	return json.Marshal(out)
}
