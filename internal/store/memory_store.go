package store

import (
	"sync"

	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of players and teams in memory,
// preserving file order.
type MemoryStore struct {
	mu        sync.RWMutex
	players   []players.Player
	byID      map[int]int
	teams     []teams.Team
	teamsByID map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:      make(map[int]int),
		teamsByID: make(map[string]int),
	}
}

// ListPlayers returns a copy of the current players slice.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.players))
	copy(result, s.players)
	return result
}

// GetPlayer retrieves a player by ID. With duplicate ids the first one wins.
func (s *MemoryStore) GetPlayer(id int) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return players.Player{}, false
	}
	return s.players[idx], true
}

// SetPlayers replaces the existing players with a new snapshot.
func (s *MemoryStore) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make([]players.Player, len(items))
	copy(s.players, items)
	s.byID = make(map[int]int, len(items))
	for i, p := range s.players {
		if _, seen := s.byID[p.ID]; !seen {
			s.byID[p.ID] = i
		}
	}
}

// ListTeams returns a copy of the current teams slice.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, len(s.teams))
	copy(result, s.teams)
	return result
}

// GetTeam retrieves a team by ID. With duplicate ids the first one wins.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.teamsByID[id]
	if !ok {
		return teams.Team{}, false
	}
	return s.teams[idx], true
}

// SetTeams replaces the existing teams with a new snapshot.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make([]teams.Team, len(items))
	copy(s.teams, items)
	s.teamsByID = make(map[string]int, len(items))
	for i, t := range s.teams {
		if _, seen := s.teamsByID[t.ID]; !seen {
			s.teamsByID[t.ID] = i
		}
	}
}
