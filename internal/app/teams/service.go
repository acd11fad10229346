package teams

import (
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
	"github.com/preston-bernstein/fm-stats/internal/roster"
)

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id string) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current set of teams.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// TeamName returns the name of the team with the given id.
func (s *Service) TeamName(id string) (string, bool) {
	return roster.TeamName(s.store.ListTeams(), id)
}

// ReplaceTeams swaps the in-memory teams with a new snapshot.
func (s *Service) ReplaceTeams(items []teams.Team) {
	s.store.SetTeams(items)
}
