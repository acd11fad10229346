package players

import (
	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/roster"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id int) (players.Player, bool)
	SetPlayers([]players.Player)
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current set of players, including sold and loaned-out ones.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// ActivePlayers returns players that are neither sold nor out on loan.
func (s *Service) ActivePlayers() []players.Player {
	return roster.Active(s.store.ListPlayers())
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// PlayerName returns "First Last" for a player id.
func (s *Service) PlayerName(id int) (string, bool) {
	return roster.PlayerName(s.store.ListPlayers(), id)
}

// ReplacePlayers swaps the in-memory players with a new snapshot.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(items)
}
