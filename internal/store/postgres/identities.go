package postgres

import (
	"context"
	"fmt"

	"github.com/questguild/quests-tracker/internal/domain"
)

// InsertAdventurer creates the record and returns its id, or
// domain.ErrUsernameTaken on a username collision.
func (s *Store) InsertAdventurer(ctx context.Context, input domain.RegisterInput) (int32, error) {
	var id int32
	err := s.q.QueryRowContext(ctx,
		"INSERT INTO adventurers (username, password) VALUES ($1, $2) RETURNING id",
		input.Username, input.Password,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, domain.ErrUsernameTaken
	}
	if err != nil {
		return 0, fmt.Errorf("insert adventurer: %w", err)
	}
	return id, nil
}

// InsertGuildCommander creates the record and returns its id, or
// domain.ErrUsernameTaken on a username collision.
func (s *Store) InsertGuildCommander(ctx context.Context, input domain.RegisterInput) (int32, error) {
	var id int32
	err := s.q.QueryRowContext(ctx,
		"INSERT INTO guild_commanders (username, password) VALUES ($1, $2) RETURNING id",
		input.Username, input.Password,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, domain.ErrUsernameTaken
	}
	if err != nil {
		return 0, fmt.Errorf("insert guild commander: %w", err)
	}
	return id, nil
}
