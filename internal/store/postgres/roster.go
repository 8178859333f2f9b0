package postgres

import (
	"context"
	"fmt"

	"github.com/questguild/quests-tracker/internal/domain"
)

// InsertMember adds a (quest, adventurer) pair. The junction table's
// composite primary key enforces uniqueness; a violation surfaces as
// domain.ErrDuplicateMembership.
func (s *Store) InsertMember(ctx context.Context, questID, adventurerID int32) error {
	_, err := s.q.ExecContext(ctx,
		"INSERT INTO quest_adventurer_junction (quest_id, adventurer_id) VALUES ($1, $2)",
		questID, adventurerID,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateMembership
	}
	if err != nil {
		return fmt.Errorf("insert membership quest=%d adventurer=%d: %w", questID, adventurerID, err)
	}
	return nil
}

// DeleteMember removes a (quest, adventurer) pair. Removing an absent pair
// affects zero rows and is not an error.
func (s *Store) DeleteMember(ctx context.Context, questID, adventurerID int32) error {
	_, err := s.q.ExecContext(ctx,
		"DELETE FROM quest_adventurer_junction WHERE quest_id = $1 AND adventurer_id = $2",
		questID, adventurerID,
	)
	if err != nil {
		return fmt.Errorf("delete membership quest=%d adventurer=%d: %w", questID, adventurerID, err)
	}
	return nil
}

// CountByQuest returns the live roster size for the quest.
func (s *Store) CountByQuest(ctx context.Context, questID int32) (int64, error) {
	var count int64
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM quest_adventurer_junction WHERE quest_id = $1",
		questID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count members of quest %d: %w", questID, err)
	}
	return count, nil
}
