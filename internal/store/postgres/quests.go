package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/questguild/quests-tracker/internal/domain"
)

const questColumns = "id, name, description, status, guild_commander_id, created_at, updated_at"

// GetQuest returns the quest record or domain.ErrQuestNotFound.
func (s *Store) GetQuest(ctx context.Context, questID int32) (domain.Quest, error) {
	row := s.q.QueryRowContext(ctx,
		"SELECT "+questColumns+" FROM quests WHERE id = $1",
		questID,
	)

	quest, err := scanQuest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quest{}, domain.ErrQuestNotFound
	}
	if err != nil {
		return domain.Quest{}, fmt.Errorf("get quest %d: %w", questID, err)
	}
	return quest, nil
}

// ListQuests returns quests matching the board checking filter, newest
// first.
func (s *Store) ListQuests(ctx context.Context, filter domain.BoardCheckingFilter) ([]domain.Quest, error) {
	query := "SELECT " + questColumns + " FROM quests WHERE 1=1"
	args := []any{}

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quest: %w", err)
		}
		quests = append(quests, quest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	return quests, nil
}

// InsertQuest creates a quest in status Open and returns the new id.
func (s *Store) InsertQuest(ctx context.Context, input domain.AddQuestInput, guildCommanderID int32) (int32, error) {
	var id int32
	err := s.q.QueryRowContext(ctx,
		`INSERT INTO quests (name, description, status, guild_commander_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		input.Name, input.Description, string(domain.StatusOpen), guildCommanderID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert quest: %w", err)
	}
	return id, nil
}

// UpdateQuest edits a quest scoped to its owning commander. Ownership is
// enforced by the WHERE clause: a mismatch reads as not found.
func (s *Store) UpdateQuest(ctx context.Context, questID int32, input domain.EditQuestInput, guildCommanderID int32) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE quests
		 SET name = $1, description = $2, updated_at = now()
		 WHERE id = $3 AND guild_commander_id = $4`,
		input.Name, input.Description, questID, guildCommanderID,
	)
	if err != nil {
		return fmt.Errorf("update quest %d: %w", questID, err)
	}
	return requireRowAffected(result, domain.ErrQuestNotFound)
}

// UpdateQuestStatus records a lifecycle transition attributed to the
// acting commander.
func (s *Store) UpdateQuestStatus(ctx context.Context, questID int32, status domain.QuestStatus, guildCommanderID int32) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE quests
		 SET status = $1, guild_commander_id = $2, updated_at = now()
		 WHERE id = $3`,
		string(status), guildCommanderID, questID,
	)
	if err != nil {
		return fmt.Errorf("update quest %d status: %w", questID, err)
	}
	return requireRowAffected(result, domain.ErrQuestNotFound)
}

// DeleteQuest removes a quest scoped to its owning commander.
func (s *Store) DeleteQuest(ctx context.Context, questID int32, guildCommanderID int32) error {
	result, err := s.q.ExecContext(ctx,
		"DELETE FROM quests WHERE id = $1 AND guild_commander_id = $2",
		questID, guildCommanderID,
	)
	if err != nil {
		return fmt.Errorf("delete quest %d: %w", questID, err)
	}
	return requireRowAffected(result, domain.ErrQuestNotFound)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuest(row scanner) (domain.Quest, error) {
	var quest domain.Quest
	var status string
	err := row.Scan(
		&quest.ID,
		&quest.Name,
		&quest.Description,
		&status,
		&quest.GuildCommanderID,
		&quest.CreatedAt,
		&quest.UpdatedAt,
	)
	if err != nil {
		return domain.Quest{}, err
	}
	quest.Status = domain.QuestStatus(status)
	return quest, nil
}

// requireRowAffected maps a zero-row write to the given sentinel.
func requireRowAffected(result sql.Result, missing error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return missing
	}
	return nil
}
