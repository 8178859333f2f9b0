package v1

import (
	"time"

	"github.com/questguild/quests-tracker/internal/domain"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRequest is the payload for registering an adventurer or a guild
// commander.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse carries the identifier of the newly created identity.
type RegisterResponse struct {
	ID int32 `json:"id"`
}

// AddQuestRequest is the payload for creating a quest.
type AddQuestRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AddQuestResponse carries the identifier of the newly created quest.
type AddQuestResponse struct {
	ID int32 `json:"id"`
}

// EditQuestRequest is the payload for editing a quest.
type EditQuestRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// QuestResponse represents a quest enriched with its current roster count.
type QuestResponse struct {
	ID               int32     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Status           string    `json:"status"`
	GuildCommanderID int32     `json:"guild_commander_id"`
	AdventurerCount  int64     `json:"adventurer_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// newQuestResponse converts a domain quest view into its API representation.
func newQuestResponse(view domain.QuestView) QuestResponse {
	return QuestResponse{
		ID:               view.ID,
		Name:             view.Name,
		Description:      view.Description,
		Status:           string(view.Status),
		GuildCommanderID: view.GuildCommanderID,
		AdventurerCount:  view.AdventurerCount,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}
}
