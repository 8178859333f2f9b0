// Package v1 provides the REST API handlers for the quests tracker.
package v1

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/questguild/quests-tracker/internal/service"
)

// Services bundles the services exposed through the v1 API.
type Services struct {
	Viewer       service.QuestViewer
	Crew         service.CrewSwitchboard
	Ledger       service.JourneyLedger
	Ops          service.QuestOps
	Registration service.Registration
}

// Routes defines the routes for the quests API with dependency injection
type Routes struct {
	svc Services
}

// NewRoutes creates a new Routes instance with the provided services
func NewRoutes(svc Services) *Routes {
	return &Routes{
		svc: svc,
	}
}

// Router creates a new router for the quests API
func Router(svc Services) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()
	r.Use(IdentityMiddleware)

	// Identity registration
	r.Post("/adventurers", routes.registerAdventurer)
	r.Post("/guild-commanders", routes.registerGuildCommander)

	// Quest viewing (no identity required)
	r.Get("/quests", routes.boardChecking)
	r.Get("/quests/{questID}", routes.viewQuestDetails)

	// Quest management (guild commanders)
	r.Post("/quests", routes.addQuest)
	r.Patch("/quests/{questID}", routes.editQuest)
	r.Delete("/quests/{questID}", routes.removeQuest)

	// Crew switchboard (adventurers)
	r.Post("/crew-switchboard/join/{questID}", routes.joinQuest)
	r.Delete("/crew-switchboard/leave/{questID}", routes.leaveQuest)

	// Journey ledger (guild commanders)
	r.Patch("/journey-ledger/launch/{questID}", routes.launchQuest)
	r.Patch("/journey-ledger/complete/{questID}", routes.completeQuest)
	r.Patch("/journey-ledger/fail/{questID}", routes.failQuest)

	return r
}

// questIDFromRequest parses the {questID} URL parameter.
func questIDFromRequest(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := chi.URLParam(r, "questID")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeErrorResponse(w, "invalid quest id", http.StatusBadRequest)
		return 0, false
	}
	return int32(id), true
}
