package v1

import (
	"encoding/json"
	"net/http"

	"github.com/questguild/quests-tracker/internal/domain"
)

// registerAdventurer handles POST /api/v1/adventurers
func (rr *Routes) registerAdventurer(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := rr.svc.Registration.RegisterAdventurer(r.Context(), domain.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, RegisterResponse{ID: id})
}

// registerGuildCommander handles POST /api/v1/guild-commanders
func (rr *Routes) registerGuildCommander(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := rr.svc.Registration.RegisterGuildCommander(r.Context(), domain.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, RegisterResponse{ID: id})
}
