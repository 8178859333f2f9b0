package v1

import (
	"net/http"
)

// joinQuest handles POST /api/v1/crew-switchboard/join/{questID}
func (rr *Routes) joinQuest(w http.ResponseWriter, r *http.Request) {
	adventurerID, ok := requireActorID(w, r)
	if !ok {
		return
	}
	questID, ok := questIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := rr.svc.Crew.Join(r.Context(), questID, adventurerID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// leaveQuest handles DELETE /api/v1/crew-switchboard/leave/{questID}
func (rr *Routes) leaveQuest(w http.ResponseWriter, r *http.Request) {
	adventurerID, ok := requireActorID(w, r)
	if !ok {
		return
	}
	questID, ok := questIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := rr.svc.Crew.Leave(r.Context(), questID, adventurerID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
