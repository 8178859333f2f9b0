package v1

import (
	"encoding/json"
	"net/http"

	"github.com/questguild/quests-tracker/internal/domain"
)

// boardChecking handles GET /api/v1/quests
//
// Supported query parameters:
//   - name: substring filter on the quest name
//   - status: exact match on the quest status
func (rr *Routes) boardChecking(w http.ResponseWriter, r *http.Request) {
	var filter domain.BoardCheckingFilter

	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.QuestStatus(raw)
		if !status.Valid() {
			writeErrorResponse(w, "invalid quest status: "+raw, http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	views, err := rr.svc.Viewer.BoardChecking(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]QuestResponse, 0, len(views))
	for _, view := range views {
		out = append(out, newQuestResponse(view))
	}
	writeJSONResponse(w, http.StatusOK, out)
}

// viewQuestDetails handles GET /api/v1/quests/{questID}
func (rr *Routes) viewQuestDetails(w http.ResponseWriter, r *http.Request) {
	questID, ok := questIDFromRequest(w, r)
	if !ok {
		return
	}

	view, err := rr.svc.Viewer.ViewDetails(r.Context(), questID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, newQuestResponse(view))
}

// addQuest handles POST /api/v1/quests
func (rr *Routes) addQuest(w http.ResponseWriter, r *http.Request) {
	commanderID, ok := requireActorID(w, r)
	if !ok {
		return
	}

	var req AddQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := rr.svc.Ops.Add(r.Context(), domain.AddQuestInput{
		Name:        req.Name,
		Description: req.Description,
	}, commanderID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, AddQuestResponse{ID: id})
}

// editQuest handles PATCH /api/v1/quests/{questID}
func (rr *Routes) editQuest(w http.ResponseWriter, r *http.Request) {
	commanderID, ok := requireActorID(w, r)
	if !ok {
		return
	}
	questID, ok := questIDFromRequest(w, r)
	if !ok {
		return
	}

	var req EditQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := rr.svc.Ops.Edit(r.Context(), questID, domain.EditQuestInput{
		Name:        req.Name,
		Description: req.Description,
	}, commanderID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// removeQuest handles DELETE /api/v1/quests/{questID}
func (rr *Routes) removeQuest(w http.ResponseWriter, r *http.Request) {
	commanderID, ok := requireActorID(w, r)
	if !ok {
		return
	}
	questID, ok := questIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := rr.svc.Ops.Remove(r.Context(), questID, commanderID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
