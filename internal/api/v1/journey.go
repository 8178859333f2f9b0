package v1

import (
	"context"
	"net/http"
)

// launchQuest handles PATCH /api/v1/journey-ledger/launch/{questID}
func (rr *Routes) launchQuest(w http.ResponseWriter, r *http.Request) {
	rr.recordTransition(w, r, rr.svc.Ledger.Launch)
}

// completeQuest handles PATCH /api/v1/journey-ledger/complete/{questID}
func (rr *Routes) completeQuest(w http.ResponseWriter, r *http.Request) {
	rr.recordTransition(w, r, rr.svc.Ledger.Complete)
}

// failQuest handles PATCH /api/v1/journey-ledger/fail/{questID}
func (rr *Routes) failQuest(w http.ResponseWriter, r *http.Request) {
	rr.recordTransition(w, r, rr.svc.Ledger.MarkFailed)
}

// recordTransition runs one of the journey ledger operations for the
// commander identified by the request.
func (*Routes) recordTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, questID, guildCommanderID int32) error,
) {
	commanderID, ok := requireActorID(w, r)
	if !ok {
		return
	}
	questID, ok := questIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := op(r.Context(), questID, commanderID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
