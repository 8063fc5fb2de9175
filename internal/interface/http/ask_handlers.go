package http

import (
	"net/http"
)

type askRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

func (a *API) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	answer, err := a.askSvc.Ask(r.Context(), req.Question)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.respondJSON(w, r, http.StatusOK, answer)
}
