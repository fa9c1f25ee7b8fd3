package handler

import (
	"errors"
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/trust"
	"github.com/educhain/educhain-api/internal/validator"
)

type TrustHandler struct {
	TrustEngine *trust.Engine
	ErrHandler  *errHandler.ErrorHandler
}

func NewTrustHandler(handler *TrustHandler) *TrustHandler {
	return &TrustHandler{
		TrustEngine: handler.TrustEngine,
		ErrHandler:  handler.ErrHandler,
	}
}

// HandleTrustScore recomputes the student's score on demand, persisting the
// fresh value before returning it.
func (h *TrustHandler) HandleTrustScore(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("studentId")

	if !validator.Matches(studentID, validator.RgxUUID) {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid student id"))
		return
	}

	score, err := h.TrustEngine.Recompute(studentID)
	if err != nil {
		if errors.Is(err, trust.ErrStudentNotFound) {
			h.ErrHandler.NotFound(w, r)
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	message := "Trust score computed successfully"
	err = response.JSONOkResponse(w, map[string]any{"trust_score": score}, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
