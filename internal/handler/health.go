package handler

import (
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/response"
)

type healthCheckHandler struct {
	db  *repository.DB
	err *errHandler.ErrorHandler
}

func NewHealthCheckHandler(db *repository.DB, err *errHandler.ErrorHandler) *healthCheckHandler {
	return &healthCheckHandler{
		db:  db,
		err: err,
	}
}

func (h *healthCheckHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"app":    "EduChain API",
		"status": "ok",
	}

	err := response.JSONOkResponse(w, data, "Up and grateful", nil)
	if err != nil {
		h.err.ServerError(w, r, err)
	}
}

// HandleTestDatabase probes store connectivity, reporting the visible
// collections. A broken store is reported in the payload, not as an error
// status; the probe itself succeeded.
func (h *healthCheckHandler) HandleTestDatabase(w http.ResponseWriter, r *http.Request) {
	databaseStatus := "connected"

	collections, err := h.db.Collections()
	if err != nil {
		h.err.ReportServerError(r, err)
		databaseStatus = "error"
		collections = []string{}
	}

	data := map[string]any{
		"backend":     "running",
		"database":    databaseStatus,
		"collections": collections,
	}

	err = response.JSONOkResponse(w, data, "", nil)
	if err != nil {
		h.err.ServerError(w, r, err)
	}
}
