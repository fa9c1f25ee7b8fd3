package handler

import (
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/scholarship"
)

type SchemaHandler struct {
	ErrHandler *errHandler.ErrorHandler
}

func NewSchemaHandler(handler *SchemaHandler) *SchemaHandler {
	return &SchemaHandler{
		ErrHandler: handler.ErrHandler,
	}
}

// HandleSchema serves static descriptive metadata for admin tooling: the
// collection names and the scholarship tier bounds.
func (h *SchemaHandler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"collections": []string{
			"students",
			"kyc_documents",
			"proof_submissions",
			"donations",
			"csr_projects",
		},
		"scholarships": scholarship.Tiers(),
	}

	err := response.JSONOkResponse(w, data, "Data retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
