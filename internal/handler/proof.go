package handler

import (
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/request"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/trust"
	"github.com/educhain/educhain-api/internal/validator"
)

type ProofHandler struct {
	ProofRepo   repository.ProofRepository
	StudentRepo repository.StudentRepository
	TrustEngine *trust.Engine
	ErrHandler  *errHandler.ErrorHandler
}

func NewProofHandler(handler *ProofHandler) *ProofHandler {
	return &ProofHandler{
		ProofRepo:   handler.ProofRepo,
		StudentRepo: handler.StudentRepo,
		TrustEngine: handler.TrustEngine,
		ErrHandler:  handler.ErrHandler,
	}
}

// HandleSubmitProof appends a proof-of-use record and recomputes the
// student's trust score. The proof write is kept even if the recompute
// fails afterwards; recompute is idempotent and can be retried on the next
// trigger, so the response carries a null trust_score in that case rather
// than rolling back.
func (h *ProofHandler) HandleSubmitProof(w http.ResponseWriter, r *http.Request) {
	type SubmitProofInput struct {
		StudentID   string              `json:"student_id"`
		Title       string              `json:"title"`
		Description *string             `json:"description"`
		Amount      *float64            `json:"amount"`
		Currency    *string             `json:"currency"`
		Files       []string            `json:"files"`
		Validator   validator.Validator `json:"-"`
	}

	var input SubmitProofInput

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	input.Validator.Check(validator.NotBlank(input.StudentID), "Student id is required")
	input.Validator.Check(validator.Matches(input.StudentID, validator.RgxUUID), "Student id must be a valid id")
	input.Validator.Check(validator.NotBlank(input.Title), "Title is required")
	if input.Amount != nil {
		input.Validator.Check(*input.Amount >= 0, "Amount must not be negative")
	}

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator.Errors)
		return
	}

	_, found, err := h.StudentRepo.GetOne(input.StudentID)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFound(w, r)
		return
	}

	proof := &models.ProofSubmission{
		StudentID:   input.StudentID,
		Title:       input.Title,
		Description: nullStringFrom(input.Description),
		Amount:      nullFloatFrom(input.Amount),
		Currency:    nullStringFrom(input.Currency),
		Files:       input.Files,
	}

	if proof.Files == nil {
		proof.Files = []string{}
	}

	id, err := h.ProofRepo.Insert(proof)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	var trustScore *float64

	score, err := h.TrustEngine.Recompute(input.StudentID)
	if err != nil {
		h.ErrHandler.ReportServerError(r, err)
	} else {
		trustScore = &score
	}

	message := "Proof submitted successfully"
	data := map[string]any{
		"id":          id,
		"trust_score": trustScore,
	}

	err = response.JSONCreatedResponse(w, data, message)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
