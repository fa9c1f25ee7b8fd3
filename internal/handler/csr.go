package handler

import (
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/request"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/validator"
)

type CsrHandler struct {
	CsrRepo    repository.CsrRepository
	ErrHandler *errHandler.ErrorHandler
}

func NewCsrHandler(handler *CsrHandler) *CsrHandler {
	return &CsrHandler{
		CsrRepo:    handler.CsrRepo,
		ErrHandler: handler.ErrHandler,
	}
}

func (h *CsrHandler) HandleCreateCsrProject(w http.ResponseWriter, r *http.Request) {
	type CreateCsrProjectInput struct {
		CompanyName string              `json:"company_name"`
		Title       string              `json:"title"`
		Description *string             `json:"description"`
		Budget      float64             `json:"budget"`
		Currency    string              `json:"currency"`
		FocusAreas  []string            `json:"focus_areas"`
		Validator   validator.Validator `json:"-"`
	}

	var input CreateCsrProjectInput

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	input.Validator.Check(validator.NotBlank(input.CompanyName), "Company name is required")
	input.Validator.Check(validator.NotBlank(input.Title), "Title is required")
	input.Validator.Check(input.Budget > 0, "Budget must be greater than zero")
	input.Validator.Check(validator.NotBlank(input.Currency), "Currency is required")

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator.Errors)
		return
	}

	project := &models.CSRProject{
		CompanyName: input.CompanyName,
		Title:       input.Title,
		Description: nullStringFrom(input.Description),
		Budget:      input.Budget,
		Currency:    input.Currency,
		FocusAreas:  input.FocusAreas,
	}

	if project.FocusAreas == nil {
		project.FocusAreas = []string{}
	}

	id, err := h.CsrRepo.Insert(project)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	message := "CSR project created successfully"
	err = response.JSONCreatedResponse(w, map[string]any{"id": id}, message)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
