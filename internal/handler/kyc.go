package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/helper"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/request"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/stream"
	"github.com/educhain/educhain-api/internal/trust"
	"github.com/educhain/educhain-api/internal/validator"
)

const kycSubmittedTopic = "kyc.submitted"

// KycEvent is the payload published whenever a KYC document is created or
// overwritten, so review tooling can pick it up.
type KycEvent struct {
	DocumentID string `json:"document_id"`
	StudentID  string `json:"student_id"`
	Status     string `json:"status"`
}

type KycHandler struct {
	KycRepo     repository.KycRepository
	StudentRepo repository.StudentRepository
	TrustEngine *trust.Engine
	Kafka       *stream.KafkaStream
	Helper      *helper.HelperRepository
	ErrHandler  *errHandler.ErrorHandler
}

func NewKycHandler(handler *KycHandler) *KycHandler {
	return &KycHandler{
		KycRepo:     handler.KycRepo,
		StudentRepo: handler.StudentRepo,
		TrustEngine: handler.TrustEngine,
		Kafka:       handler.Kafka,
		Helper:      handler.Helper,
		ErrHandler:  handler.ErrHandler,
	}
}

// HandleSubmitKyc creates or overwrites the student's single KYC document,
// syncs the student's kyc_status, and recomputes the trust score.
func (h *KycHandler) HandleSubmitKyc(w http.ResponseWriter, r *http.Request) {
	type SubmitKycInput struct {
		StudentID        string              `json:"student_id"`
		IDProofURL       string              `json:"id_proof_url"`
		StudentIDCardURL string              `json:"student_id_card_url"`
		SchoolLetterURL  *string             `json:"school_letter_url"`
		SelfieURL        string              `json:"selfie_url"`
		Status           string              `json:"status"`
		Remarks          *string             `json:"remarks"`
		Validator        validator.Validator `json:"-"`
	}

	var input SubmitKycInput

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	if input.Status == "" {
		input.Status = repository.KycStatusPending
	}

	input.Validator.Check(validator.NotBlank(input.StudentID), "Student id is required")
	input.Validator.Check(validator.Matches(input.StudentID, validator.RgxUUID), "Student id must be a valid id")
	input.Validator.Check(validator.NotBlank(input.IDProofURL), "ID proof URL is required")
	input.Validator.Check(validator.NotBlank(input.StudentIDCardURL), "Student ID card URL is required")
	input.Validator.Check(validator.NotBlank(input.SelfieURL), "Selfie URL is required")
	input.Validator.Check(
		validator.In(input.Status, repository.KycStatusPending, repository.KycStatusVerified, repository.KycStatusRejected),
		"Status must be one of: pending, verified, rejected",
	)

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

	doc := &models.KYCDocument{
		StudentID:        input.StudentID,
		IDProofURL:       input.IDProofURL,
		StudentIDCardURL: input.StudentIDCardURL,
		SchoolLetterURL:  nullStringFrom(input.SchoolLetterURL),
		SelfieURL:        input.SelfieURL,
		Status:           input.Status,
		Remarks:          nullStringFrom(input.Remarks),
	}

	// Upsert by student_id: at most one active document per student, no
	// submission history.
	existing, exists, err := h.KycRepo.FindByStudent(input.StudentID)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	var docID string
	if exists {
		docID = existing.ID
		err = h.KycRepo.Update(docID, doc)
	} else {
		docID, err = h.KycRepo.Insert(doc)
	}
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = h.StudentRepo.UpdateKycStatus(input.StudentID, input.Status)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	score, err := h.TrustEngine.Recompute(input.StudentID)
	if err != nil {
		if errors.Is(err, trust.ErrStudentNotFound) {
			h.ErrHandler.NotFound(w, r)
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	if h.Kafka != nil {
		event := KycEvent{
			DocumentID: docID,
			StudentID:  input.StudentID,
			Status:     input.Status,
		}

		h.Helper.BackgroundTask(r, func() error {
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			return h.Kafka.ProduceMessage(kycSubmittedTopic, string(payload))
		})
	}

	message := "KYC submitted successfully"
	data := map[string]any{
		"id":          docID,
		"trust_score": score,
	}

	err = response.JSONOkResponse(w, data, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
