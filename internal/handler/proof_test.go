package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educhain/educhain-api/internal/mocks"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/trust"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleSubmitProof(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)
	mockKycRepo := new(mocks.MockKycRepo)
	mockProofRepo := new(mocks.MockProofRepo)

	studentID := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"
	proofID := "proof-uuid-1"

	mockStudentRepo.On("GetOne", studentID).Return(&models.Student{ID: studentID}, true, nil)
	mockProofRepo.On("Insert", mock.Anything).Return(proofID, nil)
	mockKycRepo.On("FindByStudent", studentID).Return(nil, false, nil)
	mockProofRepo.On("CountByStudent", studentID).Return(1, nil)
	mockStudentRepo.On("UpdateTrustScore", studentID, float64(15)).Return(nil)

	proofHandler := &ProofHandler{
		ProofRepo:   mockProofRepo,
		StudentRepo: mockStudentRepo,
		TrustEngine: trust.New(&trust.Engine{
			StudentRepo: mockStudentRepo,
			KycRepo:     mockKycRepo,
			ProofRepo:   mockProofRepo,
		}),
		ErrHandler: newTestErrHandler(),
	}

	req := postJSON(t, "/proofs", map[string]any{
		"student_id": studentID,
		"title":      "Term fees receipt",
		"amount":     1200,
		"currency":   "INR",
		"files":      []string{"https://files.example.com/receipt.pdf"},
	})
	rr := httptest.NewRecorder()

	proofHandler.HandleSubmitProof(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	data := envelopeData(t, rr)
	require.Equal(t, proofID, data["id"])
	require.Equal(t, float64(15), data["trust_score"])

	mockProofRepo.AssertExpectations(t)
	mockStudentRepo.AssertExpectations(t)
}

func TestHandleSubmitProof_RecomputeFailureKeepsProof(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)
	mockKycRepo := new(mocks.MockKycRepo)
	mockProofRepo := new(mocks.MockProofRepo)

	studentID := "8e9f0a1b-2c3d-4e4f-8a5b-6c7d8e9f0a1b"
	proofID := "proof-uuid-2"

	mockStudentRepo.On("GetOne", studentID).Return(&models.Student{ID: studentID}, true, nil)
	mockProofRepo.On("Insert", mock.Anything).Return(proofID, nil)
	mockKycRepo.On("FindByStudent", studentID).Return(nil, false, errors.New("connection refused"))

	proofHandler := &ProofHandler{
		ProofRepo:   mockProofRepo,
		StudentRepo: mockStudentRepo,
		TrustEngine: trust.New(&trust.Engine{
			StudentRepo: mockStudentRepo,
			KycRepo:     mockKycRepo,
			ProofRepo:   mockProofRepo,
		}),
		ErrHandler: newTestErrHandler(),
	}

	req := postJSON(t, "/proofs", map[string]any{
		"student_id": studentID,
		"title":      "Books purchase",
	})
	rr := httptest.NewRecorder()

	proofHandler.HandleSubmitProof(rr, req)

	// the proof write stands; only the score is unavailable
	require.Equal(t, http.StatusCreated, rr.Code)

	data := envelopeData(t, rr)
	require.Equal(t, proofID, data["id"])
	require.Nil(t, data["trust_score"])

	mockStudentRepo.AssertNotCalled(t, "UpdateTrustScore", mock.Anything, mock.Anything)
}

func TestHandleSubmitProof_UnknownStudent(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)
	mockProofRepo := new(mocks.MockProofRepo)

	studentID := "9f0a1b2c-3d4e-4f5a-8b6c-7d8e9f0a1b2c"
	mockStudentRepo.On("GetOne", studentID).Return(nil, false, nil)

	proofHandler := &ProofHandler{
		ProofRepo:   mockProofRepo,
		StudentRepo: mockStudentRepo,
		ErrHandler:  newTestErrHandler(),
	}

	req := postJSON(t, "/proofs", map[string]any{
		"student_id": studentID,
		"title":      "Term fees receipt",
	})
	rr := httptest.NewRecorder()

	proofHandler.HandleSubmitProof(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	mockProofRepo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestHandleSubmitProof_NegativeAmount(t *testing.T) {
	proofHandler := &ProofHandler{
		ErrHandler: newTestErrHandler(),
	}

	req := postJSON(t, "/proofs", map[string]any{
		"student_id": "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a",
		"title":      "Term fees receipt",
		"amount":     -5,
	})
	rr := httptest.NewRecorder()

	proofHandler.HandleSubmitProof(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
