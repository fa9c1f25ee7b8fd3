package trust

import (
	"errors"
	"testing"

	"github.com/educhain/educhain-api/internal/mocks"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		hasKyc     bool
		kycStatus  string
		proofCount int
		want       float64
	}{
		{name: "no evidence at all", want: 10},
		{name: "pending kyc only", hasKyc: true, kycStatus: repository.KycStatusPending, want: 50},
		{name: "verified kyc only", hasKyc: true, kycStatus: repository.KycStatusVerified, want: 70},
		{name: "rejected kyc keeps only the existence bonus", hasKyc: true, kycStatus: repository.KycStatusRejected, want: 40},
		{name: "proofs without kyc", proofCount: 3, want: 25},
		{name: "proof bonus caps at six submissions", proofCount: 6, want: 40},
		{name: "seventh proof adds nothing", proofCount: 7, want: 40},
		{name: "many proofs still capped", proofCount: 100, want: 40},
		{name: "verified kyc with capped proofs hits the ceiling", hasKyc: true, kycStatus: repository.KycStatusVerified, proofCount: 6, want: 100},
		{name: "score never exceeds 100", hasKyc: true, kycStatus: repository.KycStatusVerified, proofCount: 50, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.hasKyc, tt.kycStatus, tt.proofCount)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScore_MonotonicInProofs(t *testing.T) {
	prev := Score(false, "", 0)
	for n := 1; n <= 10; n++ {
		got := Score(false, "", n)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestRecompute_PersistsScore(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)
	mockKycRepo := new(mocks.MockKycRepo)
	mockProofRepo := new(mocks.MockProofRepo)

	studentID := "0c4f8a8e-8f62-4a18-9a57-0a6dbe2a8a01"

	mockStudentRepo.On("GetOne", studentID).Return(&models.Student{ID: studentID}, true, nil)
	mockKycRepo.On("FindByStudent", studentID).Return(&models.KYCDocument{
		ID:        "doc-1",
		StudentID: studentID,
		Status:    repository.KycStatusVerified,
	}, true, nil)
	mockProofRepo.On("CountByStudent", studentID).Return(2, nil)
	mockStudentRepo.On("UpdateTrustScore", studentID, float64(80)).Return(nil)

	engine := New(&Engine{
		StudentRepo: mockStudentRepo,
		KycRepo:     mockKycRepo,
		ProofRepo:   mockProofRepo,
	})

	score, err := engine.Recompute(studentID)
	require.NoError(t, err)
	require.Equal(t, float64(80), score)

	mockStudentRepo.AssertExpectations(t)
	mockKycRepo.AssertExpectations(t)
	mockProofRepo.AssertExpectations(t)
}

func TestRecompute_UnknownStudent(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	studentID := "2b0cbb0e-6f0d-4f24-9a2a-3f86f0a4b702"
	mockStudentRepo.On("GetOne", studentID).Return(nil, false, nil)

	engine := New(&Engine{StudentRepo: mockStudentRepo})

	_, err := engine.Recompute(studentID)
	require.ErrorIs(t, err, ErrStudentNotFound)

	mockStudentRepo.AssertExpectations(t)
}

func TestRecompute_MissingEvidenceIsNotAnError(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)
	mockKycRepo := new(mocks.MockKycRepo)
	mockProofRepo := new(mocks.MockProofRepo)

	studentID := "7f1f3c8c-33f3-4b35-8d52-2ad1c5b0b903"

	mockStudentRepo.On("GetOne", studentID).Return(&models.Student{ID: studentID}, true, nil)
	mockKycRepo.On("FindByStudent", studentID).Return(nil, false, nil)
	mockProofRepo.On("CountByStudent", studentID).Return(0, nil)
	mockStudentRepo.On("UpdateTrustScore", studentID, float64(10)).Return(nil)

	engine := New(&Engine{
		StudentRepo: mockStudentRepo,
		KycRepo:     mockKycRepo,
		ProofRepo:   mockProofRepo,
	})

	score, err := engine.Recompute(studentID)
	require.NoError(t, err)
	require.Equal(t, float64(10), score)
}

func TestRecompute_StoreFailureSurfaces(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	studentID := "9d0a36e4-4c57-4e0f-b9d6-1bb4a00b3c04"
	storeErr := errors.New("connection refused")
	mockStudentRepo.On("GetOne", studentID).Return(nil, false, storeErr)

	engine := New(&Engine{StudentRepo: mockStudentRepo})

	_, err := engine.Recompute(studentID)
	require.ErrorIs(t, err, storeErr)
}
