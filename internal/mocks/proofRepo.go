package mocks

import (
	"github.com/educhain/educhain-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockProofRepo struct {
	mock.Mock
}

func (m *MockProofRepo) Insert(proof *models.ProofSubmission) (string, error) {
	args := m.Called(proof)
	return args.String(0), args.Error(1)
}

func (m *MockProofRepo) CountByStudent(studentID string) (int, error) {
	args := m.Called(studentID)
	return args.Int(0), args.Error(1)
}

func (m *MockProofRepo) ListByStudent(studentID string, limit int) ([]models.ProofSubmission, error) {
	args := m.Called(studentID, limit)
	proofs, _ := args.Get(0).([]models.ProofSubmission)
	return proofs, args.Error(1)
}
