package mocks

import (
	"github.com/educhain/educhain-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockKycRepo struct {
	mock.Mock
}

func (m *MockKycRepo) FindByStudent(studentID string) (*models.KYCDocument, bool, error) {
	args := m.Called(studentID)
	doc, _ := args.Get(0).(*models.KYCDocument)
	return doc, args.Bool(1), args.Error(2)
}

func (m *MockKycRepo) Insert(doc *models.KYCDocument) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}

func (m *MockKycRepo) Update(id string, doc *models.KYCDocument) error {
	args := m.Called(id, doc)
	return args.Error(0)
}
