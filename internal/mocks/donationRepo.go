package mocks

import (
	"github.com/educhain/educhain-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) Insert(donation *models.Donation) (string, error) {
	args := m.Called(donation)
	return args.String(0), args.Error(1)
}

func (m *MockDonationRepo) GetOne(id string) (*models.Donation, bool, error) {
	args := m.Called(id)
	donation, _ := args.Get(0).(*models.Donation)
	return donation, args.Bool(1), args.Error(2)
}

func (m *MockDonationRepo) FindByReference(reference string) (*models.Donation, bool, error) {
	args := m.Called(reference)
	donation, _ := args.Get(0).(*models.Donation)
	return donation, args.Bool(1), args.Error(2)
}

func (m *MockDonationRepo) SetPaymentReference(id, reference string) error {
	args := m.Called(id, reference)
	return args.Error(0)
}

func (m *MockDonationRepo) ApplyWebhook(id, status string, gatewayTx, blockchainTx *string) error {
	args := m.Called(id, status, gatewayTx, blockchainTx)
	return args.Error(0)
}

func (m *MockDonationRepo) AttachBlockchainTx(id, txHash string) error {
	args := m.Called(id, txHash)
	return args.Error(0)
}
