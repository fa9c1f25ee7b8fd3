package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educhain/educhain-api/internal/mocks"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, target string, body map[string]any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleInitiateDonation_ReferenceFormat(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationID := "5a6c2e1a-9d4e-47f7-8a9c-1f2e3d4c5b6a"
	wantReference := fmt.Sprintf("EDC-upi-%s", donationID)

	mockDonationRepo.On("Insert", mock.Anything).Return(donationID, nil)
	mockDonationRepo.On("SetPaymentReference", donationID, wantReference).Return(nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := postJSON(t, "/donations/initiate", map[string]any{
		"scholarship": "micro",
		"amount":      500,
		"currency":    "INR",
		"gateway":     "upi",
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleInitiateDonation(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	data := envelopeData(t, rr)
	require.Equal(t, wantReference, data["reference"])
	require.Equal(t, repository.DonationStatusCreated, data["status"])
	require.Nil(t, data["redirect_url"])

	mockDonationRepo.AssertExpectations(t)
}

func TestHandleInitiateDonation_MicroAmountOutOfRange(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := postJSON(t, "/donations/initiate", map[string]any{
		"scholarship": "micro",
		"amount":      7,
		"currency":    "INR",
		"gateway":     "upi",
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleInitiateDonation(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockDonationRepo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestHandleInitiateDonation_NonINRSkipsBounds(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationID := "1d2c3b4a-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	mockDonationRepo.On("Insert", mock.Anything).Return(donationID, nil)
	mockDonationRepo.On("SetPaymentReference", donationID, mock.Anything).Return(nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	// 7 USD would be out of range for an INR micro donation
	req := postJSON(t, "/donations/initiate", map[string]any{
		"scholarship": "micro",
		"amount":      7,
		"currency":    "USD",
		"gateway":     "paypal",
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleInitiateDonation(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	mockDonationRepo.AssertExpectations(t)
}

func TestHandleInitiateDonation_UnsupportedGateway(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := postJSON(t, "/donations/initiate", map[string]any{
		"scholarship": "big",
		"amount":      20000,
		"currency":    "INR",
		"gateway":     "hawala",
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleInitiateDonation(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	mockDonationRepo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestHandleDonationWebhook_AppliesStatus(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationID := "7b8c9d0e-1f2a-4b3c-8d5e-6f7a8b9c0d1e"
	reference := "EDC-upi-" + donationID

	donation := &models.Donation{
		ID:               donationID,
		PaymentReference: sql.NullString{String: reference, Valid: true},
		Scholarship:      "micro",
		Amount:           500,
		Currency:         "INR",
		Gateway:          "upi",
		Status:           repository.DonationStatusCreated,
	}

	gatewayTx := "gw-tx-123"

	mockDonationRepo.On("FindByReference", reference).Return(donation, true, nil)
	mockDonationRepo.On("ApplyWebhook", donationID, repository.DonationStatusSucceeded, &gatewayTx, (*string)(nil)).Return(nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := postJSON(t, "/donations/webhook", map[string]any{
		"reference":  reference,
		"status":     "succeeded",
		"gateway_tx": gatewayTx,
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleDonationWebhook(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	mockDonationRepo.AssertExpectations(t)
}

func TestHandleDonationWebhook_ReplayIsHarmless(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationID := "3c4d5e6f-7a8b-4c9d-8e1f-2a3b4c5d6e7f"
	reference := "EDC-cards-" + donationID

	donation := &models.Donation{
		ID:       donationID,
		Amount:   15000,
		Currency: "INR",
		Status:   repository.DonationStatusProcessing,
	}

	mockDonationRepo.On("FindByReference", reference).Return(donation, true, nil)
	mockDonationRepo.On("ApplyWebhook", donationID, repository.DonationStatusSucceeded, (*string)(nil), (*string)(nil)).Return(nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	for i := 0; i < 2; i++ {
		req := postJSON(t, "/donations/webhook", map[string]any{
			"reference": reference,
			"status":    "succeeded",
		})
		rr := httptest.NewRecorder()

		donationHandler.HandleDonationWebhook(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	mockDonationRepo.AssertNumberOfCalls(t, "ApplyWebhook", 2)
}

func TestHandleDonationWebhook_UnknownReference(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	mockDonationRepo.On("FindByReference", "EDC-upi-missing").Return(nil, false, nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := postJSON(t, "/donations/webhook", map[string]any{
		"reference": "EDC-upi-missing",
		"status":    "succeeded",
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleDonationWebhook(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	mockDonationRepo.AssertNotCalled(t, "ApplyWebhook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleDonationWebhook_InvalidStatus(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := postJSON(t, "/donations/webhook", map[string]any{
		"reference": "EDC-upi-anything",
		"status":    "exploded",
	})
	rr := httptest.NewRecorder()

	donationHandler.HandleDonationWebhook(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	mockDonationRepo.AssertNotCalled(t, "FindByReference", mock.Anything)
}

func TestHandleRecordBlockchainTx(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationID := "8e9f0a1b-2c3d-4e5f-8a7b-9c0d1e2f3a4b"
	txHash := "0xdeadbeef"

	mockDonationRepo.On("GetOne", donationID).Return(&models.Donation{ID: donationID}, true, nil)
	mockDonationRepo.On("AttachBlockchainTx", donationID, txHash).Return(nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := httptest.NewRequest("POST", "/blockchain/record/"+donationID+"?tx_hash="+txHash, nil)
	req.SetPathValue("donationId", donationID)
	rr := httptest.NewRecorder()

	donationHandler.HandleRecordBlockchainTx(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	data := envelopeData(t, rr)
	require.Equal(t, txHash, data["tx_hash"])

	mockDonationRepo.AssertExpectations(t)
}

func TestHandleRecordBlockchainTx_UnknownDonation(t *testing.T) {
	mockDonationRepo := new(mocks.MockDonationRepo)

	donationID := "0a1b2c3d-4e5f-4a6b-8c7d-8e9f0a1b2c3d"
	mockDonationRepo.On("GetOne", donationID).Return(nil, false, nil)

	donationHandler := &DonationHandler{
		DonationRepo: mockDonationRepo,
		ErrHandler:   newTestErrHandler(),
	}

	req := httptest.NewRequest("POST", "/blockchain/record/"+donationID+"?tx_hash=0xabc", nil)
	req.SetPathValue("donationId", donationID)
	rr := httptest.NewRecorder()

	donationHandler.HandleRecordBlockchainTx(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	mockDonationRepo.AssertNotCalled(t, "AttachBlockchainTx", mock.Anything, mock.Anything)
}
