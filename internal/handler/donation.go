package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/helper"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/request"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/scholarship"
	"github.com/educhain/educhain-api/internal/stream"
	"github.com/educhain/educhain-api/internal/validator"
)

const (
	// paymentReferencePrefix heads every server-synthesized payment
	// reference: EDC-<gateway>-<record id>.
	paymentReferencePrefix = "EDC"

	donationSucceededTopic = "donation.succeeded"
)

// supportedGateways are the payment rails a donation intent can name.
var supportedGateways = []string{
	"upi", "cards", "netbanking", "paypal", "stripe", "gpay", "applepay", "intl_wallet",
}

// DonationEvent is published when a webhook confirms a donation, feeding
// the receipt worker.
type DonationEvent struct {
	ID         string  `json:"id"`
	Reference  string  `json:"reference"`
	DonorName  string  `json:"donor_name,omitempty"`
	DonorEmail string  `json:"donor_email,omitempty"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
}

type DonationHandler struct {
	DonationRepo repository.DonationRepository
	Kafka        *stream.KafkaStream
	Helper       *helper.HelperRepository
	ErrHandler   *errHandler.ErrorHandler
}

func NewDonationHandler(handler *DonationHandler) *DonationHandler {
	return &DonationHandler{
		DonationRepo: handler.DonationRepo,
		Kafka:        handler.Kafka,
		Helper:       handler.Helper,
		ErrHandler:   handler.ErrHandler,
	}
}

type InitiatedDonation struct {
	Reference   string  `json:"reference"`
	RedirectURL *string `json:"redirect_url"`
	Status      string  `json:"status"`
}

// HandleInitiateDonation validates the tier amount, persists the intent in
// "created" status, and hands back the payment reference. The gateway
// redirect is a stub: real gateway intents would be created here, and the
// redirect URL stays null until they are.
func (h *DonationHandler) HandleInitiateDonation(w http.ResponseWriter, r *http.Request) {
	type InitiateDonationInput struct {
		DonorName   *string             `json:"donor_name"`
		DonorEmail  *string             `json:"donor_email"`
		StudentID   *string             `json:"student_id"`
		Scholarship string              `json:"scholarship"`
		Amount      float64             `json:"amount"`
		Currency    string              `json:"currency"`
		Gateway     string              `json:"gateway"`
		Country     *string             `json:"country"`
		Validator   validator.Validator `json:"-"`
	}

	var input InitiateDonationInput

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	input.Validator.Check(
		validator.In(input.Scholarship, scholarship.TierMicro, scholarship.TierBig),
		"Scholarship must be one of: micro, big",
	)
	input.Validator.Check(input.Amount > 0, "Amount must be greater than zero")
	input.Validator.Check(validator.NotBlank(input.Currency), "Currency is required")
	input.Validator.Check(validator.In(input.Gateway, supportedGateways...), "Gateway is not supported")
	if input.DonorEmail != nil {
		input.Validator.Check(validator.Matches(*input.DonorEmail, validator.RgxEmail), "Donor email must be a valid email address")
	}
	if input.StudentID != nil {
		input.Validator.Check(validator.Matches(*input.StudentID, validator.RgxUUID), "Student id must be a valid id")
	}

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator.Errors)
		return
	}

	// Tier bounds are checked for INR amounts only; out-of-range amounts
	// are a client error, not a validation-shape error.
	err = scholarship.ValidateAmount(input.Scholarship, input.Currency, input.Amount)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	donation := &models.Donation{
		DonorName:   nullStringFrom(input.DonorName),
		DonorEmail:  nullStringFrom(input.DonorEmail),
		StudentID:   nullStringFrom(input.StudentID),
		Scholarship: input.Scholarship,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Gateway:     input.Gateway,
		Country:     nullStringFrom(input.Country),
	}

	id, err := h.DonationRepo.Insert(donation)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	reference := fmt.Sprintf("%s-%s-%s", paymentReferencePrefix, input.Gateway, id)

	err = h.DonationRepo.SetPaymentReference(id, reference)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	data := &InitiatedDonation{
		Reference:   reference,
		RedirectURL: nil,
		Status:      repository.DonationStatusCreated,
	}

	message := "Donation initiated successfully"
	err = response.JSONOkResponse(w, data, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleDonationWebhook applies a gateway status update, matched by the
// payment reference the gateway echoes back. Deliveries are at-least-once;
// the merge fully replaces the provided fields, so replays are harmless.
// Signature verification is not performed here and must be added before any
// real gateway is wired in.
func (h *DonationHandler) HandleDonationWebhook(w http.ResponseWriter, r *http.Request) {
	type WebhookInput struct {
		Reference    string              `json:"reference"`
		Status       string              `json:"status"`
		GatewayTx    *string             `json:"gateway_tx"`
		BlockchainTx *string             `json:"blockchain_tx"`
		Validator    validator.Validator `json:"-"`
	}

	var input WebhookInput

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	input.Validator.Check(validator.NotBlank(input.Reference), "Reference is required")
	input.Validator.Check(
		validator.In(input.Status,
			repository.DonationStatusProcessing,
			repository.DonationStatusSucceeded,
			repository.DonationStatusFailed,
			repository.DonationStatusRefunded,
		),
		"Status must be one of: processing, succeeded, failed, refunded",
	)

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator.Errors)
		return
	}

	donation, found, err := h.DonationRepo.FindByReference(input.Reference)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFound(w, r)
		return
	}

	err = h.DonationRepo.ApplyWebhook(donation.ID, input.Status, input.GatewayTx, input.BlockchainTx)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	if input.Status == repository.DonationStatusSucceeded && h.Kafka != nil {
		event := DonationEvent{
			ID:         donation.ID,
			Reference:  input.Reference,
			DonorName:  donation.DonorName.String,
			DonorEmail: donation.DonorEmail.String,
			Amount:     donation.Amount,
			Currency:   donation.Currency,
			Status:     input.Status,
		}

		h.Helper.BackgroundTask(r, func() error {
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			return h.Kafka.ProduceMessage(donationSucceededTopic, string(payload))
		})
	}

	message := "Webhook applied successfully"
	err = response.JSONOkResponse(w, nil, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleRecordBlockchainTx anchors a donation to a blockchain transaction.
// Unlike the webhook path, this is keyed by the donation's own record id,
// not its payment reference.
func (h *DonationHandler) HandleRecordBlockchainTx(w http.ResponseWriter, r *http.Request) {
	donationID := r.PathValue("donationId")
	txHash := r.URL.Query().Get("tx_hash")

	var v validator.Validator
	v.Check(validator.Matches(donationID, validator.RgxUUID), "Donation id must be a valid id")
	v.Check(validator.NotBlank(txHash), "Tx hash is required")

	if v.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, v.Errors)
		return
	}

	_, found, err := h.DonationRepo.GetOne(donationID)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFound(w, r)
		return
	}

	err = h.DonationRepo.AttachBlockchainTx(donationID, txHash)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	message := "Blockchain transaction recorded"
	err = response.JSONOkResponse(w, map[string]any{"tx_hash": txHash}, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
