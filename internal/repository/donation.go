package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/educhain/educhain-api/internal/models"
)

type DonationRepository interface {
	Insert(donation *models.Donation) (string, error)
	GetOne(id string) (*models.Donation, bool, error)
	FindByReference(reference string) (*models.Donation, bool, error)
	SetPaymentReference(id, reference string) error
	ApplyWebhook(id, status string, gatewayTx, blockchainTx *string) error
	AttachBlockchainTx(id, txHash string) error
}

const (
	// DonationStatusCreated is the initial state of every donation intent.
	DonationStatusCreated = "created"

	DonationStatusProcessing = "processing"
	DonationStatusSucceeded  = "succeeded"
	DonationStatusFailed     = "failed"
	DonationStatusRefunded   = "refunded"
)

type DonationRepositoryImpl struct {
	db *DB
}

func NewDonationRepository(db *DB) DonationRepository {
	return &DonationRepositoryImpl{db: db}
}

func (repo *DonationRepositoryImpl) Insert(donation *models.Donation) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var id string
	query := `
		INSERT INTO donations (donor_name, donor_email, student_id, scholarship, amount, currency, gateway, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := repo.db.GetContext(ctx, &id, query,
		donation.DonorName,
		donation.DonorEmail,
		donation.StudentID,
		donation.Scholarship,
		donation.Amount,
		donation.Currency,
		donation.Gateway,
		donation.Country,
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (repo *DonationRepositoryImpl) GetOne(id string) (*models.Donation, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var donation models.Donation

	query := `SELECT * FROM donations WHERE id = $1`

	err := repo.db.GetContext(ctx, &donation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &donation, true, nil
}

func (repo *DonationRepositoryImpl) FindByReference(reference string) (*models.Donation, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var donation models.Donation

	query := `SELECT * FROM donations WHERE payment_reference = $1`

	err := repo.db.GetContext(ctx, &donation, query, reference)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &donation, true, nil
}

func (repo *DonationRepositoryImpl) SetPaymentReference(id, reference string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := `UPDATE donations SET payment_reference = $1, updated_at = now() WHERE id = $2`

	_, err := repo.db.ExecContext(ctx, query, reference, id)
	return err
}

// ApplyWebhook merges a webhook update into the donation. Only the fields
// the gateway actually sent are written; nil pointers leave the stored
// values untouched. Replaying the same update is a no-op beyond the first
// application, which keeps at-least-once webhook delivery safe.
func (repo *DonationRepositoryImpl) ApplyWebhook(id, status string, gatewayTx, blockchainTx *string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := `
		UPDATE donations
		SET status = $1,
			gateway_tx = COALESCE($2, gateway_tx),
			blockchain_tx = COALESCE($3, blockchain_tx),
			updated_at = now()
		WHERE id = $4`

	_, err := repo.db.ExecContext(ctx, query, status, gatewayTx, blockchainTx, id)
	return err
}

func (repo *DonationRepositoryImpl) AttachBlockchainTx(id, txHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := `UPDATE donations SET blockchain_tx = $1, updated_at = now() WHERE id = $2`

	_, err := repo.db.ExecContext(ctx, query, txHash, id)
	return err
}
