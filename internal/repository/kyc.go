package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/educhain/educhain-api/internal/models"
)

type KycRepository interface {
	FindByStudent(studentID string) (*models.KYCDocument, bool, error)
	Insert(doc *models.KYCDocument) (string, error)
	Update(id string, doc *models.KYCDocument) error
}

const (
	// KycStatusPending is the default status for a fresh submission.
	KycStatusPending = "pending"

	KycStatusVerified = "verified"
	KycStatusRejected = "rejected"
)

type KycRepositoryImpl struct {
	db *DB
}

func NewKycRepository(db *DB) KycRepository {
	return &KycRepositoryImpl{db: db}
}

func (repo *KycRepositoryImpl) FindByStudent(studentID string) (*models.KYCDocument, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var doc models.KYCDocument

	query := `SELECT * FROM kyc_documents WHERE student_id = $1`

	err := repo.db.GetContext(ctx, &doc, query, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &doc, true, nil
}

func (repo *KycRepositoryImpl) Insert(doc *models.KYCDocument) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var id string
	query := `
		INSERT INTO kyc_documents (student_id, id_proof_url, student_id_card_url, school_letter_url, selfie_url, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := repo.db.GetContext(ctx, &id, query,
		doc.StudentID,
		doc.IDProofURL,
		doc.StudentIDCardURL,
		doc.SchoolLetterURL,
		doc.SelfieURL,
		doc.Status,
		doc.Remarks,
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

// Update overwrites the evidence fields of an existing document. No history
// is retained; the status can change any number of times.
func (repo *KycRepositoryImpl) Update(id string, doc *models.KYCDocument) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := `
		UPDATE kyc_documents
		SET id_proof_url = $1,
			student_id_card_url = $2,
			school_letter_url = $3,
			selfie_url = $4,
			status = $5,
			remarks = $6,
			updated_at = now()
		WHERE id = $7`

	_, err := repo.db.ExecContext(ctx, query,
		doc.IDProofURL,
		doc.StudentIDCardURL,
		doc.SchoolLetterURL,
		doc.SelfieURL,
		doc.Status,
		doc.Remarks,
		id,
	)
	return err
}
