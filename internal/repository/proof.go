package repository

import (
	"context"

	"github.com/educhain/educhain-api/internal/models"
)

type ProofRepository interface {
	Insert(proof *models.ProofSubmission) (string, error)
	CountByStudent(studentID string) (int, error)
	ListByStudent(studentID string, limit int) ([]models.ProofSubmission, error)
}

type ProofRepositoryImpl struct {
	db *DB
}

func NewProofRepository(db *DB) ProofRepository {
	return &ProofRepositoryImpl{db: db}
}

func (repo *ProofRepositoryImpl) Insert(proof *models.ProofSubmission) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var id string
	query := `
		INSERT INTO proof_submissions (student_id, title, description, amount, currency, files, reviewed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := repo.db.GetContext(ctx, &id, query,
		proof.StudentID,
		proof.Title,
		proof.Description,
		proof.Amount,
		proof.Currency,
		proof.Files,
		proof.Reviewed,
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (repo *ProofRepositoryImpl) CountByStudent(studentID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM proof_submissions WHERE student_id = $1`

	err := repo.db.GetContext(ctx, &count, query, studentID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (repo *ProofRepositoryImpl) ListByStudent(studentID string, limit int) ([]models.ProofSubmission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var proofs []models.ProofSubmission

	query := `
		SELECT * FROM proof_submissions
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	err := repo.db.SelectContext(ctx, &proofs, query, studentID, limit)
	if err != nil {
		return nil, err
	}

	return proofs, nil
}
