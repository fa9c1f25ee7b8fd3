package repository

import (
	"context"

	"github.com/educhain/educhain-api/internal/models"
)

type CsrRepository interface {
	Insert(project *models.CSRProject) (string, error)
}

type CsrRepositoryImpl struct {
	db *DB
}

func NewCsrRepository(db *DB) CsrRepository {
	return &CsrRepositoryImpl{db: db}
}

func (repo *CsrRepositoryImpl) Insert(project *models.CSRProject) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var id string
	query := `
		INSERT INTO csr_projects (company_name, title, description, budget, currency, focus_areas)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := repo.db.GetContext(ctx, &id, query,
		project.CompanyName,
		project.Title,
		project.Description,
		project.Budget,
		project.Currency,
		project.FocusAreas,
	)
	if err != nil {
		return "", err
	}

	return id, nil
}
