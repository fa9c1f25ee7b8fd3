package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/educhain/educhain-api/internal/models"
)

type StudentRepository interface {
	Insert(student *models.Student) (string, error)
	GetOne(id string) (*models.Student, bool, error)
	List(limit int) ([]models.Student, error)
	Search(query string, hasLocation bool, limit int) ([]models.Student, error)
	Heatmap() ([]models.HeatmapPoint, error)
	UpdateTrustScore(id string, score float64) error
	UpdateKycStatus(id string, status string) error
}

const (
	// StudentKycNotSubmitted is the default status before any KYC document
	// has been received for the student.
	StudentKycNotSubmitted = "not_submitted"

	StudentKycPending  = "pending"
	StudentKycVerified = "verified"
	StudentKycRejected = "rejected"
)

type StudentRepositoryImpl struct {
	db *DB
}

func NewStudentRepository(db *DB) StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

// Insert persists a new student. The trust score and KYC status columns are
// always written with their server-side defaults; they are never taken from
// the caller.
func (repo *StudentRepositoryImpl) Insert(student *models.Student) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var id string
	query := `
		INSERT INTO students (full_name, email, phone, school_name, class_grade, address, country, city, lat, lng, languages)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := repo.db.GetContext(ctx, &id, query,
		student.FullName,
		student.Email,
		student.Phone,
		student.SchoolName,
		student.ClassGrade,
		student.Address,
		student.Country,
		student.City,
		student.Lat,
		student.Lng,
		student.Languages,
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (repo *StudentRepositoryImpl) GetOne(id string) (*models.Student, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var student models.Student

	query := `SELECT * FROM students WHERE id = $1`

	err := repo.db.GetContext(ctx, &student, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &student, true, nil
}

func (repo *StudentRepositoryImpl) List(limit int) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var students []models.Student

	query := `SELECT * FROM students ORDER BY created_at DESC LIMIT $1`

	err := repo.db.SelectContext(ctx, &students, query, limit)
	if err != nil {
		return nil, err
	}

	return students, nil
}

// Search filters students for the discovery endpoint. A non-blank query is
// matched case-insensitively against full_name and school_name; otherwise,
// when hasLocation is set, only students with a location are returned.
func (repo *StudentRepositoryImpl) Search(query string, hasLocation bool, limit int) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var students []models.Student

	switch {
	case query != "":
		stmt := `
			SELECT * FROM students
			WHERE full_name ILIKE $1 OR school_name ILIKE $1
			ORDER BY created_at DESC
			LIMIT $2`

		err := repo.db.SelectContext(ctx, &students, stmt, "%"+query+"%", limit)
		if err != nil {
			return nil, err
		}

	case hasLocation:
		stmt := `
			SELECT * FROM students
			WHERE lat IS NOT NULL AND lng IS NOT NULL
			ORDER BY created_at DESC
			LIMIT $1`

		err := repo.db.SelectContext(ctx, &students, stmt, limit)
		if err != nil {
			return nil, err
		}

	default:
		stmt := `SELECT * FROM students ORDER BY created_at DESC LIMIT $1`

		err := repo.db.SelectContext(ctx, &students, stmt, limit)
		if err != nil {
			return nil, err
		}
	}

	return students, nil
}

// Heatmap groups located students by city and country, counting membership.
// Missing keys collapse into the "Unknown" bucket.
func (repo *StudentRepositoryImpl) Heatmap() ([]models.HeatmapPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var points []models.HeatmapPoint

	query := `
		SELECT
			COALESCE(NULLIF(city, ''), 'Unknown') AS city,
			COALESCE(NULLIF(country, ''), 'Unknown') AS country,
			COUNT(*) AS count
		FROM students
		WHERE lat IS NOT NULL AND lng IS NOT NULL
		GROUP BY 1, 2
		ORDER BY count DESC`

	err := repo.db.SelectContext(ctx, &points, query)
	if err != nil {
		return nil, err
	}

	return points, nil
}

// UpdateTrustScore overwrites the stored score with the latest computed
// value. Last write wins; no history is kept.
func (repo *StudentRepositoryImpl) UpdateTrustScore(id string, score float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := `UPDATE students SET trust_score = $1, updated_at = now() WHERE id = $2`

	_, err := repo.db.ExecContext(ctx, query, score, id)
	return err
}

func (repo *StudentRepositoryImpl) UpdateKycStatus(id string, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := `UPDATE students SET kyc_status = $1, updated_at = now() WHERE id = $2`

	_, err := repo.db.ExecContext(ctx, query, status, id)
	return err
}
