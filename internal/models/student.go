package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Student struct {
	ID         string          `db:"id"`
	FullName   string          `db:"full_name"`
	Email      string          `db:"email"`
	Phone      sql.NullString  `db:"phone"`
	SchoolName string          `db:"school_name"`
	ClassGrade sql.NullString  `db:"class_grade"`
	Address    sql.NullString  `db:"address"`
	Country    sql.NullString  `db:"country"`
	City       sql.NullString  `db:"city"`
	Lat        sql.NullFloat64 `db:"lat"`
	Lng        sql.NullFloat64 `db:"lng"`
	Languages  pq.StringArray  `db:"languages"`
	TrustScore float64         `db:"trust_score"`
	KycStatus  string          `db:"kyc_status"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  sql.NullTime    `db:"updated_at"`
}

// HeatmapPoint is one row of the grouped geographic aggregation.
type HeatmapPoint struct {
	City    string `db:"city"`
	Country string `db:"country"`
	Count   int    `db:"count"`
}
