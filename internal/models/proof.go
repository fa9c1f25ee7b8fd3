package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// ProofSubmission is an append-only record of evidence that scholarship
// funds were used. Multiple proofs per student are expected.
type ProofSubmission struct {
	ID          string          `db:"id"`
	StudentID   string          `db:"student_id"`
	Title       string          `db:"title"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
	Currency    sql.NullString  `db:"currency"`
	Files       pq.StringArray  `db:"files"`
	Reviewed    bool            `db:"reviewed"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   sql.NullTime    `db:"updated_at"`
}
