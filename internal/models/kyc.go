package models

import (
	"database/sql"
	"time"
)

// KYCDocument holds the verification evidence for one student. The store
// keeps at most one row per student_id; submissions overwrite the existing
// row rather than appending history.
type KYCDocument struct {
	ID               string         `db:"id"`
	StudentID        string         `db:"student_id"`
	IDProofURL       string         `db:"id_proof_url"`
	StudentIDCardURL string         `db:"student_id_card_url"`
	SchoolLetterURL  sql.NullString `db:"school_letter_url"`
	SelfieURL        string         `db:"selfie_url"`
	Status           string         `db:"status"`
	Remarks          sql.NullString `db:"remarks"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}
