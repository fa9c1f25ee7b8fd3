package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type CSRProject struct {
	ID          string         `db:"id"`
	CompanyName string         `db:"company_name"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Budget      float64        `db:"budget"`
	Currency    string         `db:"currency"`
	FocusAreas  pq.StringArray `db:"focus_areas"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}
