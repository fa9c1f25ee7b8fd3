package models

import (
	"database/sql"
	"time"
)

type Donation struct {
	ID               string         `db:"id"`
	DonorName        sql.NullString `db:"donor_name"`
	DonorEmail       sql.NullString `db:"donor_email"`
	StudentID        sql.NullString `db:"student_id"`
	Scholarship      string         `db:"scholarship"`
	Amount           float64        `db:"amount"`
	Currency         string         `db:"currency"`
	Gateway          string         `db:"gateway"`
	Status           string         `db:"status"`
	PaymentReference sql.NullString `db:"payment_reference"`
	GatewayTx        sql.NullString `db:"gateway_tx"`
	BlockchainTx     sql.NullString `db:"blockchain_tx"`
	Country          sql.NullString `db:"country"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}
