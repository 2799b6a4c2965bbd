package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer tags
const (
	CustomerTagRegular = "regular"
	CustomerTagPremium = "premium"
)

// Customer represents a billing customer
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	GSTIN     string    `json:"gstin,omitempty"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
