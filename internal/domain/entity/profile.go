package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile represents one business entity the shopkeeper bills from.
// At least one profile always exists; the last remaining profile cannot be
// deleted. Exactly one profile should be marked default at a time -- the
// services keep that convention, the data layer does not enforce it.
type BusinessProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	GSTIN     string    `json:"gstin"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
