package repository

import (
	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

// Documented default seeds. These are the values every collection falls back
// to on first run and whenever its stored data turns out to be unreadable.
var (
	seedProfileID  = uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	seedCoffeeID   = uuid.MustParse("3b8f42a0-41f3-4a51-9f0b-62b1c4a0c001")
	seedHoneyID    = uuid.MustParse("3b8f42a0-41f3-4a51-9f0b-62b1c4a0c002")
	seedCustomerID = uuid.MustParse("9c5a2f10-6f4e-4d7b-8a8e-1f0d3bc0a001")
)

// SeedProducts returns the starter inventory.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: seedCoffeeID, Name: "Premium Coffee Beans", Price: 450, SKU: "COF-001", Stock: 24, Category: "Beverages"},
		{ID: seedHoneyID, Name: "Organic Honey 500g", Price: 320, SKU: "HON-002", Stock: 15, Category: "Food"},
	}
}

// SeedCustomers returns the starter customer book.
func SeedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: seedCustomerID, Name: "John Doe", Phone: "9876543210", Email: "john@example.com", Address: "123 Baker St, London"},
	}
}

// SeedProfiles returns the initial business profile. The profile layer
// guarantees at least one profile always exists.
func SeedProfiles() []entity.BusinessProfile {
	return []entity.BusinessProfile{
		{
			ID:        seedProfileID,
			Name:      "Main Business Hub",
			Address:   "Sector 44, Gurgaon, HR 122003",
			GSTIN:     "06AAAAA0000A1Z5",
			Phone:     "0124-555666",
			Email:     "contact@businesshub.com",
			IsDefault: true,
		},
	}
}

// SeedTemplates returns the built-in "Standard Tally" template under its
// reserved identity.
func SeedTemplates() []entity.InvoiceTemplate {
	return []entity.InvoiceTemplate{
		{
			ID:           entity.BuiltinTemplateID,
			Name:         "Standard Tally",
			BaseStyle:    enum.BaseStyleTally,
			PaperFormat:  enum.PaperFormatA4,
			AccentColor:  "#4f46e5",
			CustomFields: []entity.CustomField{},
			IsDefault:    true,
		},
	}
}
