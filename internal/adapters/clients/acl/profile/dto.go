// Package profile implements the Anti-Corruption Layer translators for the
// household store's profile documents.
package profile

// DocumentDTO matches the store's profile document schema. The store uses
// snake_case field names; optional fields stay pointers so blank values are
// written as explicit JSON null and overwrite stale document state.
type DocumentDTO struct {
	OwnerID              string            `json:"owner_id"`
	Name                 string            `json:"name"`
	Phone                *string           `json:"phone"`
	BirthDate            *string           `json:"birth_date"`
	Street               *string           `json:"street"`
	HouseNumber          *string           `json:"house_number"`
	PostalCode           *string           `json:"postal_code"`
	City                 *string           `json:"city"`
	State                *string           `json:"state"`
	Country              string            `json:"country"`
	Language             string            `json:"language"`
	Currency             string            `json:"currency"`
	TaxRegion            *string           `json:"tax_region"`
	TaxClass             *string           `json:"tax_class"`
	TaxExtra             map[string]string `json:"tax_extra"`
	TaxpayerCount        int               `json:"taxpayer_count"`
	TaxYear              int               `json:"tax_year"`
	Theme                *string           `json:"theme"`
	NotificationsEnabled bool              `json:"notifications_enabled"`
	TutorialEnabled      bool              `json:"tutorial_enabled"`
}

// CreateResponseDTO matches the store's document-creation response.
type CreateResponseDTO struct {
	ID string `json:"id"`
}
