// Package person implements the Anti-Corruption Layer translators for the
// household store's dependent-person documents.
package person

// DocumentDTO matches the store's person document schema. The store uses
// snake_case field names; optional fields stay pointers so blank values are
// written as explicit JSON null.
type DocumentDTO struct {
	OwnerID   string  `json:"owner_id"`
	Kind      string  `json:"kind"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	BirthDate *string `json:"birth_date"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

// CreateResponseDTO matches the store's document-creation response.
type CreateResponseDTO struct {
	ID string `json:"id"`
}
