package locale

import "strings"

// AddressValues holds the user-entered address fields for validation.
// State is only consulted when the country's schema defines a state field.
type AddressValues struct {
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	State       string
}

// Result is the outcome of an address validation. When Valid is false,
// Field names the first failing field key and Message carries the
// field-labeled error text.
type Result struct {
	Valid   bool
	Field   string
	Message string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(field FieldSpec, message string) Result {
	return Result{Valid: false, Field: field.Key, Message: field.Label + " " + message}
}

// ValidateAddress checks values against the country's address schema.
// Checks run in a fixed order and stop at the first failure: street,
// house number, postal code, and city presence; state presence when the
// schema defines a state field; then postal-code format when the schema
// carries a rule and the value is non-empty. Empty optional fields never
// fail. The function is pure and never returns an error.
func ValidateAddress(c Country, values AddressValues) Result {
	schema := AddressSchema(c)

	required := []struct {
		field FieldSpec
		value string
	}{
		{schema.Street, values.Street},
		{schema.HouseNumber, values.HouseNumber},
		{schema.PostalCode, values.PostalCode},
		{schema.City, values.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fail(r.field, "is required")
		}
	}

	if schema.State != nil && schema.State.Required && strings.TrimSpace(values.State) == "" {
		return fail(*schema.State, "is required")
	}

	if postal := strings.TrimSpace(values.PostalCode); postal != "" && !schema.PostalCode.Rule.Matches(postal) {
		return fail(schema.PostalCode, "has an invalid format")
	}

	return ok()
}
