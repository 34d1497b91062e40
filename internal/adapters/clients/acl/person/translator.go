package person

import (
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
)

// FromRecord converts an assembled person record into the store's document
// schema. The record kind ("child" or "household_member") is carried as the
// store's discriminator string.
func FromRecord(record wizard.PersonRecord) DocumentDTO {
	return DocumentDTO{
		OwnerID:   record.OwnerID,
		Kind:      string(record.Kind),
		FirstName: record.FirstName,
		LastName:  record.LastName,
		BirthDate: record.BirthDate,
		Email:     record.Email,
		Phone:     record.Phone,
		Notes:     record.Notes,
	}
}
