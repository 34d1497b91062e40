package profile

import (
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
)

// FromRecord converts an assembled profile record into the store's document
// schema. Pointer fields pass through unchanged so nil stays an explicit
// JSON null on the wire.
func FromRecord(record wizard.ProfileRecord) DocumentDTO {
	return DocumentDTO{
		OwnerID:              record.OwnerID,
		Name:                 record.Name,
		Phone:                record.Phone,
		BirthDate:            record.BirthDate,
		Street:               record.Street,
		HouseNumber:          record.HouseNumber,
		PostalCode:           record.PostalCode,
		City:                 record.City,
		State:                record.State,
		Country:              record.Country,
		Language:             record.Language,
		Currency:             record.Currency,
		TaxRegion:            record.TaxRegion,
		TaxClass:             record.TaxClass,
		TaxExtra:             record.TaxExtra,
		TaxpayerCount:        record.TaxpayerCount,
		TaxYear:              record.TaxYear,
		Theme:                record.Theme,
		NotificationsEnabled: record.NotificationsEnabled,
		TutorialEnabled:      record.TutorialEnabled,
	}
}
