package locale

// CountryAddressSchema describes the address form layout for one country.
// Street, HouseNumber, PostalCode, and City are always present and required;
// State, County, and Apartment are nil for countries that do not use them.
type CountryAddressSchema struct {
	Country     Country
	Street      FieldSpec
	HouseNumber FieldSpec
	PostalCode  FieldSpec
	City        FieldSpec
	State       *FieldSpec
	County      *FieldSpec
	Apartment   *FieldSpec
}

// Fields returns the schema's fields in display order, skipping absent
// optional fields.
func (s CountryAddressSchema) Fields() []FieldSpec {
	fields := []FieldSpec{s.Street, s.HouseNumber, s.PostalCode, s.City}
	for _, opt := range []*FieldSpec{s.State, s.County, s.Apartment} {
		if opt != nil {
			fields = append(fields, *opt)
		}
	}
	return fields
}

// AddressSchema returns the address schema for a country. Unknown codes
// resolve to the default country's schema; the function never fails.
func AddressSchema(c Country) CountryAddressSchema {
	if s, ok := addressSchemas[c]; ok {
		return s
	}
	return addressSchemas[DefaultCountry]
}

func streetField() FieldSpec {
	return FieldSpec{Key: "street", Label: "Street", Placeholder: "Main Street", Required: true, Type: FieldText}
}

func houseNumberField() FieldSpec {
	return FieldSpec{Key: "houseNumber", Label: "House number", Placeholder: "12a", Required: true, Type: FieldText, MaxLength: 10}
}

func cityField() FieldSpec {
	return FieldSpec{Key: "city", Label: "City", Placeholder: "Berlin", Required: true, Type: FieldText}
}

func postalField(rule Rule, placeholder string, maxLength int) FieldSpec {
	return FieldSpec{
		Key:         "postalCode",
		Label:       "Postal code",
		Placeholder: placeholder,
		Required:    true,
		Type:        FieldText,
		Rule:        rule,
		MaxLength:   maxLength,
	}
}

func fourDigitSchema(c Country, placeholder string) CountryAddressSchema {
	return CountryAddressSchema{
		Country:     c,
		Street:      streetField(),
		HouseNumber: houseNumberField(),
		PostalCode:  postalField(Digits(4), placeholder, 4),
		City:        cityField(),
	}
}

func fiveDigitSchema(c Country, placeholder string) CountryAddressSchema {
	return CountryAddressSchema{
		Country:     c,
		Street:      streetField(),
		HouseNumber: houseNumberField(),
		PostalCode:  postalField(Digits(5), placeholder, 5),
		City:        cityField(),
	}
}

// Postal-code acceptance rules are country law, not style: keep them exact.
var (
	ukPostcodeRule = Regex(`(?i)^[A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2}$`)
	nlPostcodeRule = Regex(`^\d{4}\s?[A-Za-z]{2}$`)
	usZipRule      = Regex(`^\d{5}(-\d{4})?$`)
)

var addressSchemas = map[Country]CountryAddressSchema{
	AT: fourDigitSchema(AT, "1010"),
	BE: fourDigitSchema(BE, "1000"),
	CH: fourDigitSchema(CH, "8001"),
	DE: fiveDigitSchema(DE, "10115"),
	ES: fiveDigitSchema(ES, "28001"),
	FR: fiveDigitSchema(FR, "75001"),
	IT: fiveDigitSchema(IT, "00100"),
	GB: {
		Country:     GB,
		Street:      streetField(),
		HouseNumber: houseNumberField(),
		PostalCode:  postalField(ukPostcodeRule, "SW1A 1AA", 8),
		City:        cityField(),
		County:      &FieldSpec{Key: "county", Label: "County", Placeholder: "Greater London", Type: FieldText},
	},
	NL: {
		Country:     NL,
		Street:      streetField(),
		HouseNumber: houseNumberField(),
		PostalCode:  postalField(nlPostcodeRule, "1012 AB", 7),
		City:        cityField(),
	},
	US: {
		Country:     US,
		Street:      streetField(),
		HouseNumber: houseNumberField(),
		PostalCode:  postalField(usZipRule, "90210", 10),
		City:        cityField(),
		State: &FieldSpec{
			Key:      "state",
			Label:    "State",
			Required: true,
			Type:     FieldSelect,
			Options:  usStates,
		},
		Apartment: &FieldSpec{Key: "apartment", Label: "Apt / Suite", Placeholder: "Apt 4B", Type: FieldText},
	},
}

var usStates = []Option{
	{Value: "AL", Label: "Alabama"}, {Value: "AK", Label: "Alaska"},
	{Value: "AZ", Label: "Arizona"}, {Value: "AR", Label: "Arkansas"},
	{Value: "CA", Label: "California"}, {Value: "CO", Label: "Colorado"},
	{Value: "CT", Label: "Connecticut"}, {Value: "DE", Label: "Delaware"},
	{Value: "FL", Label: "Florida"}, {Value: "GA", Label: "Georgia"},
	{Value: "HI", Label: "Hawaii"}, {Value: "ID", Label: "Idaho"},
	{Value: "IL", Label: "Illinois"}, {Value: "IN", Label: "Indiana"},
	{Value: "IA", Label: "Iowa"}, {Value: "KS", Label: "Kansas"},
	{Value: "KY", Label: "Kentucky"}, {Value: "LA", Label: "Louisiana"},
	{Value: "ME", Label: "Maine"}, {Value: "MD", Label: "Maryland"},
	{Value: "MA", Label: "Massachusetts"}, {Value: "MI", Label: "Michigan"},
	{Value: "MN", Label: "Minnesota"}, {Value: "MS", Label: "Mississippi"},
	{Value: "MO", Label: "Missouri"}, {Value: "MT", Label: "Montana"},
	{Value: "NE", Label: "Nebraska"}, {Value: "NV", Label: "Nevada"},
	{Value: "NH", Label: "New Hampshire"}, {Value: "NJ", Label: "New Jersey"},
	{Value: "NM", Label: "New Mexico"}, {Value: "NY", Label: "New York"},
	{Value: "NC", Label: "North Carolina"}, {Value: "ND", Label: "North Dakota"},
	{Value: "OH", Label: "Ohio"}, {Value: "OK", Label: "Oklahoma"},
	{Value: "OR", Label: "Oregon"}, {Value: "PA", Label: "Pennsylvania"},
	{Value: "RI", Label: "Rhode Island"}, {Value: "SC", Label: "South Carolina"},
	{Value: "SD", Label: "South Dakota"}, {Value: "TN", Label: "Tennessee"},
	{Value: "TX", Label: "Texas"}, {Value: "UT", Label: "Utah"},
	{Value: "VT", Label: "Vermont"}, {Value: "VA", Label: "Virginia"},
	{Value: "WA", Label: "Washington"}, {Value: "WV", Label: "West Virginia"},
	{Value: "WI", Label: "Wisconsin"}, {Value: "WY", Label: "Wyoming"},
}
