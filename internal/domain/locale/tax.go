package locale

// TaxConfig describes the tax section of the intake form for one country:
// the label for the first-level tax region, the selectable tax classes, and
// any country-specific extra fields.
type TaxConfig struct {
	Country     Country
	RegionLabel string
	Classes     []Option
	ExtraFields []FieldSpec
}

// TaxSettings returns the tax configuration for a country, with the same
// fallback contract as AddressSchema.
func TaxSettings(c Country) TaxConfig {
	if t, ok := taxConfigs[c]; ok {
		return t
	}
	return taxConfigs[DefaultCountry]
}

func germanTaxClasses() []Option {
	return []Option{
		{Value: "1", Label: "Class I (single)"},
		{Value: "2", Label: "Class II (single parent)"},
		{Value: "3", Label: "Class III (married, higher income)"},
		{Value: "4", Label: "Class IV (married, similar income)"},
		{Value: "5", Label: "Class V (married, lower income)"},
		{Value: "6", Label: "Class VI (second job)"},
	}
}

func maritalClasses() []Option {
	return []Option{
		{Value: "single", Label: "Single"},
		{Value: "married", Label: "Married / registered partnership"},
		{Value: "separated", Label: "Separated"},
		{Value: "widowed", Label: "Widowed"},
	}
}

var taxConfigs = map[Country]TaxConfig{
	DE: {
		Country:     DE,
		RegionLabel: "Bundesland",
		Classes:     germanTaxClasses(),
		ExtraFields: []FieldSpec{
			{Key: "taxId", Label: "Tax ID", Placeholder: "12 345 678 901", Type: FieldText, Rule: Digits(11), MaxLength: 11},
			{Key: "churchTax", Label: "Church tax", Type: FieldSelect, Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			}},
		},
	},
	AT: {
		Country:     AT,
		RegionLabel: "Bundesland",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "taxId", Label: "Tax number", Type: FieldText, Rule: Digits(9), MaxLength: 9},
		},
	},
	CH: {
		Country:     CH,
		RegionLabel: "Kanton",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "ahvNumber", Label: "AHV number", Placeholder: "756.1234.5678.97", Type: FieldText,
				Rule: Regex(`^756\.\d{4}\.\d{4}\.\d{2}$`), MaxLength: 16},
		},
	},
	BE: {
		Country:     BE,
		RegionLabel: "Gewest / Région",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "nationalNumber", Label: "National number", Type: FieldText, Rule: Digits(11), MaxLength: 11},
		},
	},
	FR: {
		Country:     FR,
		RegionLabel: "Région",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "taxId", Label: "Numéro fiscal", Type: FieldText, Rule: Digits(13), MaxLength: 13},
		},
	},
	IT: {
		Country:     IT,
		RegionLabel: "Regione",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "codiceFiscale", Label: "Codice fiscale", Type: FieldText,
				Rule: Regex(`(?i)^[A-Z0-9]{16}$`), MaxLength: 16},
		},
	},
	ES: {
		Country:     ES,
		RegionLabel: "Comunidad autónoma",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "nif", Label: "NIF", Type: FieldText, Rule: Regex(`(?i)^\d{8}[A-Z]$`), MaxLength: 9},
		},
	},
	GB: {
		Country:     GB,
		RegionLabel: "Region",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "niNumber", Label: "National Insurance number", Placeholder: "QQ 12 34 56 C", Type: FieldText,
				Rule: Regex(`(?i)^[A-Z]{2}\s?\d{2}\s?\d{2}\s?\d{2}\s?[A-D]$`), MaxLength: 13},
		},
	},
	NL: {
		Country:     NL,
		RegionLabel: "Provincie",
		Classes:     maritalClasses(),
		ExtraFields: []FieldSpec{
			{Key: "bsn", Label: "BSN", Type: FieldText, Rule: Digits(9), MaxLength: 9},
		},
	},
	US: {
		Country:     US,
		RegionLabel: "State",
		Classes: []Option{
			{Value: "single", Label: "Single"},
			{Value: "married_joint", Label: "Married filing jointly"},
			{Value: "married_separate", Label: "Married filing separately"},
			{Value: "head_of_household", Label: "Head of household"},
		},
		ExtraFields: []FieldSpec{
			{Key: "ssn", Label: "Social Security number", Placeholder: "123-45-6789", Type: FieldText,
				Rule: Regex(`^\d{3}-\d{2}-\d{4}$`), MaxLength: 11},
		},
	},
}
