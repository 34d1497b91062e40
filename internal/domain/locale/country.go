package locale

// Country is an ISO 3166-1 alpha-2 country code.
type Country string

const (
	AT Country = "AT"
	BE Country = "BE"
	CH Country = "CH"
	DE Country = "DE"
	ES Country = "ES"
	FR Country = "FR"
	GB Country = "GB"
	IT Country = "IT"
	NL Country = "NL"
	US Country = "US"
)

// DefaultCountry is the fallback for unknown or missing country codes.
const DefaultCountry = DE

// IsValid returns true if the country has a registered schema.
func (c Country) IsValid() bool {
	_, ok := addressSchemas[c]
	return ok
}

// String implements fmt.Stringer.
func (c Country) String() string {
	return string(c)
}

// Defaults carries the language and currency derived from a country selection.
type Defaults struct {
	Language string
	Currency string
}

var countryDefaults = map[Country]Defaults{
	AT: {Language: "de", Currency: "EUR"},
	BE: {Language: "fr", Currency: "EUR"},
	CH: {Language: "de", Currency: "CHF"},
	DE: {Language: "de", Currency: "EUR"},
	ES: {Language: "es", Currency: "EUR"},
	FR: {Language: "fr", Currency: "EUR"},
	GB: {Language: "en", Currency: "GBP"},
	IT: {Language: "it", Currency: "EUR"},
	NL: {Language: "nl", Currency: "EUR"},
	US: {Language: "en", Currency: "USD"},
}

// CountryDefaults returns the default language and currency for a country.
// The second return value is false for countries without a registered entry;
// callers must then leave language and currency untouched.
func CountryDefaults(c Country) (Defaults, bool) {
	d, ok := countryDefaults[c]
	return d, ok
}
