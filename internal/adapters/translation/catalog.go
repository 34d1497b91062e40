// Package translation provides the built-in label catalog backing the
// address-form and notes rendering. Catalogs are static; labels never
// influence validation, only display.
package translation

import (
	"strings"

	"github.com/hausfam/onboarding-service/internal/ports"
)

// Compile-time interface check.
var _ ports.Translator = (*Catalog)(nil)

// Catalog is an in-memory translation table keyed by catalog language and
// label key. Keys follow two shapes: "<country>.<field>" for address and tax
// field overrides (country lowercase) and "gender.<value>" for the gender
// display labels used in child notes.
type Catalog struct {
	entries map[string]map[string]string
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: builtinEntries}
}

// Translate returns the label override for key in the given catalog
// language. The language is matched on its primary subtag, so "de-CH"
// resolves against the "de" catalog. The second return value is false when
// no override exists; callers keep their built-in label then.
func (c *Catalog) Translate(lang, key string) (string, bool) {
	table, ok := c.entries[primarySubtag(lang)]
	if !ok {
		return "", false
	}
	label, ok := table[key]
	return label, ok
}

// primarySubtag reduces a BCP 47 tag to its language part.
func primarySubtag(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}

var builtinEntries = map[string]map[string]string{
	"de": {
		"de.street":      "Straße",
		"de.houseNumber": "Hausnummer",
		"de.postalCode":  "Postleitzahl",
		"de.city":        "Stadt",
		"de.taxId":       "Steuer-Identifikationsnummer",
		"at.street":      "Straße",
		"at.houseNumber": "Hausnummer",
		"at.postalCode":  "Postleitzahl",
		"at.city":        "Stadt",
		"ch.street":      "Strasse",
		"ch.houseNumber": "Hausnummer",
		"ch.postalCode":  "Postleitzahl",
		"ch.city":        "Ort",
		"ch.ahvNumber":   "AHV-Nummer",
		"gender.f":       "Mädchen",
		"gender.m":       "Junge",
		"gender.d":       "Divers",
	},
	"fr": {
		"fr.street":      "Rue",
		"fr.houseNumber": "Numéro",
		"fr.postalCode":  "Code postal",
		"fr.city":        "Ville",
		"be.street":      "Rue",
		"be.houseNumber": "Numéro",
		"be.postalCode":  "Code postal",
		"be.city":        "Ville",
		"ch.street":      "Rue",
		"ch.houseNumber": "Numéro",
		"ch.postalCode":  "Code postal",
		"ch.city":        "Localité",
		"gender.f":       "Fille",
		"gender.m":       "Garçon",
		"gender.d":       "Autre",
	},
	"it": {
		"it.street":        "Via",
		"it.houseNumber":   "Numero civico",
		"it.postalCode":    "CAP",
		"it.city":          "Città",
		"it.codiceFiscale": "Codice fiscale",
		"gender.f":         "Bambina",
		"gender.m":         "Bambino",
		"gender.d":         "Altro",
	},
	"es": {
		"es.street":      "Calle",
		"es.houseNumber": "Número",
		"es.postalCode":  "Código postal",
		"es.city":        "Ciudad",
		"gender.f":       "Niña",
		"gender.m":       "Niño",
		"gender.d":       "Otro",
	},
	"nl": {
		"nl.street":      "Straat",
		"nl.houseNumber": "Huisnummer",
		"nl.postalCode":  "Postcode",
		"nl.city":        "Plaats",
		"gender.f":       "Meisje",
		"gender.m":       "Jongen",
		"gender.d":       "Anders",
	},
	"en": {
		"gender.f": "Girl",
		"gender.m": "Boy",
		"gender.d": "Other",
	},
}
