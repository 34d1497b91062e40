// Package locale holds the per-country intake schemas: address-field layout,
// postal-code rules, tax-field layout, and the default language/currency for
// each supported country. All data is static and immutable; lookups are total
// functions that fall back to the default country for unknown codes.
package locale
