// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/locale, domain/phone,
// domain/wizard). This root package holds sentinel errors and the validation
// error type shared across all of them.
package domain
