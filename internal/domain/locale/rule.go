package locale

import "regexp"

// RuleKind discriminates the validation rule variants.
type RuleKind int

const (
	// RuleNone accepts any value.
	RuleNone RuleKind = iota
	// RuleDigits accepts exactly N decimal digits.
	RuleDigits
	// RuleRegex accepts values matching a precompiled pattern.
	RuleRegex
)

// Rule is a data-only field validation rule. The zero value is RuleNone.
// Keeping rules as data (instead of closures embedded in schema structs)
// keeps the schemas serializable and lets tests enumerate them.
type Rule struct {
	Kind    RuleKind
	N       int
	Pattern *regexp.Regexp
}

// Digits returns a rule accepting exactly n decimal digits.
func Digits(n int) Rule {
	return Rule{Kind: RuleDigits, N: n}
}

// Regex returns a rule accepting values that match expr. The expression is
// compiled once at construction; invalid expressions panic, which is
// acceptable because all rules are package-level static data.
func Regex(expr string) Rule {
	return Rule{Kind: RuleRegex, Pattern: regexp.MustCompile(expr)}
}

// Matches reports whether value satisfies the rule. It is total: every rule
// kind returns a boolean for every input string.
func (r Rule) Matches(value string) bool {
	switch r.Kind {
	case RuleDigits:
		if len(value) != r.N {
			return false
		}
		for _, ch := range value {
			if ch < '0' || ch > '9' {
				return false
			}
		}
		return true
	case RuleRegex:
		return r.Pattern.MatchString(value)
	default:
		return true
	}
}
