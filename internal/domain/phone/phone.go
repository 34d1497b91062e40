// Package phone normalizes raw phone-number input into a canonical,
// space-grouped international representation. Formatting is a pure function
// of the extracted digit sequence and the leading-plus flag, so re-running
// it on its own output is a no-op.
package phone

import (
	"strconv"
	"strings"
)

// Format normalizes raw phone input. It strips everything except digits and
// "+", keeps a single leading "+" only when the input started with one,
// splits off the country code after a leading "+", and groups the remaining
// digits with spaces. It is total: the worst cases return "" or "+".
//
// The country-code split is a heuristic (first digit 1 is a one-digit code,
// 2xx codes are three digits, everything else two), not a numbering-plan
// lookup. Some three-digit codes outside 2xx are misclassified; callers
// depend on the exact current output, so keep the behavior stable.
func Format(raw string) string {
	var stripped strings.Builder
	for _, ch := range raw {
		if ch == '+' || (ch >= '0' && ch <= '9') {
			stripped.WriteRune(ch)
		}
	}

	kept := stripped.String()
	hasPlus := strings.HasPrefix(kept, "+")
	digits := strings.ReplaceAll(kept, "+", "")

	if digits == "" {
		if hasPlus {
			return "+"
		}
		return ""
	}

	var out strings.Builder
	rest := digits
	if hasPlus {
		ccLen := countryCodeLength(digits)
		if ccLen > len(digits) {
			ccLen = len(digits)
		}
		out.WriteByte('+')
		out.WriteString(digits[:ccLen])
		rest = digits[ccLen:]
	}

	groups := group(rest)
	if len(groups) > 0 {
		if hasPlus {
			out.WriteByte(' ')
		}
		out.WriteString(strings.Join(groups, " "))
	}
	return out.String()
}

// countryCodeLength guesses how many leading digits form the international
// dialing prefix.
func countryCodeLength(digits string) int {
	if digits[0] == '1' {
		return 1
	}
	if digits[0] >= '2' && digits[0] <= '9' && len(digits) >= 3 {
		if v, err := strconv.Atoi(digits[:3]); err == nil && v >= 200 && v <= 299 {
			return 3
		}
	}
	return 2
}

// group splits digits into space-ready runs. Short numbers get pairs, medium
// ones triples, lengths in (6,8] alternate 3,2 starting with 3, and anything
// longer than 8 uses fixed triples. The last group may be shorter.
func group(digits string) []string {
	n := len(digits)
	if n == 0 {
		return nil
	}

	var groups []string
	for i := 0; len(digits) > 0; i++ {
		size := groupSize(n, i)
		if size > len(digits) {
			size = len(digits)
		}
		groups = append(groups, digits[:size])
		digits = digits[size:]
	}
	return groups
}

func groupSize(total, index int) int {
	switch {
	case total <= 4:
		return 2
	case total <= 6:
		return 3
	case total <= 8:
		if index%2 == 1 {
			return 2
		}
		return 3
	default:
		return 3
	}
}
