package phone

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "bare plus",
			raw:  "+",
			want: "+",
		},
		{
			name: "letters only",
			raw:  "call me",
			want: "",
		},
		{
			name: "swiss mobile with plus",
			raw:  "+41791234567",
			want: "+41 791 234 567",
		},
		{
			name: "swiss mobile without plus",
			raw:  "0791234567",
			want: "079 123 456 7",
		},
		{
			name: "nanp one digit country code",
			raw:  "+14155551234",
			want: "+1 415 555 123 4",
		},
		{
			name: "three digit country code in 2xx range",
			raw:  "+212612345678",
			want: "+212 612 345 678",
		},
		{
			name: "interior plus does not become leading plus",
			raw:  "079+123",
			want: "079 123",
		},
		{
			name: "doubled leading plus collapses",
			raw:  "++41 79",
			want: "+41 79",
		},
		{
			name: "punctuation stripped",
			raw:  "(079) 123-45",
			want: "079 12 345",
		},
		{
			name: "seven digits alternate three two",
			raw:  "1234567",
			want: "123 45 67",
		},
		{
			name: "four digits pair up",
			raw:  "1234",
			want: "12 34",
		},
		{
			name: "three digits pair with remainder",
			raw:  "123",
			want: "12 3",
		},
		{
			name: "five digits use triples",
			raw:  "12345",
			want: "123 45",
		},
		{
			name: "six digits use triples",
			raw:  "123456",
			want: "123 456",
		},
		{
			name: "country code only",
			raw:  "+49",
			want: "+49",
		},
		{
			name: "single digit after plus",
			raw:  "+2",
			want: "+2",
		},
		{
			name: "plus one only",
			raw:  "+1",
			want: "+1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.raw); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"+41791234567",
		"0791234567",
		"+14155551234",
		"+212612345678",
		"1234567",
		"+",
		"",
	}

	for _, raw := range inputs {
		once := Format(raw)
		twice := Format(once)
		if once != twice {
			t.Errorf("Format not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestFormat_CountryCodeHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "first digit 1 takes one digit",
			raw:  "+1234",
			want: "+1 23 4",
		},
		{
			name: "first digit 4 takes two digits",
			raw:  "+4479123",
			want: "+44 791 23",
		},
		{
			name: "2xx takes three digits",
			raw:  "+25512345",
			want: "+255 123 45",
		},
		{
			name: "9xx still takes two digits",
			raw:  "+97123456",
			want: "+97 123 456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.raw); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
