package translation

import "testing"

func TestTranslate_KnownKey(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	got, ok := c.Translate("de", "ch.street")
	if !ok {
		t.Fatal("Translate(de, ch.street) ok = false, want true")
	}
	if got != "Strasse" {
		t.Errorf("Translate(de, ch.street) = %q, want Strasse", got)
	}
}

func TestTranslate_RegionalTagUsesPrimarySubtag(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	got, ok := c.Translate("de-CH", "gender.f")
	if !ok || got != "Mädchen" {
		t.Errorf("Translate(de-CH, gender.f) = %q, %t; want Mädchen, true", got, ok)
	}
}

func TestTranslate_MissingKeyFallsThrough(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	tests := []struct {
		name string
		lang string
		key  string
	}{
		{"unknown language", "ja", "ch.street"},
		{"unknown key", "de", "us.state"},
		{"english has no address overrides", "en", "gb.postalCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, ok := c.Translate(tt.lang, tt.key); ok {
				t.Errorf("Translate(%q, %q) = %q, want no override", tt.lang, tt.key, got)
			}
		})
	}
}

func TestTranslate_GenderLabelsPerLanguage(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	tests := []struct {
		lang string
		want string
	}{
		{"de", "Junge"},
		{"fr", "Garçon"},
		{"en", "Boy"},
	}

	for _, tt := range tests {
		got, ok := c.Translate(tt.lang, "gender.m")
		if !ok || got != tt.want {
			t.Errorf("Translate(%q, gender.m) = %q, %t; want %q, true", tt.lang, got, ok, tt.want)
		}
	}
}
