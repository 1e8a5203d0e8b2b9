package strength

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Category
	}{
		// all four classes present
		{"four classes short", "Ab3!", VeryWeak},
		{"four classes length 7", "Ab3!efg", Weak},
		{"four classes length 10", "Ab3!efghij", Weak},
		{"four classes length 11", "Ab3!efghijk", Moderate},
		{"four classes length 12", "Ab3!efghijkl", Moderate},
		{"four classes length 13", "Ab3!efghijklm", Strong},
		{"four classes long", "Ab3!longerthanthirteenchars", Strong},

		// digit + mixed case, no symbol
		{"three classes length 6", "Ab3def", VeryWeak},
		{"three classes length 7", "Ab3defg", Weak},
		{"three classes length 11", "Ab3defghijk", Moderate},
		{"three classes length 13", "Ab3defghijklm", Moderate},
		{"three classes length 14", "Ab3defghijklmn", Strong},

		// mixed case only
		{"mixed case length 7", "Abcdefg", Weak},
		{"mixed case length 11", "Abcdefghijk", Weak},
		{"mixed case length 12", "Abcdefghijkl", Moderate},
		{"mixed case length 14", "Abcdefghijklmn", Moderate},
		{"mixed case length 15", "Abcdefghijklmno", Strong},

		// single case
		{"lower only length 8", "abcdefgh", VeryWeak},
		{"lower only length 9", "abcdefghi", Weak},
		{"lower only length 13", "abcdefghijklm", Weak},
		{"lower only length 14", "abcdefghijklmn", Moderate},
		{"upper only length 16", "ABCDEFGHIJKLMNOP", Moderate},
		{"lower only length 17", "abcdefghijklmnopq", Moderate},
		{"lower only length 18", "abcdefghijklmnopqr", Strong},

		// no letters: always VeryWeak, length is irrelevant
		{"empty", "", VeryWeak},
		{"digits only", "12345678", VeryWeak},
		{"digits only long", "12345678901234567890123456", VeryWeak},
		{"symbols only", "!!!!!!!!!!!!!!!!!!!!", VeryWeak},
		{"digits and symbols", "123!456!789!123!456!", VeryWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.password)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestClassifyUnicode(t *testing.T) {
	// Character classes are Unicode-aware, not ASCII-only, and length counts
	// runes rather than bytes.
	tests := []struct {
		name     string
		password string
		want     Category
	}{
		// 'Ä' is upper, 'ü' is lower, '٣' (Arabic-Indic three) is a digit,
		// '€' is neither letter nor digit
		{"unicode four classes", "Äü٣€abcdefghi", Strong},
		{"unicode mixed case", "Äüßßßßßßßßßßßßß", Strong},
		{"cyrillic lower only", "парольпаро", Weak},
		{"unicode digits only", "٣٣٣٣٣٣٣٣٣٣", VeryWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.password)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	passwords := []string{"", "abc", "Ab3!efghijk", "12345678"}
	for _, p := range passwords {
		first := Classify(p)
		for i := 0; i < 10; i++ {
			if got := Classify(p); got != first {
				t.Fatalf("Classify(%q) not deterministic: %v then %v", p, first, got)
			}
		}
	}
}

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		category Category
		key      string
	}{
		{VeryWeak, "very_weak"},
		{Weak, "weak"},
		{Moderate, "moderate"},
		{Strong, "strong"},
	}
	for _, tt := range tests {
		if got := tt.category.Key(); got != tt.key {
			t.Errorf("Key() = %q, want %q", got, tt.key)
		}
		if got := tt.category.String(); got != tt.key {
			t.Errorf("String() = %q, want %q", got, tt.key)
		}
	}
}

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category Category
		color    Color
	}{
		{VeryWeak, ColorRed},
		{Weak, ColorRed},
		{Moderate, ColorYellow},
		{Strong, ColorGreen},
	}
	for _, tt := range tests {
		if got := tt.category.Color(); got != tt.color {
			t.Errorf("Color() for %v = %q, want %q", tt.category, got, tt.color)
		}
	}
}
