package filter

import (
	"reflect"
	"testing"
)

func TestNormalizeExamples(t *testing.T) {
	f := New()

	tests := []struct {
		token  string
		want   string
		reason Reason
	}{
		{"an", "an", Accepted},
		{"I", "", ReasonTooShort},
		{"Apple", "apple", Accepted},
		// "XVI" is stopped by the inner-uppercase rule before the roman
		// numeral rule sees it.
		{"XVI", "", ReasonInnerUppercase},
		{"Xvi", "", ReasonRomanNumeral},
		{"xvi.", "", ReasonRomanNumeral},
		// Known false positive: every letter of "civil" is a roman numeral letter.
		{"civil", "", ReasonRomanNumeral},
		{"mild", "", ReasonRomanNumeral},
		{"\"Hello,", "hello", Accepted},
		{"(world).", "world", Accepted},
		{"--dash--", "dash", Accepted},
		{"{[(brace)]}", "brace", Accepted},
		{"", "", ReasonTooShort},
		{"...", "", ReasonTooShort},
		{"a.", "", ReasonTooShort},
		{"don't", "", ReasonNonAlpha},
		{"hello\r", "", ReasonNonAlpha},
		{"abc123", "", ReasonNonAlpha},
		{"café", "", ReasonNonAlpha},
		{"endOf", "", ReasonInnerUppercase},
		{"NASA", "", ReasonInnerUppercase},
		{"rhythm", "", ReasonNoVowel},
		{"Mm", "", ReasonNoVowel},
		{"Mix", "", ReasonRomanNumeral},
		{"Mixer", "mixer", Accepted},
	}

	for _, tt := range tests {
		got, reason := f.Check(tt.token)
		if got != tt.want || reason != tt.reason {
			t.Errorf("Check(%q) = (%q, %v), expected (%q, %v)", tt.token, got, reason, tt.want, tt.reason)
		}
		word, ok := f.Normalize(tt.token)
		if ok != (tt.reason == Accepted) || word != tt.want {
			t.Errorf("Normalize(%q) = (%q, %v)", tt.token, word, ok)
		}
	}
}

func TestNormalizeIsPure(t *testing.T) {
	f := New()
	for _, tok := range []string{"Apple", "civil", "I", "word;"} {
		w1, r1 := f.Check(tok)
		w2, r2 := f.Check(tok)
		if w1 != w2 || r1 != r2 {
			t.Errorf("Check(%q) not deterministic: (%q,%v) vs (%q,%v)", tok, w1, r1, w2, r2)
		}
	}
}

func TestDefaultRuleOrder(t *testing.T) {
	expected := []string{
		"trim",
		"min-length",
		"ascii-alpha",
		"inner-uppercase",
		"lowercase",
		"vowel",
		"roman-numeral",
	}
	if got := New().Rules(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected rule order %v, got %v", expected, got)
	}
}

func TestLengthCheckedAfterTrim(t *testing.T) {
	// Trimming runs first, so punctuation cannot pad a single letter past
	// the length rule.
	if _, reason := New().Check("'a'"); reason != ReasonTooShort {
		t.Errorf("Expected too_short, got %v", reason)
	}
}

func TestCustomRules(t *testing.T) {
	f := New(Rule{Name: "min-length", Reject: ReasonTooShort, Apply: keep(HasMinLength)})

	word, ok := f.Normalize("XVI")
	if !ok || word != "XVI" {
		t.Errorf("Custom chain should accept XVI unchanged, got (%q, %v)", word, ok)
	}
}

func TestTrimPunctuation(t *testing.T) {
	tests := map[string]string{
		`"quoted"`:   "quoted",
		"end.":       "end",
		"&amp;":      "amp",
		"in-between": "in-between",
		"!bang!":     "!bang!",
		"":           "",
	}
	for in, want := range tests {
		if got := TrimPunctuation(in); got != want {
			t.Errorf("TrimPunctuation(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestPredicates(t *testing.T) {
	if HasMinLength("a") || !HasMinLength("ab") {
		t.Error("HasMinLength boundary is 2")
	}
	if !IsASCIIAlpha("HelloWorld") || IsASCIIAlpha("hello world") || IsASCIIAlpha("naïve") {
		t.Error("IsASCIIAlpha misclassified input")
	}
	if HasInnerUppercase("Hello") || !HasInnerUppercase("hEllo") {
		t.Error("HasInnerUppercase should ignore the first character only")
	}
	if !HasVowel("sky and") || HasVowel("sky") || HasVowel("AEIOU") {
		t.Error("HasVowel only checks lowercase vowels")
	}
	if !IsRomanNumeral("mcmxc") || IsRomanNumeral("mcmxcz") {
		t.Error("IsRomanNumeral misclassified input")
	}
}

func TestReasonString(t *testing.T) {
	seen := make(map[string]bool)
	for r := Accepted; r < NumReasons; r++ {
		s := r.String()
		if s == "unknown" || seen[s] {
			t.Errorf("Reason %d has bad label %q", int(r), s)
		}
		seen[s] = true
	}
	if NumReasons.String() != "unknown" {
		t.Error("Out of range reason should be unknown")
	}
}
