// Package filter decides which token candidates count as English words.
//
// A Filter is an ordered list of rules. Each rule either rewrites the token
// (trim, lowercase) or rejects it with a Reason. Rules run in a fixed order
// and the first rejection wins, so the interaction between rules (a word
// like "civil" passes the vowel rule and is then rejected as a roman
// numeral) is visible and testable.
package filter

import "strings"

// Punctuation is trimmed from both ends of every candidate.
const Punctuation = `'"-&.,;:()[]{}`

const (
	vowels       = "aeiou"
	romanLetters = "ivxlcdm"
	minLength    = 2
)

// Reason says why a candidate was rejected.
type Reason int

const (
	Accepted Reason = iota
	ReasonTooShort
	ReasonNonAlpha
	ReasonInnerUppercase
	ReasonNoVowel
	ReasonRomanNumeral

	// NumReasons sizes per-reason tallies.
	NumReasons
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case ReasonTooShort:
		return "too_short"
	case ReasonNonAlpha:
		return "non_alpha"
	case ReasonInnerUppercase:
		return "inner_uppercase"
	case ReasonNoVowel:
		return "no_vowel"
	case ReasonRomanNumeral:
		return "roman_numeral"
	default:
		return "unknown"
	}
}

// Rule is one step of the chain. Apply returns the (possibly rewritten)
// word and whether it survives; Reject is reported when it does not.
type Rule struct {
	Name   string
	Reject Reason
	Apply  func(word string) (string, bool)
}

// Filter applies its rules in order. It holds no mutable state and is safe
// for concurrent use.
type Filter struct {
	rules []Rule
}

// New creates a filter from rules. With no rules it uses DefaultRules.
func New(rules ...Rule) *Filter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Filter{rules: rules}
}

// DefaultRules returns the word rules in the order they must run.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "trim", Apply: func(w string) (string, bool) {
			return TrimPunctuation(w), true
		}},
		{Name: "min-length", Reject: ReasonTooShort, Apply: keep(HasMinLength)},
		{Name: "ascii-alpha", Reject: ReasonNonAlpha, Apply: keep(IsASCIIAlpha)},
		{Name: "inner-uppercase", Reject: ReasonInnerUppercase, Apply: keep(func(w string) bool {
			return !HasInnerUppercase(w)
		})},
		{Name: "lowercase", Apply: func(w string) (string, bool) {
			return strings.ToLower(w), true
		}},
		{Name: "vowel", Reject: ReasonNoVowel, Apply: keep(HasVowel)},
		{Name: "roman-numeral", Reject: ReasonRomanNumeral, Apply: keep(func(w string) bool {
			return !IsRomanNumeral(w)
		})},
	}
}

func keep(pred func(string) bool) func(string) (string, bool) {
	return func(w string) (string, bool) {
		return w, pred(w)
	}
}

// Rules returns the names of the rules in application order.
func (f *Filter) Rules() []string {
	names := make([]string, len(f.rules))
	for i, r := range f.rules {
		names[i] = r.Name
	}
	return names
}

// Check runs token through the chain and reports the normalized word, or
// the reason of the first rule that rejected it.
func (f *Filter) Check(token string) (string, Reason) {
	word := token
	for _, r := range f.rules {
		var ok bool
		word, ok = r.Apply(word)
		if !ok {
			return "", r.Reject
		}
	}
	return word, Accepted
}

// Normalize returns the normalized word and true if token is accepted.
func (f *Filter) Normalize(token string) (string, bool) {
	word, reason := f.Check(token)
	return word, reason == Accepted
}

// TrimPunctuation strips Punctuation from both ends of s.
func TrimPunctuation(s string) string {
	return strings.Trim(s, Punctuation)
}

// HasMinLength reports whether s is at least two bytes long.
func HasMinLength(s string) bool {
	return len(s) >= minLength
}

// IsASCIIAlpha reports whether every byte of s is an ASCII letter.
func IsASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// HasInnerUppercase reports whether any character after the first is an
// ASCII capital, which catches run-together words like "endOf".
func HasInnerUppercase(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// HasVowel reports whether s contains a lowercase a, e, i, o or u.
func HasVowel(s string) bool {
	return strings.ContainsAny(s, vowels)
}

// IsRomanNumeral reports whether s is made only of the letters i, v, x, l,
// c, d and m. Ordinary words such as "civil" or "mild" also match.
func IsRomanNumeral(s string) bool {
	return strings.Trim(s, romanLetters) == ""
}
