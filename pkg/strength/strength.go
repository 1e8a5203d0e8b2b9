// Package strength classifies password strength from character composition
// and length. Classification is a pure function; rendering and translation of
// the resulting category are owned by callers.
package strength

import (
	"unicode"
	"unicode/utf8"
)

// Category represents a password strength bucket, ordered weakest to strongest.
type Category int

const (
	VeryWeak Category = iota
	Weak
	Moderate
	Strong
)

// Color identifies the display color associated with a category.
type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
)

// keys are the stable, untranslated identifiers handed to UI layers for
// localization. They never change even if display wording does.
var keys = map[Category]string{
	VeryWeak: "very_weak",
	Weak:     "weak",
	Moderate: "moderate",
	Strong:   "strong",
}

var colors = map[Category]Color{
	VeryWeak: ColorRed,
	Weak:     ColorRed,
	Moderate: ColorYellow,
	Strong:   ColorGreen,
}

// Key returns the stable untranslated identifier for the category.
func (c Category) Key() string {
	return keys[c]
}

// Color returns the fixed display color for the category.
func (c Category) Color() Color {
	return colors[c]
}

func (c Category) String() string {
	return keys[c]
}

// Classify maps a password to a strength category. It is total over all
// strings: the empty string and arbitrarily long inputs both resolve to a
// category, never an error.
func Classify(password string) Category {
	var digit, upper, lower, symbol bool
	for _, r := range password {
		if unicode.IsDigit(r) {
			digit = true
		}
		if unicode.IsUpper(r) {
			upper = true
		}
		if unicode.IsLower(r) {
			lower = true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			symbol = true
		}
	}
	return score(digit, upper, lower, symbol, utf8.RuneCountInString(password))
}

// score selects the composition tier and maps length onto a category using
// that tier's bands. Tiers are checked most-demanding first, so each branch
// implies the previous ones did not match. Passwords with no letters at all
// (digits or symbols only) fall through and are always VeryWeak regardless of
// length; this floor is intentional.
func score(digit, upper, lower, symbol bool, length int) Category {
	switch {
	case digit && upper && lower && symbol:
		return fromBands(length, 7, 11, 13)
	case digit && upper && lower:
		return fromBands(length, 7, 11, 14)
	case upper && lower:
		return fromBands(length, 7, 12, 15)
	case lower || upper:
		return fromBands(length, 9, 14, 18)
	}
	return VeryWeak
}

// fromBands resolves a length against a tier's lower bounds for the Weak,
// Moderate and Strong bands. Anything below weakMin is VeryWeak.
func fromBands(length, weakMin, moderateMin, strongMin int) Category {
	switch {
	case length >= strongMin:
		return Strong
	case length >= moderateMin:
		return Moderate
	case length >= weakMin:
		return Weak
	}
	return VeryWeak
}
