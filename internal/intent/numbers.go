package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// #region number-words

// numberWords maps spelled-out counts to values. Articles count as one so
// "a glass of water" reads as one glass.
var numberWords = map[string]float64{
	"a": 1, "an": 1, "one": 1,
	"two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"half": 0.5,
}

// #endregion

// #region extraction

var (
	digitPattern   = regexp.MustCompile(`\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?`)
	groupedPattern = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+$`)
)

// tokenValue parses a single token as a digit string or number-word.
// Speech transcripts group thousands into one token ("10,000"); the
// separators are dropped before parsing, never truncated at.
func tokenValue(tok string) (float64, bool) {
	tok = strings.Trim(tok, ".,!?$")
	if groupedPattern.MatchString(tok) {
		tok = strings.ReplaceAll(tok, ",", "")
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, true
	}
	v, ok := numberWords[tok]
	return v, ok
}

// firstNumber returns the leftmost numeric token in the text, digit or
// number-word. Falls back to a bare digit scan for glued tokens like
// "10000steps".
func firstNumber(lower string) (float64, bool) {
	for _, tok := range strings.Fields(lower) {
		if v, ok := tokenValue(tok); ok {
			return v, true
		}
	}
	if m := digitPattern.FindString(lower); m != "" {
		m = strings.ReplaceAll(m, ",", "")
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// quantityBefore scans only the text preceding a noun mention and returns the
// nearest quantity before it, defaulting to 1. Quantities appearing after the
// noun are deliberately not honored.
func quantityBefore(prefix string) float64 {
	tokens := strings.Fields(prefix)
	for i := len(tokens) - 1; i >= 0; i-- {
		if v, ok := tokenValue(tokens[i]); ok {
			return v
		}
	}
	return 1
}

// #endregion
