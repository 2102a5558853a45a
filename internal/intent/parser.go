// Package intent classifies free-text utterances into structured domain
// actions via an ordered cascade of pattern matchers.
package intent

import "strings"

// #region cascade

// matcher returns a populated Intent on success, nil to let the cascade
// continue. It receives the lowered utterance and the trimmed original.
type matcherFunc func(lower, raw string) *Intent

type matcher struct {
	name  string
	match matcherFunc
}

// cascade is evaluated in order, first match wins. The order is a tie-break
// policy, not an implementation detail: "drank 2 glasses of water" must
// resolve to hydration before nutrition ever sees "drank". Do not reorder
// without updating the ordering tests.
var cascade = []matcher{
	{"hydration", matchHydration},
	{"sleep", matchSleep},
	{"steps", matchSteps},
	{"task", matchTask},
	{"finance", matchFinance},
	{"nutrition", matchNutrition},
}

// #endregion

// #region parse

// Parse classifies a raw utterance. It never fails: unrecognized input
// yields DomainUnknown with zero confidence and confirmation required.
func Parse(raw string) Intent {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	if lower != "" {
		for _, m := range cascade {
			if in := m.match(lower, trimmed); in != nil {
				in.RawTranscript = raw
				return *in
			}
		}
	}

	return Intent{
		Domain:               DomainUnknown,
		Confidence:           0,
		RawTranscript:        raw,
		RequiresConfirmation: true,
	}
}

// #endregion
