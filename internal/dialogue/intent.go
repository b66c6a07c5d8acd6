// Package dialogue implements the booking conversation: a rule-based intent
// classifier and the state machine that drives a multi-turn appointment
// booking against the healthcare backend.
package dialogue

import (
	"strings"

	"careline-chatbot/pkg"
)

// IntentKind identifies one of the fixed dialogue actions a user turn can
// map to.
type IntentKind string

const (
	KindGreeting      IntentKind = "greeting"
	KindSymptomReport IntentKind = "symptom_report"
	KindDoctorDetails IntentKind = "doctor_details"
	KindBooking       IntentKind = "booking_request"
	KindDateTime      IntentKind = "datetime_provided"
	KindReason        IntentKind = "reason_provided"
	KindFallback      IntentKind = "fallback"
)

// Intent is the classification of a single normalized utterance.  Utterance
// carries the normalized input for rules that need to re-inspect it
// (doctor-name matching, date parsing).  Specialization is set only for
// symptom reports.
type Intent struct {
	Kind           IntentKind
	Specialization string
	Utterance      string
}

// symptomRule maps a symptom keyword to the specialization to suggest.
// Order matters: the first keyword found in the utterance wins.
type symptomRule struct {
	Keyword        string
	Specialization string
}

// rule is one ordered classification rule: a predicate over the normalized
// utterance and current booking state, and the kind it yields on match.
type rule struct {
	kind    IntentKind
	matches func(utterance string, state *pkg.BookingState) bool
}

// Classifier maps a normalized utterance to exactly one Intent using an
// ordered, first-match-wins rule list.  The ordering is policy: it resolves
// ambiguous utterances deterministically.
type Classifier struct {
	symptoms []symptomRule
	rules    []rule
}

// NewClassifier builds the classifier with the fixed rule set.
func NewClassifier() *Classifier {
	c := &Classifier{
		symptoms: []symptomRule{
			{Keyword: "chest pain", Specialization: "Cardiology"},
			{Keyword: "fever", Specialization: "General Medicine"},
		},
	}
	c.rules = []rule{
		{kind: KindGreeting, matches: func(u string, _ *pkg.BookingState) bool {
			return strings.Contains(u, "hello") || strings.Contains(u, "hi")
		}},
		{kind: KindSymptomReport, matches: func(u string, _ *pkg.BookingState) bool {
			return c.matchSymptom(u) != ""
		}},
		{kind: KindDoctorDetails, matches: func(u string, _ *pkg.BookingState) bool {
			return strings.Contains(u, "details") && strings.Contains(u, "dr.")
		}},
		{kind: KindBooking, matches: func(u string, st *pkg.BookingState) bool {
			return strings.Contains(u, "book") && st.DoctorID != 0
		}},
		{kind: KindDateTime, matches: func(_ string, st *pkg.BookingState) bool {
			return st.DoctorID != 0 && st.Date == ""
		}},
		{kind: KindReason, matches: func(_ string, st *pkg.BookingState) bool {
			return st.DoctorID != 0 && st.Date != "" && st.Reason == ""
		}},
	}
	return c
}

// Classify returns the single intent for a lowercased, trimmed utterance
// given the current booking state.  Rules are evaluated in order and the
// first match wins; anything unmatched is a fallback turn.
func (c *Classifier) Classify(utterance string, state *pkg.BookingState) Intent {
	for _, r := range c.rules {
		if r.matches(utterance, state) {
			intent := Intent{Kind: r.kind, Utterance: utterance}
			if r.kind == KindSymptomReport {
				intent.Specialization = c.matchSymptom(utterance)
			}
			return intent
		}
	}
	return Intent{Kind: KindFallback, Utterance: utterance}
}

// matchSymptom returns the specialization for the first symptom keyword
// appearing in the utterance, or "" when none match.
func (c *Classifier) matchSymptom(utterance string) string {
	for _, s := range c.symptoms {
		if strings.Contains(utterance, s.Keyword) {
			return s.Specialization
		}
	}
	return ""
}
