package dialogue

import (
	"testing"

	"careline-chatbot/pkg"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGreeting(t *testing.T) {
	c := NewClassifier()
	states := []pkg.BookingState{
		{PatientID: 15},
		{PatientID: 15, DoctorID: 1},
		{PatientID: 15, DoctorID: 1, Date: "2025-08-20", Time: "10:00:00"},
		{PatientID: 15, DoctorID: 1, Date: "2025-08-20", Time: "10:00:00", Reason: "check-up"},
	}
	for _, st := range states {
		before := st
		intent := c.Classify("hello there", &st)
		assert.Equal(t, KindGreeting, intent.Kind)
		assert.Equal(t, before, st, "classification must not mutate state")

		intent = c.Classify("hi", &st)
		assert.Equal(t, KindGreeting, intent.Kind)
	}
}

func TestClassifyGreetingBeatsSymptom(t *testing.T) {
	c := NewClassifier()
	st := pkg.BookingState{PatientID: 15}
	intent := c.Classify("hi, i have chest pain", &st)
	assert.Equal(t, KindGreeting, intent.Kind)
}

func TestClassifySymptoms(t *testing.T) {
	c := NewClassifier()
	st := pkg.BookingState{PatientID: 15}

	intent := c.Classify("i have a fever", &st)
	assert.Equal(t, KindSymptomReport, intent.Kind)
	assert.Equal(t, "General Medicine", intent.Specialization)

	intent = c.Classify("i have chest pain", &st)
	assert.Equal(t, KindSymptomReport, intent.Kind)
	assert.Equal(t, "Cardiology", intent.Specialization)

	// Keyword precedence is fixed: chest pain wins when both appear.
	intent = c.Classify("chest pain and fever", &st)
	assert.Equal(t, "Cardiology", intent.Specialization)
	intent = c.Classify("fever and chest pain", &st)
	assert.Equal(t, "Cardiology", intent.Specialization)
}

func TestClassifyDoctorDetails(t *testing.T) {
	c := NewClassifier()
	st := pkg.BookingState{PatientID: 15}

	intent := c.Classify("details about dr. smith", &st)
	assert.Equal(t, KindDoctorDetails, intent.Kind)
	assert.Equal(t, "details about dr. smith", intent.Utterance)

	// Both keywords are required.
	intent = c.Classify("details please", &st)
	assert.Equal(t, KindFallback, intent.Kind)
	intent = c.Classify("tell me about dr. smith", &st)
	assert.Equal(t, KindFallback, intent.Kind)
}

func TestClassifyBookingRequiresDoctor(t *testing.T) {
	c := NewClassifier()

	st := pkg.BookingState{PatientID: 15}
	intent := c.Classify("book", &st)
	assert.Equal(t, KindFallback, intent.Kind)

	st.DoctorID = 3
	intent = c.Classify("book", &st)
	assert.Equal(t, KindBooking, intent.Kind)
}

func TestClassifyStateDependentSteps(t *testing.T) {
	c := NewClassifier()

	st := pkg.BookingState{PatientID: 15, DoctorID: 3}
	intent := c.Classify("2025-08-20 10:00:00", &st)
	assert.Equal(t, KindDateTime, intent.Kind)

	st.Date = "2025-08-20"
	st.Time = "10:00:00"
	intent = c.Classify("check-up", &st)
	assert.Equal(t, KindReason, intent.Kind)

	// With reason already set, nothing structured matches any more.
	st.Reason = "check-up"
	intent = c.Classify("check-up", &st)
	assert.Equal(t, KindFallback, intent.Kind)
}

func TestClassifyFallback(t *testing.T) {
	c := NewClassifier()
	st := pkg.BookingState{PatientID: 15}
	intent := c.Classify("what are your opening hours?", &st)
	assert.Equal(t, KindFallback, intent.Kind)
}
