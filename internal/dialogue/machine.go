package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careline-chatbot/internal/backend"
	"careline-chatbot/pkg"

	"go.uber.org/zap"
)

// Backend is the slice of the healthcare API the state machine needs.
type Backend interface {
	ListDoctors(ctx context.Context, specialization string) ([]pkg.Doctor, error)
	AggregateReviews(ctx context.Context, doctorID int) (float64, string)
	ListDoctorAppointments(ctx context.Context, doctorID int) ([]pkg.Appointment, error)
	CreateAppointment(ctx context.Context, appt pkg.Appointment) (*pkg.Appointment, error)
}

// SlotProvider derives the slots to offer from a doctor's existing
// appointments.  FixedSlots is the current policy; a real calendar
// computation can be swapped in without touching the transitions.
type SlotProvider func(existing []pkg.Appointment) []string

// FixedSlots ignores existing bookings and always offers the same
// illustrative pair.  Placeholder availability, kept deliberately.
func FixedSlots(_ []pkg.Appointment) []string {
	return []string{"2025-08-20 10:00:00", "2025-08-21 14:00:00"}
}

// Machine executes booking-flow transitions.  Every transition is total: a
// backend or parse failure degrades to that branch's failure reply, and no
// error ever reaches the caller.
type Machine struct {
	backend Backend
	slots   SlotProvider
	logger  *zap.Logger
}

// NewMachine constructs a Machine.  A nil slot provider means FixedSlots and
// a nil logger is replaced by a no-op one.
func NewMachine(backend Backend, slots SlotProvider, logger *zap.Logger) *Machine {
	if slots == nil {
		slots = FixedSlots
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{backend: backend, slots: slots, logger: logger}
}

// Transition runs the state-machine step for a classified intent, mutating
// the booking state in place and returning the reply for this turn.
func (m *Machine) Transition(ctx context.Context, intent Intent, state *pkg.BookingState) string {
	switch intent.Kind {
	case KindGreeting:
		return ReplyGreeting
	case KindSymptomReport:
		return m.suggestDoctors(ctx, intent.Specialization)
	case KindDoctorDetails:
		return m.doctorDetails(ctx, intent.Utterance, state)
	case KindBooking:
		return m.offerSlots(ctx, state)
	case KindDateTime:
		return m.recordDateTime(intent.Utterance, state)
	case KindReason:
		return m.book(ctx, intent.Utterance, state)
	default:
		// Fallback turns are handled by the conversation engine upstream.
		return ReplyUnavailable
	}
}

func (m *Machine) suggestDoctors(ctx context.Context, specialization string) string {
	doctors, err := m.backend.ListDoctors(ctx, specialization)
	if err != nil || len(doctors) == 0 {
		return ReplyNoDoctors
	}
	options := make([]string, 0, len(doctors))
	for _, d := range doctors {
		rating, _ := m.backend.AggregateReviews(ctx, d.ID)
		options = append(options, fmt.Sprintf(fmtDoctorOption, d.Name, d.ID, d.Specialization, rating))
	}
	return fmt.Sprintf(fmtSuggestDoctors, specialization, strings.Join(options, ", "))
}

// doctorDetails looks for "dr. <name>" in the utterance across all known
// doctors and, on a match, selects that doctor for the booking in progress.
func (m *Machine) doctorDetails(ctx context.Context, utterance string, state *pkg.BookingState) string {
	doctors, err := m.backend.ListDoctors(ctx, "")
	if err != nil {
		return ReplyDoctorNotFound
	}
	for _, d := range doctors {
		if !strings.Contains(utterance, "dr. "+strings.ToLower(d.Name)) {
			continue
		}
		rating, feedback := m.backend.AggregateReviews(ctx, d.ID)
		state.DoctorID = d.ID
		m.logger.Info("doctor selected", zap.Int("doctor_id", d.ID))
		return fmt.Sprintf(fmtDoctorDetails, d.Name, d.Specialization, rating, feedback)
	}
	return ReplyDoctorNotFound
}

func (m *Machine) offerSlots(ctx context.Context, state *pkg.BookingState) string {
	existing, err := m.backend.ListDoctorAppointments(ctx, state.DoctorID)
	if err != nil {
		return ReplyNoSlots
	}
	slots := m.slots(existing)
	if len(slots) == 0 {
		return ReplyNoSlots
	}
	return fmt.Sprintf(fmtSlotList, strings.Join(slots, ", "))
}

// recordDateTime expects exactly two whitespace-separated tokens: a date and
// a time.  No calendar validation happens here; the backend is the authority
// on whether the slot is real.
func (m *Machine) recordDateTime(utterance string, state *pkg.BookingState) string {
	fields := strings.Fields(utterance)
	if len(fields) != 2 {
		return ReplyDateTimeFormat
	}
	state.Date = fields[0]
	state.Time = fields[1]
	return ReplyAskReason
}

func (m *Machine) book(ctx context.Context, utterance string, state *pkg.BookingState) string {
	state.Reason = strings.TrimSpace(utterance)
	created, err := m.backend.CreateAppointment(ctx, pkg.Appointment{
		PatientID:       state.PatientID,
		DoctorID:        state.DoctorID,
		AppointmentDate: state.Date,
		AppointmentTime: state.Time,
		Reason:          state.Reason,
	})
	if err != nil {
		// Reason stays set so the user can retry the final step.
		detail := ReplyBookingFailedDefault
		var rejection *backend.BookingError
		if errors.As(err, &rejection) && rejection.Message != "" {
			detail = rejection.Message
		}
		m.logger.Warn("booking failed", zap.Int("doctor_id", state.DoctorID), zap.Error(err))
		return fmt.Sprintf(fmtBookingFailed, detail)
	}
	reply := fmt.Sprintf(fmtBookingConfirmed, created.ID, state.Date, state.Time)
	state.Reset()
	m.logger.Info("appointment booked", zap.Int("appointment_id", created.ID))
	return reply
}
