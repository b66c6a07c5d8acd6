package pkg

import "time"

// Doctor is a practitioner record owned by the healthcare backend.  This
// service only ever reads doctors; creation and editing happen elsewhere.
type Doctor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// Review is a patient review for a doctor, owned by the healthcare backend.
type Review struct {
	ID       int    `json:"id,omitempty"`
	DoctorID int    `json:"doctorId,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Appointment mirrors the backend's appointment resource.  The ID is assigned
// by the backend on creation; AppointmentDate is YYYY-MM-DD and
// AppointmentTime is HH:MM:SS.
type Appointment struct {
	ID              int    `json:"id,omitempty"`
	PatientID       int    `json:"patientId"`
	DoctorID        int    `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason"`
}

// BookingState tracks progress of one in-flight appointment request across
// turns.  Optional fields use zero values for "unset" and are populated
// strictly in order doctor, then date+time, then reason.  Date and Time are
// always set or cleared together.
type BookingState struct {
	PatientID int
	DoctorID  int
	Date      string
	Time      string
	Reason    string
}

// Reset clears everything except the patient identifier, returning the state
// to its initial shape after a successful booking.
func (s *BookingState) Reset() {
	s.DoctorID = 0
	s.Date = ""
	s.Time = ""
	s.Reason = ""
}

// MessageRole describes who authored a transcript message.
type MessageRole string

const (
	RolePatient MessageRole = "patient"
	RoleBot     MessageRole = "bot"
)

// Message is one recorded turn in a conversation transcript.
type Message struct {
	ID        int64       `json:"id"`
	SessionID string      `json:"session_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// ChatRequest is the inbound body for a chat turn.  SessionID is optional;
// clients that omit it share the default conversation.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse carries the assistant's reply for one turn.
type ChatResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}
