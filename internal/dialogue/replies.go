package dialogue

// replies.go collects the user-visible reply text for every branch of the
// booking flow.  Keeping them in one file makes wording tweaks cheap and
// keeps the transition code readable.

const (
	// ReplyGreeting opens the conversation and invites the patient to
	// describe their issue.
	ReplyGreeting = "Hello! I'm your healthcare assistant. Tell me about your health issue or ask how I can help."

	// ReplyNoDoctors is returned when no doctor matches the suggested
	// specialization, or the backend could not be reached.
	ReplyNoDoctors = "No doctors available for that issue. Please try again later."

	// ReplyDoctorNotFound is returned when a details request names no known
	// doctor.
	ReplyDoctorNotFound = "Doctor not found. Please specify a valid doctor."

	// ReplyNoSlots is returned when no availability can be offered for the
	// selected doctor.
	ReplyNoSlots = "No available slots. Please try another doctor or time."

	// ReplyAskReason acknowledges the chosen slot and asks for the visit
	// reason.
	ReplyAskReason = "Got the date and time. Please provide a reason for the visit (e.g., 'check-up')."

	// ReplyDateTimeFormat is returned when a date/time utterance cannot be
	// split into a date and a time.
	ReplyDateTimeFormat = "Please provide date and time in format 'YYYY-MM-DD HH:MM:SS'."

	// ReplyBookingFailedDefault is the booking-failure detail used when the
	// backend supplies no message of its own.
	ReplyBookingFailedDefault = "Try again later."

	// ReplyUnavailable is the last-resort answer when even the fallback
	// conversation engine cannot produce one.
	ReplyUnavailable = "Sorry, I couldn't process that right now. Please try again."
)

const (
	// fmtSuggestDoctors lists candidate doctors for a reported symptom:
	// specialization, then the formatted doctor options.
	fmtSuggestDoctors = "Based on your issue, I suggest a %s specialist. Options: %s. Want details on any doctor or to book?"

	// fmtDoctorOption formats one doctor entry: name, id, specialization,
	// average rating.
	fmtDoctorOption = "Dr. %s (id: %d, %s, %.1f/5)"

	// fmtDoctorDetails describes a single doctor: name, specialization,
	// rating, feedback excerpt.
	fmtDoctorDetails = "Dr. %s specializes in %s, rated %.1f/5. Feedback: %s. Book an appointment?"

	// fmtSlotList offers available slots and prompts for a choice.
	fmtSlotList = "Great! Available slots for the selected doctor: %s. Please provide a date and time (e.g., '2025-08-20 10:00:00')."

	// fmtBookingConfirmed confirms a created appointment: id, date, time.
	fmtBookingConfirmed = "Appointment booked with ID #%d for %s %s with the selected doctor. Confirmation coming soon! Anything else?"

	// fmtBookingFailed reports a rejected creation with the backend's detail.
	fmtBookingFailed = "Booking failed: %s"
)
