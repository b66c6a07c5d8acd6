// Package backend provides a client for the healthcare API that owns
// doctors, reviews and appointments.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"careline-chatbot/pkg"

	"go.uber.org/zap"
)

// BookingError is returned when the backend declines an appointment
// creation.  Message carries the backend's explanation when it provided one.
type BookingError struct {
	StatusCode int
	Message    string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("backend: appointment rejected (status %d): %s", e.StatusCode, e.Message)
}

// Client is a thin synchronous wrapper over the backend's REST endpoints.
// Calls block for at most the HTTP client's timeout and are never retried;
// callers translate failures into user-facing degraded replies.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for degraded-call warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient constructs a Client for the given base URL, e.g.
// "http://localhost:8080/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDoctors fetches doctors, optionally filtered by specialization.  Any
// transport failure or non-success status degrades to an empty slice.
func (c *Client) ListDoctors(ctx context.Context, specialization string) ([]pkg.Doctor, error) {
	endpoint := c.baseURL + "/doctors"
	if specialization != "" {
		endpoint += "?specialization=" + url.QueryEscape(specialization)
	}
	var doctors []pkg.Doctor
	if err := c.getJSON(ctx, endpoint, &doctors); err != nil {
		c.logger.Warn("doctor listing failed", zap.String("specialization", specialization), zap.Error(err))
		return nil, err
	}
	return doctors, nil
}

// ListReviews fetches all reviews for a doctor.  Failures degrade to an
// empty slice.
func (c *Client) ListReviews(ctx context.Context, doctorID int) ([]pkg.Review, error) {
	endpoint := fmt.Sprintf("%s/reviews/doctor/%d", c.baseURL, doctorID)
	var reviews []pkg.Review
	if err := c.getJSON(ctx, endpoint, &reviews); err != nil {
		c.logger.Warn("review listing failed", zap.Int("doctor_id", doctorID), zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

// ListDoctorAppointments fetches a doctor's existing appointments.  The
// result is currently used only as an existence probe before availability is
// computed.
func (c *Client) ListDoctorAppointments(ctx context.Context, doctorID int) ([]pkg.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/doctor/%d", c.baseURL, doctorID)
	var appointments []pkg.Appointment
	if err := c.getJSON(ctx, endpoint, &appointments); err != nil {
		c.logger.Warn("appointment listing failed", zap.Int("doctor_id", doctorID), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// CreateAppointment asks the backend to create an appointment.  On a 201 the
// created record (including its assigned ID) is returned; any other status
// yields a *BookingError carrying the backend's message when decodable.
func (c *Client) CreateAppointment(ctx context.Context, appt pkg.Appointment) (*pkg.Appointment, error) {
	body, err := json.Marshal(appt)
	if err != nil {
		return nil, fmt.Errorf("backend: failed to encode appointment: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/appointments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("backend: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("appointment creation failed", zap.Error(err))
		return nil, fmt.Errorf("backend: appointment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var errBody struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &errBody)
		c.logger.Warn("appointment rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", errBody.Message))
		return nil, &BookingError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	var created pkg.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("backend: failed to decode created appointment: %w", err)
	}
	return &created, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("backend: failed to build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend: unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: failed to decode response: %w", err)
	}
	return nil
}
