// Package core contains the conversation orchestrator: the per-turn entry
// point that classifies each utterance and dispatches it to the booking
// state machine or the fallback conversation engine.
package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"careline-chatbot/internal/dialogue"
	"careline-chatbot/internal/llm"
	"careline-chatbot/pkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TranscriptStore records turns durably.  The orchestrator treats it as
// best-effort: recording failures are logged and never affect replies.
type TranscriptStore interface {
	RecordTurn(ctx context.Context, sessionID string, role pkg.MessageRole, content string) error
}

// Session holds one conversation's booking state and turn history.  History
// lives only for the process lifetime.
type Session struct {
	ID      string
	State   pkg.BookingState
	History []llm.Message
}

// Orchestrator owns all active sessions and processes one turn at a time.
// Turns are serialized with a single mutex; there is no concurrent turn
// processing against the same state by design.
type Orchestrator struct {
	classifier  *dialogue.Classifier
	machine     *dialogue.Machine
	engine      llm.Engine
	transcripts TranscriptStore
	logger      *zap.Logger
	patientID   int

	mu        sync.Mutex
	sessions  map[string]*Session
	defaultID string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTranscripts enables durable transcript recording.
func WithTranscripts(store TranscriptStore) Option {
	return func(o *Orchestrator) { o.transcripts = store }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// NewOrchestrator constructs an Orchestrator.  The patient ID is fixed per
// process; sessions created later inherit it.
func NewOrchestrator(machine *dialogue.Machine, engine llm.Engine, patientID int, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		classifier: dialogue.NewClassifier(),
		machine:    machine,
		engine:     engine,
		logger:     zap.NewNop(),
		patientID:  patientID,
		sessions:   make(map[string]*Session),
		defaultID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// HandleMessage processes one user turn: normalize, classify, dispatch,
// commit state, append history.  It returns the reply (never empty) and the
// effective session ID.  An empty sessionID selects the default session, so
// clients that never send an ID share one conversation.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID, raw string) (string, string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(raw))
	sess := o.session(sessionID)

	intent := o.classifier.Classify(normalized, &sess.State)
	o.logger.Debug("turn classified",
		zap.String("session_id", sess.ID),
		zap.String("intent", string(intent.Kind)))

	var reply string
	if intent.Kind == dialogue.KindFallback {
		reply = o.fallbackReply(ctx, sess, normalized)
	} else {
		reply = o.machine.Transition(ctx, intent, &sess.State)
	}
	if strings.TrimSpace(reply) == "" {
		reply = dialogue.ReplyUnavailable
	}

	sess.History = append(sess.History,
		llm.Message{Role: llm.RoleUser, Content: normalized},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	o.record(ctx, sess.ID, pkg.RolePatient, raw)
	o.record(ctx, sess.ID, pkg.RoleBot, reply)
	return reply, sess.ID
}

// fallbackReply delegates an unclassified turn to the conversation engine,
// composing the prompt from the accumulated history.
func (o *Orchestrator) fallbackReply(ctx context.Context, sess *Session, utterance string) string {
	prompt := fmt.Sprintf("Based on our conversation: %s, respond to: %s", historyBuffer(sess.History), utterance)
	reply, err := o.engine.Respond(ctx, sess.History, prompt)
	if err != nil {
		o.logger.Warn("conversation engine failed",
			zap.String("session_id", sess.ID), zap.Error(err))
		return dialogue.ReplyUnavailable
	}
	return reply
}

// session returns the session for an ID, creating it on first use.  Callers
// must hold o.mu.
func (o *Orchestrator) session(id string) *Session {
	if id == "" {
		id = o.defaultID
	}
	if s, ok := o.sessions[id]; ok {
		return s
	}
	s := &Session{ID: id, State: pkg.BookingState{PatientID: o.patientID}}
	o.sessions[id] = s
	o.logger.Info("session created", zap.String("session_id", id))
	return s
}

func (o *Orchestrator) record(ctx context.Context, sessionID string, role pkg.MessageRole, content string) {
	if o.transcripts == nil {
		return
	}
	if err := o.transcripts.RecordTurn(ctx, sessionID, role, content); err != nil {
		o.logger.Warn("transcript recording failed",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

// historyBuffer renders history as alternating speaker-prefixed lines for
// inclusion in the fallback prompt.
func historyBuffer(history []llm.Message) string {
	var b strings.Builder
	for i, m := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		if m.Role == llm.RoleAssistant {
			b.WriteString("Assistant: ")
		} else {
			b.WriteString("Patient: ")
		}
		b.WriteString(m.Content)
	}
	return b.String()
}
