// Package llm provides the conversation-engine providers used for fallback
// turns: Gemini, OpenAI, and a failover wrapper combining them.
package llm

import "context"

// Message is a minimal chat message exchanged with a conversation engine.
// Role must be one of: "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Engine produces a free-form reply from the accumulated conversation
// history and a prompt.  The core depends only on this contract, so any
// compatible responder can be substituted in tests.
type Engine interface {
	Respond(ctx context.Context, history []Message, prompt string) (string, error)
}

// Static is an Engine that always answers with the same line.  It keeps the
// fallback branch total when no provider is configured.
type Static struct {
	Reply string
}

// Respond returns the fixed reply.
func (s Static) Respond(context.Context, []Message, string) (string, error) {
	return s.Reply, nil
}
