package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiEngine implements Engine using Google's Gemini API.
type GeminiEngine struct {
	client  *genai.Client
	modelID string
}

// NewGeminiEngine creates a Gemini-backed conversation engine.
func NewGeminiEngine(ctx context.Context, apiKey, modelID string) (*GeminiEngine, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-pro"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create gemini client: %w", err)
	}
	return &GeminiEngine{client: client, modelID: modelID}, nil
}

// Respond replays the conversation history into a Gemini chat session and
// sends the prompt as the next user message.
func (e *GeminiEngine) Respond(ctx context.Context, history []Message, prompt string) (string, error) {
	model := e.client.GenerativeModel(e.modelID)
	cs := model.StartChat()
	for _, msg := range history {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("llm: gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("llm: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("llm: gemini returned empty content")
	}
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// Close releases resources held by the underlying client.
func (e *GeminiEngine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
