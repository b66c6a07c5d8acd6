package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEngine implements Engine using the OpenAI chat completion API.  It
// serves as the secondary provider when Gemini is unavailable.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

// NewOpenAIEngine constructs an OpenAI-backed conversation engine.
func NewOpenAIEngine(apiKey, model string) (*OpenAIEngine, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: openai api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIEngine{client: openai.NewClient(apiKey), model: model}, nil
}

// Respond sends the history plus the prompt to the chat completion API and
// returns the assistant's reply.
func (e *OpenAIEngine) Respond(ctx context.Context, history []Message, prompt string) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Messages:    msgs,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
