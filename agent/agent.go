// Package agent holds the language-model collaborators: destination
// extraction from free-form speech, batch step translation and
// informational answers about a destination.
package agent

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var (
	Key       = os.Getenv("OPENAI_API_KEY")
	ModelName = openai.GPT4Turbo

	Client *openai.Client

	// City the assistant serves; every prompt is scoped to it.
	City = cityContext()
)

func cityContext() string {
	if v := os.Getenv("ASSIST_CITY"); len(v) > 0 {
		return v
	}
	return "San Miguel de Tucumán, capital de la provincia de Tucumán, Argentina"
}

// Init initializes the AI client
func Init() error {
	if len(Key) == 0 {
		return errors.New("missing OPENAI_API_KEY")
	}
	Client = openai.NewClient(Key)
	return nil
}

// complete sends a single user prompt and returns the trimmed reply.
func complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if Client == nil {
		return "", errors.New("AI client not initialized")
	}

	resp, err := Client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: ModelName,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens: maxTokens,
		},
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
