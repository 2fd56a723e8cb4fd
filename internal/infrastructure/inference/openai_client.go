// Package inference wraps the remote chat-completion providers. Every
// transport, HTTP and decode failure becomes a provider PlatformError so the
// coaching service can fall back instead of propagating; a missing API key is
// detected before any network call is made.
package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

const (
	// completionTemperature and completionMaxTokens follow the product's
	// original tuning for the coach.
	completionTemperature = 0.7
	completionMaxTokens   = 1000
)

// OpenAIClient talks to an OpenAI-compatible /chat/completions endpoint.
type OpenAIClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
	log     zerolog.Logger
}

// NewOpenAIClient builds a client for the given endpoint. An empty apiKey is
// allowed; Complete then short-circuits with a configuration error.
func NewOpenAIClient(client *resty.Client, baseURL, apiKey, model string, log zerolog.Logger) *OpenAIClient {
	return &OpenAIClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		log:     log.With().Str("component", "openai-client").Logger(),
	}
}

// Complete sends the composed prompt plus trailing history and returns the
// generated text. No retries: one blocking round trip per turn.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, history []phase.Turn, userMessage string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeConfiguration, "no API key configured", fmt.Errorf("missing credential"))
	}

	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(systemPrompt, history, userMessage),
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}

	var respBody openai.ChatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&respBody).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", c.providerError(ctx, err, "completion request failed", systemPrompt)
	}
	if resp.IsError() {
		c.log.Error().
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Int("prompt_bytes", len(systemPrompt)).
			Msg("completion endpoint returned error")
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider,
			fmt.Sprintf("completion endpoint returned %d", resp.StatusCode()), nil)
	}

	if len(respBody.Choices) == 0 || strings.TrimSpace(respBody.Choices[0].Message.Content) == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider, "completion response had no content", nil)
	}

	return respBody.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) providerError(ctx context.Context, err error, message, systemPrompt string) error {
	c.log.Error().
		Err(err).
		Int("prompt_bytes", len(systemPrompt)).
		Msg(message)
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider, message, err)
}

// buildMessages assembles system prompt, trailing history and the new user
// message as role/content pairs.
func buildMessages(systemPrompt string, history []phase.Turn, userMessage string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == phase.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})
	return messages
}
