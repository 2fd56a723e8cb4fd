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

// qwenRequest is the DashScope text-generation request shape.
type qwenRequest struct {
	Model      string         `json:"model"`
	Input      qwenInput      `json:"input"`
	Parameters qwenParameters `json:"parameters"`
}

type qwenInput struct {
	Messages []openai.ChatCompletionMessage `json:"messages"`
}

type qwenParameters struct {
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

// qwenResponse is the DashScope text-generation response shape.
type qwenResponse struct {
	Output struct {
		Text string `json:"text"`
	} `json:"output"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// QwenClient talks to the DashScope text-generation endpoint.
type QwenClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
	log     zerolog.Logger
}

// NewQwenClient builds a DashScope client. An empty apiKey is allowed;
// Complete then short-circuits with a configuration error.
func NewQwenClient(client *resty.Client, baseURL, apiKey, model string, log zerolog.Logger) *QwenClient {
	return &QwenClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		log:     log.With().Str("component", "qwen-client").Logger(),
	}
}

// Complete implements the completion contract against DashScope's native
// request shape. No retries.
func (c *QwenClient) Complete(ctx context.Context, systemPrompt string, history []phase.Turn, userMessage string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeConfiguration, "no API key configured", fmt.Errorf("missing credential"))
	}

	request := qwenRequest{
		Model: c.model,
		Input: qwenInput{Messages: buildMessages(systemPrompt, history, userMessage)},
		Parameters: qwenParameters{
			Temperature: completionTemperature,
			TopP:        0.95,
			MaxTokens:   completionMaxTokens,
		},
	}

	var respBody qwenResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&respBody).
		Post(c.baseURL + "/services/aigc/text-generation/generation")
	if err != nil {
		c.log.Error().Err(err).Int("prompt_bytes", len(systemPrompt)).Msg("qwen request failed")
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider, "qwen request failed", err)
	}
	if resp.IsError() {
		c.log.Error().
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Int("prompt_bytes", len(systemPrompt)).
			Msg("qwen endpoint returned error")
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider,
			fmt.Sprintf("qwen endpoint returned %d", resp.StatusCode()), nil)
	}

	if strings.TrimSpace(respBody.Output.Text) == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider, "qwen response had no content", nil)
	}

	return respBody.Output.Text, nil
}
