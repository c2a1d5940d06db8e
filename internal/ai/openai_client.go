package ai

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
)

// greedyTemperature is sent instead of 0, because go-openai omits a zero temperature
// and the server then falls back to its own default of 1.
const greedyTemperature = math.SmallestNonzeroFloat32

// OpenAIClient - Generator over any OpenAI-compatible HTTP API.
type OpenAIClient struct {
	logger *slog.Logger

	client *openai.Client
	api    string
	model  string
}

func NewOpenAIClient(logger *slog.Logger, conf config.AI, httpClient *http.Client) (*OpenAIClient, error) {
	if conf.API != config.APICompletion && conf.API != config.APIChat {
		return nil, fmt.Errorf("unsupported ai api %q", conf.API)
	}

	clientConfig := openai.DefaultConfig(conf.APIKey)
	if conf.BaseURL != "" {
		clientConfig.BaseURL = conf.BaseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	return &OpenAIClient{
		logger: logger.With("component", "ai", "api", conf.API, "model", conf.Model),
		client: openai.NewClientWithConfig(clientConfig),
		api:    conf.API,
		model:  conf.Model,
	}, nil
}

// Model - name of the model every call goes to.
func (that *OpenAIClient) Model() string {
	return that.model
}

// Generate - returns only the newly generated text, the prompt is never echoed back.
func (that *OpenAIClient) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	var (
		reply string
		err   error
	)

	if that.api == config.APIChat {
		reply, err = that.chat(ctx, prompt, params)
	} else {
		reply, err = that.complete(ctx, prompt, params)
	}

	if err != nil {
		return "", err
	}

	that.logger.Debug("model replied", "reply", reply)

	return reply, nil
}

func (that *OpenAIClient) complete(ctx context.Context, prompt string, params Params) (string, error) {
	resp, err := that.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       that.model,
		Prompt:      prompt,
		MaxTokens:   params.MaxTokens,
		Temperature: greedyTemperature,
		Echo:        false,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Text, nil
}

func (that *OpenAIClient) chat(ctx context.Context, prompt string, params Params) (string, error) {
	resp, err := that.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: that.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   params.MaxTokens,
		Temperature: greedyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Message.Content, nil
}
