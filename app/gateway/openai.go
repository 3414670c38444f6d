package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/http"
)

// ErrMissingAIKey is returned when OPENAI_API_KEY is not configured.
var ErrMissingAIKey = errors.New("gateway: OPENAI_API_KEY not configured")

// AIClient talks to the generative API used for product copy and images.
type AIClient struct {
	apiKey  string
	baseURL string
}

// NewAIClient builds an AI client from configuration.
func NewAIClient() (*AIClient, error) {
	key := config.OpenAIKey()
	if key == "" {
		return nil, ErrMissingAIKey
	}
	return &AIClient{apiKey: key, baseURL: config.OpenAIBaseURL()}, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateDescription produces storefront copy for a product name and
// category.
func (c *AIClient) GenerateDescription(ctx context.Context, name, category string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a concise, persuasive product description (2-3 paragraphs) for a digital product named %q in the %q category. Plain text only.",
		name, category)
	return c.chat(ctx, prompt)
}

// GenerateTags produces up to eight short search tags for a product.
func (c *AIClient) GenerateTags(ctx context.Context, name, category string) ([]string, error) {
	prompt := fmt.Sprintf(
		"List up to 8 short lowercase search tags for a digital product named %q in the %q category. Respond with a comma-separated list only.",
		name, category)
	raw, err := c.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) > 8 {
		tags = tags[:8]
	}
	return tags, nil
}

func (c *AIClient) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := http.Post(c.baseURL+"/chat/completions").
		Bearer(c.apiKey).
		Body(chatRequest{
			Model:    config.OpenAITextModel(),
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		}).
		Timeout(60 * time.Second).
		Retry(2, 2*time.Second).
		WithContext(ctx).
		Send()
	if err != nil {
		return "", fmt.Errorf("gateway: chat completion: %w", err)
	}
	if err := resp.Throw(); err != nil {
		return "", fmt.Errorf("gateway: chat completion rejected: %w", err)
	}

	var out chatResponse
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("gateway: decode chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("gateway: empty chat completion")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// GenerateImage renders a product image and returns the raw PNG bytes.
func (c *AIClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := http.Post(c.baseURL+"/images/generations").
		Bearer(c.apiKey).
		Body(imageRequest{
			Model:          config.OpenAIImageModel(),
			Prompt:         prompt,
			N:              1,
			Size:           "1024x1024",
			ResponseFormat: "b64_json",
		}).
		Timeout(120 * time.Second).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, fmt.Errorf("gateway: image generation: %w", err)
	}
	if err := resp.Throw(); err != nil {
		return nil, fmt.Errorf("gateway: image generation rejected: %w", err)
	}

	var out imageResponse
	if err := resp.JSON(&out); err != nil {
		return nil, fmt.Errorf("gateway: decode image response: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, errors.New("gateway: empty image response")
	}

	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("gateway: decode image payload: %w", err)
	}
	return img, nil
}
