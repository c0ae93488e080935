package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viralforge/creator-match/internal/domain"
	"google.golang.org/genai"
)

const defaultModel = "gemini-embedding-001"

// Client wraps the Google GenAI embedding endpoint. Rate limiting lives
// here, in an explicit token bucket owned by the client, not in package
// state. All failures surface as domain.ErrProvider; the client never
// fabricates a vector.
type Client struct {
	client     *genai.Client
	model      string
	dimensions int
	limiter    *tokenBucket
}

type ClientConfig struct {
	APIKey            string
	Model             string
	Dimensions        int
	RequestsPerMinute int
}

func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if cfg.Dimensions <= 0 {
		return nil, errors.New("embedding dimensions must be positive")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	return &Client{
		client:     client,
		model:      model,
		dimensions: cfg.Dimensions,
		limiter:    newTokenBucket(rpm, float64(rpm)/60, nil),
	}, nil
}

func (c *Client) Dimensions() int { return c.dimensions }

func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input text", domain.ErrProvider)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter wait: %v", domain.ErrProvider, err)
	}

	dims := int32(c.dimensions)
	resp, err := c.client.Models.EmbedContent(ctx, c.model,
		genai.Text(text),
		&genai.EmbedContentConfig{OutputDimensionality: &dims},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: embed content: %v", domain.ErrProvider, err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, fmt.Errorf("%w: empty embedding response", domain.ErrProvider)
	}
	values := resp.Embeddings[0].Values
	if len(values) != c.dimensions {
		return nil, fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrProvider, c.dimensions, len(values))
	}
	return values, nil
}
