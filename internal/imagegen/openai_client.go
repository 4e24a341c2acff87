package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Generator is the contract the style-application endpoint depends on: one
// synchronous text-to-image round trip returning the URL of the result.
type Generator interface {
	GenerateOnce(ctx context.Context, prompt string) (string, error)
}

// OpenAIOptions controls how the OpenAI images client is configured.
type OpenAIOptions struct {
	APIKey     string
	BaseURL    string
	Size       string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// OpenAIClient calls the OpenAI image generation endpoint. It requests
// exactly one image at a fixed size and extracts the first result's URL.
type OpenAIClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	size       string
}

const defaultImageSize = "1024x1024"

// NewOpenAIClient builds a client. A missing API key is allowed here and
// reported on the first call instead.
func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	size := strings.TrimSpace(opts.Size)
	if size == "" {
		size = defaultImageSize
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &OpenAIClient{
		httpClient: client,
		baseURL:    base,
		token:      strings.TrimSpace(opts.APIKey),
		size:       size,
	}
}

type imagesRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imagesResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateOnce sends the prompt and returns the URL of the single generated
// image. Any transport error, non-2xx status, or malformed body is returned
// as an error; callers decide what to expose.
func (c *OpenAIClient) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", errors.New("openai client not configured")
	}
	if c.token == "" {
		return "", errors.New("openai: API key is missing")
	}
	body, err := json.Marshal(imagesRequest{Prompt: prompt, N: 1, Size: c.size})
	if err != nil {
		return "", err
	}
	endpoint := c.baseURL + "/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	var out imagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode >= 300 {
			return "", fmt.Errorf("openai: status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if resp.StatusCode >= 300 {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("openai: status %d", resp.StatusCode)
	}
	if len(out.Data) == 0 || strings.TrimSpace(out.Data[0].URL) == "" {
		return "", errors.New("openai: response contained no image url")
	}
	return out.Data[0].URL, nil
}

var _ Generator = (*OpenAIClient)(nil)
