// Package gemini wraps the Gemini API client behind a narrow request/response
// surface so the chat agent stays independent of SDK configuration details.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Config for the Gemini client
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Request is the model request shape used by the chat agent. Contents carries
// the full conversation including function call/response parts.
type Request struct {
	System   string
	Contents []*genai.Content
	Tools    []*genai.Tool
	// DisableFunctionCalling forces a plain-text answer. Used when the
	// per-turn tool budget is exhausted.
	DisableFunctionCalling bool
}

// Client calls the hosted Gemini API.
type Client struct {
	config Config
	client *genai.Client
}

// NewClient creates a Gemini client for the configured model.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{config: cfg, client: client}, nil
}

// Name returns the configured model name.
func (c *Client) Name() string {
	return c.config.Model
}

// GenerateContent sends one conversation state to the model and returns the
// raw response. Candidates may contain text parts, function call parts, or both.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*genai.GenerateContentResponse, error) {
	mode := genai.FunctionCallingConfigModeAuto
	if req.DisableFunctionCalling {
		mode = genai.FunctionCallingConfigModeNone
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.config.Temperature),
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: mode},
		},
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if len(req.Tools) > 0 && !req.DisableFunctionCalling {
		cfg.Tools = req.Tools
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, req.Contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	return resp, nil
}
