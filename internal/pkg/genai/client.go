package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the generative-language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Config holds provider connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client is a thin REST client for the generative-language API. Every call
// is bounded by the configured HTTP client timeout plus whatever deadline
// the caller's context carries; there are no retries.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a provider client.
func NewClient(config Config, logger zerolog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}
}

// Message is one conversation turn. Role is "user" or "model".
type Message struct {
	Role string
	Text string
}

// FunctionDecl describes a callable action exposed to the model.
type FunctionDecl struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// FunctionCall is an action the model asked the portal to perform.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Reply is either free text or one or more function calls.
type Reply struct {
	Text  string
	Calls []FunctionCall
}

// wire format

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	Tools             []toolSet        `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text         string          `json:"text,omitempty"`
	FunctionCall *wireFunctionCall `json:"functionCall,omitempty"`
}

type wireFunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type toolSet struct {
	FunctionDeclarations []FunctionDecl `json:"functionDeclarations"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends a single free-text prompt and returns the model's
// text reply.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	reply, err := c.send(ctx, req)
	if err != nil {
		return "", err
	}
	if reply.Text == "" {
		return "", fmt.Errorf("provider returned an empty response")
	}
	return reply.Text, nil
}

// GenerateStructured requests a JSON response and unmarshals it into out.
// The response is untrusted; the caller must validate the decoded value
// against its expected shape before use.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, out any) error {
	req := generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}
	reply, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	if reply.Text == "" {
		return fmt.Errorf("provider returned an empty structured response")
	}
	if err := json.Unmarshal([]byte(reply.Text), out); err != nil {
		return fmt.Errorf("malformed structured response: %w", err)
	}
	return nil
}

// Converse sends a conversation transcript plus the available actions and
// returns either text or the function calls the model chose.
func (c *Client) Converse(ctx context.Context, system string, history []Message, tools []FunctionDecl) (*Reply, error) {
	req := generateRequest{
		Contents: make([]content, 0, len(history)),
	}
	if system != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	for _, msg := range history {
		req.Contents = append(req.Contents, content{
			Role:  msg.Role,
			Parts: []part{{Text: msg.Text}},
		})
	}
	if len(tools) > 0 {
		req.Tools = []toolSet{{FunctionDeclarations: tools}}
	}
	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, payload generateRequest) (*Reply, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.config.BaseURL, c.config.Model, c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Str("model", c.config.Model).Msg("Provider returned non-OK status")
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("provider error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 {
		return nil, fmt.Errorf("provider returned no candidates")
	}

	reply := &Reply{}
	for _, p := range decoded.Candidates[0].Content.Parts {
		if p.FunctionCall != nil {
			reply.Calls = append(reply.Calls, FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args})
			continue
		}
		if p.Text != "" {
			if reply.Text != "" {
				reply.Text += "\n"
			}
			reply.Text += p.Text
		}
	}
	return reply, nil
}
