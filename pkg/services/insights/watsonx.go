package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Generator produces text for a prompt. The rest of the system depends on
// this interface, not on a concrete model client.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// ClientSettings configures the Watsonx text-generation client
type ClientSettings struct {
	BaseURL     string
	APIKey      string
	ProjectID   string
	ModelID     string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client calls the IBM Watsonx text generation endpoint with an IBM Granite
// model.
type Client struct {
	settings   ClientSettings
	httpClient *http.Client
}

func NewClient(settings ClientSettings) (*Client, error) {
	if settings.APIKey == "" || settings.ProjectID == "" {
		return nil, fmt.Errorf("watsonx credentials are required: set IBM_WATSONX_API_KEY and IBM_PROJECT_ID")
	}
	if settings.BaseURL == "" {
		settings.BaseURL = "https://us-south.ml.cloud.ibm.com"
	}
	if settings.ModelID == "" {
		settings.ModelID = "ibm/granite-13b-instruct-v2"
	}
	if settings.MaxTokens == 0 {
		settings.MaxTokens = 500
	}
	if settings.Temperature == 0 {
		settings.Temperature = 0.7
	}
	if settings.Timeout == 0 {
		settings.Timeout = 30 * time.Second
	}

	return &Client{
		settings:   settings,
		httpClient: &http.Client{Timeout: settings.Timeout},
	}, nil
}

type generateParameters struct {
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type generateRequest struct {
	ModelID    string             `json:"model_id"`
	ProjectID  string             `json:"project_id"`
	Input      string             `json:"input"`
	System     string             `json:"system,omitempty"`
	Parameters generateParameters `json:"parameters"`
}

type generateResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}

func (c *Client) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	payload := generateRequest{
		ModelID:   c.settings.ModelID,
		ProjectID: c.settings.ProjectID,
		Input:     prompt,
		System:    systemPrompt,
		Parameters: generateParameters{
			MaxTokens:   c.settings.MaxTokens,
			Temperature: c.settings.Temperature,
			TopP:        1.0,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.settings.BaseURL+"/v1/text/generation", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.settings.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("watsonx request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("watsonx API error: %d - %s", resp.StatusCode, string(detail))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(result.Results) == 0 {
		return "", nil
	}
	return result.Results[0].GeneratedText, nil
}
