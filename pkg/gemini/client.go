// Package gemini is a small REST client for the Google Generative Language
// API, used to turn informal billing text into structured invoice data and to
// produce short business insights for the dashboard.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Default model names. Parsing uses the fast model; insight generation uses
// the reasoning model.
const (
	DefaultParseModel   = "gemini-3-flash-preview"
	DefaultInsightModel = "gemini-3-pro-preview"
)

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("gemini: API key not configured")

// Client calls the Generative Language REST API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	parseModel   string
	insightModel string
}

// NewClient creates a client. An empty apiKey yields a client whose calls
// fail with ErrNotConfigured, which callers surface as a user-visible message.
func NewClient(apiKey, parseModel, insightModel string) *Client {
	if parseModel == "" {
		parseModel = DefaultParseModel
	}
	if insightModel == "" {
		insightModel = DefaultInsightModel
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      defaultBaseURL,
		apiKey:       apiKey,
		parseModel:   parseModel,
		insightModel: insightModel,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ParsedItem is one product mention extracted from free text.
type ParsedItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// ParsedBill is the structured result of parsing an informal billing
// description.
type ParsedBill struct {
	CustomerName string       `json:"customerName,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Items        []ParsedItem `json:"items"`
}

// ParseBillingText extracts customer and line-item data from free text.
func (c *Client) ParseBillingText(ctx context.Context, text string) (*ParsedBill, error) {
	prompt := fmt.Sprintf(`Parse the following informal billing text into a structured JSON format.
Input: %q

If products are mentioned with prices and quantities, list them.
If a customer name or phone is mentioned, extract it.`, text)

	schema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"customerName": map[string]any{"type": "STRING"},
			"phone":        map[string]any{"type": "STRING"},
			"items": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"name":     map[string]any{"type": "STRING"},
						"quantity": map[string]any{"type": "NUMBER"},
						"price":    map[string]any{"type": "NUMBER"},
					},
					"required": []string{"name", "quantity", "price"},
				},
			},
		},
	}

	raw, err := c.generate(ctx, c.parseModel, prompt, schema)
	if err != nil {
		return nil, err
	}

	var bill ParsedBill
	if err := json.Unmarshal(raw, &bill); err != nil {
		return nil, fmt.Errorf("gemini: unparseable response: %w", err)
	}
	return &bill, nil
}

// BusinessInsights asks for three short, actionable insights over the given
// business data snapshot.
func (c *Client) BusinessInsights(ctx context.Context, data any) ([]string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(`Analyze this business data and provide 3 short, actionable insights for a business owner.
Data: %s
Return as a simple bulleted list of strings.`, payload)

	schema := map[string]any{
		"type":  "ARRAY",
		"items": map[string]any{"type": "STRING"},
	}

	raw, err := c.generate(ctx, c.insightModel, prompt, schema)
	if err != nil {
		return nil, err
	}

	var insights []string
	if err := json.Unmarshal(raw, &insights); err != nil {
		return nil, fmt.Errorf("gemini: unparseable response: %w", err)
	}
	return insights, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   any    `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate runs one generateContent call with a JSON response schema and
// returns the raw JSON text of the first candidate.
func (c *Client) generate(ctx context.Context, model, prompt string, schema map[string]any) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: API returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("gemini: malformed response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini: empty response")
	}
	return []byte(out.Candidates[0].Content.Parts[0].Text), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
