// Package llm is a thin HTTP client for the external language-model proxy.
// The proxy owns prompting and schema validation; this client only carries
// the request/response contracts.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/lexivy/internal/entity"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type mnemonicRequest struct {
	WordText       string `json:"wordText"`
	WordDefinition string `json:"wordDefinition"`
}

type mnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
}

// GenerateMnemonic asks the proxy for a memorable hook for one word.
func (c *Client) GenerateMnemonic(ctx context.Context, wordText, wordDefinition string) (string, error) {
	var resp mnemonicResponse
	err := c.post(ctx, "/mnemonic", mnemonicRequest{
		WordText:       wordText,
		WordDefinition: wordDefinition,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Mnemonic == "" {
		return "", fmt.Errorf("llm proxy returned an empty mnemonic")
	}
	return resp.Mnemonic, nil
}

type performanceEntry struct {
	Word             string `json:"word"`
	CorrectAnswers   int    `json:"correctAnswers"`
	IncorrectAnswers int    `json:"incorrectAnswers"`
}

type suggestRequest struct {
	PastPerformance        []performanceEntry `json:"pastPerformance"`
	NumberOfWordsToSuggest int                `json:"numberOfWordsToSuggest"`
}

type suggestResponse struct {
	SuggestedWords []string `json:"suggestedWords"`
}

// SuggestWordsForReview sends past performance rows and returns the words
// the model recommends reviewing.
func (c *Client) SuggestWordsForReview(ctx context.Context, pastPerformance []entity.WordPerformanceRow, count int) ([]string, error) {
	req := suggestRequest{
		PastPerformance: lo.Map(pastPerformance, func(row entity.WordPerformanceRow, _ int) performanceEntry {
			return performanceEntry{
				Word:             row.WordText,
				CorrectAnswers:   row.CorrectAnswers,
				IncorrectAnswers: row.IncorrectAnswers,
			}
		}),
		NumberOfWordsToSuggest: count,
	}

	var resp suggestResponse
	if err := c.post(ctx, "/review-suggestions", req, &resp); err != nil {
		return nil, err
	}
	return resp.SuggestedWords, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call llm proxy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("llm proxy returned status %d: %s", resp.StatusCode, string(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode llm proxy response: %w", err)
	}
	return nil
}
