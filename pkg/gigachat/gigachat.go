package gigachat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Chat sends a completion request to the GigaChat API
func (g *gigaChatImpl) Chat(ctx context.Context, req *Request) (*Response, error) {
	tok, err := g.tokens.Token()
	if err != nil {
		return nil, err
	}

	wireReq := chatRequest{
		Model:       g.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		N:           1,
		Stream:      false,
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("gigachat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gigachat: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gigachat: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token was revoked server-side; force a re-auth on the next request.
		g.tokens.Invalidate()
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gigachat: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gigachat: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("gigachat: failed to decode response: %w", err)
	}

	if len(wireResp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content: wireResp.Choices[0].Message.Content,
		Usage: &Usage{
			InputTokens:  wireResp.Usage.PromptTokens,
			OutputTokens: wireResp.Usage.CompletionTokens,
			TotalTokens:  wireResp.Usage.TotalTokens,
		},
	}, nil
}

// Model returns the model being used
func (g *gigaChatImpl) Model() string {
	return g.model
}
