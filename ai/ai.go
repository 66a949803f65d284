package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"intellisql/logger"
)

// Translator turns a natural-language question into candidate SQL.
type Translator interface {
	Translate(ctx context.Context, question string) (string, error)
}

// TranslationError wraps any failure of the text-generation call. Its
// message always starts with "Error: ".
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return "Error: " + e.Err.Error()
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

type AIService struct {
	apiKey     string
	modelName  string
	apiURL     string
	httpClient *http.Client
}

type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content      GeminiContent `json:"content"`
		FinishReason string        `json:"finishReason,omitempty"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// New creates a Gemini-backed translator. apiBase is the versioned API root,
// e.g. https://generativelanguage.googleapis.com/v1beta.
func New(apiKey, modelName, apiBase string) (*AIService, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if modelName == "" {
		return nil, errors.New("gemini model name is empty")
	}

	return &AIService{
		apiKey:     apiKey,
		modelName:  modelName,
		apiURL:     fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(apiBase, "/"), modelName),
		httpClient: &http.Client{},
	}, nil
}

func (a *AIService) Close() error {
	// HTTP client doesn't require explicit closing
	return nil
}

func (a *AIService) ModelName() string {
	return a.modelName
}

// Translate sends the prompt template plus the question to Gemini and
// returns the reply with surrounding whitespace removed. Failures come back
// as *TranslationError. There is no retry and no caching.
func (a *AIService) Translate(ctx context.Context, question string) (string, error) {
	prompt := BuildSQLPrompt(question)

	logger.Debug().Str("model", a.modelName).Str("question", question).Msg("translating question")

	response, err := a.callGeminiAPI(ctx, prompt)
	if err != nil {
		logger.Warn().Err(err).Str("model", a.modelName).Msg("gemini call failed")
		return "", &TranslationError{Err: err}
	}

	return strings.TrimSpace(response), nil
}

func (a *AIService) callGeminiAPI(ctx context.Context, prompt string) (string, error) {
	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: prompt}},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp geminiErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
			return "", fmt.Errorf("API error (status %d): %s - %s",
				resp.StatusCode, errorResp.Error.Status, errorResp.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 {
		if geminiResp.PromptFeedback != nil && geminiResp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", geminiResp.PromptFeedback.BlockReason)
		}
		return "", errors.New("no response from AI model")
	}

	var text strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", errors.New("AI model returned an empty answer")
	}

	return text.String(), nil
}
