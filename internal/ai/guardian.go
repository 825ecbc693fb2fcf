// Package ai holds the Guardião text-generation client used by the
// support chat.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// GuardianPersona is the fixed system instruction for support replies.
const GuardianPersona = "Você é o 'Guardião Mor' do Triuno, um portal de ascensão pessoal focado em Corpo, Alma e Espírito. " +
	"Sua missão é guiar os Buscadores com sabedoria, empatia e inspiração. Fale de forma mística porém prática. " +
	"Use termos como 'Ascensão', 'Éter', 'Senda'. Suas respostas devem ser curtas e encorajadoras."

// FallbackReply is substituted whenever generation fails or comes back empty.
const FallbackReply = "O éter está silencioso no momento, buscador. Mantenha sua luz."

// Generator produces a single-turn reply to a user message. No streaming,
// no conversation memory.
type Generator interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiKey  string
	apiURL  string
	model   string
	httpcli *http.Client
}

func NewClient(apiKey, apiURL, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		apiURL:  apiURL,
		model:   model,
		httpcli: &http.Client{Timeout: timeout},
	}
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
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

var errEmptyReply = errors.New("empty generation response")

func (c *Client) Reply(ctx context.Context, text string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("generation key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: GuardianPersona},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpcli.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("generation request failed: " + resp.Status)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 {
		return "", errEmptyReply
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return "", errEmptyReply
	}
	return content, nil
}
