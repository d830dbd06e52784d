package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/menteviva-api/internal/config"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("resposta vazia do modelo")

// Provider sends a prompt to a text generation service and returns its raw reply.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider returns a nil Provider when apiKey is empty so callers
// can treat the service as unconfigured.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	config.WithContext(ctx).Debugf("[INSIGHT] Resposta bruta do Gemini:\n%s", raw)
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

// cleanJSON strips markdown code fences the model sometimes wraps around JSON.
func cleanJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}
