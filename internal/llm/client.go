package llm

import (
	"context"
	"fmt"
	"net/http"

	"quizforge/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewClient builds a langchaingo model client for the configured provider.
// The returned llms.Model is the one blocking external collaborator of the
// generation pipeline.
func NewClient(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "ollama":
		httpClient := &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
			},
		}
		return ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.Ollama.Model),
			ollama.WithHTTPClient(httpClient),
		)
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key cannot be empty")
		}
		return openai.New(
			openai.WithToken(cfg.OpenAI.APIKey),
			openai.WithModel(cfg.OpenAI.Model),
		)
	case "google":
		if cfg.Google.APIKey == "" {
			return nil, fmt.Errorf("Google API key cannot be empty")
		}
		return googleai.New(ctx,
			googleai.WithAPIKey(cfg.Google.APIKey),
			googleai.WithDefaultModel(cfg.Google.Model),
		)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
