package cmd

import (
	"fmt"

	"github.com/styleadvisor/styleadvisor/internal/analysis"
	"github.com/styleadvisor/styleadvisor/internal/config"
	"github.com/styleadvisor/styleadvisor/internal/gemini"
	"github.com/styleadvisor/styleadvisor/internal/ollama"
	"github.com/styleadvisor/styleadvisor/internal/openai"
	"github.com/styleadvisor/styleadvisor/internal/providers"
)

// newProvider builds the backend selected by cfg
func newProvider(cfg *config.Config) (providers.Provider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case "gemini":
		return gemini.New(cfg.GeminiAPIKey, cfg.Model), nil
	case "ollama":
		return ollama.New(cfg.OllamaURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// newAnalyzer loads configuration and wires a provider into an Analyzer
func newAnalyzer(opts ...analysis.Option) (*config.Config, *analysis.Analyzer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts = append([]analysis.Option{analysis.WithTimeout(cfg.Timeout)}, opts...)
	return cfg, analysis.New(provider, opts...), nil
}
