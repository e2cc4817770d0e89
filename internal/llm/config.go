// Package llm provides centralized LLM configuration, client abstractions and
// recovery of JSON objects from free-form model output.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: CV extraction, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning
	TierAdvanced ModelTier = "advanced"
)

// Temperature is used for every generation call; extraction wants repeatable output.
const Temperature = 0.1

// DefaultOllamaURL is the address of a local Ollama daemon.
const DefaultOllamaURL = "http://localhost:11434"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOllama is a self-hosted Ollama daemon
	ProviderOllama Provider = "ollama"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL is only used by HTTP providers such as Ollama
	BaseURL string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultOllamaConfig returns the default Ollama configuration
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider: ProviderOllama,
		Models: map[ModelTier]string{
			TierStandard: "llama3.1",
		},
		BaseURL: DefaultOllamaURL,
	}
}

// ConfigFor returns the default configuration for a provider name, with model
// overriding the standard tier when non-empty. Unknown providers yield nil.
func ConfigFor(provider, model, baseURL string) *Config {
	var cfg *Config
	switch Provider(provider) {
	case "", ProviderGemini:
		cfg = DefaultGeminiConfig()
	case ProviderOllama:
		cfg = DefaultOllamaConfig()
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
	default:
		return nil
	}
	if model != "" {
		cfg = cfg.WithModel(TierStandard, model)
	}
	return cfg
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
		BaseURL:  c.BaseURL,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
