package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	Logger     LoggerConfig
	Generation GenerationConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig selects the text-generation provider and its credentials.
type LLMConfig struct {
	Provider    string
	Temperature float64
	Timeout     time.Duration
	Ollama      OllamaConfig
	OpenAI      OpenAIConfig
	Google      GoogleConfig
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type GoogleConfig struct {
	APIKey string
	Model  string
}

type GenerationConfig struct {
	// MaxQuestions caps the per-request question count (the UI slider range).
	MaxQuestions int
	// Strict enables JSON Schema validation of generated quizzes. When off,
	// malformed questions pass through generation and surface at display time.
	Strict bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.timeout", 60)
	viper.SetDefault("llm.ollama.server_url", "http://localhost:11434")
	viper.SetDefault("llm.ollama.model", "llama3")
	viper.SetDefault("llm.openai.model", "gpt-4o-mini")
	viper.SetDefault("llm.google.model", "gemini-1.5-flash")
	viper.SetDefault("generation.max_questions", 10)
	viper.SetDefault("generation.strict", false)

	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults are enough to run.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			Temperature: viper.GetFloat64("llm.temperature"),
			Timeout:     viper.GetDuration("llm.timeout") * time.Second,
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("llm.ollama.server_url"),
				Model:     viper.GetString("llm.ollama.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey: viper.GetString("llm.openai.api_key"),
				Model:  viper.GetString("llm.openai.model"),
			},
			Google: GoogleConfig{
				APIKey: viper.GetString("llm.google.api_key"),
				Model:  viper.GetString("llm.google.model"),
			},
		},
		Generation: GenerationConfig{
			MaxQuestions: viper.GetInt("generation.max_questions"),
			Strict:       viper.GetBool("generation.strict"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if serverURL := os.Getenv("OLLAMA_SERVER"); serverURL != "" {
		config.LLM.Ollama.ServerURL = serverURL
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Ollama.Model = model
		config.LLM.OpenAI.Model = model
		config.LLM.Google.Model = model
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.OpenAI.APIKey = openAIKey
	}
	if googleKey := os.Getenv("GOOGLE_API_KEY"); googleKey != "" {
		config.LLM.Google.APIKey = googleKey
	}

	if err := config.LLM.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports missing credentials for the selected provider. It runs at
// startup so a misconfigured deployment halts before any generation is possible.
func (c *LLMConfig) Validate() error {
	switch c.Provider {
	case "ollama":
		if c.Ollama.ServerURL == "" {
			return fmt.Errorf("OLLAMA_SERVER is required when llm.provider is 'ollama'")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when llm.provider is 'openai'")
		}
	case "google":
		if c.Google.APIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required when llm.provider is 'google'")
		}
	default:
		return fmt.Errorf("unsupported llm.provider: %q", c.Provider)
	}
	return nil
}
