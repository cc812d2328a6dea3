// Package config provides typed application configuration on top of viper.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey indicates the OpenAI credential is absent from both the
// config file and the environment. This is a fatal startup error, not a
// per-call failure.
var ErrMissingAPIKey = errors.New("OpenAI API key not found in config (llm.openai_api_key) or OPENAI_API_KEY environment variable")

// Config holds the resolved application configuration.
type Config struct {
	APIKey      string
	Model       string
	OutputPath  string
	Temperature float64
	MaxTokens   int
}

// Load resolves configuration from viper and the environment. The API key is
// read from llm.openai_api_key with OPENAI_API_KEY as fallback; its absence
// is an error.
func Load() (Config, error) {
	apiKey := viper.GetString("llm.openai_api_key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return Config{
		APIKey:      apiKey,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		OutputPath:  ExpandPath(viper.GetString("output.path")),
	}, nil
}

// ExpandPath expands a leading ~ and $VAR style environment variables in a
// file path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}
