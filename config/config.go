package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server, the price-data provider, and the optional
// language-model integration.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	PROVIDER=fmp
//	FMP_API_KEY=secret
//	OPENAI_API_KEY=sk-...
//	HTTP_TIMEOUT_SECONDS=10
//	STATS_ONLY=false
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Price-data provider selection and credentials
	OpenAI   OpenAIConfig   // Language-model integration (optional)
	Response ResponseConfig // Response-shape switches
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig selects and configures the external price-data provider.
//
// Fields:
//   - Name: which adapter to use ("fmp" or "yahoo").
//   - FMPAPIKey: Financial Modeling Prep credential; required when Name
//     is "fmp". Yahoo needs no credential.
//   - Timeout: bound on every outbound call to the provider.
type ProviderConfig struct {
	Name      string
	FMPAPIKey string
	Timeout   time.Duration
}

// OpenAIConfig configures the narrative stage. An empty APIKey disables
// the stage entirely; that is not an error.
type OpenAIConfig struct {
	APIKey string
}

// ResponseConfig holds response-shape switches.
//
// StatsOnly drops the per-day prices array from responses and returns
// only the derived statistics and summary sentence.
type ResponseConfig struct {
	StatsOnly bool
}

// Enabled reports whether the narrative stage has a credential.
func (c OpenAIConfig) Enabled() bool { return c.APIKey != "" }

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application instead of re-reading process environment.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate
//     the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PROVIDER", "fmp")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STATS_ONLY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			Name:      strings.ToLower(viper.GetString("PROVIDER")),
			FMPAPIKey: viper.GetString("FMP_API_KEY"),
			Timeout:   time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("OPENAI_API_KEY"),
		},
		Response: ResponseConfig{
			StatsOnly: viper.GetBool("STATS_ONLY"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or inconsistent.
//
// The OpenAI credential is deliberately not on this list: its absence
// disables the narrative stage rather than failing startup.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	switch AppConfig.Provider.Name {
	case "fmp":
		if AppConfig.Provider.FMPAPIKey == "" {
			missing = append(missing, "FMP_API_KEY")
		}
	case "yahoo":
		// no credential needed
	default:
		log.Fatalf("Unknown PROVIDER %q (want fmp or yahoo)\n", AppConfig.Provider.Name)
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "HTTP_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
