package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Knowledge providers.
const (
	KnowledgeMediaWiki = "mediawiki"
	KnowledgeSearch    = "search"
)

// Config holds all configuration from environment variables.
type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":5000"`

	// Telegram transport is disabled when the token is empty.
	TelegramToken string `envconfig:"TELEGRAM_API_TOKEN"`

	WolframAppID   string        `envconfig:"WOLFRAM_APPID"`
	WolframBaseURL string        `envconfig:"WOLFRAM_BASE_URL" default:"https://api.wolframalpha.com/v1/result"`
	LookupTimeout  time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"8s"`

	KnowledgeProvider  string `envconfig:"KNOWLEDGE_PROVIDER" default:"mediawiki"`
	WikipediaLanguage  string `envconfig:"WIKIPEDIA_LANGUAGE" default:"en"`
	WikipediaUserAgent string `envconfig:"WIKIPEDIA_USER_AGENT" default:"arlo/1.0 (https://github.com/j0lvera/arlo)"`
	WikipediaBaseURL   string `envconfig:"WIKIPEDIA_BASE_URL"` // overrides the language-derived endpoint

	ScreenshotDir     string `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
	TextEditorCommand string `envconfig:"TEXT_EDITOR_COMMAND"`
	CalculatorCommand string `envconfig:"CALCULATOR_COMMAND"`

	// Path to the TOML intent table; the built-in table is used when missing.
	IntentsFile string `envconfig:"INTENTS_FILE" default:"intents.toml"`

	Debug     bool   `envconfig:"DEBUG" default:"false"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// Validate checks values envconfig cannot.
func (c Config) Validate() error {
	switch c.KnowledgeProvider {
	case KnowledgeMediaWiki, KnowledgeSearch:
	default:
		return fmt.Errorf("unknown KNOWLEDGE_PROVIDER %q", c.KnowledgeProvider)
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must be positive, got %s", c.LookupTimeout)
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func NewConfig() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	if err := loadedCfg.Validate(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
