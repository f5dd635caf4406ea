package blizzard

import (
	"encoding/json"
	"os"

	"github.com/GoblinLedger/wowapi/pkg/logging"
	"github.com/GoblinLedger/wowapi/pkg/util"
)

// APIKeyEnvVar overrides the api key of a config loaded from disk
const APIKeyEnvVar = "WOWAPI_KEY"

// DefaultLocale is used when a config leaves the locale blank
const DefaultLocale = "en_US"

// NewConfigFromFilepath loads a config from a json file
func NewConfigFromFilepath(relativePath string) (Config, error) {
	logging.WithField("path", relativePath).Info("Reading config")

	body, err := util.ReadFile(relativePath)
	if err != nil {
		return Config{}, err
	}

	return newConfig(body)
}

func newConfig(body []byte) (Config, error) {
	c := &Config{}
	if err := json.Unmarshal(body, c); err != nil {
		return Config{}, err
	}

	return *c, nil
}

// Config - everything needed to construct a client; blank fields fall back to defaults
type Config struct {
	APIKey string     `json:"api_key"`
	Region RegionName `json:"region"`
	Locale string     `json:"locale"`

	// Downloader defaults to an HTTPDownloader
	Downloader Downloader `json:"-"`
}

// WithEnvironment optionally overrides the api key from the environment
func (c Config) WithEnvironment() Config {
	if apiKey := os.Getenv(APIKeyEnvVar); apiKey != "" {
		c.APIKey = apiKey
	}

	return c
}

func (c Config) withDefaults() Config {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Downloader == nil {
		c.Downloader = NewHTTPDownloader()
	}

	return c
}
