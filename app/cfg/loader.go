package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Store configuration
	StoreURL string `long:"store-url" env:"STORE_URL" default:"redis://localhost:6379/0" description:"Connection URL for the news store"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"30" description:"Cache refresh interval in minutes"`
	SampleNewsLimit int    `long:"sample-news-limit" env:"SAMPLE_NEWS_LIMIT" default:"50" description:"Maximum number of records included in a trend snapshot's news sample"`
	RulesFile       string `long:"rules-file" env:"RULES_FILE" description:"Optional YAML file overriding classification keyword lists"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for moderation endpoints (optional)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		StoreURL:        raw.StoreURL,
		Port:            raw.Port,
		RefreshInterval: raw.RefreshInterval,
		SampleNewsLimit: raw.SampleNewsLimit,
		RulesFile:       raw.RulesFile,
		APIAccessKey:    raw.APIAccessKey,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
