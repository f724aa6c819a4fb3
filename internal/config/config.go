// Package config resolves run settings from defaults, a YAML file and the environment.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/terragen/internal/world"
)

// Environment variables read by Load.
const (
	EnvFile     = "TERRAGEN_CONFIG"
	EnvSeed     = "TERRAGEN_SEED"
	EnvSize     = "TERRAGEN_SIZE"
	EnvOutput   = "TERRAGEN_OUTPUT"
	EnvView     = "TERRAGEN_VIEW"
	EnvEndpoint = "TERRAGEN_OTLP_ENDPOINT"
)

// DefaultSeed is the seed used when nothing else is configured.
const DefaultSeed = 999

// Config holds the settings for one run.
type Config struct {
	// Seed for the generator. A seed of 0 means a random seed is picked by ResolveSeed.
	Seed int64
	Size world.Size
	// Output is the world file to write. Empty means the world is not saved.
	Output string
	// View opens the terminal viewer after generation.
	View bool
	// OTLPEndpoint overrides the trace exporter URL. Empty keeps the exporter's default.
	OTLPEndpoint string
}

// fileConfig is the YAML form. Absent keys leave the lower layer alone.
type fileConfig struct {
	Seed         *int64  `yaml:"seed"`
	Size         *string `yaml:"size"`
	Output       *string `yaml:"output"`
	View         *bool   `yaml:"view"`
	OTLPEndpoint *string `yaml:"otlp_endpoint"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed: DefaultSeed,
		Size: world.SizeTiny,
		View: true,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// TERRAGEN_CONFIG, then the TERRAGEN_* variables. getenv is usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv(EnvFile); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Size != nil {
		size, err := world.ParseSize(*fc.Size)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		c.Size = size
	}
	if fc.Output != nil {
		c.Output = *fc.Output
	}
	if fc.View != nil {
		c.View = *fc.View
	}
	if fc.OTLPEndpoint != nil {
		c.OTLPEndpoint = *fc.OTLPEndpoint
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvSize); v != "" {
		size, err := world.ParseSize(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSize, err)
		}
		c.Size = size
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := getenv(EnvView); v != "" {
		view, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvView, err)
		}
		c.View = view
	}
	if v := getenv(EnvEndpoint); v != "" {
		c.OTLPEndpoint = v
	}
	return nil
}

// Validate checks settings that the sources cannot rule out on their own.
func (c Config) Validate() error {
	if _, _, err := c.Size.Dimensions(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ResolveSeed replaces a zero seed with a random non-zero one. It returns
// true when it picked a seed, so the caller can report it.
func (c *Config) ResolveSeed() bool {
	if c.Seed != 0 {
		return false
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for c.Seed == 0 {
		c.Seed = rng.Int63()
	}
	return true
}
