package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/terragen/internal/world"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terragen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(env(nil))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.Seed != 999 || cfg.Size != world.SizeTiny || !cfg.View || cfg.Output != "" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "seed: 42\nsize: Medium\noutput: out/world.tgw\n")

	cfg, err := Load(env(map[string]string{EnvFile: path}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 42 || cfg.Size != world.SizeMedium || cfg.Output != "out/world.tgw" {
		t.Errorf("File values not applied: %+v", cfg)
	}
	if !cfg.View {
		t.Error("Keys absent from the file should keep their defaults")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "seed: 42\nsize: medium\nview: true\notlp_endpoint: http://file:4318\n")

	cfg, err := Load(env(map[string]string{
		EnvFile:     path,
		EnvSeed:     "7",
		EnvSize:     "large",
		EnvView:     "false",
		EnvEndpoint: "http://env:4318",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{Seed: 7, Size: world.SizeLarge, View: false, OTLPEndpoint: "http://env:4318"}
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr error
	}{
		{"bad seed", map[string]string{EnvSeed: "lots"}, nil},
		{"bad view", map[string]string{EnvView: "maybe"}, nil},
		{"unknown size", map[string]string{EnvSize: "huge"}, world.ErrUnknownSize},
		{"missing file", map[string]string{EnvFile: filepath.Join(os.TempDir(), "does-not-exist.yaml")}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(env(tt.vars))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "seed: [1, 2\n"},
		{"bad size", "size: enormous\n"},
		{"wrong type", "seed: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			if _, err := Load(env(map[string]string{EnvFile: path})); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
	cfg := Default()
	cfg.Size = world.Size(42)
	if err := cfg.Validate(); !errors.Is(err, world.ErrUnknownSize) {
		t.Errorf("Expected ErrUnknownSize, got %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	if cfg.ResolveSeed() {
		t.Error("A configured seed should be kept")
	}
	if cfg.Seed != DefaultSeed {
		t.Errorf("Seed changed to %d", cfg.Seed)
	}

	cfg.Seed = 0
	if !cfg.ResolveSeed() {
		t.Error("A zero seed should be replaced")
	}
	if cfg.Seed == 0 {
		t.Error("Resolved seed must not be zero")
	}
}
