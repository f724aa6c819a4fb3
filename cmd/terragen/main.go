// Package main is the entry point for TerraGen.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/terragen/internal/config"
	"github.com/samdwyer/terragen/internal/gen"
	"github.com/samdwyer/terragen/internal/telemetry"
	"github.com/samdwyer/terragen/internal/viewer"
	"github.com/samdwyer/terragen/internal/worldfile"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.ResolveSeed() {
		log.Printf("No seed configured, using random seed %d", cfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	log.Printf("Generating %s world with seed %d", cfg.Size, cfg.Seed)
	start := time.Now()

	g, err := gen.New(cfg.Size, cfg.Seed)
	if err != nil {
		return err
	}
	if err := g.Run(ctx); err != nil {
		return err
	}
	if skipped := g.Skipped(); len(skipped) > 0 {
		log.Printf("Passes not implemented yet: %v", skipped)
	}

	w, err := g.Finish()
	if err != nil {
		return err
	}
	log.Printf("Generated %dx%d world in %s", w.Width(), w.Height(), time.Since(start).Round(time.Millisecond))

	if cfg.Output != "" {
		h, err := worldfile.Save(cfg.Output, w)
		if err != nil {
			return err
		}
		log.Printf("Saved world %s to %s", h.WorldID, cfg.Output)
	}

	if !cfg.View {
		return nil
	}
	v, err := viewer.New(w)
	if err != nil {
		return err
	}
	return v.Run(ctx)
}
