package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/lysyi3m/atomfeed/app/cfg"
	"github.com/lysyi3m/atomfeed/app/feed"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		os.Exit(2)
	}
	if appCfg == nil {
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting atomgen", "version", appCfg.Version, "feeds_dir", appCfg.FeedsDir, "output_dir", appCfg.OutputDir)

	if err := run(appCfg); err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	loader := feed.NewLoader(appCfg.FeedsDir)
	definitions, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load feed definitions: %w", err)
	}
	slog.Info("Feed definitions loaded", "count", len(definitions))

	if err := os.MkdirAll(appCfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	generator := feed.NewGenerator(feed.GeneratorOptions{
		Encoding: appCfg.Encoding,
		Compact:  appCfg.Compact,
		Strict:   appCfg.Strict,
	})

	var verifier *feed.Verifier
	if appCfg.Verify {
		verifier = feed.NewVerifier()
	}

	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		if err := generate(generator, verifier, definitions[name], appCfg.OutputDir); err != nil {
			slog.Error("Feed generation failed", "feed", name, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d feeds failed", failed, len(names))
	}

	slog.Info("Feeds generated", "count", len(names))
	return nil
}

func generate(generator *feed.Generator, verifier *feed.Verifier, definition *feed.Definition, outputDir string) error {
	f, err := definition.Feed()
	if err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}

	path := filepath.Join(outputDir, definition.Name+".atom")
	if err := generator.WriteFile(f, path); err != nil {
		return err
	}

	if verifier != nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read back %s: %w", path, err)
		}
		if err := verifier.Verify(data, f); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		slog.Debug("Feed verified", "feed", definition.Name)
	}

	slog.Info("Feed generated", "feed", definition.Name, "entries", len(f.Entries()), "path", path)
	return nil
}
