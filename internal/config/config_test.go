package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.LayoutPath != "" || cfg.App.OutputPath != "" {
		t.Fatalf("expected empty paths, got %+v", cfg.App)
	}
	if cfg.App.PublishInterval != defaultPublishInterval || cfg.App.PollInterval != defaultPollInterval {
		t.Fatalf("unexpected intervals %+v", cfg.App)
	}
	if !cfg.App.ShowFooter || !cfg.Features.PrintJSON {
		t.Fatalf("expected footer and print enabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envLayout + "=/tmp/menu.yaml",
		envOutput + "=/tmp/out.json",
		envPublishInterval + "=1s",
		envWidth + "=100",
		envTrace + "=true",
		envShowFooter + "=false",
		envPollInterval + "=bogus",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.LayoutPath != "/tmp/menu.yaml" || cfg.App.OutputPath != "/tmp/out.json" {
		t.Fatalf("expected env paths, got %+v", cfg.App)
	}
	if cfg.App.PublishInterval != time.Second {
		t.Fatalf("expected 1s publish interval, got %s", cfg.App.PublishInterval)
	}
	if cfg.App.PollInterval != defaultPollInterval {
		t.Fatalf("expected invalid duration to fall back, got %s", cfg.App.PollInterval)
	}
	if cfg.App.Width != 100 || !cfg.Logging.Trace || cfg.App.ShowFooter {
		t.Fatalf("unexpected config %+v / %+v", cfg.App, cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	args := []string{"-output", "/tmp/flag.json", "-publish-interval", "50ms", "-print=false"}
	cfg, err := LoadArgs(args, []string{envOutput + "=/tmp/env.json"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.OutputPath != "/tmp/flag.json" {
		t.Fatalf("expected flag to win, got %s", cfg.App.OutputPath)
	}
	if cfg.Flags["publishInterval"] != "50ms" || cfg.Flags["print"] != "false" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded")
	}
}

func TestLoadArgsRejectsNegativeValues(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "-1"},
		{"-height", "-3"},
		{"-publish-interval", "-1s"},
		{"-poll-interval", "-1s"},
		{"-unknown"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(layout, []byte("tabs: []\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _ := LoadArgs([]string{"-layout", layout, "-input", "a.json", "-output", "b.json"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg, _ = LoadArgs([]string{"-layout", filepath.Join(dir, "missing.yaml"), "-input", "x.json", "-output", "./x.json"}, nil)
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	if !strings.Contains(err.Error(), "layout") || !strings.Contains(err.Error(), "input and output must differ") {
		t.Fatalf("expected both problems reported, got %v", err)
	}

	cfg, _ = LoadArgs([]string{"-layout", dir}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected directory layout to be rejected")
	}
}
