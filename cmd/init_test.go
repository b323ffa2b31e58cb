package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makebytes/makebytes/internal/config"
)

func TestInit(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "conf", config.DefaultFile)

	if err := runInit(path, "assets/logo.png", false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Input != "assets/logo.png" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if got := cfg.Outputs["c"]; got != "logo_png;generated/logo_png.h" {
		t.Errorf("c output = %q", got)
	}

	// Second run without force must not overwrite.
	err = runInit(path, "other.bin", false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected already exists error, got %v", err)
	}

	if err := runInit(path, "other.bin", true); err != nil {
		t.Fatalf("Init with force failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "input: other.bin") {
		t.Error("force did not overwrite the config")
	}
}
