package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/crossbench/pkg/errors"
)

func TestLoadBenchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")
	content := `
layers = [5, 5, 5]
connections = [10, 10]
trials = 200
arranger = "identity"
workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadBenchConfig(path)
	if err != nil {
		t.Fatalf("loadBenchConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Layers, []int{5, 5, 5}) {
		t.Errorf("Layers = %v, want [5 5 5]", cfg.Layers)
	}
	if !reflect.DeepEqual(cfg.Connections, []int{10, 10}) {
		t.Errorf("Connections = %v, want [10 10]", cfg.Connections)
	}
	if cfg.Trials != 200 {
		t.Errorf("Trials = %d, want 200", cfg.Trials)
	}
	if cfg.Arranger != "identity" {
		t.Errorf("Arranger = %q, want identity", cfg.Arranger)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadBenchConfig_Missing(t *testing.T) {
	_, err := loadBenchConfig(filepath.Join(t.TempDir(), "nope.toml"))

	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("loadBenchConfig() error = %v, want INVALID_INPUT", err)
	}
}

func TestLoadBenchConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")
	if err := os.WriteFile(path, []byte("layers = not-a-list"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := loadBenchConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("loadBenchConfig() error = %v, want INVALID_INPUT", err)
	}
}
