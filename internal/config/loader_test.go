package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wattsup.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("WATTSUP_TEST_TOKEN", "123:abc")

	path := writeTempConfig(t, `
version: "1"
modules:
  channel.telegram:
    token: ${WATTSUP_TEST_TOKEN}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("Version = %q, want %q", cfg.Version, "1")
	}

	node, ok := cfg.Modules["channel.telegram"]
	if !ok {
		t.Fatal("missing channel.telegram module section")
	}
	var section struct {
		Token string `yaml:"token"`
	}
	if err := node.Decode(&section); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	if section.Token != "123:abc" {
		t.Errorf("Token = %q, want %q", section.Token, "123:abc")
	}
}

func TestLoad_DefaultValue(t *testing.T) {
	path := writeTempConfig(t, `
version: "1"
modules:
  gateway:
    addr: ${WATTSUP_UNSET_ADDR:-:8080}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	node := cfg.Modules["gateway"]
	var section struct {
		Addr string `yaml:"addr"`
	}
	if err := node.Decode(&section); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	if section.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", section.Addr, ":8080")
	}
}

func TestLoad_UnresolvedVariable(t *testing.T) {
	path := writeTempConfig(t, `
version: "1"
modules:
  provider.openai:
    api_key: ${WATTSUP_DEFINITELY_UNSET_KEY}
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unresolved variable")
	}
	if !strings.Contains(err.Error(), "WATTSUP_DEFINITELY_UNSET_KEY") {
		t.Errorf("error %q does not name the unresolved variable", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing version",
			cfg:     Config{},
			wantErr: "version field is required",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: "2"},
			wantErr: "unsupported version",
		},
		{
			name:    "no modules",
			cfg:     Config{Version: "1"},
			wantErr: "at least one module",
		},
		{
			name: "telemetry without endpoint",
			cfg: Config{
				Version:   "1",
				Telemetry: &TelemetryConfig{},
			},
			wantErr: "telemetry.endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(&tt.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
