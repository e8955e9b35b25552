package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/flemzord/wattsup/internal/config"
)

func TestConfigTemplateIsValid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wattsup.yaml")
	content := fmt.Sprintf(configTemplate, "12345:token", "sk-test", "ocm-test")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	for _, id := range []string{"channel.telegram", "provider.openai", "augment.charging", "gateway.http", "heartbeat.stats"} {
		if _, ok := cfg.Modules[id]; !ok {
			t.Errorf("template missing module %q", id)
		}
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	t.Parallel()

	root := rootCmd()
	for _, name := range []string{"version", "start", "config", "service"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found", name)
		}
	}
}
