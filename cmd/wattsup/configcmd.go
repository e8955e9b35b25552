package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/flemzord/wattsup/internal/config"
	"github.com/flemzord/wattsup/internal/core"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(configCheckCmd(), configInitCmd())
	return cmd
}

func configCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Validate configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
			appCtx := core.NewAppContext(logger)
			appCtx = appCtx.WithModuleConfigs(cfg.Modules)

			application := core.NewApp(appCtx)
			ids := config.Resolve(cfg)
			if err := application.LoadModules(ids); err != nil {
				return err
			}
			defer application.Stop()

			fmt.Printf("Configuration OK (%d modules)\n", len(ids))
			for _, id := range ids {
				fmt.Printf("  %s\n", id)
			}
			return nil
		},
	}
}

const configTemplate = `version: "1"

modules:
  channel.telegram:
    token: "%s"

  provider.openai:
    api_key: "%s"
    model: gpt-4.1-mini

  augment.charging:
    api_key: "%s"

  gateway.http:
    bind: 127.0.0.1:8080

  heartbeat.stats:
    schedule: "*/5 * * * *"
`

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("output")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", path)
			}

			var telegramToken, openaiKey, chargeMapKey string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Telegram bot token").
						Description("From @BotFather").
						EchoMode(huh.EchoModePassword).
						Value(&telegramToken),
					huh.NewInput().
						Title("OpenAI API key").
						EchoMode(huh.EchoModePassword).
						Value(&openaiKey),
					huh.NewInput().
						Title("OpenChargeMap API key").
						Description("From openchargemap.org/site/develop/api").
						EchoMode(huh.EchoModePassword).
						Value(&chargeMapKey),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}

			content := fmt.Sprintf(configTemplate, telegramToken, openaiKey, chargeMapKey)
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", path)
			fmt.Println("Start the bot with: wattsup start")
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "wattsup.yaml", "Where to write the configuration file")
	return cmd
}
