package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"

	"github.com/flemzord/wattsup/pkg/app"
)

// program adapts the application loop to the service manager lifecycle.
// The manager's stop signal also reaches the app's own signal handler,
// so Stop only has to wait for the loop to drain.
type program struct {
	params app.RunParams
	done   chan struct{}
}

func (p *program) Start(_ service.Service) error {
	go func() {
		defer close(p.done)
		if err := app.Run(p.params); err != nil {
			fmt.Fprintf(os.Stderr, "wattsup: %v\n", err)
		}
	}()
	return nil
}

func (p *program) Stop(_ service.Service) error {
	select {
	case <-p.done:
	case <-time.After(10 * time.Second):
	}
	return nil
}

func serviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "service <install|uninstall|start|stop|restart|status|run>",
		Short:     "Manage wattsup as a system service",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"install", "uninstall", "start", "stop", "restart", "status", "run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")

			arguments := []string{"service", "run"}
			if cfgPath != "" {
				arguments = append(arguments, "--config", cfgPath)
			}

			svcConfig := &service.Config{
				Name:        "wattsup",
				DisplayName: "WattsUp",
				Description: "Telegram bot for EV trip planning",
				Arguments:   arguments,
			}
			prg := &program{
				params: app.RunParams{
					ConfigPath: cfgPath,
					Version:    version,
					Commit:     commit,
					Date:       date,
				},
				done: make(chan struct{}),
			}
			svc, err := service.New(prg, svcConfig)
			if err != nil {
				return err
			}

			switch action := args[0]; action {
			case "run":
				return svc.Run()
			case "status":
				status, err := svc.Status()
				if err != nil {
					return err
				}
				switch status {
				case service.StatusRunning:
					fmt.Println("running")
				case service.StatusStopped:
					fmt.Println("stopped")
				default:
					fmt.Println("unknown")
				}
				return nil
			default:
				return service.Control(svc, action)
			}
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to configuration file")
	return cmd
}
