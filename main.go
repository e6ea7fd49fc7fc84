package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/olivier-w/ringbar/internal/config"
	"github.com/olivier-w/ringbar/internal/logging"
	"github.com/olivier-w/ringbar/internal/ui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ringbar",
		Short:         "A circular progress ring in the terminal",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: runScreen,
	}
	root.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	root.PersistentFlags().String("log-file", "", "append logs to this file")
	root.PersistentFlags().StringP("log-level", "l", "", "log level (debug|info|warn|error)")

	root.AddCommand(newRenderCommand())
	return root
}

// loadConfig reads --config, or the defaults when it is not given, and lets
// the log flags override the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

func runScreen(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := ui.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "max", cfg.Max, "density", cfg.Density)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run screen: %w", err)
	}
	return nil
}
