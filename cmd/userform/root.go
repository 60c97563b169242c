package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-userform/pkg/config"
	"github.com/goliatone/go-userform/pkg/logging"
	"github.com/goliatone/go-userform/pkg/userform"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	reducer *userform.Reducer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "userform",
		Short:         "User details modal form",
		Long:          "Open the user details form in a terminal modal, as line prompts, or render a snapshot as HTML.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	cmd.AddCommand(
		newTUICmd(flags),
		newPromptCmd(flags),
		newRenderCmd(flags),
	)
	return cmd
}

// loadApp reads configuration and builds the logger and reducer. quiet drops
// console logging for commands that own the terminal.
func loadApp(flags *rootFlags, stderr io.Writer, quiet bool) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Console: stderr,
		Quiet:   quiet,
	})
	if err != nil {
		return nil, err
	}

	opts, err := cfg.ReducerOptions(logger)
	if err != nil {
		logger.Error("reducer options", zap.Error(err))
		return nil, err
	}

	logger.Debug("userform ready",
		zap.String("alert_mode", cfg.Form.AlertMode),
		zap.String("submit_policy", cfg.Form.SubmitPolicy),
		zap.Bool("reset_on_close", cfg.Form.ResetOnClose),
	)
	return &app{
		cfg:     cfg,
		logger:  logger,
		reducer: userform.NewReducer(opts...),
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("userform: encode output: %w", err)
	}
	return nil
}
