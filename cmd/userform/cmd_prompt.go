package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-userform/pkg/renderers/prompt"
)

func newPromptCmd(flags *rootFlags) *cobra.Command {
	var attempts int
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill the form through line prompts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			data, err := prompt.New(a.reducer, prompt.WithMaxAttempts(attempts)).Run(cmd.Context())
			switch {
			case errors.Is(err, prompt.ErrCancelled), errors.Is(err, prompt.ErrAborted):
				a.logger.Info("form closed without submitting", zap.Error(err))
				return nil
			case err != nil:
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().IntVar(&attempts, "attempts", 0, "maximum submit attempts (0 = unlimited)")
	return cmd
}
