package main

import (
	"context"
	"fmt"

	"tokenfield/cmd/tokenfield/ui"
	"tokenfield/internal/config"
	"tokenfield/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runInteractive starts the chip field and prints what the user collected.
func runInteractive(cmd *cobra.Command, args []string) error {
	opts, err := ui.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Initial = args
	opts.Logger = logging.Get(logging.CategoryUI)

	model, err := ui.New(opts)
	if err != nil {
		return err
	}

	// stdout carries the result, so the program draws on stderr. The alt
	// screen pins the view at row 0, which mouse hit testing relies on.
	progOpts := []tea.ProgramOption{
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithAltScreen(),
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	watcher, err := config.NewWatcher(resolvedConfigPath(), func(c *config.Config, err error) {
		if err == nil {
			applyFlagOverrides(cmd, c)
		}
		p.Send(ui.ConfigReloadedMsg{Config: c, Err: err})
	}, logging.Get(logging.CategoryConfig))
	if err != nil {
		logger.Warn("config hot reload disabled", zap.Error(err))
	} else {
		if err := watcher.Start(ctx); err != nil {
			logger.Warn("config hot reload disabled", zap.Error(err))
		}
		defer watcher.Stop()
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running field: %w", err)
	}
	m, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}

	res := m.Result()
	logger.Debug("field closed",
		zap.Int("tokens", len(res.Content)),
		zap.Int("invalid", len(res.Invalid)),
		zap.Int("changes", m.Changes()),
		zap.Bool("aborted", res.Aborted),
	)
	if res.Aborted {
		return errAborted
	}
	return writeContent(cmd.OutOrStdout(), res.Content, jsonOut)
}
