package main

import (
	"fmt"
	"os"

	"tokenfield/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceInit bool

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tokenfield config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), resolvedConfigPath())
		return err
	},
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", path))
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}
