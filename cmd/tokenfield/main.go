package main

import (
	"errors"
	"fmt"
	"os"

	"tokenfield/internal/config"
	"tokenfield/internal/logging"
	"tokenfield/internal/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose       bool
	configPath    string
	separator     string
	validatorSpec string
	jsonOut       bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// errAborted is returned when the user cancels the interactive field.
var errAborted = errors.New("aborted")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tokenfield [value...]",
	Short: "Collect a list of values as chips in the terminal",
	Long: `tokenfield turns typed text into a list of chips.

Typing the separator (default ",") or pressing Enter commits what was typed.
Backspace on an empty input removes the last chip; left/right select a chip
and backspace removes it. Clicking a chip's ✕ removes it too.

Values given as arguments are added before the field opens. On exit the
values are printed to stdout, one per line, or as JSON with --json.

Saving the config file while the field is open reloads the validator, theme,
input sizing and width cap. A new separator takes effect on the next run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Logging, ""); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryCLI)
		logger.Debug("command starting",
			zap.String("command", cmd.Name()),
			zap.String("config", resolvedConfigPath()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the log file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVarP(&separator, "separator", "s", "", "Token separator (overrides config)")
	rootCmd.PersistentFlags().StringVar(&validatorSpec, "validator", "", `Validator, e.g. "email", "nonempty+maxlen:20", "regexp:^[a-z]+$"`)
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	splitCmd.Flags().BoolVar(&strictSplit, "strict", false, "Exit non-zero when any value is invalid")
	keysCmd.Flags().BoolVar(&plainKeys, "plain", false, "Print the raw markdown")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig reads the config file and layers the command-line flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if _, err := validate.Parse(c.Field.Validator); err != nil {
		return nil, fmt.Errorf("validator %q: %w", c.Field.Validator, err)
	}
	return c, nil
}

// applyFlagOverrides copies explicitly set flags into c. It runs again on
// every hot reload so flags keep winning over the file.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("separator") {
		c.Field.Separator = separator
	}
	if flags.Changed("validator") {
		c.Field.Validator = validatorSpec
	}
	if verbose {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}
