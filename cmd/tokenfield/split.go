package main

import (
	"fmt"
	"io"
	"strings"

	"tokenfield/internal/tokenfield"
	"tokenfield/internal/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var strictSplit bool

// splitCmd runs the commit path without a terminal
var splitCmd = &cobra.Command{
	Use:   "split [text...]",
	Short: "Split text into values and report which are valid",
	Long: `Commits the given text exactly as pressing Enter in the field would:
split on the separator, drop empty parts, validate each value once.

Use "-" to read the text from stdin. Line breaks on stdin separate values
too, so a file with one value per line needs no --separator. Valid values
are printed one per line, invalid ones follow prefixed with "invalid: ".

Example:
  tokenfield split --validator email "joe@mail.com,nope"
  cat list.txt | tokenfield split --separator ";" -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, cfg.Field.Separator)
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		raw = joinLines(string(data), cfg.Field.Separator)
	}

	v, err := validate.Parse(cfg.Field.Validator)
	if err != nil {
		return err
	}
	field, err := tokenfield.New(headless{width: cfg.UI.Width},
		tokenfield.WithSeparator(cfg.Field.Separator),
		tokenfield.WithValidator(v),
		tokenfield.WithSizer(cfg.Field.Sizer()),
		tokenfield.WithLogger(logger.Named("field")),
	)
	if err != nil {
		return err
	}

	changes := 0
	field.OnChange(func([]string) { changes++ })
	field.Handle(tokenfield.KeyDown(tokenfield.KeyEnter, raw))
	logger.Debug("split",
		zap.Int("tokens", field.Len()),
		zap.Int("changes", changes),
	)

	res := splitResult{
		Content: field.Content(),
		Valid:   field.ValidContent(),
		Invalid: field.InvalidContent(),
	}
	if err := writeSplit(cmd.OutOrStdout(), res, jsonOut); err != nil {
		return err
	}
	if strictSplit && len(res.Invalid) > 0 {
		return fmt.Errorf("%d invalid value(s)", len(res.Invalid))
	}
	return nil
}

// joinLines turns every line break into sep so each line commits on its own.
func joinLines(text, sep string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Join(strings.Split(text, "\n"), sep)
}

// headless is a container with no rendered chips. The field always sizes
// its input to full width against it.
type headless struct {
	width int
}

func (h headless) Width() int {
	return h.width
}

func (h headless) Bounds(string) (tokenfield.Rect, bool) {
	return tokenfield.Rect{}, false
}
