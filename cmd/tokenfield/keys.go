package main

import (
	"fmt"
	"strings"

	"tokenfield/cmd/tokenfield/ui"
	"tokenfield/internal/config"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var plainKeys bool

// keysCmd prints the key reference
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings of the interactive field",
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	md := keysMarkdown(ui.DefaultKeyMap(), cfg.Field.Separator)
	if plainKeys {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}

	style := glamour.WithAutoStyle()
	switch cfg.UI.Theme {
	case config.ThemeDark:
		style = glamour.WithStandardStyle("dark")
	case config.ThemeLight:
		style = glamour.WithStandardStyle("light")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("rendering key reference: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// keysMarkdown lists every binding that carries help text.
func keysMarkdown(km ui.KeyMap, sep string) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")
	fmt.Fprintf(&b, "| `%s` | add the typed value |\n", sep)
	for _, group := range km.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\nClick a chip's " + ui.CloseGlyph + " to remove it. Clicking outside the field adds the typed value.\n")
	return b.String()
}
