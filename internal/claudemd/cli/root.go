// Package cli wires the claudemd cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/config"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var englishOut bool

// NewRoot builds the claudemd command tree. Running with no subcommand
// opens the interactive menu.
func NewRoot(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "claudemd",
		Short:   "Generate CLAUDE.md project configuration files for Claude Code",
		Version: version,
		Long: `claudemd generates CLAUDE.md files that teach Claude Code about your
project: tech stack, conventions, workflows, and hard rules.

Use the wizard for a guided interview, or quick for a preset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}
	root.PersistentFlags().BoolVar(&englishOut, "en", false, "Generate English output instead of Chinese")

	root.AddCommand(wizardCmd, quickCmd, presetsCmd, exampleCmd)
	return root
}

// resolveLocale applies the precedence flag > config file > default.
// The second result reports whether anything actually decided, so the
// wizard can ask when it did not.
func resolveLocale(cmd *cobra.Command) (doc.Locale, bool) {
	if cmd.Flags().Changed("en") {
		if englishOut {
			return doc.LocaleEN, true
		}
		return doc.LocaleZH, true
	}
	cfg, err := config.Load(config.Path())
	if err == nil && cfg.Lang != "" {
		return doc.ParseLocale(cfg.Lang), true
	}
	return doc.LocaleZH, false
}

// askLocale offers the language choice interactively.
func askLocale(a ui.Asker) (doc.Locale, error) {
	key, err := a.Select("选择输出语言 / Select output language", []ui.Option{
		{Key: "zh", Label: "中文 (Chinese)"},
		{Key: "en", Label: "English"},
	}, "zh")
	if err != nil {
		return doc.LocaleZH, err
	}
	return doc.ParseLocale(key), nil
}
