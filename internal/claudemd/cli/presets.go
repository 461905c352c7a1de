package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/claudemd/preset"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var presetsCmd = &cobra.Command{
	Use:     "presets",
	Aliases: []string{"p", "list", "ls"},
	Short:   "List available presets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, _ := resolveLocale(cmd)
		listPresets(loc)
		return nil
	},
}

func listPresets(loc doc.Locale) {
	ui.Header(loc.Pick("可用预设", "Available Presets"))
	for _, m := range preset.Built {
		fmt.Printf("  %s  %s\n", ui.IDStyle.Render(m.Key), m.Desc(loc))
	}
	fmt.Println()
	ui.Hint(loc.Pick("即将推出：", "Coming soon:"))
	for _, m := range preset.Planned {
		fmt.Printf("  %s  %s\n", ui.HelpStyle.Render(m.Key), ui.HelpStyle.Render(m.Desc(loc)))
	}
	fmt.Println()
	fmt.Println(loc.Pick("使用: claudemd quick <preset>", "Usage: claudemd quick <preset>"))
}

var quickCmd = &cobra.Command{
	Use:     "quick [preset]",
	Aliases: []string{"q"},
	Short:   "Generate a CLAUDE.md from a preset, no interview",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runQuick,
}

func runQuick(cmd *cobra.Command, args []string) error {
	loc, _ := resolveLocale(cmd)
	if len(args) == 0 {
		listPresets(loc)
		return nil
	}

	name := args[0]
	c, ok := preset.Get(name, loc)
	if !ok {
		for _, m := range preset.Planned {
			if m.Key == name {
				ui.Warnf("%s", loc.Pick(
					"预设 "+name+" 尚未内置，请先使用 claudemd wizard。",
					"Preset "+name+" is not built in yet; use claudemd wizard instead.",
				))
				return nil
			}
		}
		ui.Errorf("%s", loc.Pick(
			fmt.Sprintf("未知预设 %q", name),
			fmt.Sprintf("unknown preset %q", name),
		))
		listPresets(loc)
		return nil
	}

	return previewAndSave(ui.NewAsker(), doc.Assemble(c, loc), loc)
}

var exampleCmd = &cobra.Command{
	Use:     "example",
	Aliases: []string{"ex"},
	Short:   "Print a complete example CLAUDE.md to stdout",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, _ := resolveLocale(cmd)
		c, ok := preset.Get("go-api", loc)
		if !ok {
			return fmt.Errorf("go-api preset missing")
		}
		fmt.Println(doc.Assemble(c, loc))
		return nil
	},
}
