package cli

import (
	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/claudemd/preset"
	"github.com/yinchengxin/claudekit/internal/ui"
	"github.com/yinchengxin/claudekit/internal/version"
)

// runMenu is the root command: an interactive menu over the subcommands.
func runMenu(cmd *cobra.Command, args []string) error {
	loc, _ := resolveLocale(cmd)

	if version.IsFirstRun() {
		version.PrintFirstRunNotice("claudemd", []string{
			"claudemd wizard    " + loc.Pick("# 交互式向导", "# guided interview"),
			"claudemd quick go-api",
			"claudemd example",
		})
		version.MarkInitialized()
	}
	if r := version.CheckForUpdate(cmd.Root().Version); r != nil {
		version.PrintUpdateNotice("claudemd", r)
	}

	ui.Banner(
		"claudemd",
		loc.Pick("CLAUDE.md 项目配置生成器", "CLAUDE.md project configuration generator"),
	)

	key, err := ui.Menu(loc.Pick("选择操作", "Choose an action"), []ui.MenuItem{
		{Key: "wizard", Label: loc.Pick("配置向导", "Wizard"), Desc: loc.Pick("逐步回答问题生成配置", "Answer questions step by step")},
		{Key: "quick", Label: loc.Pick("快速生成", "Quick"), Desc: loc.Pick("从预设一键生成", "Generate from a preset")},
		{Key: "presets", Label: loc.Pick("预设列表", "Presets"), Desc: loc.Pick("查看可用预设", "List available presets")},
		{Key: "example", Label: loc.Pick("查看示例", "Example"), Desc: loc.Pick("输出完整示例文档", "Print a complete example")},
		{Key: "help", Label: loc.Pick("帮助", "Help"), Desc: loc.Pick("命令行用法", "Command-line usage")},
	})
	if err != nil {
		return err
	}

	switch key {
	case "wizard":
		return runWizard(cmd, nil)
	case "quick":
		return menuQuick(cmd, loc)
	case "presets":
		listPresets(loc)
		return nil
	case "example":
		return exampleCmd.RunE(cmd, nil)
	case "help":
		return cmd.Help()
	default: // quit
		return nil
	}
}

func menuQuick(cmd *cobra.Command, loc doc.Locale) error {
	a := ui.NewAsker()
	opts := make([]ui.Option, 0, len(preset.Built))
	for _, m := range preset.Built {
		opts = append(opts, ui.Option{Key: m.Key, Label: m.Key + ": " + m.Desc(loc)})
	}
	key, err := a.Select(loc.Pick("选择预设", "Select a preset"), opts, opts[0].Key)
	if err != nil {
		return cancelOK(err, loc)
	}
	return runQuick(cmd, []string{key})
}
