package cli

import (
	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/ui"
	"github.com/yinchengxin/claudekit/internal/version"
)

// runMenu is the root command: a looping menu over the subcommands,
// like the interactive mode of classic single-binary tools. Quit or an
// aborted menu exits the loop.
func runMenu(cmd *cobra.Command, args []string) error {
	if version.IsFirstRun() {
		version.PrintFirstRunNotice("promptgen", []string{
			"promptgen list          # 浏览全部模板",
			"promptgen use code_review",
			"promptgen build         # 从零构建",
		})
		version.MarkInitialized()
	}
	if r := version.CheckForUpdate(cmd.Root().Version); r != nil {
		version.PrintUpdateNotice("promptgen", r)
	}

	ui.Banner(
		"promptgen",
		"Prompt 模板工具，让 AI 对话更高效",
	)

	a := ui.NewAsker()
	for {
		key, err := ui.Menu("选择操作", []ui.MenuItem{
			{Key: "list", Label: "模板列表", Desc: "按分类浏览全部模板"},
			{Key: "search", Label: "搜索模板", Desc: "按关键词搜索"},
			{Key: "use", Label: "使用模板", Desc: "填写变量生成 Prompt"},
			{Key: "build", Label: "构建 Prompt", Desc: "从零开始逐步构建"},
			{Key: "export", Label: "导出模板", Desc: "导出全部模板为 Markdown"},
			{Key: "delete", Label: "删除模板", Desc: "删除自定义模板"},
		})
		if err != nil {
			return err
		}
		if key == "" {
			return nil
		}

		if err := dispatch(cmd, a, key); err != nil {
			return err
		}
	}
}

func dispatch(cmd *cobra.Command, a ui.Asker, key string) error {
	cat, store := openCatalog(cmd)
	switch key {
	case "list":
		return listTemplates(cat, "")
	case "search":
		keyword, err := a.Input("搜索关键词", "")
		if err != nil || keyword == "" {
			return cancelQuiet(err)
		}
		return searchCmd.RunE(cmd, []string{keyword})
	case "use":
		id, err := a.Input("模板 ID", "")
		if err != nil || id == "" {
			return cancelQuiet(err)
		}
		return useTemplate(cat, a, id)
	case "build":
		return buildPrompt(a, store)
	case "export":
		return exportCmd.RunE(cmd, nil)
	case "delete":
		return deleteTemplate(a, store, "")
	}
	return nil
}
