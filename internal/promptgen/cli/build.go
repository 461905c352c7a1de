package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
	"github.com/yinchengxin/claudekit/internal/promptgen/prompt"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"new", "b"},
	Short:   "Build a prompt from scratch, step by step",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store := openCatalog(cmd)
		return buildPrompt(ui.NewAsker(), store)
	},
}

func buildPrompt(a ui.Asker, store *catalog.Store) error {
	ui.Header("Prompt 构建器")
	ui.Hint("按步骤构建一个自定义 Prompt，每步可留空跳过")

	var in prompt.Input
	var err error

	ui.Subheader("步骤 1/5: 角色设定 (Role)")
	ui.Hint("示例: 你是一个资深的 Go 后端工程师")
	if in.Role, err = a.Input("角色", ""); err != nil {
		return cancelQuiet(err)
	}

	ui.Subheader("步骤 2/5: 上下文 (Context)")
	ui.Hint("提供背景信息，如技术栈、业务场景、约束条件等")
	ctx, err := a.Lines("上下文")
	if err != nil {
		return cancelQuiet(err)
	}
	in.Context = strings.Join(ctx, "\n")

	ui.Subheader("步骤 3/5: 任务 (Task)")
	ui.Hint("明确告诉 AI 要做什么")
	task, err := a.Lines("任务")
	if err != nil {
		return cancelQuiet(err)
	}
	in.Task = strings.Join(task, "\n")

	ui.Subheader("步骤 4/5: 输出格式 (Format)")
	ui.Hint("示例: 用代码块输出，附带注释；输出为JSON；用表格对比")
	if in.Format, err = a.Input("格式", ""); err != nil {
		return cancelQuiet(err)
	}

	ui.Subheader("步骤 5/5: 额外约束 (Constraints)")
	ui.Hint("其他限制条件，如不要用第三方库、保持简洁等")
	if in.Constraints, err = a.Input("约束", ""); err != nil {
		return cancelQuiet(err)
	}

	styleKey, err := a.Select("选择 Prompt 风格", []ui.Option{
		{Key: "xml", Label: "XML 标签风格 (适合 Claude)"},
		{Key: "markdown", Label: "Markdown 风格 (通用)"},
		{Key: "plain", Label: "纯文本风格 (简洁)"},
	}, "xml")
	if err != nil {
		return cancelQuiet(err)
	}
	style := map[string]prompt.Style{
		"xml":      prompt.StyleXML,
		"markdown": prompt.StyleMarkdown,
		"plain":    prompt.StylePlain,
	}[styleKey]

	rendered := prompt.Build(in, style)
	ui.Header("生成的 Prompt")
	ui.Boxed(rendered, 0)

	choice, err := a.Select("接下来做什么?", []ui.Option{
		{Key: "template", Label: "保存为自定义模板"},
		{Key: "file", Label: "保存到文件"},
		{Key: "done", Label: "返回"},
	}, "template")
	if err != nil {
		return cancelQuiet(err)
	}
	switch choice {
	case "template":
		return saveAsTemplate(a, store, rendered)
	case "file":
		def := "prompt_" + time.Now().Format("20060102_150405") + ".md"
		path, err := a.Input("文件名", def)
		if err != nil {
			return cancelQuiet(err)
		}
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		ui.Successf("已保存到 %s", path)
	}
	return nil
}

// saveAsTemplate turns a built prompt into a custom catalog entry.
// Variables are rediscovered from the text, so {placeholders} typed
// into the builder fields survive as fillable slots.
func saveAsTemplate(a ui.Asker, store *catalog.Store, text string) error {
	ui.Subheader("保存为自定义模板")
	id, err := a.Input("模板 ID (英文，如 my_debug)", "")
	if err != nil {
		return cancelQuiet(err)
	}
	if !prompt.ValidID(id) {
		ui.Errorf("无效的模板 ID，请使用英文字母和下划线")
		return nil
	}

	name, err := a.Input("模板名称", id)
	if err != nil {
		return cancelQuiet(err)
	}
	category, err := a.Input("分类 (开发/运维/架构/文档/通用)", "自定义")
	if err != nil {
		return cancelQuiet(err)
	}
	desc, err := a.Input("描述", "自定义模板")
	if err != nil {
		return cancelQuiet(err)
	}

	t := catalog.Template{
		ID:          id,
		Name:        name,
		Category:    category,
		Description: desc,
		Variables:   prompt.ExtractVariables(text),
		Text:        text,
	}
	if err := store.Add(t); err != nil {
		return err
	}
	ui.Successf("已保存自定义模板: %s", id)
	ui.Hint("存储位置: " + store.Path())
	return nil
}
