package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/clipboard"
	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
	"github.com/yinchengxin/claudekit/internal/promptgen/prompt"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var useCmd = &cobra.Command{
	Use:     "use <id>",
	Aliases: []string{"u"},
	Short:   "Fill a template's variables and render the prompt",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _ := openCatalog(cmd)
		return useTemplate(cat, ui.NewAsker(), args[0])
	},
}

func useTemplate(cat *catalog.Catalog, a ui.Asker, id string) error {
	t, ok := cat.Get(id)
	if !ok {
		ui.Errorf("模板 %q 不存在", id)
		if sug := cat.Suggest(id); len(sug) > 0 {
			fmt.Printf("  你是不是要找: %s\n", strings.Join(sug, ", "))
		}
		return nil
	}

	for {
		ui.Header("使用模板: " + t.Name)
		fmt.Printf("  %s\n", ui.HelpStyle.Render(t.Description))
		fmt.Printf("  分类: %s\n", ui.CategoryStyle.Render(t.Category))

		rendered, err := renderTemplate(a, t)
		if err != nil {
			return cancelQuiet(err)
		}

		ui.Header("生成的 Prompt")
		ui.Boxed(rendered, 0)

		again, err := postRenderActions(a, rendered, "prompt_"+t.ID+".md")
		if err != nil {
			return cancelQuiet(err)
		}
		if !again {
			return nil
		}
	}
}

// renderTemplate collects every declared variable and substitutes them.
// Long-form variables switch to multi-line input.
func renderTemplate(a ui.Asker, t catalog.Template) (string, error) {
	values := make(map[string]string, len(t.Variables))
	if len(t.Variables) > 0 {
		ui.Subheader("请填写以下变量")
	}
	for _, name := range t.Variables {
		if prompt.IsLongForm(name) {
			ui.Hint("{" + name + "} 多行输入，空行结束")
			lines, err := a.Lines("{" + name + "}")
			if err != nil {
				return "", err
			}
			values[name] = strings.Join(lines, "\n")
			continue
		}
		val, err := a.Input("{"+name+"}", "")
		if err != nil {
			return "", err
		}
		values[name] = val
	}
	return prompt.Substitute(t.Text, t.Variables, values), nil
}

// postRenderActions offers copy/save/re-render. The bool result asks
// the caller to collect the variables again.
func postRenderActions(a ui.Asker, rendered, defaultFile string) (bool, error) {
	choice, err := a.Select("接下来做什么?", []ui.Option{
		{Key: "copy", Label: "复制到剪贴板"},
		{Key: "file", Label: "保存到文件"},
		{Key: "again", Label: "重新生成（修改变量）"},
		{Key: "done", Label: "返回"},
	}, "copy")
	if err != nil {
		return false, err
	}

	switch choice {
	case "copy":
		if name, err := clipboard.Copy(rendered, clipboard.DefaultProviders()); err != nil {
			ui.Warnf("未找到可用的剪贴板工具，请手动复制上方内容")
		} else {
			ui.Successf("已复制到剪贴板 (%s)", name)
		}
	case "file":
		path, err := a.Input("文件名", defaultFile)
		if err != nil {
			return false, err
		}
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return false, fmt.Errorf("writing %s: %w", path, err)
		}
		ui.Successf("已保存到 %s", path)
	case "again":
		return true, nil
	}
	return false, nil
}

// cancelQuiet swallows user interrupts so ctrl-c backs out of a flow
// without an error trace.
func cancelQuiet(err error) error {
	if errors.Is(err, ui.ErrInterrupted) {
		ui.Warnf("已取消")
		return nil
	}
	return err
}
