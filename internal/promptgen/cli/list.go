package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list [category]",
	Aliases: []string{"ls", "l"},
	Short:   "List templates, optionally filtered by category",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _ := openCatalog(cmd)
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}
		return listTemplates(cat, filter)
	},
}

func listTemplates(cat *catalog.Catalog, filter string) error {
	ui.Header("模板列表")

	shown := 0
	for _, category := range cat.Categories() {
		if filter != "" && category != filter {
			continue
		}
		fmt.Printf("\n%s\n", ui.CategoryStyle.Render("▍"+category))
		for _, t := range cat.ByCategory(category) {
			tag := ""
			if cat.IsCustom(t.ID) {
				tag = " " + ui.CustomTagStyle.Render("[自定义]")
			}
			fmt.Printf("  %-22s %s%s\n", ui.IDStyle.Render(t.ID), t.Name, tag)
			fmt.Printf("  %-22s %s\n", "", ui.HelpStyle.Render(t.Description))
			shown++
		}
	}

	if shown == 0 {
		ui.Warnf("没有找到分类 %q，可用分类: %v", filter, cat.Categories())
		return nil
	}
	fmt.Println()
	fmt.Println(ui.CountStyle.Render(fmt.Sprintf("共 %d 个模板", shown)))
	ui.Hint("使用: promptgen use <id>")
	return nil
}
