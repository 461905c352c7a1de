package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:     "search <keyword>...",
	Aliases: []string{"find", "s"},
	Short:   "Search templates by keyword",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _ := openCatalog(cmd)
		keyword := strings.Join(args, " ")

		matches := cat.Search(keyword)
		if len(matches) == 0 {
			ui.Warnf("没有匹配 %q 的模板", keyword)
			return nil
		}

		ui.Header(fmt.Sprintf("搜索 %q", keyword))
		for _, t := range matches {
			tag := ""
			if cat.IsCustom(t.ID) {
				tag = " " + ui.CustomTagStyle.Render("[自定义]")
			}
			fmt.Printf("  %-22s %s (%s)%s\n", ui.IDStyle.Render(t.ID), t.Name, t.Category, tag)
			fmt.Printf("  %-22s %s\n", "", ui.HelpStyle.Render(t.Description))
		}
		fmt.Println()
		fmt.Println(ui.CountStyle.Render(fmt.Sprintf("共 %d 个匹配", len(matches))))
		return nil
	},
}
