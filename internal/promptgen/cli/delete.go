package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a custom template (built-ins cannot be deleted)",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(cmd)
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		return deleteTemplate(ui.NewAsker(), store, id)
	},
}

func deleteTemplate(a ui.Asker, store *catalog.Store, id string) error {
	custom := store.Load()
	if len(custom) == 0 {
		ui.Warnf("没有自定义模板可删除")
		return nil
	}

	if id == "" {
		ui.Subheader("自定义模板列表")
		for cid, t := range custom {
			fmt.Printf("  %s - %s\n", ui.IDStyle.Render(cid), t.Name)
		}
		var err error
		if id, err = a.Input("输入要删除的模板 ID", ""); err != nil {
			return cancelQuiet(err)
		}
	}

	if _, ok := custom[id]; !ok {
		ui.Errorf("未找到自定义模板: %s", id)
		return nil
	}

	confirm, err := a.Confirm(fmt.Sprintf("确认删除 %s?", id), false)
	if err != nil {
		return cancelQuiet(err)
	}
	if !confirm {
		fmt.Println("  取消删除")
		return nil
	}

	if err := store.Delete(id); err != nil {
		return err
	}
	ui.Successf("已删除模板: %s", id)
	return nil
}
