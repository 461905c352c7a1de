package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/promptgen/prompt"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"e"},
	Short:   "Export all templates to a markdown file",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _ := openCatalog(cmd)
		now := time.Now()

		name := prompt.ExportFileName(now)
		if err := os.WriteFile(name, []byte(prompt.Export(cat, now)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		ui.Successf("已导出到 %s", name)
		fmt.Printf("  共 %d 个模板\n", cat.Len())
		return nil
	},
}
