package prompt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
)

// ExportFileName returns the dated export target, e.g.
// prompt_templates_export_20250115.md.
func ExportFileName(now time.Time) string {
	return "prompt_templates_export_" + now.Format("20060102") + ".md"
}

// Export renders the whole catalog as one markdown document, grouped by
// category (sorted), templates in catalog order within each group.
func Export(c *catalog.Catalog, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Prompt 模板导出\n")
	fmt.Fprintf(&b, "# 导出时间: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "# 模板总数: %d\n", c.Len())

	byCat := make(map[string][]catalog.Template)
	for _, t := range c.All() {
		byCat[t.Category] = append(byCat[t.Category], t)
	}
	cats := make([]string, 0, len(byCat))
	for cat := range byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		fmt.Fprintf(&b, "\n## %s\n", cat)
		for _, t := range byCat[cat] {
			fmt.Fprintf(&b, "\n### %s (`%s`)\n", t.Name, t.ID)
			fmt.Fprintf(&b, "> %s\n", t.Description)
			vars := make([]string, len(t.Variables))
			for i, v := range t.Variables {
				vars[i] = "`{" + v + "}`"
			}
			fmt.Fprintf(&b, "> 变量: %s\n", strings.Join(vars, ", "))
			fmt.Fprintf(&b, "\n```\n%s\n```\n", t.Text)
		}
	}
	return b.String()
}
