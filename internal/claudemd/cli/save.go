package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/ui"
)

const previewLines = 50

// previewAndSave shows the assembled document and loops on the action
// menu until the user saves, prints, or quits.
func previewAndSave(a ui.Asker, content string, loc doc.Locale) error {
	lines := strings.Count(content, "\n") + 1
	ui.Header(loc.Pick("生成完成", "Generation Complete"))
	fmt.Printf("%s\n\n", loc.Pick(
		fmt.Sprintf("共 %d 行，%d 字符", lines, len(content)),
		fmt.Sprintf("%d lines, %d characters", lines, len(content)),
	))
	ui.Boxed(content, previewLines)

	for {
		choice, err := a.Select(loc.Pick("接下来做什么?", "What next?"), []ui.Option{
			{Key: "save", Label: loc.Pick("保存到 ./CLAUDE.md", "Save to ./CLAUDE.md")},
			{Key: "path", Label: loc.Pick("保存到自定义路径", "Save to a custom path")},
			{Key: "page", Label: loc.Pick("完整预览", "View full document")},
			{Key: "print", Label: loc.Pick("打印到标准输出", "Print to stdout")},
			{Key: "quit", Label: loc.Pick("退出，不保存", "Quit without saving")},
		}, "save")
		if err != nil {
			return cancelOK(err, loc)
		}

		switch choice {
		case "save":
			return writeDoc("CLAUDE.md", content, loc)
		case "path":
			path, err := a.Input(loc.Pick("保存路径", "Target path"), "CLAUDE.md")
			if err != nil {
				return cancelOK(err, loc)
			}
			return writeDoc(path, content, loc)
		case "page":
			if err := ui.Page("CLAUDE.md", content); err != nil {
				ui.Warnf("pager unavailable: %v", err)
			}
		case "print":
			fmt.Println(content)
			return nil
		case "quit":
			return nil
		}
	}
}

func writeDoc(path, content string, loc doc.Locale) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	ui.Successf("%s", loc.Pick("已保存到 "+path, "Saved to "+path))
	ui.Hint(loc.Pick("把它放在项目根目录，Claude Code 会自动读取。", "Keep it at the project root; Claude Code reads it automatically."))
	return nil
}
