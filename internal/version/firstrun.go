package version

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yinchengxin/claudekit/internal/ui"
)

// IsFirstRun reports whether neither tool has been run before.
func IsFirstRun() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(home, StateDir, ".initialized")); err == nil {
		return false
	}
	return true
}

// MarkInitialized creates the first-run marker. Best effort.
func MarkInitialized() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, StateDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(dir, ".initialized"), []byte{}, 0644)
}

// PrintFirstRunNotice prints a welcome message with tool-specific
// quick-start lines.
func PrintFirstRunNotice(tool string, quickstart []string) {
	fmt.Println()
	fmt.Printf("%s Welcome to %s!\n", ui.TitleStyle.Render("*"), tool)
	fmt.Println()
	fmt.Println("  Quick start:")
	for i, line := range quickstart {
		fmt.Printf("    %d. %s\n", i+1, line)
	}
	fmt.Println()
	fmt.Printf("  %s\n", ui.HelpStyle.Render(fmt.Sprintf("Run '%s --help' for all options", tool)))
	fmt.Println()
}
