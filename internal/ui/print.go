package ui

import (
	"fmt"
	"strings"
)

// Banner prints the framed tool banner.
func Banner(lines ...string) {
	fmt.Println(BannerStyle.Render(strings.Join(lines, "\n")))
}

// Header prints a prominent section header.
func Header(text string) {
	fmt.Println()
	fmt.Println(TitleStyle.Render("══ " + text + " ══"))
}

// Subheader prints a step heading inside a flow.
func Subheader(text string) {
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("── " + text + " ──"))
}

// Boxed prints content framed in a rounded border, truncated to maxLines.
// A truncation note replaces the hidden remainder.
func Boxed(content string, maxLines int) {
	lines := strings.Split(content, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		hidden := len(lines) - maxLines
		lines = append(lines[:maxLines], HelpStyle.Render(fmt.Sprintf("... (%d more lines)", hidden)))
	}
	fmt.Println(BoxStyle.Render(strings.Join(lines, "\n")))
}

// Successf prints a success line with a leading check mark.
func Successf(format string, args ...any) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning line.
func Warnf(format string, args ...any) {
	fmt.Printf("%s %s\n", WarningStyle.Render("!"), fmt.Sprintf(format, args...))
}

// Errorf prints a user-facing error line. Flows report failures with this
// and return normally; nothing in either tool is fatal to the process.
func Errorf(format string, args ...any) {
	fmt.Printf("%s %s\n", ErrorStyle.Render("✗"), fmt.Sprintf(format, args...))
}

// Hint prints dim helper text.
func Hint(text string) {
	fmt.Printf("  %s\n", HelpStyle.Render(text))
}
