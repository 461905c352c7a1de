package doc

import (
	"fmt"
	"strings"
)

// A renderFunc maps the config to one markdown block, or "" when the
// fields it owns were never collected. Renderers read only their own
// fields and never each other's output.
type renderFunc func(*Config, Locale) string

// renderers in final document order. The order is fixed; the assembler
// must not reorder sections.
var renderers = []renderFunc{
	renderOverview,
	renderRole,
	renderTech,
	renderStructure,
	renderCommands,
	renderStyle,
	renderCore,
	renderWorkflow,
	renderThinking,
	renderTesting,
	renderError,
	renderSecurity,
	renderGit,
	renderHard,
	renderGotchas,
	renderVerify,
	renderReferences,
}

// Assemble renders every non-empty section in declared order, separated
// by one blank line. Pure: same config and locale always yield the same
// document.
func Assemble(c *Config, loc Locale) string {
	var parts []string
	for _, render := range renderers {
		if block := render(c, loc); strings.TrimSpace(block) != "" {
			parts = append(parts, block)
		}
	}
	return strings.Join(parts, "\n")
}

func bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// listSection is the common shape: heading, blank line, bullet list.
func listSection(titleKey string, items []string, loc Locale) string {
	if len(items) == 0 {
		return ""
	}
	return fmt.Sprintf("## %s\n\n%s\n", Title(titleKey, loc), bullets(items))
}

func renderOverview(c *Config, loc Locale) string {
	name := c.ProjectName
	if name == "" {
		name = "my-project"
	}
	lines := []string{"# " + name, "", "## " + Title("overview", loc), ""}
	if c.ProjectDesc != "" {
		lines = append(lines, c.ProjectDesc, "")
	}
	if c.ProjectType != "" {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", loc.Pick("类型", "Type"), c.ProjectType))
	}
	if c.ProjectStatus != "" {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", loc.Pick("状态", "Status"), c.ProjectStatus))
	}
	// Normalize to exactly one trailing newline so the assembler's join
	// yields a single blank line before the next section.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderRole(c *Config, loc Locale) string {
	if c.Role == "" {
		return ""
	}
	sentence := loc.Pick("你是一位"+c.Role+"。", "You are a "+c.Role+".")
	lines := []string{"## " + Title("role", loc), "", sentence, ""}
	if len(c.PersonaExtras) > 0 {
		lines = append(lines, bullets(c.PersonaExtras), "")
	}
	return strings.Join(lines, "\n")
}

func renderTech(c *Config, loc Locale) string {
	if len(c.TechItems) == 0 {
		return ""
	}
	return fmt.Sprintf("## %s\n\n%s\n", Title("tech", loc), bullets(c.TechItems))
}

func renderStructure(c *Config, loc Locale) string {
	if c.Structure == "" {
		return ""
	}
	return strings.Join([]string{
		"## " + Title("structure", loc), "", "```", c.Structure, "```", "",
	}, "\n")
}

func renderCommands(c *Config, loc Locale) string {
	if len(c.Commands) == 0 {
		return ""
	}
	lines := []string{"## " + Title("commands", loc), ""}
	for _, cmd := range c.Commands {
		lines = append(lines, fmt.Sprintf("- **%s**: `%s`", cmd.Label, cmd.Cmd))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderStyle(c *Config, loc Locale) string {
	return listSection("style", c.CodeStyleRules, loc)
}

func renderCore(c *Config, loc Locale) string {
	return listSection("core", c.CoreRules, loc)
}

func renderWorkflow(c *Config, loc Locale) string {
	if len(c.Workflow) == 0 {
		return ""
	}
	return fmt.Sprintf("## %s\n\n%s\n", Title("workflow", loc), numbered(c.Workflow))
}

func renderThinking(c *Config, loc Locale) string {
	return listSection("thinking", c.ThinkingStrategy, loc)
}

func renderTesting(c *Config, loc Locale) string {
	return listSection("testing", c.TestingRules, loc)
}

func renderError(c *Config, loc Locale) string {
	return listSection("error", c.ErrorHandling, loc)
}

func renderSecurity(c *Config, loc Locale) string {
	return listSection("security", c.SecurityRules, loc)
}

func renderGit(c *Config, loc Locale) string {
	return listSection("git", c.GitRules, loc)
}

func renderHard(c *Config, loc Locale) string {
	if len(c.HardRules) == 0 {
		return ""
	}
	warn := loc.Pick("重要：以下规则绝对不可违反。", "IMPORTANT: The following rules must NEVER be violated.")
	lines := []string{"## " + Title("hard", loc), "", warn, ""}
	for _, rule := range c.HardRules {
		lines = append(lines, "- ❌ "+rule)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderGotchas(c *Config, loc Locale) string {
	if len(c.Gotchas) == 0 {
		return ""
	}
	lines := []string{"## " + Title("gotchas", loc), ""}
	for _, item := range c.Gotchas {
		lines = append(lines, "- ⚠️ "+item)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderVerify(c *Config, loc Locale) string {
	if len(c.Verification) == 0 {
		return ""
	}
	intro := loc.Pick(
		"完成任何修改后，必须按以下清单逐项验证：",
		"After completing any change, verify each item below:",
	)
	lines := []string{"## " + Title("verify", loc), "", intro, ""}
	for _, item := range c.Verification {
		lines = append(lines, "- [ ] "+item)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderReferences(c *Config, loc Locale) string {
	return listSection("references", c.References, loc)
}
