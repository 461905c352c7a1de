package doc

// sectionTitles maps section keys to their per-locale headings.
var sectionTitles = map[string]struct{ zh, en string }{
	"overview":   {"项目概述", "Project Overview"},
	"role":       {"角色定义", "Role Definition"},
	"tech":       {"技术栈与环境", "Tech Stack & Environment"},
	"structure":  {"项目结构", "Project Structure"},
	"commands":   {"常用命令", "Common Commands"},
	"style":      {"代码规范", "Code Style"},
	"core":       {"核心规范", "Core Rules"},
	"workflow":   {"工作流程", "Workflow"},
	"thinking":   {"思考策略", "Thinking Strategy"},
	"testing":    {"测试规范", "Testing"},
	"error":      {"错误处理", "Error Handling"},
	"security":   {"安全规范", "Security"},
	"git":        {"Git 规范", "Git Conventions"},
	"hard":       {"禁止事项", "Hard Rules — NEVER Do"},
	"gotchas":    {"特殊注意", "Gotchas & Warnings"},
	"verify":     {"验证检查清单", "Verification Checklist"},
	"references": {"参考资源", "References"},
}

// Title returns the localized heading for a section key. Unknown keys
// pass through unchanged.
func Title(key string, loc Locale) string {
	t, ok := sectionTitles[key]
	if !ok {
		return key
	}
	return loc.Pick(t.zh, t.en)
}
