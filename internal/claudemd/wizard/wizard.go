// Package wizard walks the user through a role-based interview and
// produces a document config ready for rendering.
package wizard

import (
	"fmt"
	"strings"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/ui"
)

// Run executes the full interview: role selection, persona extras, then
// every step the role declares, and finally fills role-aware defaults.
// The returned error is ui.ErrInterrupted when the user cancels.
func Run(a ui.Asker, loc doc.Locale) (doc.Config, error) {
	var c doc.Config

	role, err := selectRole(a, loc)
	if err != nil {
		return c, err
	}

	if role.Key == "custom" {
		text, err := a.Input(loc.Pick("描述 Claude 应扮演的角色", "Describe the role Claude should play"), "")
		if err != nil {
			return c, err
		}
		c.Role = text
	} else {
		c.Role = role.RoleText(loc)
	}

	extra, err := a.Confirm(loc.Pick("是否补充角色要求?", "Add extra persona requirements?"), false)
	if err != nil {
		return c, err
	}
	if extra {
		c.PersonaExtras, err = a.Lines(loc.Pick("补充角色要求", "Extra persona requirements"))
		if err != nil {
			return c, err
		}
	}

	total := len(role.Steps)
	for i, name := range role.Steps {
		step, ok := steps[name]
		if !ok {
			return c, fmt.Errorf("wizard: unknown step %q in role %q", name, role.Key)
		}
		fmt.Printf("\n[%d/%d]\n", i+1, total)
		if err := step(a, loc, &c); err != nil {
			return c, err
		}
	}

	ApplyDefaults(&c, loc)
	return c, nil
}

func selectRole(a ui.Asker, loc doc.Locale) (Role, error) {
	opts := make([]ui.Option, 0, len(Roles))
	for _, r := range Roles {
		opts = append(opts, ui.Option{Key: r.Key, Label: r.Label(loc)})
	}
	key, err := a.Select(loc.Pick("选择你的角色", "Select your role"), opts, Roles[0].Key)
	if err != nil {
		return Role{}, err
	}
	r, ok := FindRole(key)
	if !ok {
		return Role{}, fmt.Errorf("wizard: unknown role %q", key)
	}
	return r, nil
}

// ApplyDefaults fills sections the interview left empty with sensible
// role-aware content. The thinking strategy always gets a default; the
// verification checklist only when the stack mentions Go.
func ApplyDefaults(c *doc.Config, loc doc.Locale) {
	if len(c.ThinkingStrategy) == 0 {
		c.ThinkingStrategy = []string{
			loc.Pick("接到复杂任务时，先规划方案再实现", "For complex tasks, plan before implementing"),
			loc.Pick("不确定项目约定时，先搜索现有代码参考", "When unsure about conventions, search existing code first"),
			loc.Pick("修改公共接口前，先查找所有调用方评估影响", "Before changing interfaces, grep callers to assess impact"),
		}
	}

	stack := strings.ToLower(strings.Join(c.TechItems, " "))
	if len(c.Verification) == 0 && strings.Contains(stack, "go") {
		c.Verification = []string{
			loc.Pick("lint 检查通过", "Lint checks pass"),
			loc.Pick("测试全部通过", "All tests pass"),
			loc.Pick("编译成功", "Build succeeds"),
			loc.Pick("没有硬编码密钥", "No hardcoded secrets"),
		}
	}
}
