package prompt

import "strings"

// Style selects the layout the free-form builder emits.
type Style int

const (
	StyleXML Style = iota
	StyleMarkdown
	StylePlain
)

// Input holds the five optional builder fields. Empty fields are
// skipped in every style.
type Input struct {
	Role        string
	Context     string
	Task        string
	Format      string
	Constraints string
}

// Build renders the input in the chosen style.
func Build(in Input, style Style) string {
	switch style {
	case StyleMarkdown:
		return buildMarkdown(in)
	case StylePlain:
		return buildPlain(in)
	default:
		return buildXML(in)
	}
}

func buildXML(in Input) string {
	var parts []string
	if in.Role != "" {
		parts = append(parts, "<role>"+in.Role+"</role>")
	}
	if in.Context != "" {
		parts = append(parts, "\n<context>\n"+in.Context+"\n</context>")
	}
	if in.Task != "" {
		parts = append(parts, "\n<task>\n"+in.Task+"\n</task>")
	}
	if in.Format != "" {
		parts = append(parts, "\n<output_format>"+in.Format+"</output_format>")
	}
	if in.Constraints != "" {
		parts = append(parts, "\n<constraints>"+in.Constraints+"</constraints>")
	}
	return strings.Join(parts, "\n")
}

func buildMarkdown(in Input) string {
	var parts []string
	if in.Role != "" {
		parts = append(parts, "## 角色\n"+in.Role)
	}
	if in.Context != "" {
		parts = append(parts, "\n## 上下文\n"+in.Context)
	}
	if in.Task != "" {
		parts = append(parts, "\n## 任务\n"+in.Task)
	}
	if in.Format != "" {
		parts = append(parts, "\n## 输出格式\n"+in.Format)
	}
	if in.Constraints != "" {
		parts = append(parts, "\n## 约束条件\n"+in.Constraints)
	}
	return strings.Join(parts, "\n")
}

func buildPlain(in Input) string {
	var parts []string
	if in.Role != "" {
		parts = append(parts, in.Role)
	}
	if in.Context != "" {
		parts = append(parts, "\n背景信息：\n"+in.Context)
	}
	if in.Task != "" {
		parts = append(parts, "\n请完成以下任务：\n"+in.Task)
	}
	if in.Format != "" {
		parts = append(parts, "\n输出要求："+in.Format)
	}
	if in.Constraints != "" {
		parts = append(parts, "\n注意："+in.Constraints)
	}
	return strings.Join(parts, "\n")
}
