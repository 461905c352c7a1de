package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		vars   []string
		values map[string]string
		want   string
	}{
		{
			name:   "declared vars replaced",
			text:   "审查 {language} 代码: {code}",
			vars:   []string{"language", "code"},
			values: map[string]string{"language": "Go", "code": "x := 1"},
			want:   "审查 Go 代码: x := 1",
		},
		{
			name:   "repeated placeholder",
			text:   "{a} and {a}",
			vars:   []string{"a"},
			values: map[string]string{"a": "v"},
			want:   "v and v",
		},
		{
			name:   "undeclared braces untouched",
			text:   "use {declared} but keep {literal}",
			vars:   []string{"declared"},
			values: map[string]string{"declared": "x"},
			want:   "use x but keep {literal}",
		},
		{
			name:   "missing value becomes empty",
			text:   "a{v}b",
			vars:   []string{"v"},
			values: map[string]string{},
			want:   "ab",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.text, tt.vars, tt.values); got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstituteLeavesNoDeclaredPlaceholders(t *testing.T) {
	// Every built-in template, fully filled, must contain none of its
	// declared placeholders afterwards.
	c := catalog.Merge(catalog.NewStore(t.TempDir() + "/none.json"))
	for _, tmpl := range c.All() {
		values := make(map[string]string, len(tmpl.Variables))
		for _, v := range tmpl.Variables {
			values[v] = "FILLED"
		}
		got := Substitute(tmpl.Text, tmpl.Variables, values)
		for _, v := range tmpl.Variables {
			if strings.Contains(got, "{"+v+"}") {
				t.Errorf("%s: placeholder {%s} survived substitution", tmpl.ID, v)
			}
		}
	}
}

func TestIsLongForm(t *testing.T) {
	for _, v := range []string{"code", "sql", "nfr", "business_desc"} {
		if !IsLongForm(v) {
			t.Errorf("IsLongForm(%q) = false", v)
		}
	}
	for _, v := range []string{"language", "topic", ""} {
		if IsLongForm(v) {
			t.Errorf("IsLongForm(%q) = true", v)
		}
	}
}

func TestExtractVariables(t *testing.T) {
	got := ExtractVariables("<task>\n{task} uses {code} and {task} again\n</task>")
	want := []string{"task", "code"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractVariables mismatch (-want +got):\n%s", diff)
	}
	if got := ExtractVariables("no placeholders"); got != nil {
		t.Errorf("ExtractVariables() = %v, want nil", got)
	}
}

func TestValidID(t *testing.T) {
	for _, id := range []string{"my_debug", "_x", "A1", "code_review2"} {
		if !ValidID(id) {
			t.Errorf("ValidID(%q) = false", id)
		}
	}
	for _, id := range []string{"", "1abc", "my-debug", "带中文", "a b"} {
		if ValidID(id) {
			t.Errorf("ValidID(%q) = true", id)
		}
	}
}

func TestBuildXMLTaskOnly(t *testing.T) {
	got := Build(Input{Task: "do the thing"}, StyleXML)
	want := "\n<task>\ndo the thing\n</task>"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
	if strings.Count(got, "<task>") != 1 {
		t.Error("more than one <task> block")
	}
}

func TestBuildStyles(t *testing.T) {
	in := Input{
		Role:        "资深 Go 工程师",
		Context:     "微服务项目",
		Task:        "写一个限流器",
		Format:      "代码块",
		Constraints: "只用标准库",
	}

	xml := Build(in, StyleXML)
	for _, want := range []string{"<role>资深 Go 工程师</role>", "<context>", "<task>", "<output_format>代码块</output_format>", "<constraints>只用标准库</constraints>"} {
		if !strings.Contains(xml, want) {
			t.Errorf("xml style missing %q:\n%s", want, xml)
		}
	}

	md := Build(in, StyleMarkdown)
	for _, want := range []string{"## 角色", "## 上下文", "## 任务", "## 输出格式", "## 约束条件"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown style missing %q", want)
		}
	}

	plain := Build(in, StylePlain)
	for _, want := range []string{"资深 Go 工程师", "背景信息：", "请完成以下任务：", "输出要求：代码块", "注意：只用标准库"} {
		if !strings.Contains(plain, want) {
			t.Errorf("plain style missing %q", want)
		}
	}
}

func TestBuildEmptyInput(t *testing.T) {
	for _, style := range []Style{StyleXML, StyleMarkdown, StylePlain} {
		if got := Build(Input{}, style); got != "" {
			t.Errorf("Build(empty, %v) = %q, want empty", style, got)
		}
	}
}

func TestExport(t *testing.T) {
	c := catalog.Merge(catalog.NewStore(t.TempDir() + "/none.json"))
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	got := Export(c, now)

	for _, want := range []string{
		"# Prompt 模板导出",
		"# 导出时间: 2025-01-15 10:30:00",
		"# 模板总数: 21",
		"### 代码审查 (`code_review`)",
		"> 变量: `{language}`, `{code}`",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("export missing %q", want)
		}
	}
	if name := ExportFileName(now); name != "prompt_templates_export_20250115.md" {
		t.Errorf("ExportFileName = %q", name)
	}
}
