package doc

import (
	"strings"
	"testing"
)

func TestAssembleEmptyConfig(t *testing.T) {
	got := Assemble(&Config{}, LocaleEN)
	if !strings.HasPrefix(got, "# my-project\n") {
		t.Errorf("missing default project title:\n%s", got)
	}
	if !strings.Contains(got, "## Project Overview") {
		t.Errorf("missing overview heading:\n%s", got)
	}
	// Nothing else was collected, so no other section may appear.
	if n := strings.Count(got, "\n## "); n != 1 {
		t.Errorf("empty config rendered %d sections, want 1:\n%s", n, got)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	c := &Config{
		ProjectName:  "svc",
		ProjectDesc:  "a service",
		TechItems:    []string{"**Language**: Go"},
		CoreRules:    []string{"rule one", "rule two"},
		HardRules:    []string{"commit secrets"},
		Verification: []string{"`go test ./...` passes"},
	}
	a := Assemble(c, LocaleZH)
	b := Assemble(c, LocaleZH)
	if a != b {
		t.Error("Assemble is not deterministic for identical input")
	}
}

func TestAssembleSectionOrder(t *testing.T) {
	c := &Config{
		ProjectName:  "svc",
		Role:         "Go engineer",
		TechItems:    []string{"Go"},
		CoreRules:    []string{"r"},
		Workflow:     []string{"w"},
		GitRules:     []string{"g"},
		HardRules:    []string{"h"},
		Verification: []string{"v"},
	}
	got := Assemble(c, LocaleEN)
	order := []string{
		"## Project Overview",
		"## Role Definition",
		"## Tech Stack & Environment",
		"## Core Rules",
		"## Workflow",
		"## Git Conventions",
		"## Hard Rules",
		"## Verification Checklist",
	}
	last := -1
	for _, h := range order {
		i := strings.Index(got, h)
		if i < 0 {
			t.Fatalf("missing heading %q:\n%s", h, got)
		}
		if i < last {
			t.Errorf("heading %q out of order", h)
		}
		last = i
	}
}

func TestLocalesStructurallyEquivalent(t *testing.T) {
	c := &Config{
		ProjectName: "svc",
		ProjectType: "CLI Tool",
		Role:        "engineer",
		TechItems:   []string{"Go"},
		Workflow:    []string{"plan", "do"},
		Gotchas:     []string{"careful"},
	}
	zh := Assemble(c, LocaleZH)
	en := Assemble(c, LocaleEN)
	if strings.Count(zh, "\n## ") != strings.Count(en, "\n## ") {
		t.Errorf("section counts differ between locales:\nzh:\n%s\nen:\n%s", zh, en)
	}
	if !strings.Contains(zh, "## 项目概述") {
		t.Error("zh document missing 项目概述 heading")
	}
}

func TestRenderMarkers(t *testing.T) {
	c := &Config{
		Workflow:     []string{"first", "second"},
		HardRules:    []string{"push to main"},
		Gotchas:      []string{"flaky test"},
		Verification: []string{"build ok"},
		Structure:    "cmd/\ninternal/",
	}
	got := Assemble(c, LocaleEN)

	for _, want := range []string{
		"1. first",
		"2. second",
		"- ❌ push to main",
		"- ⚠️ flaky test",
		"- [ ] build ok",
		"```\ncmd/\ninternal/\n```",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBlocksSeparatedByBlankLine(t *testing.T) {
	c := &Config{
		ProjectName: "svc",
		TechItems:   []string{"Go"},
		CoreRules:   []string{"r"},
	}
	got := Assemble(c, LocaleEN)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("found run of more than one blank line:\n%q", got)
	}
	if !strings.Contains(got, "Go\n\n## Core Rules") {
		t.Errorf("sections not separated by exactly one blank line:\n%q", got)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"zh", LocaleZH},
		{"en", LocaleEN},
		{"EN", LocaleEN},
		{"", LocaleZH},
		{"fr", LocaleZH},
	}
	for _, tt := range tests {
		if got := ParseLocale(tt.in); got != tt.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
