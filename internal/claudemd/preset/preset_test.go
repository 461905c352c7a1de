package preset

import (
	"strings"
	"testing"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
)

func TestNamesStable(t *testing.T) {
	a := Names()
	b := Names()
	if len(a) != 2 || a[0] != "go-api" || a[1] != "devops" {
		t.Errorf("Names() = %v", a)
	}
	// Callers may mutate the returned slice without affecting the registry.
	a[0] = "mutated"
	if b[0] != "go-api" {
		t.Error("Names() shares backing storage with the registry")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("nope", doc.LocaleEN); ok {
		t.Error("Get accepted an unknown preset")
	}
	// Planned names are reserved, not buildable.
	if _, ok := Get("go-cli", doc.LocaleEN); ok {
		t.Error("Get built a planned-only preset")
	}
}

func TestGoAPIPresetZH(t *testing.T) {
	c, ok := Get("go-api", doc.LocaleZH)
	if !ok {
		t.Fatal("go-api preset missing")
	}
	out := doc.Assemble(c, doc.LocaleZH)

	for _, want := range []string{
		"# my-go-api",
		"## 项目概述",
		"go run ./cmd/server",
		"## 禁止事项",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("zh go-api document missing %q", want)
		}
	}
}

func TestGoAPIPresetLocales(t *testing.T) {
	zh := doc.Assemble(mustGet(t, "go-api", doc.LocaleZH), doc.LocaleZH)
	en := doc.Assemble(mustGet(t, "go-api", doc.LocaleEN), doc.LocaleEN)
	if strings.Count(zh, "\n## ") != strings.Count(en, "\n## ") {
		t.Error("go-api zh and en render different section sets")
	}
	if !strings.Contains(en, "# my-go-api") {
		t.Error("en go-api document missing project title")
	}
}

func TestDevOpsPreset(t *testing.T) {
	c, ok := Get("devops", doc.LocaleEN)
	if !ok {
		t.Fatal("devops preset missing")
	}
	if len(c.TechItems) == 0 || len(c.HardRules) == 0 {
		t.Error("devops preset missing tech or hard rules")
	}
	out := doc.Assemble(c, doc.LocaleEN)
	if !strings.Contains(strings.ToLower(out), "terraform") {
		t.Error("devops preset does not mention terraform")
	}
}

// mustGet fails the test when the preset is missing.
func mustGet(t *testing.T, name string, loc doc.Locale) *doc.Config {
	t.Helper()
	c, ok := Get(name, loc)
	if !ok {
		t.Fatalf("preset %q missing", name)
	}
	return c
}
