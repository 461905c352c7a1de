package wizard

import (
	"errors"
	"strings"
	"testing"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/ui"
	"github.com/yinchengxin/claudekit/internal/ui/uitest"
)

func TestRolesReferenceKnownSteps(t *testing.T) {
	for _, r := range Roles {
		for _, name := range r.Steps {
			if _, ok := steps[name]; !ok {
				t.Errorf("role %q references unknown step %q", r.Key, name)
			}
		}
	}
}

func TestRunGoBackendDefaults(t *testing.T) {
	// Select go_backend, decline persona extras, then let every step
	// fall through to its defaults.
	s := &uitest.Script{Answers: []uitest.Answer{
		{Text: "go_backend"},
		{Bool: false},
	}}

	c, err := Run(s, doc.LocaleEN)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.ProjectName != "my-project" {
		t.Errorf("ProjectName = %q, want default my-project", c.ProjectName)
	}
	if c.Role == "" {
		t.Error("Role text empty for go_backend")
	}
	if len(c.TechItems) == 0 {
		t.Fatal("go_backend stack questions produced no tech items")
	}
	if !strings.Contains(strings.ToLower(strings.Join(c.TechItems, " ")), "go") {
		t.Errorf("go_backend defaults do not mention go: %v", c.TechItems)
	}
	if len(c.ThinkingStrategy) != 3 {
		t.Errorf("ThinkingStrategy = %d items, want 3 defaults", len(c.ThinkingStrategy))
	}
	if c.ThinkingStrategy[0] != "For complex tasks, plan before implementing" {
		t.Errorf("ThinkingStrategy[0] = %q", c.ThinkingStrategy[0])
	}
	if len(c.Verification) != 4 {
		t.Errorf("Verification = %d items, want 4 checks", len(c.Verification))
	}
	if c.Verification[3] != "No hardcoded secrets" {
		t.Errorf("Verification[3] = %q", c.Verification[3])
	}
}

func TestRunCustomRoleText(t *testing.T) {
	s := &uitest.Script{Answers: []uitest.Answer{
		{Text: "custom"},
		{Text: "You are a compilers expert."},
		{Bool: true},
		{List: []string{"Prefer small patches"}},
	}}

	c, err := Run(s, doc.LocaleEN)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Role != "You are a compilers expert." {
		t.Errorf("Role = %q", c.Role)
	}
	if len(c.PersonaExtras) != 1 || c.PersonaExtras[0] != "Prefer small patches" {
		t.Errorf("PersonaExtras = %v", c.PersonaExtras)
	}
}

func TestRunInterruptPropagates(t *testing.T) {
	s := &uitest.Script{Answers: []uitest.Answer{
		{Text: "go_backend"},
		{Bool: false},
		{Interrupt: true},
	}}

	_, err := Run(s, doc.LocaleEN)
	if !errors.Is(err, ui.ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
}

func TestApplyDefaultsVerificationGatedOnGo(t *testing.T) {
	tests := []struct {
		name  string
		tech  []string
		wantN int
	}{
		{"go stack", []string{"**Language**: Go 1.23+"}, 4},
		{"golang spelled out", []string{"**Language**: golang"}, 4},
		{"python stack", []string{"**Language**: Python 3.12"}, 0},
		{"empty stack", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := doc.Config{TechItems: tt.tech}
			ApplyDefaults(&c, doc.LocaleEN)
			if len(c.Verification) != tt.wantN {
				t.Errorf("Verification = %d items, want %d", len(c.Verification), tt.wantN)
			}
		})
	}
}

func TestApplyDefaultsKeepsExisting(t *testing.T) {
	c := doc.Config{
		TechItems:        []string{"Go"},
		ThinkingStrategy: []string{"mine"},
		Verification:     []string{"custom check"},
	}
	ApplyDefaults(&c, doc.LocaleEN)
	if len(c.ThinkingStrategy) != 1 || c.ThinkingStrategy[0] != "mine" {
		t.Errorf("ThinkingStrategy overwritten: %v", c.ThinkingStrategy)
	}
	if len(c.Verification) != 1 {
		t.Errorf("Verification overwritten: %v", c.Verification)
	}
}

func TestDevOpsRoleUsesMonitoringStep(t *testing.T) {
	r, ok := FindRole("devops_sre")
	if !ok {
		t.Fatal("devops_sre role missing")
	}
	found := false
	for _, s := range r.Steps {
		if s == "monitoring" {
			found = true
		}
		if s == "testing" {
			t.Error("devops role should use monitoring, not testing")
		}
	}
	if !found {
		t.Error("devops role missing monitoring step")
	}
}
