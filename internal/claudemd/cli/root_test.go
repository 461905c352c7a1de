package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/config"
)

// setHome points $HOME at a fresh temp dir and optionally seeds a
// config file there.
func setHome(t *testing.T, configYAML string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if configYAML != "" {
		if err := os.WriteFile(filepath.Join(home, config.FileName), []byte(configYAML), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResolveLocaleFlagBeatsConfig(t *testing.T) {
	setHome(t, "lang: zh\n")
	root := NewRoot("test")
	if err := root.ParseFlags([]string{"--en"}); err != nil {
		t.Fatal(err)
	}

	loc, decided := resolveLocale(root)
	if loc != doc.LocaleEN || !decided {
		t.Errorf("resolveLocale = %q, %v, want en, true", loc, decided)
	}
}

func TestResolveLocaleConfigBeatsDefault(t *testing.T) {
	setHome(t, "lang: en\n")
	root := NewRoot("test")
	if err := root.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	loc, decided := resolveLocale(root)
	if loc != doc.LocaleEN || !decided {
		t.Errorf("resolveLocale = %q, %v, want en, true", loc, decided)
	}
}

func TestResolveLocaleDefault(t *testing.T) {
	setHome(t, "")
	root := NewRoot("test")
	if err := root.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	loc, decided := resolveLocale(root)
	if loc != doc.LocaleZH || decided {
		t.Errorf("resolveLocale = %q, %v, want zh, false", loc, decided)
	}
}

func TestQuickUnknownPresetExitsCleanly(t *testing.T) {
	setHome(t, "")
	root := NewRoot("test")
	root.SetArgs([]string{"quick", "no_such_preset"})
	if err := root.Execute(); err != nil {
		t.Errorf("unknown preset returned error %v, want nil", err)
	}
}

func TestQuickPlannedPresetExitsCleanly(t *testing.T) {
	setHome(t, "")
	root := NewRoot("test")
	root.SetArgs([]string{"quick", "go-cli"})
	if err := root.Execute(); err != nil {
		t.Errorf("planned preset returned error %v, want nil", err)
	}
}
