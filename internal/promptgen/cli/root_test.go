package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yinchengxin/claudekit/internal/config"
)

func setHome(t *testing.T, configYAML string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if configYAML != "" {
		if err := os.WriteFile(filepath.Join(home, config.FileName), []byte(configYAML), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return home
}

func TestOpenStoreFlagBeatsConfig(t *testing.T) {
	setHome(t, "templates_file: /elsewhere/from_config.json\n")
	root := NewRoot("test")
	if err := root.ParseFlags([]string{"--templates-file", "/tmp/from_flag.json"}); err != nil {
		t.Fatal(err)
	}

	if got := openStore(root).Path(); got != "/tmp/from_flag.json" {
		t.Errorf("store path = %q, want flag value", got)
	}
}

func TestOpenStoreConfigBeatsDefault(t *testing.T) {
	setHome(t, "templates_file: /elsewhere/from_config.json\n")
	root := NewRoot("test")
	if err := root.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	if got := openStore(root).Path(); got != "/elsewhere/from_config.json" {
		t.Errorf("store path = %q, want config value", got)
	}
}

func TestOpenStoreDefaultPath(t *testing.T) {
	home := setHome(t, "")
	root := NewRoot("test")
	if err := root.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	got := openStore(root).Path()
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".promptgen", "custom_templates.json")) {
		t.Errorf("store path = %q, want default under %s", got, home)
	}
}
