package version

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int // sign only
	}{
		{"same version", "1.0.0", "1.0.0", 0},
		{"patch newer", "1.0.1", "1.0.0", 1},
		{"minor newer", "1.1.0", "1.0.0", 1},
		{"major newer", "2.0.0", "1.0.0", 1},
		{"older", "1.0.0", "1.0.1", -1},
		{"longer version newer", "1.0.0.1", "1.0.0", 1},
		{"double digit", "1.10.0", "1.9.0", 1},
		{"suffix ignored", "2-rc1.0", "1.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareVersions(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("compareVersions(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func TestVersionPart(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"10", 10},
		{"0", 0},
		{"1-beta", 1},
		{"2-rc1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := versionPart(tt.input); got != tt.want {
				t.Errorf("versionPart(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
