// Package version handles first-run detection and best-effort update
// checks for the claudekit tools.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yinchengxin/claudekit/internal/ui"
)

const (
	// GitHubRepo is the repository queried for releases.
	GitHubRepo = "yinchengxin/claudekit"

	// CheckInterval throttles release lookups to once a day.
	CheckInterval = 24 * time.Hour

	// StateDir under the home directory holds markers shared by both tools.
	StateDir = ".claudekit"
)

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult describes an available update.
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// CheckForUpdate returns a result only when a newer release exists.
// It returns nil on dev builds, within the throttle window, and on any
// network or API error; an update check must never block the user.
func CheckForUpdate(currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}
	if checkedRecently() {
		return nil
	}
	markChecked()

	latest, err := fetchLatestRelease()
	if err != nil {
		return nil
	}

	latestClean := strings.TrimPrefix(latest.TagName, "v")
	currentClean := strings.TrimPrefix(currentVersion, "v")
	if compareVersions(latestClean, currentClean) <= 0 {
		return nil
	}
	return &CheckResult{
		CurrentVersion: currentVersion,
		LatestVersion:  latest.TagName,
		ReleaseURL:     latest.HTMLURL,
	}
}

// PrintUpdateNotice prints a short notice for an available update.
func PrintUpdateNotice(tool string, result *CheckResult) {
	if result == nil {
		return
	}
	fmt.Println()
	fmt.Printf("%s A new version of %s is available: %s (you have %s)\n",
		ui.WarningStyle.Render("!"),
		tool,
		ui.SuccessStyle.Render(result.LatestVersion),
		result.CurrentVersion,
	)
	fmt.Printf("  Update: %s\n",
		ui.HelpStyle.Render(fmt.Sprintf("go install github.com/%s/cmd/%s@latest", GitHubRepo, tool)))
	fmt.Println()
}

func fetchLatestRelease() (*githubRelease, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", GitHubRepo)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

func checkedRecently() bool {
	info, err := os.Stat(checkMarkerPath())
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < CheckInterval
}

func markChecked() {
	path := checkMarkerPath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = os.WriteFile(path, []byte{}, 0644)
	} else {
		_ = os.Chtimes(path, time.Now(), time.Now())
	}
}

func checkMarkerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, StateDir, ".last-update-check")
}

// compareVersions compares dotted numeric versions: negative when a < b,
// zero when equal, positive when a > b. Non-numeric suffixes in a part
// are ignored ("2-rc1" compares as 2).
func compareVersions(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	n := len(aParts)
	if len(bParts) > n {
		n = len(bParts)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(aParts) {
			av = versionPart(aParts[i])
		}
		if i < len(bParts) {
			bv = versionPart(bParts[i])
		}
		if av != bv {
			return av - bv
		}
	}
	return 0
}

func versionPart(s string) int {
	var n int
	_, _ = fmt.Sscanf(s, "%d", &n)
	return n
}
