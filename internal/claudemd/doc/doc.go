// Package doc defines the configuration record a CLAUDE.md document is
// assembled from, and the section renderers that turn it into markdown.
package doc

import "strings"

// Locale selects the output language for section titles and labels.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// ParseLocale normalizes a locale string, defaulting to Chinese.
func ParseLocale(s string) Locale {
	if strings.EqualFold(s, string(LocaleEN)) {
		return LocaleEN
	}
	return LocaleZH
}

// Pick returns the string matching the locale.
func (l Locale) Pick(zh, en string) string {
	if l == LocaleEN {
		return en
	}
	return zh
}

// Command is one labelled shell command in the commands section.
type Command struct {
	Label string
	Cmd   string
}

// Config is the full answer set a document is assembled from. Fields are
// filled by wizard steps or preset factories; a zero-value field means
// the answer was never collected and its section is omitted.
type Config struct {
	ProjectName   string
	ProjectDesc   string
	ProjectType   string
	ProjectStatus string

	Role          string
	PersonaExtras []string

	TechItems []string
	Structure string
	Commands  []Command

	CodeStyleRules   []string
	CoreRules        []string
	Workflow         []string
	ThinkingStrategy []string
	TestingRules     []string
	ErrorHandling    []string
	SecurityRules    []string
	GitRules         []string
	HardRules        []string
	Gotchas          []string
	Verification     []string
	References       []string
}
