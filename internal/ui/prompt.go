package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user cancels a prompt (Ctrl+C).
// Callers catch it at flow entry points and abort without partial output.
var ErrInterrupted = errors.New("interrupted")

// Option is one choice in a keyed select prompt. The Key is what callers
// consume; the Label is what the user sees.
type Option struct {
	Key   string
	Label string
}

// Pair is a labelled value collected by Pairs (e.g. command name=command).
type Pair struct {
	Label string
	Value string
}

// Asker abstracts interactive input so flows can be driven by a scripted
// fake in tests.
type Asker interface {
	// Input asks for a single line. An empty answer yields the default.
	Input(msg, def string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(msg string, def bool) (bool, error)
	// Select presents keyed options and returns the chosen key.
	// defKey selects the preselected option; it is also returned when the
	// options do not contain the answer.
	Select(msg string, options []Option, defKey string) (string, error)
	// Lines collects free-form lines until the first empty line.
	Lines(msg string) ([]string, error)
	// Pairs collects label=value lines until the first empty line.
	Pairs(msg, hint string) ([]Pair, error)
}

// SurveyAsker implements Asker on top of survey prompts.
type SurveyAsker struct{}

// NewAsker returns the interactive terminal Asker.
func NewAsker() *SurveyAsker {
	return &SurveyAsker{}
}

func (a *SurveyAsker) Input(msg, def string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: msg,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateErr(err)
	}
	return strings.TrimSpace(out), nil
}

func (a *SurveyAsker) Confirm(msg string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{
		Message: msg,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateErr(err)
	}
	return out, nil
}

func (a *SurveyAsker) Select(msg string, options []Option, defKey string) (string, error) {
	labels := make([]string, len(options))
	var defLabel string
	for i, opt := range options {
		labels[i] = opt.Label
		if opt.Key == defKey {
			defLabel = opt.Label
		}
	}
	prompt := &survey.Select{
		Message:  msg,
		Options:  labels,
		PageSize: 12,
	}
	if defLabel != "" {
		prompt.Default = defLabel
	}
	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", translateErr(err)
	}
	for _, opt := range options {
		if opt.Label == answer {
			return opt.Key, nil
		}
	}
	return defKey, nil
}

func (a *SurveyAsker) Lines(msg string) ([]string, error) {
	fmt.Printf("  %s %s\n", TitleStyle.Render(msg), HelpStyle.Render("(one per line, empty line to finish)"))
	return collectLines(a.readLine)
}

func (a *SurveyAsker) Pairs(msg, hint string) ([]Pair, error) {
	fmt.Printf("  %s %s\n", TitleStyle.Render(msg), HelpStyle.Render("(label=value, empty line to finish)"))
	if hint != "" {
		fmt.Printf("  %s\n", HelpStyle.Render(hint))
	}
	return collectPairs(a.readLine)
}

func (a *SurveyAsker) readLine() (string, error) {
	var line string
	prompt := &survey.Input{Message: ">"}
	if err := survey.AskOne(prompt, &line); err != nil {
		return "", translateErr(err)
	}
	return line, nil
}

// collectLines reads from next until the first empty line. Lines are
// kept verbatim: pasted code and tree output retain their indentation,
// and a whitespace-only line is content, not a terminator.
func collectLines(next func() (string, error)) ([]string, error) {
	var lines []string
	for {
		line, err := next()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// collectPairs reads label=value lines until the first empty line.
// Malformed lines are reported and re-prompted.
func collectPairs(next func() (string, error)) ([]Pair, error) {
	var pairs []Pair
	for {
		line, err := next()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return pairs, nil
		}
		label, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Printf("  %s\n", ErrorStyle.Render("format: label=value"))
			continue
		}
		pairs = append(pairs, Pair{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)})
	}
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
