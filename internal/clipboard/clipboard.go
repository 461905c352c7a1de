// Package clipboard copies text to the system clipboard through an
// ordered chain of providers, stopping at the first one that succeeds.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// Provider is one clipboard mechanism. Copy returns nil on success.
type Provider struct {
	Name string
	Copy func(text string) error
}

// DefaultProviders returns the platform-agnostic fallback chain: the
// native clipboard library first, then the common command-line tools.
func DefaultProviders() []Provider {
	return []Provider{
		{Name: "native", Copy: clipboard.WriteAll},
		command("pbcopy"),
		command("xclip", "-selection", "clipboard"),
		command("xsel", "--clipboard", "--input"),
		command("clip"),
	}
}

func command(name string, args ...string) Provider {
	return Provider{
		Name: name,
		Copy: func(text string) error {
			if _, err := exec.LookPath(name); err != nil {
				return err
			}
			cmd := exec.Command(name, args...)
			cmd.Stdin = strings.NewReader(text)
			return cmd.Run()
		},
	}
}

// Copy tries each provider in order and short-circuits on the first
// success. It returns the name of the provider that worked, or an error
// when every provider failed.
func Copy(text string, providers []Provider) (string, error) {
	var errs []string
	for _, p := range providers {
		if err := p.Copy(text); err == nil {
			return p.Name, nil
		} else {
			errs = append(errs, fmt.Sprintf("%s: %v", p.Name, err))
		}
	}
	return "", fmt.Errorf("no clipboard provider available (%s)", strings.Join(errs, "; "))
}
