// Package uitest provides a scripted ui.Asker for driving interactive
// flows in tests without a terminal.
package uitest

import (
	"fmt"

	"github.com/yinchengxin/claudekit/internal/ui"
)

// Answer is one scripted response. Exactly one field is consumed per
// prompt; a type mismatch fails the script.
type Answer struct {
	Text      string
	Bool      bool
	List      []string
	PairList  []ui.Pair
	Interrupt bool
}

// Script replays canned answers in order. When the script is exhausted,
// prompts fall back to their defaults.
type Script struct {
	Answers []Answer
	pos     int

	// Asked records every prompt message, for assertions on flow order.
	Asked []string
}

var _ ui.Asker = (*Script)(nil)

func (s *Script) next(msg string) (Answer, bool) {
	s.Asked = append(s.Asked, msg)
	if s.pos >= len(s.Answers) {
		return Answer{}, false
	}
	a := s.Answers[s.pos]
	s.pos++
	return a, true
}

func (s *Script) Input(msg, def string) (string, error) {
	a, ok := s.next(msg)
	if !ok {
		return def, nil
	}
	if a.Interrupt {
		return "", ui.ErrInterrupted
	}
	if a.Text == "" {
		return def, nil
	}
	return a.Text, nil
}

func (s *Script) Confirm(msg string, def bool) (bool, error) {
	a, ok := s.next(msg)
	if !ok {
		return def, nil
	}
	if a.Interrupt {
		return false, ui.ErrInterrupted
	}
	return a.Bool, nil
}

func (s *Script) Select(msg string, options []ui.Option, defKey string) (string, error) {
	a, ok := s.next(msg)
	if !ok {
		return defKey, nil
	}
	if a.Interrupt {
		return "", ui.ErrInterrupted
	}
	if a.Text == "" {
		return defKey, nil
	}
	for _, opt := range options {
		if opt.Key == a.Text {
			return opt.Key, nil
		}
	}
	return "", fmt.Errorf("scripted answer %q not in options for %q", a.Text, msg)
}

func (s *Script) Lines(msg string) ([]string, error) {
	a, ok := s.next(msg)
	if !ok {
		return nil, nil
	}
	if a.Interrupt {
		return nil, ui.ErrInterrupted
	}
	return a.List, nil
}

func (s *Script) Pairs(msg, hint string) ([]ui.Pair, error) {
	a, ok := s.next(msg)
	if !ok {
		return nil, nil
	}
	if a.Interrupt {
		return nil, ui.ErrInterrupted
	}
	return a.PairList, nil
}
