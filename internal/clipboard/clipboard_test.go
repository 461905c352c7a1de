package clipboard

import (
	"errors"
	"testing"
)

func TestCopyShortCircuits(t *testing.T) {
	var tried []string
	fail := func(name string) Provider {
		return Provider{Name: name, Copy: func(string) error {
			tried = append(tried, name)
			return errors.New("unavailable")
		}}
	}
	ok := func(name string) Provider {
		return Provider{Name: name, Copy: func(string) error {
			tried = append(tried, name)
			return nil
		}}
	}

	providers := []Provider{fail("a"), ok("b"), ok("c")}
	name, err := Copy("hello", providers)
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if name != "b" {
		t.Errorf("Copy() provider = %q, want b", name)
	}
	if len(tried) != 2 {
		t.Errorf("tried %v, want chain to stop after first success", tried)
	}
}

func TestCopyAllFail(t *testing.T) {
	providers := []Provider{
		{Name: "a", Copy: func(string) error { return errors.New("no display") }},
		{Name: "b", Copy: func(string) error { return errors.New("not found") }},
	}
	if _, err := Copy("hello", providers); err == nil {
		t.Fatal("Copy() expected error when all providers fail")
	}
}

func TestCopyReceivesText(t *testing.T) {
	var got string
	providers := []Provider{
		{Name: "capture", Copy: func(text string) error { got = text; return nil }},
	}
	if _, err := Copy("multi\nline", providers); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if got != "multi\nline" {
		t.Errorf("provider received %q", got)
	}
}
