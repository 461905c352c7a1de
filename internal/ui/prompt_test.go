package ui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func feed(lines ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(lines) {
			return "", nil
		}
		line := lines[i]
		i++
		return line, nil
	}
}

func TestCollectLinesKeepsIndentation(t *testing.T) {
	got, err := collectLines(feed(
		"func f() int {",
		"\treturn 1",
		"}",
		"",
		"ignored after terminator",
	))
	if err != nil {
		t.Fatalf("collectLines: %v", err)
	}
	want := []string{"func f() int {", "\treturn 1", "}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectLinesWhitespaceOnlyIsContent(t *testing.T) {
	// An indented blank line inside pasted code must not end collection.
	got, err := collectLines(feed("first", "    ", "last", ""))
	if err != nil {
		t.Fatalf("collectLines: %v", err)
	}
	want := []string{"first", "    ", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectLinesError(t *testing.T) {
	fail := func() (string, error) { return "", ErrInterrupted }
	if _, err := collectLines(fail); !errors.Is(err, ErrInterrupted) {
		t.Errorf("err = %v, want ErrInterrupted", err)
	}
}

func TestCollectPairs(t *testing.T) {
	got, err := collectPairs(feed(
		"Run tests=go test ./...",
		"not a pair",
		" Build = make build ",
		"",
	))
	if err != nil {
		t.Fatalf("collectPairs: %v", err)
	}
	want := []Pair{
		{Label: "Run tests", Value: "go test ./..."},
		{Label: "Build", Value: "make build"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}
