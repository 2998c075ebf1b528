package main

import (
	"strings"
	"testing"
)

func TestRunModes(t *testing.T) {
	for _, mode := range []string{"nfa", "dfa", "mdfa"} {
		t.Run(mode, func(t *testing.T) {
			out, err := run(mode, "a*(a|b)b*")
			if err != nil {
				t.Fatalf("run(%q, ...) error: %v", mode, err)
			}
			if !strings.HasPrefix(out, "digraph {") {
				t.Errorf("run(%q, ...) output does not start with digraph header:\n%s", mode, out)
			}
		})
	}
}

func TestRunUnknownMode(t *testing.T) {
	if _, err := run("bogus", "a"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
