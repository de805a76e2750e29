package main

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/cfg/balanced"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/language"
)

func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	status := run(args, &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func TestInvalidArguments(t *testing.T) {
	for i, args := range [][]string{
		{},
		{"cfg"},
		{"xyz", "build"},
		{"cfg", "parse"},
		{"bonus", "generate"},
		{"bonus", "derive", "abc"},
		{"cfg", "derive", "ab", "extra"},
		{"-count", "-1", "cfg", "generate"},
	} {
		status, _, stderr := runCmd(args...)
		if status != 2 {
			t.Errorf("test #%d: expected exit status 2 for %v, have %d", i, args, status)
		}
		if !strings.Contains(stderr, "usage:") {
			t.Errorf("test #%d: expected usage message for %v", i, args)
		}
	}
}

func TestMethods(t *testing.T) {
	for i, c := range []struct {
		args     []string
		expected string
	}{
		{[]string{"cfg", "derive", "aaabbb"}, "S ⇒ aSb ⇒ aaSbb ⇒ aaabbb\n"},
		{[]string{"cfg", "derive"}, "S\n"},
		{[]string{"cfg", "derive", "ba"}, "no derivation\n"},
		{[]string{"cfg", "membership", "aabb"}, "true\n"},
		{[]string{"CFG", "Membership", "a"}, "false\n"},
		{[]string{"bonus", "membership", "aabbcc"}, "true\n"},
		{[]string{"bonus", "membership", "acbca"}, "false\n"},
	} {
		status, stdout, _ := runCmd(c.args...)
		if status != 0 {
			t.Errorf("test #%d: expected exit status 0, have %d", i, status)
		}
		if stdout != c.expected {
			t.Errorf("test #%d: expected output %q, have %q", i, c.expected, stdout)
		}
	}
}

func TestBuild(t *testing.T) {
	status, stdout, _ := runCmd("bonus", "build")
	if status != 0 {
		t.Fatalf("expected exit status 0, have %d", status)
	}
	if !strings.Contains(stdout, "Grammar BonusTriple") || !strings.Contains(stdout, "C → ε") {
		t.Errorf("unexpected grammar dump:\n%s", stdout)
	}
}

func TestGenerate(t *testing.T) {
	status, stdout, _ := runCmd("-seed", "17", "-count", "8", "-maxlen", "6", "cfg", "generate")
	if status != 0 {
		t.Fatalf("expected exit status 0, have %d", status)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) > 8 {
		t.Errorf("expected at most 8 strings, have %d", len(lines))
	}
	for _, line := range lines {
		s, err := strconv.Unquote(line)
		if err != nil {
			t.Fatalf("cannot unquote output line %q: %v", line, err)
		}
		if len(s) > 6 || !balanced.Membership(s) {
			t.Errorf("generated string %q is invalid", s)
		}
	}
	_, again, _ := runCmd("-seed", "17", "-count", "8", "-maxlen", "6", "cfg", "generate")
	if again != stdout {
		t.Errorf("expected equal seeds to produce equal output")
	}
}

func TestVerbose(t *testing.T) {
	var logged bytes.Buffer
	logger.SetOutput(&logged)
	defer logger.SetOutput(os.Stderr)
	//
	status, stdout, _ := runCmd("-v", "-seed", "17", "-count", "8", "-maxlen", "6", "cfg", "generate")
	if status != 0 {
		t.Fatalf("expected exit status 0, have %d", status)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "string(s) generated (seed 17)") {
		t.Errorf("expected count line at end of verbose output, have %q", last)
	}
	if n := len(lines) - 1; !strings.HasPrefix(last, strconv.Itoa(n)+" ") {
		t.Errorf("expected count line to report %d strings, have %q", n, last)
	}
	status, stdout, _ = runCmd("-v", "cfg", "build")
	if status != 0 {
		t.Fatalf("expected exit status 0 for verbose build, have %d", status)
	}
	if !strings.Contains(stdout, "Grammar Balanced") {
		t.Errorf("unexpected grammar dump:\n%s", stdout)
	}
	if logged.Len() > 0 {
		t.Errorf("expected verbose runs to log nothing, have %q", logged.String())
	}
}

func TestUserLanguage(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	if tag := userLanguage(); tag == language.Und {
		t.Errorf("expected a defined language for the user, have %v", tag)
	}
}
