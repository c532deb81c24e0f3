package repl_test

import (
	"path/filepath"
	"testing"

	"github.com/aidaco/xonsh/history"
	"github.com/aidaco/xonsh/repl"
	"github.com/aidaco/xonsh/syntax"
	"github.com/google/go-cmp/cmp"
)

// TestSessionInterpret feeds a session one input after another, the
// way the loop does, and checks the classifications and the bindings
// carried across inputs.
func TestSessionInterpret(t *testing.T) {
	session := repl.NewSession([]string{"print"}, nil)
	for _, step := range []struct {
		input string
		want  []string
	}{
		{"ls -la", []string{"exec: ls -la"}},
		{"ls = 42", []string{"eval: ls = 42", "bind: ls"}},
		{"ls -la", []string{"eval: ls -la"}},
		{"print(ls)", []string{"eval: print(ls)"}},
		{"x = $(pwd)", []string{"eval: x = $(pwd)", "bind: x"}},
		{"del ls", []string{"eval: del ls"}},
		{"ls -la", []string{"exec: ls -la"}},
		{"![make -j4]", []string{"exec: make -j4"}},

		// x is already bound, so only y is fresh.
		{"x = 1\ny = 2", []string{"eval: x = 1", "eval: y = 2", "bind: y"}},

		{"import os", []string{"eval: import os", "bind: os"}},
		{"os.getcwd()", []string{"eval: os.getcwd()"}},

		// A compound statement echoes whole; the command buried in
		// its body does not change the classification.
		{"def greet(name):\n    say(name)", []string{"eval: def greet(name):\n    say(name)", "bind: greet"}},
		{"greet('world')", []string{"eval: greet('world')"}},
		{"for f in files:\n    f.close()", []string{"eval: for f in files:\n    f.close()", "bind: f"}},
	} {
		f, err := syntax.Parse("<stdin>", step.input)
		if err != nil {
			t.Fatalf("parse %q: %v", step.input, err)
		}
		got := session.Interpret(f, step.input)
		if diff := cmp.Diff(step.want, got); diff != "" {
			t.Errorf("Interpret(%q) mismatch (-want +got):\n%s", step.input, diff)
		}
	}

	want := []string{"f", "greet", "os", "print", "x", "y"}
	if diff := cmp.Diff(want, session.Bound()); diff != "" {
		t.Errorf("Bound mismatch after the session (-want +got):\n%s", diff)
	}
}

func TestSessionCommand(t *testing.T) {
	session := repl.NewSession(nil, nil)
	for _, test := range []struct {
		input string
		want  string
		ok    bool
	}{
		{"ls | grep go", "exec: ls | grep go", true},
		{"git status", "exec: git status", true},
		{"git commit -m 'first cut'", `exec: git commit -m "first cut"`, true},
		{"  pwd  ", "exec: pwd", true},
		{"echo 'oops", "", false}, // unterminated quote
		{"", "", false},
		{"x = 1\ny = 2", "", false}, // multi-line input is never a command
	} {
		got, ok := session.Command(test.input)
		if got != test.want || ok != test.ok {
			t.Errorf("Command(%q) = %q, %v, want %q, %v",
				test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestSessionBound(t *testing.T) {
	session := repl.NewSession([]string{"b", "a", "b"}, nil)
	if diff := cmp.Diff([]string{"a", "b"}, session.Bound()); diff != "" {
		t.Errorf("Bound mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionRecord(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "hist.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	session := repl.NewSession(nil, store)
	for _, text := range []string{"ls -la", "x = 1"} {
		if err := session.Record(text); err != nil {
			t.Fatalf("Record(%q): %v", text, err)
		}
	}
	got, err := store.Last(2)
	if err != nil {
		t.Fatal(err)
	}
	want := []history.Cmd{{Seq: 1, Text: "ls -la"}, {Seq: 2, Text: "x = 1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Last mismatch (-want +got):\n%s", diff)
	}
}

// A session without a store records nowhere, without error.
func TestSessionRecordNoStore(t *testing.T) {
	if err := repl.NewSession(nil, nil).Record("pwd"); err != nil {
		t.Errorf("Record without a store: %v", err)
	}
}
