// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aidaco/xonsh/history"
	"github.com/google/go-cmp/cmp"
)

func tempStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustAdd(t *testing.T, s *history.Store, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := s.Add(line); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAddAndCmd(t *testing.T) {
	s := tempStore(t)

	seq, err := s.Add("ls -la")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Errorf("first Add returned seq %d, want 1", seq)
	}

	text, err := s.Cmd(1)
	if err != nil {
		t.Fatal(err)
	}
	if text != "ls -la" {
		t.Errorf("Cmd(1) = %q, want %q", text, "ls -la")
	}

	if _, err := s.Cmd(99); !errors.Is(err, history.ErrNoMatch) {
		t.Errorf("Cmd(99) error = %v, want ErrNoMatch", err)
	}
}

func TestAddSuppressesConsecutiveDuplicate(t *testing.T) {
	s := tempStore(t)
	mustAdd(t, s, "ls", "ls")

	if n, _ := s.Len(); n != 1 {
		t.Errorf("after duplicate Add, Len = %d, want 1", n)
	}

	seq, err := s.Add("ls")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Errorf("duplicate Add returned seq %d, want 1", seq)
	}

	// A duplicate separated by another entry is recorded.
	mustAdd(t, s, "pwd", "ls")
	if n, _ := s.Len(); n != 3 {
		t.Errorf("after ls, pwd, ls, Len = %d, want 3", n)
	}
}

func TestLast(t *testing.T) {
	s := tempStore(t)
	mustAdd(t, s, "one", "two", "three")

	got, err := s.Last(2)
	if err != nil {
		t.Fatal(err)
	}
	want := []history.Cmd{{Seq: 2, Text: "two"}, {Seq: 3, Text: "three"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Last(2) mismatch (-want +got):\n%s", diff)
	}

	// Asking for more than exists returns everything.
	got, err = s.Last(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("Last(10) returned %d entries, want 3", len(got))
	}
}

func TestPrev(t *testing.T) {
	s := tempStore(t)
	mustAdd(t, s, "ls -la", "pwd", "ls")

	next, err := s.NextSeq()
	if err != nil {
		t.Fatal(err)
	}
	if next != 4 {
		t.Fatalf("NextSeq = %d, want 4", next)
	}

	cmd, err := s.Prev(next, "ls")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Seq != 3 || cmd.Text != "ls" {
		t.Errorf("Prev(%d, ls) = %+v, want seq 3", next, cmd)
	}

	cmd, err = s.Prev(cmd.Seq, "ls")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Seq != 1 || cmd.Text != "ls -la" {
		t.Errorf("second Prev = %+v, want seq 1", cmd)
	}

	if _, err := s.Prev(cmd.Seq, "ls"); !errors.Is(err, history.ErrNoMatch) {
		t.Errorf("Prev past the oldest match: error = %v, want ErrNoMatch", err)
	}

	// An empty prefix matches any entry.
	cmd, err = s.Prev(next, "")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Seq != 3 {
		t.Errorf("Prev(%d, \"\") = %+v, want seq 3", next, cmd)
	}
}

func TestPrevEmptyStore(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Prev(1, ""); !errors.Is(err, history.ErrNoMatch) {
		t.Errorf("Prev on empty store: error = %v, want ErrNoMatch", err)
	}
}

func TestNext(t *testing.T) {
	s := tempStore(t)
	mustAdd(t, s, "ls -la", "pwd", "ls")

	cmd, err := s.Next(1, "p")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Seq != 2 || cmd.Text != "pwd" {
		t.Errorf("Next(1, p) = %+v, want seq 2", cmd)
	}

	if _, err := s.Next(3, "p"); !errors.Is(err, history.ErrNoMatch) {
		t.Errorf("Next(3, p) error = %v, want ErrNoMatch", err)
	}
}

func TestWalk(t *testing.T) {
	s := tempStore(t)
	mustAdd(t, s, "one", "two", "three")

	var texts []string
	err := s.Walk(func(c history.Cmd) bool {
		texts = append(texts, c.Text)
		return len(texts) < 2
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "two"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", diff)
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := history.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("ls"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = history.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	text, err := s.Cmd(1)
	if err != nil {
		t.Fatal(err)
	}
	if text != "ls" {
		t.Errorf("after reopen, Cmd(1) = %q, want %q", text, "ls")
	}

	// The sequence counter survives a reopen.
	if seq, _ := s.Add("pwd"); seq != 2 {
		t.Errorf("after reopen, Add returned seq %d, want 2", seq)
	}
}
