// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import "strings"

// Scopes is a stack of binding frames, innermost last. A name is bound
// if any frame holds it.
//
// Frame 0 holds the caller-supplied initial bindings and frame 1 is
// the module frame, the target of global declarations; both exist for
// the life of the stack. Frames pushed above them belong to nested
// function and class bodies.
type Scopes struct {
	frames []map[string]bool
}

// NewScopes returns a scope stack consisting of the two base frames.
// The initial bindings are copied into frame 0 (entries mapped to
// false are skipped); the caller's map is never retained or modified.
func NewScopes(bound map[string]bool) *Scopes {
	base := make(map[string]bool, len(bound))
	for name, ok := range bound {
		if ok {
			base[name] = true
		}
	}
	return &Scopes{frames: []map[string]bool{base, {}}}
}

// Push appends a fresh innermost frame.
func (s *Scopes) Push() {
	s.frames = append(s.frames, make(map[string]bool))
}

// Pop discards the innermost frame.
// Popping either base frame is a bug in the caller.
func (s *Scopes) Pop() {
	if len(s.frames) <= 2 {
		panic("resolve: unbalanced Scopes.Pop")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Bind adds name to the innermost frame.
func (s *Scopes) Bind(name string) {
	s.frames[len(s.frames)-1][name] = true
}

// BindAll adds each of the names to the innermost frame.
func (s *Scopes) BindAll(names []string) {
	frame := s.frames[len(s.frames)-1]
	for _, name := range names {
		frame[name] = true
	}
}

// BindGlobal adds name to the module frame, whatever the depth.
func (s *Scopes) BindGlobal(name string) {
	s.frames[1][name] = true
}

// Unbind removes the innermost binding of name, if any.
// Outer bindings of the same name are untouched, so the name may
// remain bound afterwards.
func (s *Scopes) Unbind(name string) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i][name] {
			delete(s.frames[i], name)
			return
		}
	}
}

// IsBound reports whether name is bound in any frame.
func (s *Scopes) IsBound(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i][name] {
			return true
		}
	}
	return false
}

// Depth returns the number of frames, including the two base frames.
func (s *Scopes) Depth() int { return len(s.frames) }

// Lines is a source text split into physical lines, addressed
// 1-indexed the way positions count them.
type Lines []string

// SplitLines splits src for line lookup by Reparse.
func SplitLines(src string) Lines {
	return Lines(strings.Split(src, "\n"))
}

// Line returns line n of the text, 1-indexed.
func (l Lines) Line(n int) (string, bool) {
	if n < 1 || n > len(l) {
		return "", false
	}
	return l[n-1], true
}
