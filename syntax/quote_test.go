// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"testing"
)

var quoteTests = []struct {
	q   string // quoted
	s   string // unquoted (actual string)
	std bool   // q is standard form for s
}{
	{`""`, "", true},
	{`''`, "", false},
	{`"hello"`, `hello`, true},
	{`'hello'`, `hello`, false},
	{`"quote\"here"`, `quote"here`, true},
	{`'quote"here'`, `quote"here`, false},
	{`"quote'here"`, `quote'here`, true},
	{`'quote\'here'`, `quote'here`, false},
	{`"\a\b\f\n\r\t\v"`, "\a\b\f\n\r\t\v", false},
	{`"\x07\x08\x0c\n\r\t\x0b"`, "\a\b\f\n\r\t\v", true},
	{`"\x00\xff"`, "\x00\xff", false},
	{`"\x7f"`, "\x7f", true},
	{`"tab\there"`, "tab\there", true},
	{`'mixed \'and\' "quotes"'`, `mixed 'and' "quotes"`, false},
	{`"mixed 'and' \"quotes\""`, `mixed 'and' "quotes"`, true},
}

func TestQuote(t *testing.T) {
	for _, tt := range quoteTests {
		if !tt.std {
			continue
		}
		q := quote(tt.s)
		if q != tt.q {
			t.Errorf("quote(%#q) = %s, want %s", tt.s, q, tt.q)
		}
	}
}

func TestUnquote(t *testing.T) {
	for _, tt := range quoteTests {
		s, err := unquote(tt.q)
		if s != tt.s || err != nil {
			t.Errorf("unquote(%s) = %#q, %v, want %#q, nil", tt.q, s, err, tt.s)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, tt := range []struct {
		q, want string
	}{
		{`x`, "string literal too short"},
		{`ab`, "string literal has invalid quotes"},
		{`"abc`, "unterminated string literal"},
		{`'abc"`, "unterminated string literal"},
		{`"\q"`, `invalid escape sequence \q`},
		{`"\x2"`, `truncated escape sequence \x2`},
		{`"\xzz"`, `invalid escape sequence \xzz`},
	} {
		_, err := unquote(tt.q)
		if err == nil || err.Error() != tt.want {
			t.Errorf("unquote(%#q) error = %v, want %q", tt.q, err, tt.want)
		}
	}
}
