// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// String literal quoting and unquoting.
// The dialect supports single- and double-quoted strings with
// backslash escapes. There are no triple-quoted, raw, byte, or
// formatted string literals.

import (
	"fmt"
	"strings"
)

// unquote unquotes the quoted string, returning the actual string
// value and an error describing invalid input.
func unquote(quoted string) (s string, err error) {
	if len(quoted) < 2 {
		err = fmt.Errorf("string literal too short")
		return
	}
	quote := quoted[0]
	if quote != '"' && quote != '\'' {
		err = fmt.Errorf("string literal has invalid quotes")
		return
	}
	if quoted[len(quoted)-1] != quote {
		err = fmt.Errorf("unterminated string literal")
		return
	}
	quoted = quoted[1 : len(quoted)-1]

	// Fast path: no escapes.
	if strings.IndexByte(quoted, '\\') < 0 {
		s = quoted
		return
	}

	var buf strings.Builder
	for len(quoted) > 0 {
		c := quoted[0]
		if c != '\\' {
			buf.WriteByte(c)
			quoted = quoted[1:]
			continue
		}
		if len(quoted) < 2 {
			err = fmt.Errorf(`truncated escape sequence \`)
			return
		}
		switch quoted[1] {
		case 'a':
			buf.WriteByte('\a')
			quoted = quoted[2:]
		case 'b':
			buf.WriteByte('\b')
			quoted = quoted[2:]
		case 'f':
			buf.WriteByte('\f')
			quoted = quoted[2:]
		case 'n':
			buf.WriteByte('\n')
			quoted = quoted[2:]
		case 'r':
			buf.WriteByte('\r')
			quoted = quoted[2:]
		case 't':
			buf.WriteByte('\t')
			quoted = quoted[2:]
		case 'v':
			buf.WriteByte('\v')
			quoted = quoted[2:]
		case '\\':
			buf.WriteByte('\\')
			quoted = quoted[2:]
		case '\'':
			buf.WriteByte('\'')
			quoted = quoted[2:]
		case '"':
			buf.WriteByte('"')
			quoted = quoted[2:]

		case 'x':
			if len(quoted) < 4 {
				err = fmt.Errorf(`truncated escape sequence %s`, quoted)
				return
			}
			var n int
			for _, c := range quoted[2:4] {
				n = n*16 + hexDigit(c)
				if n < 0 {
					err = fmt.Errorf(`invalid escape sequence %s`, quoted[:4])
					return
				}
			}
			buf.WriteByte(byte(n))
			quoted = quoted[4:]

		default:
			err = fmt.Errorf(`invalid escape sequence \%c`, quoted[1])
			return
		}
	}
	s = buf.String()
	return
}

func hexDigit(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1 << 16 // force error
}

// quote returns a double-quoted string literal that denotes s.
func quote(s string) string {
	const hex = "0123456789abcdef"
	var buf strings.Builder
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				buf.WriteString(`\x`)
				buf.WriteByte(hex[c>>4])
				buf.WriteByte(hex[c&0xf])
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

// Quote returns a string literal of the dialect that denotes s.
func Quote(s string) string {
	return quote(s)
}
