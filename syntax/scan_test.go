// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func scan(src interface{}) (tokens string, err error) {
	sc, err := newScanner("foo.xsh", src)
	if err != nil {
		return "", err
	}

	defer sc.recover(&err)

	var buf bytes.Buffer
	var val tokenValue
	for {
		tok := sc.nextToken(&val)

		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		switch tok {
		case EOF:
			buf.WriteString("EOF")
		case IDENT, WORD:
			buf.WriteString(val.raw)
		case INT:
			fmt.Fprintf(&buf, "%d", val.int)
		case FLOAT:
			fmt.Fprintf(&buf, "%e", val.float)
		case STRING:
			buf.WriteString(quote(val.string))
		default:
			buf.WriteString(tok.String())
		}
		if tok == EOF {
			break
		}
	}
	return buf.String(), nil
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{``, "EOF"},
		{`123`, "123 EOF"},
		{`x.y`, "x . y EOF"},
		{`chocolate.éclair`, `chocolate . éclair EOF`},
		{`123 "foo" hello x.y`, `123 "foo" hello x . y EOF`},
		{`print(x)`, "print ( x ) EOF"},
		{"\nprint(\n1\n)\n", "print ( 1 ) newline EOF"}, // final \n is at toplevel on non-blank line => token
		{`/ // /= //= ///=`, "/ // /= //= // /= EOF"},
		{`# hello
print(x)`, "print ( x ) EOF"},
		{`# hello
print(1)
print(2)
def f(x):
		return x+1
print(3)
`,
			`print ( 1 ) newline ` +
				`print ( 2 ) newline ` +
				`def f ( x ) : newline ` +
				`indent return x + 1 newline ` +
				`outdent print ( 3 ) newline EOF`},
		{"pass", "pass EOF"},
		{"pass\n", "pass newline EOF"},
		{"pass\n ", "pass newline EOF"},
		{"pass\n \n", "pass newline EOF"},
		{"if x:\n  pass\n", "if x : newline indent pass newline outdent EOF"},
		{"x = 1 + \\\n2", `x = 1 + 2 EOF`},
		{`x = 'a\nb'`, `x = "a\nb" EOF`},
		{`x = "a\nb"`, `x = "a\nb" EOF`},
		{`'x\x41z'`, `"xAz" EOF`},
		{`'\exyz'`, `foo.xsh:1:1: invalid escape sequence \e`},
		{`'x`, `foo.xsh:1:1: unterminated string literal`},
		{"'x\n'", `foo.xsh:1:1: unterminated string literal`},
		{`x = -1`, "x = - 1 EOF"},
		{`-1.0e1`, "- 1.000000e+01 EOF"},
		{`.5`, "5.000000e-01 EOF"},
		{"0xA 0o17 0b1011", "10 15 11 EOF"},
		{"0in", "0 in EOF"},
		{"0or", "foo.xsh:1:3: invalid octal literal"},
		{"6in", "6 in EOF"},
		{"6or", "6 or EOF"},
		{"0123", `foo.xsh:1:5: obsolete form of octal literal; use 0o123`},
		{"012934.", `1.293400e+04 EOF`},
		{"0123.1", `1.231000e+02 EOF`},
		{"012934e1", `1.293400e+05 EOF`},
		{"foo(bar, baz)", "foo ( bar , baz ) EOF"},
		{"([{<>}])", "( [ { < > } ] ) EOF"},
		{": ; {", "foo.xsh:1:3: unexpected input character ';'"},
		{"f();", "foo.xsh:1:4: unexpected input character ';'"},
		{"x ** 2 *= 3", "x ** 2 *= 3 EOF"},
		{"x << 1 >>= 2", "x << 1 >>= 2 EOF"},
		{"~= ~= 5", "~ = ~ = 5 EOF"},
		{"x != y == z", "x != y == z EOF"},
		{"is not in and or", "is not in and or EOF"},

		// dedents at EOF
		{"def f():\n  if x:\n    pass\n  ",
			`def f ( ) : newline indent if x : newline indent pass newline outdent outdent EOF`},
		{`while cond: pass`, "while cond : pass EOF"},
		{"if x:\n    pass\n  pass\n",
			"foo.xsh:3:3: unindent does not match any outer indentation level"},

		// newlines are suppressed within brackets
		{"(1,\n2)\n", "( 1 , 2 ) newline EOF"},
		{"[\n1,\n2,\n]\n", "[ 1 , 2 , ] newline EOF"},

		// line continuations
		{"x = \\\n1\n", "x = 1 newline EOF"},
		{"x = \\1", "foo.xsh:1:6: stray backslash in program"},

		// keywords and reserved words
		{"del x", "del x EOF"},
		{"import os as z", "import os as z EOF"},
		{"from a import b", "from a import b EOF"},
		{"try:\n  pass\nexcept E:\n  pass\n",
			"try : newline indent pass newline outdent except E : newline indent pass newline outdent EOF"},
		{"None True False", "None True False EOF"},
		{"lambda x: x", "foo.xsh:1:1: lambda is a reserved word"},
		{"await f()", "foo.xsh:1:1: await is a reserved word"},
		{"yield 1", "foo.xsh:1:1: yield is a reserved word"},
		{"assert x", "foo.xsh:1:1: assert is a reserved word"},
		{"raise E", "foo.xsh:1:1: raise is a reserved word"},

		// subprocess command mode
		{"![ls]", "![ ls ] EOF"},
		{"![ls -la]", "![ ls -la ] EOF"},
		{"![ls  -la   /tmp]", "![ ls -la /tmp ] EOF"},
		{"x = $(which go)", "x = $( which go ) EOF"},
		{"![echo 'hi there']", "![ echo 'hi there' ] EOF"},
		{`![grep "a b" f.txt]`, `![ grep "a b" f.txt ] EOF`},
		{"![du -sh ~/src]\n", "![ du -sh ~/src ] newline EOF"},
		{"![git log --one-line]", "![ git log --one-line ] EOF"},
		{"$(cat /etc/hosts)", "$( cat /etc/hosts ) EOF"},
		{"![print(1)]", "![ print(1) ] EOF"}, // punctuation is inert inside a command
		{"(![ls], $(pwd))", "( ![ ls ] , $( pwd ) ) EOF"},
		{"![ls", "foo.xsh:1:5: unterminated subprocess command"},
		{"![ls \n]", "foo.xsh:1:6: unterminated subprocess command"},
		{"$(pwd", "foo.xsh:1:6: unterminated subprocess command"},
		{"![cat 'x", "foo.xsh:1:7: unterminated string literal"},
		{"!x", `foo.xsh:1:1: unexpected "!"`},
		{"x ! 0", `foo.xsh:1:3: unexpected "!"`},
		{"$x", `foo.xsh:1:1: unexpected "$"`},
	} {
		got, err := scan(test.input)
		if err != nil {
			got = err.(Error).Error()
		}
		// Prefix match allows us to truncate errors in expectations.
		// Success cases all end in EOF.
		if !strings.HasPrefix(got, test.want) {
			t.Errorf("scan `%s` = [%s], want [%s]", test.input, got, test.want)
		}
	}
}

// TestCommandWordValues checks the decoded value of quoted command words.
func TestCommandWordValues(t *testing.T) {
	sc, err := newScanner("foo.xsh", "![echo 'a b' plain]")
	if err != nil {
		t.Fatal(err)
	}
	var val tokenValue
	var words []string
	for {
		tok := sc.nextToken(&val)
		if tok == EOF {
			break
		}
		if tok == WORD {
			words = append(words, val.string)
		}
	}
	if len(words) != 3 || words[0] != "echo" || words[1] != "a b" || words[2] != "plain" {
		t.Errorf("words = %q, want [echo, a b, plain]", words)
	}
}

func TestScannerPosition(t *testing.T) {
	type position struct {
		tok       Token
		line, col int32
	}
	sc, err := newScanner("foo.xsh", "ls = 1\nif ls:\n    ![ls -la]\n")
	if err != nil {
		t.Fatal(err)
	}
	var val tokenValue
	var got []position
	for {
		tok := sc.nextToken(&val)
		got = append(got, position{tok, val.pos.Line, val.pos.Col})
		if tok == EOF {
			break
		}
	}
	want := []position{
		{IDENT, 1, 1}, {EQ, 1, 4}, {INT, 1, 6}, {NEWLINE, 1, 7},
		{IF, 2, 1}, {IDENT, 2, 4}, {COLON, 2, 6}, {NEWLINE, 2, 7},
		{INDENT, 3, 5}, {BANG_LBRACK, 3, 5}, {WORD, 3, 7}, {WORD, 3, 10}, {RBRACK, 3, 13}, {NEWLINE, 3, 14},
		{OUTDENT, 4, 1}, {EOF, 4, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v %d:%d, want %v %d:%d",
				i, got[i].tok, got[i].line, got[i].col,
				want[i].tok, want[i].line, want[i].col)
		}
	}
}

func BenchmarkScan(b *testing.B) {
	data := []byte(strings.Repeat(`cfg = load(path)
if cfg:
    for k, v in items(cfg):
        print(k, v)
else:
    ![cat /etc/defaults]
`, 100))

	for i := 0; i < b.N; i++ {
		sc, err := newScanner("bench.xsh", data)
		if err != nil {
			b.Fatal(err)
		}
		var val tokenValue
		for sc.nextToken(&val) != EOF {
		}
	}
}
