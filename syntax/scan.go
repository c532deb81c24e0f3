// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A lexical scanner for the xonsh dialect.

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Token represents a lexical token.
type Token int8

const (
	ILLEGAL Token = iota
	EOF

	NEWLINE
	INDENT
	OUTDENT

	// Tokens with values
	IDENT  // x
	INT    // 123
	FLOAT  // 1.23e45
	STRING // "foo" or 'foo'
	WORD   // one whitespace-delimited subprocess argument

	// Punctuation
	PLUS          // +
	MINUS         // -
	STAR          // *
	SLASH         // /
	SLASHSLASH    // //
	PERCENT       // %
	AMP           // &
	PIPE          // |
	CIRCUMFLEX    // ^
	LTLT          // <<
	GTGT          // >>
	TILDE         // ~
	DOT           // .
	COMMA         // ,
	EQ            // =
	COLON         // :
	LPAREN        // (
	RPAREN        // )
	LBRACK        // [
	RBRACK        // ]
	LBRACE        // {
	RBRACE        // }
	LT            // <
	GT            // >
	GE            // >=
	LE            // <=
	EQL           // ==
	NEQ           // !=
	PLUS_EQ       // +=
	MINUS_EQ      // -=
	STAR_EQ       // *=
	SLASH_EQ      // /=
	SLASHSLASH_EQ // //=
	PERCENT_EQ    // %=
	AMP_EQ        // &=
	PIPE_EQ       // |=
	CIRCUMFLEX_EQ // ^=
	LTLT_EQ       // <<=
	GTGT_EQ       // >>=
	STARSTAR      // **
	BANG_LBRACK   // ![
	DOLLAR_LPAREN // $(

	// Keywords
	AND
	AS
	BREAK
	CLASS
	CONTINUE
	DEF
	DEL
	ELIF
	ELSE
	EXCEPT
	FALSE
	FINALLY
	FOR
	FROM
	GLOBAL
	IF
	IMPORT
	IN
	IS
	IS_NOT // synthesized by parser from IS NOT
	NONE
	NOT
	NOT_IN // synthesized by parser from NOT IN
	OR
	PASS
	RETURN
	TRUE
	TRY
	WHILE
	WITH

	maxToken
)

func (tok Token) String() string { return tokenNames[tok] }

// GoString is like String but quotes punctuation tokens.
// Use Sprintf("%#v", tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok >= PLUS && tok <= DOLLAR_LPAREN {
		return "'" + tokenNames[tok] + "'"
	}
	return tokenNames[tok]
}

var tokenNames = [...]string{
	ILLEGAL:       "illegal token",
	EOF:           "end of file",
	NEWLINE:       "newline",
	INDENT:        "indent",
	OUTDENT:       "outdent",
	IDENT:         "identifier",
	INT:           "int literal",
	FLOAT:         "float literal",
	STRING:        "string literal",
	WORD:          "command word",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	SLASHSLASH:    "//",
	PERCENT:       "%",
	AMP:           "&",
	PIPE:          "|",
	CIRCUMFLEX:    "^",
	LTLT:          "<<",
	GTGT:          ">>",
	TILDE:         "~",
	DOT:           ".",
	COMMA:         ",",
	EQ:            "=",
	COLON:         ":",
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACK:        "[",
	RBRACK:        "]",
	LBRACE:        "{",
	RBRACE:        "}",
	LT:            "<",
	GT:            ">",
	GE:            ">=",
	LE:            "<=",
	EQL:           "==",
	NEQ:           "!=",
	PLUS_EQ:       "+=",
	MINUS_EQ:      "-=",
	STAR_EQ:       "*=",
	SLASH_EQ:      "/=",
	SLASHSLASH_EQ: "//=",
	PERCENT_EQ:    "%=",
	AMP_EQ:        "&=",
	PIPE_EQ:       "|=",
	CIRCUMFLEX_EQ: "^=",
	LTLT_EQ:       "<<=",
	GTGT_EQ:       ">>=",
	STARSTAR:      "**",
	BANG_LBRACK:   "![",
	DOLLAR_LPAREN: "$(",
	AND:           "and",
	AS:            "as",
	BREAK:         "break",
	CLASS:         "class",
	CONTINUE:      "continue",
	DEF:           "def",
	DEL:           "del",
	ELIF:          "elif",
	ELSE:          "else",
	EXCEPT:        "except",
	FALSE:         "False",
	FINALLY:       "finally",
	FOR:           "for",
	FROM:          "from",
	GLOBAL:        "global",
	IF:            "if",
	IMPORT:        "import",
	IN:            "in",
	IS:            "is",
	IS_NOT:        "is not",
	NONE:          "None",
	NOT:           "not",
	NOT_IN:        "not in",
	OR:            "or",
	PASS:          "pass",
	RETURN:        "return",
	TRUE:          "True",
	TRY:           "try",
	WHILE:         "while",
	WITH:          "with",
}

// A Position describes the location of a rune of input.
type Position struct {
	file *string // filename (indirect for compactness)
	Line int32   // 1-based line number; 0 if line unknown
	Col  int32   // 1-based column (rune) number; 0 if column unknown
}

// MakePosition returns position with the specified components.
func MakePosition(file *string, line, col int32) Position {
	return Position{file, line, col}
}

// add returns the position at the end of s, assuming it starts at p.
func (p Position) add(s string) Position {
	if n := strings.Count(s, "\n"); n > 0 {
		p.Line += int32(n)
		s = s[strings.LastIndex(s, "\n")+1:]
		p.Col = 1
	}
	p.Col += int32(utf8.RuneCountInString(s))
	return p
}

func (p Position) String() string {
	file := p.Filename()
	if p.Line > 0 {
		if p.Col > 0 {
			return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Col)
		}
		return fmt.Sprintf("%s:%d", file, p.Line)
	}
	return file
}

func (p Position) IsValid() bool { return p.file != nil }

// Filename returns the name of the file containing this position.
func (p Position) Filename() string {
	if p.file != nil {
		return *p.file
	}
	return "<invalid>"
}

// An Error describes the nature and position of a scanner or parser error.
type Error struct {
	Pos Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// A scanner represents a single input file being parsed.
type scanner struct {
	rest      []byte   // rest of input (in REPL, a line of input)
	token     []byte   // token being scanned
	pos       Position // current input position
	depth     int      // nesting of [ ] { } ( )
	command   rune     // closing delimiter of subprocess word mode, or 0
	indentstk []int    // stack of indentation levels
	dents     int      // number of saved INDENT (>0) or OUTDENT (<0) tokens to return
	lineStart bool     // after NEWLINE; convert spaces to indentation tokens

	readline func() ([]byte, error) // read next line of input (REPL only)
}

func newScanner(filename string, src interface{}) (*scanner, error) {
	sc := &scanner{
		pos:       MakePosition(&filename, 1, 1),
		indentstk: make([]int, 1, 10), // []int{0} + spare capacity
		lineStart: true,
	}
	sc.readline, _ = src.(func() ([]byte, error)) // REPL only
	if sc.readline == nil {
		data, err := readSource(filename, src)
		if err != nil {
			return nil, err
		}
		sc.rest = data
	}
	return sc, nil
}

func readSource(filename string, src interface{}) ([]byte, error) {
	switch src := src.(type) {
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	case io.Reader:
		data, err := io.ReadAll(src)
		if err != nil {
			err = &os.PathError{Op: "read", Path: filename, Err: err}
			return nil, err
		}
		return data, nil
	case nil:
		return os.ReadFile(filename)
	default:
		return nil, fmt.Errorf("invalid source: %T", src)
	}
}

// error reports the error and panics; the parser and scanner
// recover it at the API boundary and return it.
func (sc *scanner) error(pos Position, s string) {
	panic(Error{pos, s})
}

func (sc *scanner) errorf(pos Position, format string, args ...interface{}) {
	sc.error(pos, fmt.Sprintf(format, args...))
}

func (sc *scanner) recover(err *error) {
	// The scanner and parser panic both for routine errors like
	// syntax errors and for programmer bugs like array index
	// errors.  Turn both into error returns.  Catching bug panics
	// is especially important when processing many files.
	switch e := recover().(type) {
	case nil:
		// no panic
	case Error:
		*err = e
	default:
		*err = Error{sc.pos, fmt.Sprintf("internal error: %v", e)}
	}
}

// readLine attempts to read another line of input.
// Precondition: len(sc.rest)==0.
func (sc *scanner) readLine() bool {
	if sc.readline != nil {
		var err error
		sc.rest, err = sc.readline()
		if err != nil {
			sc.errorf(sc.pos, "%v", err) // EOF or ErrInterrupt
		}
		return len(sc.rest) > 0
	}
	return false
}

// peekRune returns the next rune in the input without consuming it.
// Newlines in Unix, DOS, or Mac format are treated as one rune, '\n'.
func (sc *scanner) peekRune() rune {
	if len(sc.rest) == 0 && !sc.readLine() {
		return 0
	}

	// fast path: ASCII
	if b := sc.rest[0]; b < utf8.RuneSelf {
		if b == '\r' {
			return '\n'
		}
		return rune(b)
	}

	r, _ := utf8.DecodeRune(sc.rest)
	return r
}

// readRune consumes the next rune in the input.
func (sc *scanner) readRune() rune {
	if len(sc.rest) == 0 && !sc.readLine() {
		sc.error(sc.pos, "internal scanner error: readRune at EOF")
	}

	// fast path: ASCII
	if b := sc.rest[0]; b < utf8.RuneSelf {
		r := rune(b)
		sc.rest = sc.rest[1:]
		if r == '\r' {
			if len(sc.rest) > 0 && sc.rest[0] == '\n' {
				sc.rest = sc.rest[1:]
			}
			r = '\n'
		}
		if r == '\n' {
			sc.pos.Line++
			sc.pos.Col = 1
		} else {
			sc.pos.Col++
		}
		return r
	}

	r, size := utf8.DecodeRune(sc.rest)
	sc.rest = sc.rest[size:]
	sc.pos.Col++
	return r
}

// tokenValue records the position and value associated with each token.
type tokenValue struct {
	raw    string   // raw text of token
	int    int64    // decoded int
	float  float64  // decoded float
	string string   // decoded string or command word
	pos    Position // start position of token
}

// startToken marks the beginning of the next input token.
func (sc *scanner) startToken(val *tokenValue) {
	sc.token = sc.rest
	val.raw = ""
	val.pos = sc.pos
}

// endToken records the end of the next input token.
func (sc *scanner) endToken(val *tokenValue) {
	if val.raw == "" {
		val.raw = string(sc.token[:len(sc.token)-len(sc.rest)])
	}
}

// nextToken is called by the parser to obtain the next input token.
// It returns the token value and sets val to the data associated with
// the token.
//
// For all our input tokens, the associated data is val.pos (the
// position where the token begins), val.raw (the input string
// corresponding to the token).  For STRING and WORD tokens, the string
// field additionally contains the token's interpreted value.
func (sc *scanner) nextToken(val *tokenValue) Token {
	// Subprocess word mode: after ![ or $( the rest of the command
	// is whitespace-separated words, not tokens of the language.
	if sc.command != 0 {
		return sc.scanCommandWord(val)
	}

start:
	var c rune

	// Deal with leading spaces and indentation.
	blank := false
	savedLineStart := sc.lineStart
	if sc.lineStart {
		sc.lineStart = false
		col := 0
		for {
			c = sc.peekRune()
			if c == ' ' {
				col++
				sc.readRune()
			} else if c == '\t' {
				const tab = 8
				col += tab - col%tab
				sc.readRune()
			} else {
				break
			}
		}

		// The third clause matches EOF.
		if c == '#' || c == '\n' || c == 0 {
			blank = true
		}

		// Compute indentation level for non-blank lines not
		// inside an expression.  This is not the common case.
		if !blank && sc.depth == 0 {
			cur := sc.indentstk[len(sc.indentstk)-1]
			if col > cur {
				// indent
				sc.dents++
				sc.indentstk = append(sc.indentstk, col)
			} else if col < cur {
				// outdent(s)
				for len(sc.indentstk) > 0 && col < sc.indentstk[len(sc.indentstk)-1] {
					sc.dents--
					sc.indentstk = sc.indentstk[:len(sc.indentstk)-1]
				}
				if col != sc.indentstk[len(sc.indentstk)-1] {
					sc.error(sc.pos, "unindent does not match any outer indentation level")
				}
			}
		}
	}

	// Return saved indentation tokens.
	if sc.dents != 0 {
		sc.startToken(val)
		sc.endToken(val)
		if sc.dents < 0 {
			sc.dents++
			return OUTDENT
		} else {
			sc.dents--
			return INDENT
		}
	}

	// start of line proper
	c = sc.peekRune()

	// Skip spaces.
	for c == ' ' || c == '\t' {
		sc.readRune()
		c = sc.peekRune()
	}

	// comment
	if c == '#' {
		for len(sc.rest) > 0 && sc.rest[0] != '\n' {
			sc.rest = sc.rest[1:]
			sc.pos.Col++
		}
		c = sc.peekRune()
	}

	// newline
	if c == '\n' {
		sc.lineStart = true

		// Ignore newlines within expressions (common case).
		if sc.depth > 0 {
			sc.readRune()
			goto start
		}

		// Ignore blank lines, except in the REPL,
		// where they emit OUTDENTs and NEWLINE.
		if blank {
			if sc.readline == nil {
				sc.readRune()
				goto start
			} else if len(sc.indentstk) > 1 {
				sc.dents = 1 - len(sc.indentstk)
				sc.indentstk = sc.indentstk[:1]
				goto start
			}
		}

		// At top-level (not in an expression).
		sc.startToken(val)
		sc.readRune()
		val.raw = "\n"
		return NEWLINE
	}

	// end of file
	if c == 0 {
		// Emit OUTDENTs for unfinished indentation,
		// preceded by a NEWLINE if we haven't just emitted one.
		if len(sc.indentstk) > 1 {
			sc.dents = 1 - len(sc.indentstk)
			sc.indentstk = sc.indentstk[:1]
			if savedLineStart {
				goto start
			} else {
				sc.lineStart = true
				sc.startToken(val)
				val.raw = "\n"
				return NEWLINE
			}
		}

		sc.startToken(val)
		sc.endToken(val)
		return EOF
	}

	// line continuation
	if c == '\\' {
		sc.readRune()
		if sc.peekRune() != '\n' {
			sc.error(sc.pos, "stray backslash in program")
		}
		sc.readRune()
		goto start
	}

	// start of the next token
	sc.startToken(val)

	// comma (common case)
	if c == ',' {
		sc.readRune()
		sc.endToken(val)
		return COMMA
	}

	// string literal
	if c == '"' || c == '\'' {
		return sc.scanString(val, c)
	}

	// identifier or keyword
	if isIdentStart(c) {
		for isIdent(c) {
			sc.readRune()
			c = sc.peekRune()
		}
		sc.endToken(val)

		if k, ok := keywordToken[val.raw]; ok {
			if k == ILLEGAL {
				sc.errorf(val.pos, "%s is a reserved word", val.raw)
			}
			return k
		}
		return IDENT
	}

	// brackets
	switch c {
	case '[', '(', '{':
		sc.depth++
		sc.readRune()
		sc.endToken(val)
		switch c {
		case '[':
			return LBRACK
		case '(':
			return LPAREN
		case '{':
			return LBRACE
		}

	case ']', ')', '}':
		if sc.depth == 0 {
			sc.errorf(sc.pos, "unexpected %q", c)
		} else {
			sc.depth--
		}
		sc.readRune()
		sc.endToken(val)
		switch c {
		case ']':
			return RBRACK
		case ')':
			return RPAREN
		case '}':
			return RBRACE
		}
	}

	// int or float literal, or period
	if isdigit(c) || c == '.' {
		return sc.scanNumber(val, c)
	}

	// other punctuation
	defer sc.endToken(val)
	sc.readRune()
	switch c {
	case ':':
		return COLON

	case '~':
		return TILDE

	case '=':
		if sc.peekRune() == '=' {
			sc.readRune()
			return EQL
		}
		return EQ

	case '!':
		switch sc.peekRune() {
		case '=':
			sc.readRune()
			return NEQ
		case '[':
			sc.readRune()
			sc.command = ']'
			return BANG_LBRACK
		}
		sc.error(val.pos, `unexpected "!"`)

	case '$':
		if sc.peekRune() == '(' {
			sc.readRune()
			sc.command = ')'
			return DOLLAR_LPAREN
		}
		sc.error(val.pos, `unexpected "$"`)

	case '<':
		switch sc.peekRune() {
		case '=':
			sc.readRune()
			return LE
		case '<':
			sc.readRune()
			if sc.peekRune() == '=' {
				sc.readRune()
				return LTLT_EQ
			}
			return LTLT
		}
		return LT

	case '>':
		switch sc.peekRune() {
		case '=':
			sc.readRune()
			return GE
		case '>':
			sc.readRune()
			if sc.peekRune() == '=' {
				sc.readRune()
				return GTGT_EQ
			}
			return GTGT
		}
		return GT

	case '+':
		if sc.peekRune() == '=' {
			sc.readRune()
			return PLUS_EQ
		}
		return PLUS

	case '-':
		if sc.peekRune() == '=' {
			sc.readRune()
			return MINUS_EQ
		}
		return MINUS

	case '*':
		switch sc.peekRune() {
		case '*':
			sc.readRune()
			return STARSTAR
		case '=':
			sc.readRune()
			return STAR_EQ
		}
		return STAR

	case '/':
		switch sc.peekRune() {
		case '/':
			sc.readRune()
			if sc.peekRune() == '=' {
				sc.readRune()
				return SLASHSLASH_EQ
			}
			return SLASHSLASH
		case '=':
			sc.readRune()
			return SLASH_EQ
		}
		return SLASH

	case '%':
		if sc.peekRune() == '=' {
			sc.readRune()
			return PERCENT_EQ
		}
		return PERCENT

	case '&':
		if sc.peekRune() == '=' {
			sc.readRune()
			return AMP_EQ
		}
		return AMP

	case '|':
		if sc.peekRune() == '=' {
			sc.readRune()
			return PIPE_EQ
		}
		return PIPE

	case '^':
		if sc.peekRune() == '=' {
			sc.readRune()
			return CIRCUMFLEX_EQ
		}
		return CIRCUMFLEX
	}

	sc.errorf(val.pos, "unexpected input character %#q", c)
	panic("unreachable")
}

// scanCommandWord scans one token of a subprocess command:
// a quoted or bare word, or the closing delimiter.
func (sc *scanner) scanCommandWord(val *tokenValue) Token {
	// Skip spaces between words.
	for {
		if c := sc.peekRune(); c == ' ' || c == '\t' {
			sc.readRune()
		} else {
			break
		}
	}

	sc.startToken(val)
	c := sc.peekRune()

	if c == 0 || c == '\n' {
		sc.error(sc.pos, "unterminated subprocess command")
	}

	// closing delimiter
	if c == sc.command {
		sc.readRune()
		sc.endToken(val)
		sc.command = 0
		if c == ']' {
			return RBRACK
		}
		return RPAREN
	}

	// quoted word
	if c == '"' || c == '\'' {
		sc.scanString(val, c)
		return WORD
	}

	// bare word: a maximal run of non-space characters,
	// stopping before the closing delimiter.
	for c != 0 && c != '\n' && c != ' ' && c != '\t' && c != sc.command {
		sc.readRune()
		c = sc.peekRune()
	}
	sc.endToken(val)
	val.string = val.raw
	return WORD
}

func (sc *scanner) scanString(val *tokenValue, quote rune) Token {
	start := sc.pos
	sc.readRune() // consume the opening quote
	for {
		c := sc.peekRune()
		if c == '\n' || c == 0 {
			sc.error(start, "unterminated string literal")
		}
		sc.readRune()
		if c == quote {
			break
		}
		if c == '\\' {
			if c = sc.peekRune(); c == '\n' || c == 0 {
				sc.error(start, "unterminated string literal")
			}
			sc.readRune()
		}
	}
	sc.endToken(val)
	s, err := unquote(val.raw)
	if err != nil {
		sc.error(start, err.Error())
	}
	val.string = s
	return STRING
}

func (sc *scanner) scanNumber(val *tokenValue, c rune) Token {
	start := sc.pos
	fraction := false
	exponent := false

	if c == '.' {
		// dot or start of fraction
		sc.readRune()
		c = sc.peekRune()
		if !isdigit(c) {
			sc.endToken(val)
			return DOT
		}
		fraction = true
	} else if c == '0' {
		// hex, octal, binary or float
		sc.readRune()
		c = sc.peekRune()

		if c == '.' {
			fraction = true
		} else if c == 'x' || c == 'X' {
			// hex
			sc.readRune()
			c = sc.peekRune()
			if !isxdigit(c) {
				sc.error(sc.pos, "invalid hex literal")
			}
			for isxdigit(c) {
				sc.readRune()
				c = sc.peekRune()
			}
		} else if c == 'o' || c == 'O' {
			// octal
			sc.readRune()
			c = sc.peekRune()
			if !isodigit(c) {
				sc.error(sc.pos, "invalid octal literal")
			}
			for isodigit(c) {
				sc.readRune()
				c = sc.peekRune()
			}
		} else if c == 'b' || c == 'B' {
			// binary
			sc.readRune()
			c = sc.peekRune()
			if !isbdigit(c) {
				sc.error(sc.pos, "invalid binary literal")
			}
			for isbdigit(c) {
				sc.readRune()
				c = sc.peekRune()
			}
		} else if isdigit(c) {
			// We don't support non-zero octal literals of the
			// deprecated form 0755.
			for isdigit(c) {
				sc.readRune()
				c = sc.peekRune()
			}
			if c == '.' {
				fraction = true
			} else if c == 'e' || c == 'E' {
				exponent = true
			} else {
				raw := string(sc.token[:len(sc.token)-len(sc.rest)])
				sc.errorf(sc.pos, "obsolete form of octal literal; use 0o%s", raw[1:])
			}
		} else if c == 'e' || c == 'E' {
			exponent = true
		}
	} else {
		// decimal
		for isdigit(c) {
			sc.readRune()
			c = sc.peekRune()
		}
		if c == '.' {
			fraction = true
		} else if c == 'e' || c == 'E' {
			exponent = true
		}
	}

	if fraction {
		sc.readRune() // consume '.'
		c = sc.peekRune()
		for isdigit(c) {
			sc.readRune()
			c = sc.peekRune()
		}

		if c == 'e' || c == 'E' {
			exponent = true
		}
	}

	if exponent {
		sc.readRune() // consume [eE]
		c = sc.peekRune()
		if c == '+' || c == '-' {
			sc.readRune()
			c = sc.peekRune()
		}
		if !isdigit(c) {
			sc.error(sc.pos, "invalid float literal")
		}
		for isdigit(c) {
			sc.readRune()
			c = sc.peekRune()
		}
	}

	sc.endToken(val)
	if fraction || exponent {
		var err error
		val.float, err = strconv.ParseFloat(val.raw, 64)
		if err != nil {
			sc.error(start, "invalid float literal")
		}
		return FLOAT
	}

	var err error
	val.int, err = strconv.ParseInt(val.raw, 0, 64)
	if err != nil {
		sc.error(start, "invalid int literal")
	}
	return INT
}

// isIdent reports whether c is an identifier rune.
func isIdent(c rune) bool {
	return isdigit(c) || isIdentStart(c)
}

func isIdentStart(c rune) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		c == '_' ||
		unicode.IsLetter(c)
}

func isdigit(c rune) bool  { return '0' <= c && c <= '9' }
func isodigit(c rune) bool { return '0' <= c && c <= '7' }
func isxdigit(c rune) bool { return isdigit(c) || 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' }
func isbdigit(c rune) bool { return '0' == c || c == '1' }

var keywordToken = map[string]Token{
	"and":      AND,
	"as":       AS,
	"break":    BREAK,
	"class":    CLASS,
	"continue": CONTINUE,
	"def":      DEF,
	"del":      DEL,
	"elif":     ELIF,
	"else":     ELSE,
	"except":   EXCEPT,
	"False":    FALSE,
	"finally":  FINALLY,
	"for":      FOR,
	"from":     FROM,
	"global":   GLOBAL,
	"if":       IF,
	"import":   IMPORT,
	"in":       IN,
	"is":       IS,
	"None":     NONE,
	"not":      NOT,
	"or":       OR,
	"pass":     PASS,
	"return":   RETURN,
	"True":     TRUE,
	"try":      TRY,
	"while":    WHILE,
	"with":     WITH,

	// reserved words of Python we do not support
	"assert":   ILLEGAL,
	"async":    ILLEGAL,
	"await":    ILLEGAL,
	"lambda":   ILLEGAL,
	"nonlocal": ILLEGAL,
	"raise":    ILLEGAL,
	"yield":    ILLEGAL,
}
