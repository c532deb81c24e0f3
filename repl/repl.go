// Package repl provides a read, parse, print loop for the xonsh
// dialect.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Each input is read as one compound statement and disambiguated
// against the names the session has bound so far. The loop prints one
// classification per top-level statement: subprocess commands as
// "exec:" lines, everything else echoed in source form, with names the
// input newly binds noted. An input the grammar rejects outright is
// retried whole as a subprocess command before its syntax error is
// reported, since an interactive line like
//
//	ls | grep go
//
// is a command even though no reading of it is an expression.
package repl

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/aidaco/xonsh/history"
	"github.com/aidaco/xonsh/resolve"
	"github.com/aidaco/xonsh/syntax"
	"github.com/chzyer/readline"
)

// interrupted absorbs SIGINTs delivered between Readline calls, so a
// stray signal does not kill the shell. During line editing, readline
// reports Control-C as ErrInterrupt rather than raising a signal.
var interrupted = make(chan os.Signal, 1)

// A Session holds the state a read, parse, print loop carries between
// inputs: the set of names bound so far, and an optional persistent
// command history.
type Session struct {
	bound map[string]bool
	hist  *history.Store
}

// NewSession returns a session with the given names pre-bound.
// hist may be nil, which disables persistent history.
func NewSession(names []string, hist *history.Store) *Session {
	bound := make(map[string]bool, len(names))
	for _, name := range names {
		bound[name] = true
	}
	return &Session{bound: bound, hist: hist}
}

// Bound returns the names the session has bound, sorted.
func (s *Session) Bound() []string {
	names := make([]string, 0, len(s.bound))
	for name := range s.bound {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Interpret disambiguates one parsed input against the session
// bindings, applies the names it binds and unbinds, and returns one
// classification line per top-level statement. src must be the text f
// was parsed from.
func (s *Session) Interpret(f *syntax.File, src string) []string {
	// Statement spans must be read before the pass runs: a rewritten
	// statement keeps only its start position.
	lines := resolve.SplitLines(src)
	texts := make([]string, len(f.Stmts))
	for i, stmt := range f.Stmts {
		texts[i] = sourceText(stmt, lines)
	}

	fresh := resolve.REPLChunk(f, src, s.bound, nil)

	var out []string
	for i, stmt := range f.Stmts {
		out = append(out, classify(stmt, texts[i]))
	}
	if len(fresh) > 0 {
		out = append(out, "bind: "+strings.Join(fresh, " "))
	}
	return out
}

// Command reinterprets an input that failed to parse as a whole-line
// subprocess command, the way the dialect's executor falls back. It
// returns the classification and true if the converted line parses.
// Multi-line input is never a command.
func (s *Session) Command(src string) (string, bool) {
	line := strings.TrimSpace(src)
	if line == "" || strings.Contains(line, "\n") {
		return "", false
	}
	f, err := syntax.Parse("<stdin>", resolve.SubprocLine(line))
	if err != nil || len(f.Stmts) == 0 {
		return "", false
	}
	return classify(f.Stmts[0], line), true
}

// Record appends one entered input to the persistent history, if the
// session has one. Store errors are returned for reporting; they never
// affect session state.
func (s *Session) Record(text string) error {
	if s.hist == nil {
		return nil
	}
	_, err := s.hist.Add(text)
	return err
}

// classify renders one top-level statement: the argv of a subprocess
// command, the statement's source text otherwise.
func classify(stmt syntax.Stmt, text string) string {
	if stmt, ok := stmt.(*syntax.ExprStmt); ok {
		if sub, ok := stmt.X.(*syntax.SubprocExpr); ok {
			words := make([]string, len(sub.Words))
			for i, w := range sub.Words {
				// Only a quoted word can hold whitespace or be
				// empty; re-quote it so the argv stays readable.
				if w.Text == "" || strings.ContainsAny(w.Text, " \t\n") {
					words[i] = syntax.Quote(w.Text)
				} else {
					words[i] = w.Text
				}
			}
			return "exec: " + strings.Join(words, " ")
		}
	}
	return "eval: " + text
}

// sourceText reconstructs a statement from the lines it spans.
func sourceText(stmt syntax.Stmt, lines resolve.Lines) string {
	start, end := stmt.Span()
	var b strings.Builder
	for n := int(start.Line); n <= int(end.Line); n++ {
		line, ok := lines.Line(n)
		if !ok {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String())
}

// historyDepth is how many persisted commands seed line recall.
const historyDepth = 500

// REPL executes a read, parse, print loop over the session.
func REPL(session *Session) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()

	if session.hist != nil {
		// Up-arrow recalls earlier sessions too.
		if cmds, err := session.hist.Last(historyDepth); err == nil {
			for _, cmd := range cmds {
				rl.SaveHistory(cmd.Text)
			}
		}
	}
	for {
		if err := rep(rl, session); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, parses, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Syntax errors are printed.
func rep(rl *readline.Instance, session *Session) error {
	var readErr error // io.EOF or readline.ErrInterrupt
	var raw strings.Builder

	// readline returns EOF, ErrInterrupted, or a line including "\n".
	rl.SetPrompt(">>> ")
	readline := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt("... ")
		if err != nil {
			readErr = err
			return nil, err
		}
		raw.WriteString(line)
		raw.WriteByte('\n')
		return []byte(line + "\n"), nil
	}

	// parse
	f, err := syntax.ParseCompoundStmt("<stdin>", readline)
	if err != nil {
		if readErr == io.EOF {
			return io.EOF
		}
		if readErr != nil {
			return readErr
		}
		if line, ok := session.Command(raw.String()); ok {
			record(session, raw.String())
			fmt.Println(line)
			return nil
		}
		PrintError(err)
		return nil
	}

	// A blank line or comment parses to no statements.
	if len(f.Stmts) == 0 {
		return nil
	}

	record(session, raw.String())

	// print
	for _, line := range session.Interpret(f, raw.String()) {
		fmt.Println(line)
	}
	return nil
}

// record appends the input to the persistent history,
// reporting but never propagating store errors.
func record(session *Session, text string) {
	if err := session.Record(strings.TrimSpace(text)); err != nil {
		PrintError(err)
	}
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
