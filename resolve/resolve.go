// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve implements the context-sensitive disambiguation pass
// of the xonsh dialect.
//
// A parsed xonsh tree is provisional: the grammar cannot tell whether a
// bare line such as
//
//	ls -la
//
// is an arithmetic expression over the names ls and la or a subprocess
// command, because the answer depends on which names are bound where
// the line appears. The parser takes the expression reading; this
// package corrects it.
//
// File walks the tree carrying a stack of binding frames (Scopes) that
// it maintains from assignments, imports, definitions, loop and with
// targets, exception handlers, del and global statements. At each
// expression statement it resolves the statement's leftmost name. If
// that name is bound the statement stands; otherwise the pass fetches
// the statement's original source line, converts it to subprocess
// syntax (SubprocLine), re-parses it, and splices the re-parsed
// statement into the tree in place of the original. A line that fails
// to re-parse keeps its original form; the pass never reports an
// error.
//
// The tree is rewritten in place and returned. Running the pass twice
// is harmless: statements that already carry subprocess commands are
// never reinterpreted.
package resolve

import (
	"errors"
	"sort"
	"strings"

	"github.com/aidaco/xonsh/syntax"
)

// A ParseLine parses one line of source in subprocess mode.
// It is the collaborator Reparse uses to reinterpret a statement;
// the production implementation is syntax.Parse on the converted line.
type ParseLine func(line string) (*syntax.File, error)

// File disambiguates the statements of a parsed file, in place, and
// returns the file. src must be the source text f was parsed from, so
// that statements can be re-read by line number. bound holds the names
// already bound when the file runs (names mapped to false are
// ignored); it is copied, never retained or modified. If parse is nil,
// syntax.Parse is used.
func File(f *syntax.File, src string, bound map[string]bool, parse ParseLine) *syntax.File {
	if parse == nil {
		path := f.Path
		parse = func(line string) (*syntax.File, error) {
			return syntax.Parse(path, line)
		}
	}
	r := &resolver{
		scopes: NewScopes(bound),
		lines:  SplitLines(src),
		parse:  parse,
	}
	r.stmts(f.Stmts)
	return f
}

// FileBindings reports, sorted, the module-level names that running
// the pass over f would leave bound. It applies the same binding rules
// as File with a collaborator that never produces a replacement, so
// the tree is not rewritten.
func FileBindings(f *syntax.File) []string {
	r := &resolver{
		scopes: NewScopes(nil),
		parse:  func(string) (*syntax.File, error) { return nil, errNoReparse },
	}
	r.stmts(f.Stmts)
	module := r.scopes.frames[1]
	names := make([]string, 0, len(module))
	for name := range module {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// REPLChunk is a generalization of File for one input of a read,
// parse, print loop. bound is the loop's live session state rather
// than a snapshot: the chunk is disambiguated against it, and the
// names the chunk binds and unbinds at the module level are applied to
// it in place. The names newly bound are returned, sorted. If parse is
// nil, syntax.Parse is used.
func REPLChunk(f *syntax.File, src string, bound map[string]bool, parse ParseLine) []string {
	if parse == nil {
		path := f.Path
		parse = func(line string) (*syntax.File, error) {
			return syntax.Parse(path, line)
		}
	}
	r := &resolver{
		scopes: NewScopes(bound),
		lines:  SplitLines(src),
		parse:  parse,
	}
	r.stmts(f.Stmts)

	// A del of a session name lands in frame 0; drop it from the
	// session. Module-level bindings land in frame 1; add them.
	for name := range bound {
		if bound[name] && !r.scopes.frames[0][name] {
			delete(bound, name)
		}
	}
	var fresh []string
	for name := range r.scopes.frames[1] {
		if !bound[name] {
			bound[name] = true
			fresh = append(fresh, name)
		}
	}
	sort.Strings(fresh)
	return fresh
}

var errNoReparse = errors.New("reparse disabled")

type resolver struct {
	scopes *Scopes
	lines  Lines
	parse  ParseLine
}

// stmts resolves each statement of a suite,
// splicing replacements into the slice.
func (r *resolver) stmts(stmts []syntax.Stmt) {
	for i, stmt := range stmts {
		stmts[i] = r.stmt(stmt)
	}
}

// stmt resolves a single statement and returns the statement to put in
// its place: a re-parsed subprocess command for an expression
// statement whose leftmost name is unbound, the unchanged statement
// otherwise.
func (r *resolver) stmt(stmt syntax.Stmt) syntax.Stmt {
	switch stmt := stmt.(type) {
	case *syntax.ExprStmt:
		return r.exprStmt(stmt)

	case *syntax.AssignStmt:
		// Augmented assignment requires its target to be bound
		// already, so only = binds anything new.
		if stmt.Op == syntax.EQ {
			for _, target := range stmt.Targets {
				r.bindTarget(target)
			}
		}

	case *syntax.ImportStmt:
		for _, spec := range stmt.Specs {
			if spec.Binding != nil {
				r.scopes.Bind(spec.Binding.Name)
			} else {
				// An undotted path binds the module name; a
				// dotted path binds the path as written.
				r.scopes.Bind(spec.Path)
			}
		}

	case *syntax.FromImportStmt:
		for _, spec := range stmt.Specs {
			if spec.Binding != nil {
				r.scopes.Bind(spec.Binding.Name)
			} else {
				r.scopes.Bind(spec.Path)
			}
		}

	case *syntax.WithStmt:
		for _, item := range stmt.Items {
			if item.Var != nil {
				if name := LeftmostName(item.Var); name != "" {
					r.scopes.Bind(name)
				}
			}
		}
		r.stmts(stmt.Body)

	case *syntax.ForStmt:
		r.bindTarget(stmt.Vars)
		r.stmts(stmt.Body)

	case *syntax.DefStmt:
		// Parameters are not bound: a parameter name shadows
		// nothing until the function actually runs.
		r.scopes.Bind(stmt.Name.Name)
		r.scopes.Push()
		r.stmts(stmt.Body)
		r.scopes.Pop()

	case *syntax.ClassStmt:
		r.scopes.Bind(stmt.Name.Name)
		r.scopes.Push()
		r.stmts(stmt.Body)
		r.scopes.Pop()

	case *syntax.DelStmt:
		for _, x := range stmt.List {
			if id, ok := x.(*syntax.Ident); ok {
				r.scopes.Unbind(id.Name)
			}
		}

	case *syntax.TryStmt:
		// Handler names are bound before any suite runs, so a
		// command in the try body cannot shadow them.
		for _, handler := range stmt.Handlers {
			if handler.Var != nil {
				r.scopes.Bind(handler.Var.Name)
			}
		}
		r.stmts(stmt.Body)
		for _, handler := range stmt.Handlers {
			r.stmts(handler.Body)
		}
		r.stmts(stmt.OrElse)
		r.stmts(stmt.Finally)

	case *syntax.GlobalStmt:
		for _, id := range stmt.Names {
			r.scopes.BindGlobal(id.Name)
		}

	case *syntax.IfStmt:
		r.stmts(stmt.True)
		r.stmts(stmt.False)

	case *syntax.WhileStmt:
		r.stmts(stmt.Body)
	}

	// BranchStmt and ReturnStmt bind nothing and contain no suites.
	return stmt
}

// exprStmt decides the ambiguous case.
func (r *resolver) exprStmt(stmt *syntax.ExprStmt) syntax.Stmt {
	// A statement that already carries a subprocess command is
	// concrete; running the pass again must not change it.
	if _, ok := stmt.X.(*syntax.SubprocExpr); ok {
		return stmt
	}
	if name := LeftmostName(stmt); name != "" && r.scopes.IsBound(name) {
		return stmt
	}
	if repl, ok := Reparse(stmt, r.lines, r.parse, SubprocLine); ok {
		return repl
	}
	return stmt
}

// bindTarget binds the names an assignment or loop target introduces:
// the leftmost name of each element of a tuple or list target, or the
// leftmost name of the target itself.
func (r *resolver) bindTarget(target syntax.Expr) {
	switch target := target.(type) {
	case *syntax.ParenExpr:
		r.bindTarget(target.X)
	case *syntax.TupleExpr:
		r.scopes.BindAll(leftmostNames(target.List))
	case *syntax.ListExpr:
		r.scopes.BindAll(leftmostNames(target.List))
	default:
		if name := LeftmostName(target); name != "" {
			r.scopes.Bind(name)
		}
	}
}

// leftmostNames returns the leftmost names of the expressions,
// skipping expressions that have none.
func leftmostNames(list []syntax.Expr) []string {
	var names []string
	for _, x := range list {
		if name := LeftmostName(x); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// LeftmostName returns the leftmost name of an expression or
// expression statement: the identifier a reader sees first, the one
// that decides whether a statement refers to a known binding. The
// second operand of a binary expression, call arguments, subscript
// indices, and attribute names are never consulted. It returns "" for
// nodes that have no leftmost name, such as literals.
func LeftmostName(n syntax.Node) string {
	switch n := n.(type) {
	case *syntax.Ident:
		return n.Name
	case *syntax.ExprStmt:
		return LeftmostName(n.X)
	case *syntax.BinaryExpr:
		return LeftmostName(n.X)
	case *syntax.DotExpr:
		return LeftmostName(n.X)
	case *syntax.IndexExpr:
		return LeftmostName(n.X)
	case *syntax.SliceExpr:
		return LeftmostName(n.X)
	case *syntax.CallExpr:
		return LeftmostName(n.Fn)
	case *syntax.ParenExpr:
		return LeftmostName(n.X)
	case *syntax.UnaryExpr:
		// A starred target resolves through to its operand;
		// arithmetic and logical negation have no leftmost name.
		if n.Op == syntax.STAR {
			return LeftmostName(n.X)
		}
	}
	return ""
}

// Reparse re-parses the source line of an ambiguous statement in
// subprocess mode and returns the statement to splice in its place.
// The boolean result reports whether a replacement was produced.
//
// No replacement is produced when the statement spans more than one
// physical line, when its line is not present in lines, when the
// converted line fails to parse, or when it parses to an empty file.
// No error is surfaced in any of these cases: an irreparable candidate
// simply keeps its original form.
func Reparse(stmt syntax.Stmt, lines Lines, parse ParseLine, subproc func(string) string) (syntax.Stmt, bool) {
	start, end := stmt.Span()
	if end.Line != start.Line {
		// The first physical line alone cannot reconstruct a
		// multi-line statement.
		return nil, false
	}
	line, ok := lines.Line(int(start.Line))
	if !ok {
		return nil, false
	}
	f, err := parse(subproc(line))
	if err != nil || f == nil || len(f.Stmts) == 0 {
		return nil, false
	}
	repl := f.Stmts[0] // the first (and only) statement
	relocate(repl, start)
	return repl, true
}

// SubprocLine converts one line of source into subprocess syntax:
// the line, stripped of surrounding whitespace, wrapped in ![ ].
func SubprocLine(line string) string {
	return "![" + strings.TrimSpace(line) + "]"
}

// relocate copies the start position of a replaced statement onto its
// replacement, so that the rewritten tree still points at the source
// the user wrote. Only the topmost node (and, through expressions, its
// leftmost spine) moves; inner positions keep what the re-parse
// assigned them.
func relocate(stmt syntax.Stmt, pos syntax.Position) {
	switch stmt := stmt.(type) {
	case *syntax.ExprStmt:
		relocateExpr(stmt.X, pos)
	case *syntax.AssignStmt:
		relocateExpr(stmt.Targets[0], pos)
	case *syntax.BranchStmt:
		stmt.TokenPos = pos
	case *syntax.ReturnStmt:
		stmt.Return = pos
	case *syntax.DefStmt:
		stmt.Def = pos
	case *syntax.ClassStmt:
		stmt.Class = pos
	case *syntax.IfStmt:
		stmt.If = pos
	case *syntax.ForStmt:
		stmt.For = pos
	case *syntax.WhileStmt:
		stmt.While = pos
	case *syntax.WithStmt:
		stmt.With = pos
	case *syntax.TryStmt:
		stmt.Try = pos
	case *syntax.DelStmt:
		stmt.Del = pos
	case *syntax.GlobalStmt:
		stmt.Global = pos
	case *syntax.ImportStmt:
		stmt.Import = pos
	case *syntax.FromImportStmt:
		stmt.From = pos
	}
}

func relocateExpr(x syntax.Expr, pos syntax.Position) {
	switch x := x.(type) {
	case *syntax.SubprocExpr:
		x.OpPos = pos
	case *syntax.Ident:
		x.NamePos = pos
	case *syntax.Literal:
		x.TokenPos = pos
	case *syntax.CallExpr:
		relocateExpr(x.Fn, pos)
	case *syntax.DotExpr:
		relocateExpr(x.X, pos)
	case *syntax.IndexExpr:
		relocateExpr(x.X, pos)
	case *syntax.SliceExpr:
		relocateExpr(x.X, pos)
	case *syntax.BinaryExpr:
		relocateExpr(x.X, pos)
	case *syntax.CondExpr:
		relocateExpr(x.True, pos)
	case *syntax.UnaryExpr:
		x.OpPos = pos
	case *syntax.ParenExpr:
		x.Lparen = pos
	case *syntax.ListExpr:
		x.Lbrack = pos
	case *syntax.DictExpr:
		x.Lbrace = pos
	case *syntax.TupleExpr:
		if x.Lparen.IsValid() {
			x.Lparen = pos
		} else if len(x.List) > 0 {
			relocateExpr(x.List[0], pos)
		}
	}
}
