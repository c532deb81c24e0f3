// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Walk traverses a syntax tree in depth-first order.
// It starts by calling f(n); n must not be nil.
// If f returns true, Walk calls f
// recursively for each of the non-nil children of n,
// then calls f(nil).
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *File:
		walkStmts(n.Stmts, f)

	case *ExprStmt:
		Walk(n.X, f)

	case *BranchStmt:
		// no-op

	case *IfStmt:
		Walk(n.Cond, f)
		walkStmts(n.True, f)
		walkStmts(n.False, f)

	case *AssignStmt:
		for _, target := range n.Targets {
			Walk(target, f)
		}
		Walk(n.RHS, f)

	case *DefStmt:
		Walk(n.Name, f)
		for _, param := range n.Params {
			Walk(param, f)
		}
		walkStmts(n.Body, f)

	case *ClassStmt:
		Walk(n.Name, f)
		for _, base := range n.Bases {
			Walk(base, f)
		}
		walkStmts(n.Body, f)

	case *ForStmt:
		Walk(n.Vars, f)
		Walk(n.X, f)
		walkStmts(n.Body, f)

	case *WhileStmt:
		Walk(n.Cond, f)
		walkStmts(n.Body, f)

	case *WithStmt:
		for _, item := range n.Items {
			Walk(item, f)
		}
		walkStmts(n.Body, f)

	case *WithItem:
		Walk(n.X, f)
		if n.Var != nil {
			Walk(n.Var, f)
		}

	case *TryStmt:
		walkStmts(n.Body, f)
		for _, handler := range n.Handlers {
			Walk(handler, f)
		}
		walkStmts(n.OrElse, f)
		walkStmts(n.Finally, f)

	case *ExceptClause:
		if n.Type != nil {
			Walk(n.Type, f)
		}
		if n.Var != nil {
			Walk(n.Var, f)
		}
		walkStmts(n.Body, f)

	case *DelStmt:
		for _, x := range n.List {
			Walk(x, f)
		}

	case *GlobalStmt:
		for _, id := range n.Names {
			Walk(id, f)
		}

	case *ImportStmt:
		for _, spec := range n.Specs {
			Walk(spec, f)
		}

	case *FromImportStmt:
		for _, spec := range n.Specs {
			Walk(spec, f)
		}

	case *ImportSpec:
		if n.Binding != nil {
			Walk(n.Binding, f)
		}

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, f)
		}

	case *Ident, *Literal, *Word:
		// no-op

	case *ListExpr:
		for _, x := range n.List {
			Walk(x, f)
		}

	case *TupleExpr:
		for _, x := range n.List {
			Walk(x, f)
		}

	case *ParenExpr:
		Walk(n.X, f)

	case *CondExpr:
		Walk(n.Cond, f)
		Walk(n.True, f)
		Walk(n.False, f)

	case *IndexExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *SliceExpr:
		Walk(n.X, f)
		if n.Lo != nil {
			Walk(n.Lo, f)
		}
		if n.Hi != nil {
			Walk(n.Hi, f)
		}
		if n.Step != nil {
			Walk(n.Step, f)
		}

	case *DictExpr:
		for _, entry := range n.List {
			Walk(entry, f)
		}

	case *DictEntry:
		Walk(n.Key, f)
		Walk(n.Value, f)

	case *DotExpr:
		Walk(n.X, f)
		Walk(n.Name, f)

	case *UnaryExpr:
		if n.X != nil {
			Walk(n.X, f)
		}

	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *CallExpr:
		Walk(n.Fn, f)
		for _, arg := range n.Args {
			Walk(arg, f)
		}

	case *SubprocExpr:
		for _, w := range n.Words {
			Walk(w, f)
		}

	default:
		panic(n) // unexpected node type
	}

	f(nil)
}

func walkStmts(stmts []Stmt, f func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, f)
	}
}
