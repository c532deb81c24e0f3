// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides an xonsh parser and abstract syntax tree.
//
// The dialect is a restricted Python-like language extended with
// subprocess command literals, ![cmd args] and $(cmd args), which may
// also be produced by re-parsing an ambiguous statement in subprocess
// mode (see the resolve package).
package syntax

// A Node is a node in an xonsh syntax tree.
type Node interface {
	// Span returns the start and end position of the expression.
	Span() (start, end Position)
}

// Start returns the start position of the expression.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the expression.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A File represents an xonsh file.
type File struct {
	Path  string
	Stmts []Stmt
}

func (x *File) Span() (start, end Position) {
	if len(x.Stmts) == 0 {
		return
	}
	start, _ = x.Stmts[0].Span()
	_, end = x.Stmts[len(x.Stmts)-1].Span()
	return start, end
}

// A Stmt is an xonsh statement.
type Stmt interface {
	Node
	stmt()
}

func (*AssignStmt) stmt()     {}
func (*BranchStmt) stmt()     {}
func (*ClassStmt) stmt()      {}
func (*DefStmt) stmt()        {}
func (*DelStmt) stmt()        {}
func (*ExprStmt) stmt()       {}
func (*ForStmt) stmt()        {}
func (*FromImportStmt) stmt() {}
func (*GlobalStmt) stmt()     {}
func (*IfStmt) stmt()         {}
func (*ImportStmt) stmt()     {}
func (*ReturnStmt) stmt()     {}
func (*TryStmt) stmt()        {}
func (*WhileStmt) stmt()      {}
func (*WithStmt) stmt()       {}

// An AssignStmt represents an assignment:
//	x = 0
//	x = y = 0
//	x, y = y, x
// 	x += 1
// Targets has more than one element only for chained = assignments.
type AssignStmt struct {
	OpPos   Position
	Op      Token // = EQ | {PLUS,MINUS,STAR,SLASH,SLASHSLASH,PERCENT,AMP,PIPE,CIRCUMFLEX,LTLT,GTGT}_EQ
	Targets []Expr
	RHS     Expr
}

func (x *AssignStmt) Span() (start, end Position) {
	start, _ = x.Targets[0].Span()
	_, end = x.RHS.Span()
	return
}

// A DefStmt represents a function definition.
type DefStmt struct {
	Def    Position
	Name   *Ident
	Params []Expr // param = ident | ident=expr | *ident | **ident
	Body   []Stmt
}

func (x *DefStmt) Span() (start, end Position) {
	_, end = x.Body[len(x.Body)-1].Span()
	return x.Def, end
}

// A ClassStmt represents a class definition.
type ClassStmt struct {
	Class Position
	Name  *Ident
	Bases []Expr // optional; nil when the header has no parens
	Body  []Stmt
}

func (x *ClassStmt) Span() (start, end Position) {
	_, end = x.Body[len(x.Body)-1].Span()
	return x.Class, end
}

// An ExprStmt is an expression evaluated for side effects.
//
// Expression statements are the ambiguous case of the dialect: a bare
// `ls -la` parses as one, and the resolve package may replace it by a
// subprocess command re-parsed from the same source line.
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) Span() (start, end Position) {
	return x.X.Span()
}

// An IfStmt is a conditional: If Cond: True; else: False.
// 'elif' is desugared into a chain of IfStmts.
type IfStmt struct {
	If      Position // IF or ELIF
	Cond    Expr
	True    []Stmt
	ElsePos Position // ELSE or ELIF
	False   []Stmt   // optional
}

func (x *IfStmt) Span() (start, end Position) {
	body := x.False
	if body == nil {
		body = x.True
	}
	_, end = body[len(body)-1].Span()
	return x.If, end
}

// A WhileStmt is a loop: while Cond: Body.
type WhileStmt struct {
	While Position
	Cond  Expr
	Body  []Stmt
}

func (x *WhileStmt) Span() (start, end Position) {
	_, end = x.Body[len(x.Body)-1].Span()
	return x.While, end
}

// A ForStmt represents a loop: for Vars in X: Body.
type ForStmt struct {
	For  Position
	Vars Expr // name, or tuple of names
	X    Expr
	Body []Stmt
}

func (x *ForStmt) Span() (start, end Position) {
	_, end = x.Body[len(x.Body)-1].Span()
	return x.For, end
}

// A WithStmt represents a context block: with Items: Body.
type WithStmt struct {
	With  Position
	Items []*WithItem
	Body  []Stmt
}

func (x *WithStmt) Span() (start, end Position) {
	_, end = x.Body[len(x.Body)-1].Span()
	return x.With, end
}

// A WithItem is one clause of a with statement: X [as Var].
type WithItem struct {
	X   Expr
	Var Expr // optional: name, or tuple of names
}

func (x *WithItem) Span() (start, end Position) {
	start, end = x.X.Span()
	if x.Var != nil {
		_, end = x.Var.Span()
	}
	return
}

// A TryStmt represents exception handling:
// try: Body; except ...: ...; else: OrElse; finally: Finally.
type TryStmt struct {
	Try      Position
	Body     []Stmt
	Handlers []*ExceptClause
	OrElse   []Stmt // optional
	Finally  []Stmt // optional
}

func (x *TryStmt) Span() (start, end Position) {
	body := x.Body
	if len(x.Finally) > 0 {
		body = x.Finally
	} else if len(x.OrElse) > 0 {
		body = x.OrElse
	} else if n := len(x.Handlers); n > 0 {
		body = x.Handlers[n-1].Body
	}
	_, end = body[len(body)-1].Span()
	return x.Try, end
}

// An ExceptClause is one handler of a try statement:
// except Type as Var: Body. Type and Var are optional.
type ExceptClause struct {
	Except Position
	Type   Expr   // optional
	Var    *Ident // optional
	Body   []Stmt
}

func (x *ExceptClause) Span() (start, end Position) {
	_, end = x.Body[len(x.Body)-1].Span()
	return x.Except, end
}

// A DelStmt unbinds names: del List.
type DelStmt struct {
	Del  Position
	List []Expr
}

func (x *DelStmt) Span() (start, end Position) {
	_, end = x.List[len(x.List)-1].Span()
	return x.Del, end
}

// A GlobalStmt declares names as module-level: global Names.
type GlobalStmt struct {
	Global Position
	Names  []*Ident
}

func (x *GlobalStmt) Span() (start, end Position) {
	_, end = x.Names[len(x.Names)-1].Span()
	return x.Global, end
}

// An ImportStmt imports modules: import Specs.
type ImportStmt struct {
	Import Position
	Specs  []*ImportSpec
}

func (x *ImportStmt) Span() (start, end Position) {
	_, end = x.Specs[len(x.Specs)-1].Span()
	return x.Import, end
}

// A FromImportStmt imports names from a module:
// from Module import Specs. A spec path of "*" imports everything.
type FromImportStmt struct {
	From      Position
	ModulePos Position
	Module    string // dotted module path as written
	Specs     []*ImportSpec
}

func (x *FromImportStmt) Span() (start, end Position) {
	_, end = x.Specs[len(x.Specs)-1].Span()
	return x.From, end
}

// An ImportSpec is one clause of an import: Path [as Binding].
// In an ImportStmt the Path may be dotted (a.b.c); in a FromImportStmt
// it is a single name or "*".
type ImportSpec struct {
	PathPos Position
	Path    string
	Binding *Ident // optional
}

func (x *ImportSpec) Span() (start, end Position) {
	start = x.PathPos
	end = x.PathPos.add(x.Path)
	if x.Binding != nil {
		_, end = x.Binding.Span()
	}
	return
}

// A BranchStmt changes the flow of control: break, continue, pass.
type BranchStmt struct {
	Token    Token // = BREAK | CONTINUE | PASS
	TokenPos Position
}

func (x *BranchStmt) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Token.String())
}

// A ReturnStmt returns from a function.
type ReturnStmt struct {
	Return Position
	Result Expr // may be nil
}

func (x *ReturnStmt) Span() (start, end Position) {
	if x.Result == nil {
		return x.Return, x.Return.add("return")
	}
	_, end = x.Result.Span()
	return x.Return, end
}

// An Expr is an xonsh expression.
type Expr interface {
	Node
	expr()
}

func (*BinaryExpr) expr()  {}
func (*CallExpr) expr()    {}
func (*CondExpr) expr()    {}
func (*DictEntry) expr()   {}
func (*DictExpr) expr()    {}
func (*DotExpr) expr()     {}
func (*Ident) expr()       {}
func (*IndexExpr) expr()   {}
func (*ListExpr) expr()    {}
func (*Literal) expr()     {}
func (*ParenExpr) expr()   {}
func (*SliceExpr) expr()   {}
func (*SubprocExpr) expr() {}
func (*TupleExpr) expr()   {}
func (*UnaryExpr) expr()   {}

// An Ident represents an identifier.
type Ident struct {
	NamePos Position
	Name    string
}

func (x *Ident) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// A Literal represents a literal string or number.
type Literal struct {
	Token    Token // = STRING | INT | FLOAT
	TokenPos Position
	Raw      string      // uninterpreted text
	Value    interface{} // = string | int64 | float64
}

func (x *Literal) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Raw)
}

// A CallExpr represents a function call expression: Fn(Args).
// A keyword argument name=value is represented as a BinaryExpr
// with Op = EQ.
type CallExpr struct {
	Fn     Expr
	Lparen Position
	Args   []Expr
	Rparen Position
}

func (x *CallExpr) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	return start, x.Rparen.add(")")
}

// A DotExpr represents a field or method selector: X.Name.
type DotExpr struct {
	X       Expr
	Dot     Position
	NamePos Position
	Name    *Ident
}

func (x *DotExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Name.Span()
	return
}

// A SubprocExpr represents a subprocess command literal:
// ![Words] runs a command, $(Words) captures its output.
type SubprocExpr struct {
	OpPos  Position
	Op     Token // = BANG_LBRACK | DOLLAR_LPAREN
	Words  []*Word
	Rbrack Position // position of closing ] or )
}

func (x *SubprocExpr) Span() (start, end Position) {
	return x.OpPos, x.Rbrack.add("]")
}

// A Word is a single argument of a subprocess command.
type Word struct {
	WordPos Position
	Text    string // the word after quote processing
	Raw     string // uninterpreted source text
}

func (x *Word) Span() (start, end Position) {
	return x.WordPos, x.WordPos.add(x.Raw)
}

// A DictExpr represents a dictionary literal: { List }.
type DictExpr struct {
	Lbrace Position
	List   []Expr // all *DictEntrys
	Rbrace Position
}

func (x *DictExpr) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// A DictEntry represents a dictionary entry: Key: Value.
// Used only within a DictExpr.
type DictEntry struct {
	Key   Expr
	Colon Position
	Value Expr
}

func (x *DictEntry) Span() (start, end Position) {
	start, _ = x.Key.Span()
	_, end = x.Value.Span()
	return start, end
}

// A ListExpr represents a list literal: [ List ].
type ListExpr struct {
	Lbrack Position
	List   []Expr
	Rbrack Position
}

func (x *ListExpr) Span() (start, end Position) {
	return x.Lbrack, x.Rbrack.add("]")
}

// CondExpr represents the conditional: X if COND else ELSE.
type CondExpr struct {
	If      Position
	Cond    Expr
	True    Expr
	ElsePos Position
	False   Expr
}

func (x *CondExpr) Span() (start, end Position) {
	start, _ = x.True.Span()
	_, end = x.False.Span()
	return start, end
}

// A TupleExpr represents a tuple literal: (List).
type TupleExpr struct {
	Lparen Position // optional (e.g. in x, y = 0, 1), but required if List is empty
	List   []Expr
	Rparen Position
}

func (x *TupleExpr) Span() (start, end Position) {
	if x.Lparen.IsValid() {
		return x.Lparen, x.Rparen
	} else {
		return Start(x.List[0]), End(x.List[len(x.List)-1])
	}
}

// A ParenExpr represents a parenthesized expression: (X).
type ParenExpr struct {
	Lparen Position
	X      Expr
	Rparen Position
}

func (x *ParenExpr) Span() (start, end Position) {
	return x.Lparen, x.Rparen.add(")")
}

// A UnaryExpr represents a unary expression: Op X.
// A *x or **x argument or assignment target is represented as a
// UnaryExpr with Op = STAR or STARSTAR.
type UnaryExpr struct {
	OpPos Position
	Op    Token
	X     Expr
}

func (x *UnaryExpr) Span() (start, end Position) {
	_, end = x.X.Span()
	return x.OpPos, end
}

// A BinaryExpr represents a binary expression: X Op Y.
// Comparisons are binary expressions too; chained comparison is not
// part of the dialect.
type BinaryExpr struct {
	X     Expr
	OpPos Position
	Op    Token
	Y     Expr
}

func (x *BinaryExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Y.Span()
	return start, end
}

// A SliceExpr represents a slice or substring expression: X[Lo:Hi:Step].
type SliceExpr struct {
	X            Expr
	Lbrack       Position
	Lo, Hi, Step Expr // all optional
	Rbrack       Position
}

func (x *SliceExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	return start, x.Rbrack
}

// An IndexExpr represents an index expression: X[Y].
type IndexExpr struct {
	X      Expr
	Lbrack Position
	Y      Expr
	Rbrack Position
}

func (x *IndexExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	return start, x.Rbrack
}
