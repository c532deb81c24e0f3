// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines a recursive-descent parser for the xonsh dialect.
// The LL(1) grammar and the names of many productions follow Python.

import "log"

// Enable this flag to print the token stream and log.Fatal on the first error.
const debug = false

// Parse parses the input data and returns the corresponding parse tree.
//
// If src != nil, Parse parses the source from src and the filename is
// only used when recording position information. The type of the
// argument for the src parameter must be string, []byte, or io.Reader.
// If src == nil, Parse parses the file specified by filename.
func Parse(filename string, src interface{}) (f *File, err error) {
	in, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser{in: in}
	defer p.in.recover(&err)

	p.nextToken() // read first lookahead token
	f = p.parseFile()
	if f != nil {
		f.Path = filename
	}
	return f, nil
}

// ParseCompoundStmt parses a single compound statement:
// a blank line, a def, class, if, for, while, with, or try statement,
// or a simple statement followed by a newline.
// These are the units on which the REPL operates.
// ParseCompoundStmt does not consume any following input.
// The parser calls the readline function each
// time it needs a new line of input.
func ParseCompoundStmt(filename string, readline func() ([]byte, error)) (f *File, err error) {
	in, err := newScanner(filename, readline)
	if err != nil {
		return nil, err
	}

	p := parser{in: in}
	defer p.in.recover(&err)

	p.nextToken() // read first lookahead token

	var stmts []Stmt
	switch p.tok {
	case DEF, IF, FOR, WHILE, WITH, TRY, CLASS:
		stmts = p.parseStmt(stmts)
	case NEWLINE:
		// blank line
	default:
		stmts = p.parseSimpleStmt(stmts, false)
		// Do not consume newline, to avoid blocking again.
		if p.tok != NEWLINE {
			p.in.error(p.in.pos, "invalid syntax")
		}
	}

	return &File{Path: filename, Stmts: stmts}, nil
}

// ParseExpr parses an xonsh expression.
// A comma-separated list of expressions is parsed as a tuple.
// See Parse for explanation of parameters.
func ParseExpr(filename string, src interface{}) (expr Expr, err error) {
	in, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser{in: in}
	defer p.in.recover(&err)
	p.nextToken() // read first lookahead token

	// Use parseExpr, not parseTest, to permit an unparenthesized tuple.
	expr = p.parseExpr(false)

	// A following newline (e.g. "f()\n") appears outside any brackets,
	// is not a blank line, and yet is summarized by endToken.pos as
	// column 1, not the column of the terminal newline. (Sigh.)
	if p.tok == NEWLINE {
		p.nextToken()
	}

	if p.tok != EOF {
		p.in.errorf(p.in.pos, "got %#v after expression, want EOF", p.tok)
	}
	return expr, nil
}

type parser struct {
	in     *scanner
	tok    Token
	tokval tokenValue
}

// nextToken advances the scanner and returns the position of the
// previous token.
func (p *parser) nextToken() Position {
	oldpos := p.tokval.pos
	p.tok = p.in.nextToken(&p.tokval)
	// enable to see the token stream
	if debug {
		log.Printf("nextToken: %-20s%+v\n", p.tok, p.tokval.pos)
	}
	return oldpos
}

// file_input = (NEWLINE | stmt)* EOF
func (p *parser) parseFile() *File {
	var stmts []Stmt
	for p.tok != EOF {
		if p.tok == NEWLINE {
			p.nextToken()
			continue
		}
		stmts = p.parseStmt(stmts)
	}
	return &File{Stmts: stmts}
}

func (p *parser) parseStmt(stmts []Stmt) []Stmt {
	switch p.tok {
	case DEF:
		return append(stmts, p.parseDefStmt())
	case CLASS:
		return append(stmts, p.parseClassStmt())
	case IF:
		return append(stmts, p.parseIfStmt())
	case FOR:
		return append(stmts, p.parseForStmt())
	case WHILE:
		return append(stmts, p.parseWhileStmt())
	case WITH:
		return append(stmts, p.parseWithStmt())
	case TRY:
		return append(stmts, p.parseTryStmt())
	}
	return p.parseSimpleStmt(stmts, true)
}

// def_stmt = DEF IDENT '(' params ')' ':' suite
func (p *parser) parseDefStmt() Stmt {
	defpos := p.nextToken() // consume DEF
	id := p.parseIdent()
	p.consume(LPAREN)
	params := p.parseParams()
	p.consume(RPAREN)
	p.consume(COLON)
	body := p.parseSuite()
	return &DefStmt{
		Def:    defpos,
		Name:   id,
		Params: params,
		Body:   body,
	}
}

// class_stmt = CLASS IDENT ['(' arg_list? ')'] ':' suite
func (p *parser) parseClassStmt() Stmt {
	classpos := p.nextToken() // consume CLASS
	id := p.parseIdent()
	var bases []Expr
	if p.tok == LPAREN {
		p.nextToken()
		if p.tok != RPAREN {
			bases = p.parseArgs()
		}
		p.consume(RPAREN)
	}
	p.consume(COLON)
	body := p.parseSuite()
	return &ClassStmt{
		Class: classpos,
		Name:  id,
		Bases: bases,
		Body:  body,
	}
}

// if_stmt = IF test ':' suite {ELIF test ':' suite} [ELSE ':' suite]
func (p *parser) parseIfStmt() Stmt {
	ifpos := p.nextToken() // consume IF
	cond := p.parseTest()
	p.consume(COLON)
	body := p.parseSuite()
	ifStmt := &IfStmt{
		If:   ifpos,
		Cond: cond,
		True: body,
	}
	tail := ifStmt
	for p.tok == ELIF {
		elifpos := p.nextToken() // consume ELIF
		cond := p.parseTest()
		p.consume(COLON)
		body := p.parseSuite()
		elif := &IfStmt{
			If:   elifpos,
			Cond: cond,
			True: body,
		}
		tail.ElsePos = elifpos
		tail.False = []Stmt{elif}
		tail = elif
	}
	if p.tok == ELSE {
		tail.ElsePos = p.nextToken() // consume ELSE
		p.consume(COLON)
		tail.False = p.parseSuite()
	}
	return ifStmt
}

// for_stmt = FOR loop_variables IN expr ':' suite
func (p *parser) parseForStmt() Stmt {
	forpos := p.nextToken() // consume FOR
	vars := p.parseForLoopVariables()
	p.consume(IN)
	x := p.parseExpr(false)
	p.consume(COLON)
	body := p.parseSuite()
	return &ForStmt{
		For:  forpos,
		Vars: vars,
		X:    x,
		Body: body,
	}
}

// while_stmt = WHILE cond ':' suite
func (p *parser) parseWhileStmt() Stmt {
	whilepos := p.nextToken() // consume WHILE
	cond := p.parseTest()
	p.consume(COLON)
	body := p.parseSuite()
	return &WhileStmt{
		While: whilepos,
		Cond:  cond,
		Body:  body,
	}
}

// with_stmt = WITH with_item (',' with_item)* ':' suite
// with_item = test [AS test]
func (p *parser) parseWithStmt() Stmt {
	withpos := p.nextToken() // consume WITH
	items := []*WithItem{p.parseWithItem()}
	for p.tok == COMMA {
		p.nextToken()
		items = append(items, p.parseWithItem())
	}
	p.consume(COLON)
	body := p.parseSuite()
	return &WithStmt{
		With:  withpos,
		Items: items,
		Body:  body,
	}
}

func (p *parser) parseWithItem() *WithItem {
	x := p.parseTest()
	var v Expr
	if p.tok == AS {
		p.nextToken()
		v = p.parseTest()
	}
	return &WithItem{X: x, Var: v}
}

// try_stmt = TRY ':' suite handlers [ELSE ':' suite] [FINALLY ':' suite]
// handlers = {EXCEPT [test [AS IDENT]] ':' suite}
func (p *parser) parseTryStmt() Stmt {
	trypos := p.nextToken() // consume TRY
	p.consume(COLON)
	body := p.parseSuite()

	var handlers []*ExceptClause
	for p.tok == EXCEPT {
		exceptpos := p.nextToken() // consume EXCEPT
		var typ Expr
		var v *Ident
		if p.tok != COLON {
			typ = p.parseTest()
			if p.tok == AS {
				p.nextToken()
				v = p.parseIdent()
			}
		}
		p.consume(COLON)
		handlers = append(handlers, &ExceptClause{
			Except: exceptpos,
			Type:   typ,
			Var:    v,
			Body:   p.parseSuite(),
		})
	}

	var orelse, finally []Stmt
	if p.tok == ELSE {
		if len(handlers) == 0 {
			p.in.error(p.tokval.pos, "else clause without except")
		}
		p.nextToken()
		p.consume(COLON)
		orelse = p.parseSuite()
	}
	if p.tok == FINALLY {
		p.nextToken()
		p.consume(COLON)
		finally = p.parseSuite()
	}

	if len(handlers) == 0 && len(finally) == 0 {
		p.in.error(trypos, "try statement must have except or finally clause")
	}
	return &TryStmt{
		Try:      trypos,
		Body:     body,
		Handlers: handlers,
		OrElse:   orelse,
		Finally:  finally,
	}
}

// Equivalent to 'exprlist' production in Python grammar.
//
// loop_variables = primary_with_suffixes (COMMA primary_with_suffixes)* COMMA?
func (p *parser) parseForLoopVariables() Expr {
	// Avoid parseExpr because it would consume the IN token
	// following x in "for x in y: ...".
	v := p.parsePrimaryWithSuffixes()
	if p.tok != COMMA {
		return v
	}

	list := []Expr{v}
	for p.tok == COMMA {
		p.nextToken()
		if terminatesExprList(p.tok) || p.tok == IN {
			break
		}
		list = append(list, p.parsePrimaryWithSuffixes())
	}
	return &TupleExpr{List: list}
}

// parseSimpleStmt parses a simple statement and, if consumeNL,
// the terminating newline.
func (p *parser) parseSimpleStmt(stmts []Stmt, consumeNL bool) []Stmt {
	stmts = append(stmts, p.parseSmallStmt())

	// EOF without NEWLINE occurs in `if x: pass`, for example.
	if p.tok != EOF && consumeNL {
		p.consume(NEWLINE)
	}
	return stmts
}

// small_stmt = RETURN expr?
//            | PASS | BREAK | CONTINUE
//            | DEL expr (',' expr)*
//            | GLOBAL IDENT (',' IDENT)*
//            | import_stmt | from_import_stmt
//            | expr ('=' expr)+                // assign, possibly chained
//            | expr augop expr                 // augmented assign
//            | expr
func (p *parser) parseSmallStmt() Stmt {
	switch p.tok {
	case RETURN:
		pos := p.nextToken() // consume RETURN
		var result Expr
		if p.tok != EOF && p.tok != NEWLINE {
			result = p.parseExpr(false)
		}
		return &ReturnStmt{Return: pos, Result: result}

	case BREAK, CONTINUE, PASS:
		tok := p.tok
		pos := p.nextToken() // consume it
		return &BranchStmt{Token: tok, TokenPos: pos}

	case DEL:
		return p.parseDelStmt()

	case GLOBAL:
		return p.parseGlobalStmt()

	case IMPORT:
		return p.parseImportStmt()

	case FROM:
		return p.parseFromImportStmt()
	}

	// Assignment or expression statement.
	x := p.parseExpr(false)
	switch p.tok {
	case EQ:
		opPos := p.nextToken() // consume '='
		targets := []Expr{x}
		rhs := p.parseExpr(false)
		for p.tok == EQ {
			p.nextToken()
			targets = append(targets, rhs)
			rhs = p.parseExpr(false)
		}
		return &AssignStmt{
			OpPos:   opPos,
			Op:      EQ,
			Targets: targets,
			RHS:     rhs,
		}

	case PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, SLASHSLASH_EQ, PERCENT_EQ,
		AMP_EQ, PIPE_EQ, CIRCUMFLEX_EQ, LTLT_EQ, GTGT_EQ:
		op := p.tok
		pos := p.nextToken() // consume op
		rhs := p.parseExpr(false)
		return &AssignStmt{
			OpPos:   pos,
			Op:      op,
			Targets: []Expr{x},
			RHS:     rhs,
		}
	}

	// Expression statement (e.g. function call, subprocess command).
	return &ExprStmt{X: x}
}

// del_stmt = DEL expr (',' expr)*
func (p *parser) parseDelStmt() Stmt {
	delpos := p.nextToken() // consume DEL
	list := []Expr{p.parseTest()}
	for p.tok == COMMA {
		p.nextToken()
		list = append(list, p.parseTest())
	}
	return &DelStmt{Del: delpos, List: list}
}

// global_stmt = GLOBAL IDENT (',' IDENT)*
func (p *parser) parseGlobalStmt() Stmt {
	globalpos := p.nextToken() // consume GLOBAL
	names := []*Ident{p.parseIdent()}
	for p.tok == COMMA {
		p.nextToken()
		names = append(names, p.parseIdent())
	}
	return &GlobalStmt{Global: globalpos, Names: names}
}

// import_stmt = IMPORT import_spec (',' import_spec)*
// import_spec = dotted_name [AS IDENT]
func (p *parser) parseImportStmt() Stmt {
	importpos := p.nextToken() // consume IMPORT
	specs := []*ImportSpec{p.parseImportSpec()}
	for p.tok == COMMA {
		p.nextToken()
		specs = append(specs, p.parseImportSpec())
	}
	return &ImportStmt{Import: importpos, Specs: specs}
}

func (p *parser) parseImportSpec() *ImportSpec {
	pathPos := p.tokval.pos
	path := p.parseDottedName()
	spec := &ImportSpec{PathPos: pathPos, Path: path}
	if p.tok == AS {
		p.nextToken()
		spec.Binding = p.parseIdent()
	}
	return spec
}

// from_import_stmt = FROM dotted_name IMPORT '*'
//                  | FROM dotted_name IMPORT from_spec (',' from_spec)*
// from_spec = IDENT [AS IDENT]
func (p *parser) parseFromImportStmt() Stmt {
	frompos := p.nextToken() // consume FROM
	modPos := p.tokval.pos
	mod := p.parseDottedName()
	p.consume(IMPORT)

	var specs []*ImportSpec
	if p.tok == STAR {
		specs = append(specs, &ImportSpec{PathPos: p.tokval.pos, Path: "*"})
		p.nextToken()
	} else {
		specs = append(specs, p.parseFromSpec())
		for p.tok == COMMA {
			p.nextToken()
			specs = append(specs, p.parseFromSpec())
		}
	}
	return &FromImportStmt{
		From:      frompos,
		ModulePos: modPos,
		Module:    mod,
		Specs:     specs,
	}
}

func (p *parser) parseFromSpec() *ImportSpec {
	id := p.parseIdent()
	spec := &ImportSpec{PathPos: id.NamePos, Path: id.Name}
	if p.tok == AS {
		p.nextToken()
		spec.Binding = p.parseIdent()
	}
	return spec
}

// dotted_name = IDENT ('.' IDENT)*
func (p *parser) parseDottedName() string {
	path := p.parseIdent().Name
	for p.tok == DOT {
		p.nextToken()
		path += "." + p.parseIdent().Name
	}
	return path
}

// parseSuite parses a suite of statements,
// typically enclosed in a block:
//
//	suite = simple_stmt | NEWLINE INDENT stmt+ OUTDENT
func (p *parser) parseSuite() []Stmt {
	if p.tok == NEWLINE {
		p.nextToken() // consume NEWLINE
		p.consume(INDENT)
		var stmts []Stmt
		for p.tok != OUTDENT && p.tok != EOF {
			stmts = p.parseStmt(stmts)
		}
		p.consume(OUTDENT)
		return stmts
	}

	return p.parseSimpleStmt(nil, true)
}

func (p *parser) parseIdent() *Ident {
	if p.tok != IDENT {
		p.in.error(p.in.pos, "not an identifier")
	}
	id := &Ident{
		NamePos: p.tokval.pos,
		Name:    p.tokval.raw,
	}
	p.nextToken()
	return id
}

func (p *parser) consume(t Token) Position {
	if p.tok != t {
		p.in.errorf(p.in.pos, "got %#v, want %#v", p.tok, t)
	}
	return p.nextToken()
}

// params = (param COMMA)* param COMMA?
//        |
//
// param = IDENT
//       | IDENT EQ test
//       | STAR IDENT
//       | STARSTAR IDENT
//
// parseParams parses a parameter list.  The resulting expressions are of the form:
//
//	*Ident                                          x
//	*BinaryExpr{Op: EQ, X: *Ident, Y: Expr}         x=y
//	*UnaryExpr{Op: STAR, X: *Ident}                 *args
//	*UnaryExpr{Op: STARSTAR, X: *Ident}             **kwargs
func (p *parser) parseParams() []Expr {
	var params []Expr
	for p.tok != RPAREN && p.tok != COLON && p.tok != EOF {
		if len(params) > 0 {
			p.consume(COMMA)
		}
		if p.tok == RPAREN {
			break
		}

		// *args or **kwargs
		if p.tok == STAR || p.tok == STARSTAR {
			op := p.tok
			opPos := p.nextToken()
			x := p.parseIdent()
			params = append(params, &UnaryExpr{
				OpPos: opPos,
				Op:    op,
				X:     x,
			})
			continue
		}

		// IDENT
		// IDENT = test
		id := p.parseIdent()
		if p.tok == EQ { // default value
			eq := p.nextToken()
			dflt := p.parseTest()
			params = append(params, &BinaryExpr{
				X:     id,
				OpPos: eq,
				Op:    EQ,
				Y:     dflt,
			})
			continue
		}

		params = append(params, id)
	}
	return params
}

// parseExpr parses an expression, possibly consisting of a
// comma-separated list of 'test' expressions.
//
// In many cases we must use parseTest to avoid ambiguity such as
// f(x, y) vs. f((x, y)).
func (p *parser) parseExpr(inParens bool) Expr {
	x := p.parseTest()
	if p.tok != COMMA {
		return x
	}

	// tuple
	exprs := p.parseExprs([]Expr{x}, inParens)
	return &TupleExpr{List: exprs}
}

// parseExprs parses a comma-separated list of expressions, starting with the comma.
// It is used to parse tuples and list elements.
// expr_list = (',' expr)* ','?
func (p *parser) parseExprs(exprs []Expr, allowTrailingComma bool) []Expr {
	for p.tok == COMMA {
		pos := p.nextToken()
		if terminatesExprList(p.tok) {
			if !allowTrailingComma {
				p.in.error(pos, "unparenthesized tuple with trailing comma")
			}
			break
		}
		exprs = append(exprs, p.parseTest())
	}
	return exprs
}

// parseTest parses a 'test', a single-component expression.
func (p *parser) parseTest() Expr {
	x := p.parseTestPrec(0)

	// conditional expression (t IF cond ELSE f)
	if p.tok == IF {
		ifpos := p.nextToken()
		cond := p.parseTestPrec(0)
		if p.tok != ELSE {
			p.in.error(ifpos, "conditional expression without else clause")
		}
		elsepos := p.nextToken()
		else_ := p.parseTest()
		return &CondExpr{
			If:      ifpos,
			Cond:    cond,
			True:    x,
			ElsePos: elsepos,
			False:   else_,
		}
	}

	return x
}

// parseTestPrec parses an expression of the given precedence or higher (tighter).
func (p *parser) parseTestPrec(prec int) Expr {
	if prec >= len(preclevels) {
		return p.parsePowerExpr()
	}

	// expr = NOT expr
	if p.tok == NOT && prec == int(precedence[NOT]) {
		pos := p.nextToken()
		x := p.parseTestPrec(prec)
		return &UnaryExpr{
			OpPos: pos,
			Op:    NOT,
			X:     x,
		}
	}

	return p.parseBinopExpr(prec)
}

// expr = test (OP test)*
// Uses precedence climbing; see http://www.engr.mun.ca/~theo/Misc/exp_parsing.htm#climbing
func (p *parser) parseBinopExpr(prec int) Expr {
	x := p.parseTestPrec(prec + 1)
	for first := true; ; first = false {
		if p.tok == NOT {
			p.nextToken() // consume NOT
			// In this context, NOT must be followed by IN.
			// Replace NOT IN by a single NOT_IN token.
			if p.tok != IN {
				p.in.errorf(p.in.pos, "got %#v, want in", p.tok)
			}
			p.tok = NOT_IN
		}

		// Binary operator of specified precedence?
		opprec := int(precedence[p.tok])
		if opprec < prec {
			return x
		}

		// Comparisons are non-associative.
		if !first && opprec == int(precedence[EQL]) {
			p.in.errorf(p.in.pos, "%s does not associate with %s (use parens)",
				x.(*BinaryExpr).Op, p.tok)
		}

		// equal precedence; left-associative
		op := p.tok
		pos := p.nextToken()

		// Replace IS NOT by a single IS_NOT token.
		if op == IS && p.tok == NOT {
			p.nextToken() // consume NOT
			op = IS_NOT
		}

		y := p.parseTestPrec(opprec + 1)
		x = &BinaryExpr{OpPos: pos, Op: op, X: x, Y: y}
	}
}

// parsePowerExpr parses a power expression:
//
//	power = primary_with_suffixes ['**' power]
//
// The power operator is right-associative.
func (p *parser) parsePowerExpr() Expr {
	x := p.parsePrimaryWithSuffixes()
	if p.tok == STARSTAR {
		op := p.tok
		pos := p.nextToken()
		y := p.parsePowerExpr()
		x = &BinaryExpr{OpPos: pos, Op: op, X: x, Y: y}
	}
	return x
}

// precedence maps each operator to its precedence (0-9), or -1 for other tokens.
var precedence [maxToken]int8

// preclevels groups operators of equal precedence.
// Comparisons are nonassociative; other binary operators associate
// to the left. Unary MINUS, unary PLUS, and TILDE have higher
// precedence so are handled in parsePrimary;
// the power operator binds tighter still, in parsePowerExpr.
var preclevels = [...][]Token{
	{OR},  // or
	{AND}, // and
	{NOT}, // not (unary)
	{EQL, NEQ, LT, GT, LE, GE, IN, NOT_IN, IS, IS_NOT}, // comparisons
	{PIPE},       // |
	{CIRCUMFLEX}, // ^
	{AMP},        // &
	{LTLT, GTGT}, // << >>
	{MINUS, PLUS},                      // -
	{STAR, PERCENT, SLASH, SLASHSLASH}, // * % / //
}

func init() {
	// populate precedence table
	for i := range precedence {
		precedence[i] = -1
	}
	for level, tokens := range preclevels {
		for _, tok := range tokens {
			precedence[tok] = int8(level)
		}
	}
}

// primary_with_suffixes = primary
//                       | primary '.' IDENT
//                       | primary slice_suffix
//                       | primary call_suffix
func (p *parser) parsePrimaryWithSuffixes() Expr {
	x := p.parsePrimary()
	for {
		switch p.tok {
		case DOT:
			dot := p.nextToken()
			id := p.parseIdent()
			x = &DotExpr{Dot: dot, X: x, Name: id}
		case LBRACK:
			x = p.parseSliceSuffix(x)
		case LPAREN:
			x = p.parseCallSuffix(x)
		default:
			return x
		}
	}
}

// slice_suffix = '[' expr? ':' expr? ':' expr? ']'
func (p *parser) parseSliceSuffix(x Expr) Expr {
	lbrack := p.nextToken()
	var lo, hi, step Expr
	if p.tok != COLON {
		y := p.parseExpr(false)

		// index x[y]
		if p.tok == RBRACK {
			rbrack := p.nextToken()
			return &IndexExpr{
				X:      x,
				Lbrack: lbrack,
				Y:      y,
				Rbrack: rbrack,
			}
		}

		lo = y
	}

	// slice or substring x[lo:hi:step]
	if p.tok == COLON {
		p.nextToken()
		if p.tok != COLON && p.tok != RBRACK {
			hi = p.parseTest()
		}
	}
	if p.tok == COLON {
		p.nextToken()
		if p.tok != RBRACK {
			step = p.parseTest()
		}
	}
	rbrack := p.consume(RBRACK)
	return &SliceExpr{
		X:      x,
		Lbrack: lbrack,
		Lo:     lo,
		Hi:     hi,
		Step:   step,
		Rbrack: rbrack,
	}
}

// call_suffix = '(' arg_list? ')'
func (p *parser) parseCallSuffix(fn Expr) Expr {
	lparen := p.consume(LPAREN)
	var rparen Position
	var args []Expr
	if p.tok == RPAREN {
		rparen = p.nextToken()
	} else {
		args = p.parseArgs()
		rparen = p.consume(RPAREN)
	}
	return &CallExpr{
		Fn:     fn,
		Lparen: lparen,
		Args:   args,
		Rparen: rparen,
	}
}

// parseArgs parses a list of actual parameters.
//
// arg_list = ((arg COMMA)* arg COMMA?)?
// arg = test
//     | IDENT '=' test
//     | STAR test
//     | STARSTAR test
func (p *parser) parseArgs() []Expr {
	var args []Expr
	for p.tok != RPAREN && p.tok != EOF {
		if len(args) > 0 {
			p.consume(COMMA)
		}
		if p.tok == RPAREN {
			break
		}

		// *args or **kwargs
		if p.tok == STAR || p.tok == STARSTAR {
			op := p.tok
			opPos := p.nextToken()
			x := p.parseTest()
			args = append(args, &UnaryExpr{
				OpPos: opPos,
				Op:    op,
				X:     x,
			})
			continue
		}

		// We use a different strategy from Python here:
		// a keyword argument name=value is parsed as a
		// binary expression with Op = EQ.
		arg := p.parseTest()
		if p.tok == EQ {
			// name = value
			if _, ok := arg.(*Ident); !ok {
				p.in.error(p.in.pos, "keyword argument must have form name=expr")
			}
			opPos := p.nextToken()
			y := p.parseTest()
			arg = &BinaryExpr{
				X:     arg,
				OpPos: opPos,
				Op:    EQ,
				Y:     y,
			}
		}
		args = append(args, arg)
	}
	return args
}

// primary = IDENT
//         | INT | FLOAT | STRING
//         | NONE | TRUE | FALSE
//         | '![' WORD* ']'
//         | '$(' WORD* ')'
//         | '[' ...                    // list literal
//         | '{' ...                    // dict literal
//         | '(' ...                    // parenthesized expression or tuple
//         | ('-'|'+'|'~') primary_with_suffixes
func (p *parser) parsePrimary() Expr {
	switch p.tok {
	case IDENT:
		return p.parseIdent()

	case INT, FLOAT, STRING:
		var val interface{}
		tok := p.tok
		switch tok {
		case INT:
			val = p.tokval.int
		case FLOAT:
			val = p.tokval.float
		case STRING:
			val = p.tokval.string
		}
		lit := &Literal{
			Token:    tok,
			TokenPos: p.tokval.pos,
			Raw:      p.tokval.raw,
			Value:    val,
		}
		p.nextToken()
		return lit

	case NONE, TRUE, FALSE:
		var val interface{}
		if p.tok == TRUE {
			val = true
		} else if p.tok == FALSE {
			val = false
		}
		lit := &Literal{
			Token:    p.tok,
			TokenPos: p.tokval.pos,
			Raw:      p.tokval.raw,
			Value:    val,
		}
		p.nextToken()
		return lit

	case BANG_LBRACK, DOLLAR_LPAREN:
		return p.parseSubproc()

	case LBRACK:
		return p.parseList()

	case LBRACE:
		return p.parseDict()

	case LPAREN:
		lparen := p.nextToken()
		if p.tok == RPAREN {
			// empty tuple
			rparen := p.nextToken()
			return &TupleExpr{Lparen: lparen, Rparen: rparen}
		}
		e := p.parseExpr(true) // allow trailing comma
		rparen := p.consume(RPAREN)
		return &ParenExpr{
			Lparen: lparen,
			X:      e,
			Rparen: rparen,
		}

	case MINUS, PLUS, TILDE: // unary
		tok := p.tok
		pos := p.nextToken()
		x := p.parsePrimaryWithSuffixes()
		return &UnaryExpr{
			OpPos: pos,
			Op:    tok,
			X:     x,
		}
	}
	p.in.errorf(p.in.pos, "got %#v, want primary expression", p.tok)
	panic("unreachable")
}

// subproc = '![' WORD* ']'
//         | '$(' WORD* ')'
func (p *parser) parseSubproc() Expr {
	op := p.tok
	opPos := p.nextToken() // consume ![ or $(
	var words []*Word
	for p.tok == WORD {
		words = append(words, &Word{
			WordPos: p.tokval.pos,
			Text:    p.tokval.string,
			Raw:     p.tokval.raw,
		})
		p.nextToken()
	}
	var rbrack Position
	if op == BANG_LBRACK {
		rbrack = p.consume(RBRACK)
	} else {
		rbrack = p.consume(RPAREN)
	}
	return &SubprocExpr{
		OpPos:  opPos,
		Op:     op,
		Words:  words,
		Rbrack: rbrack,
	}
}

// list = '[' ']'
//      | '[' expr (',' expr)* ','? ']'
func (p *parser) parseList() Expr {
	lbrack := p.nextToken()
	if p.tok == RBRACK {
		// empty List
		rbrack := p.nextToken()
		return &ListExpr{Lbrack: lbrack, Rbrack: rbrack}
	}

	x := p.parseTest()
	if p.tok == FOR {
		p.in.error(p.tokval.pos, "comprehensions are not supported")
	}

	exprs := p.parseExprs([]Expr{x}, true)
	rbrack := p.consume(RBRACK)
	return &ListExpr{Lbrack: lbrack, List: exprs, Rbrack: rbrack}
}

// dict = '{' '}'
//      | '{' dict_entry (',' dict_entry)* ','? '}'
func (p *parser) parseDict() Expr {
	lbrace := p.nextToken()
	if p.tok == RBRACE {
		// empty dict
		rbrace := p.nextToken()
		return &DictExpr{Lbrace: lbrace, Rbrace: rbrace}
	}

	x := p.parseDictEntry()
	if p.tok == FOR {
		p.in.error(p.tokval.pos, "comprehensions are not supported")
	}

	entries := []Expr{x}
	for p.tok == COMMA {
		p.nextToken()
		if p.tok == RBRACE {
			break
		}
		entries = append(entries, p.parseDictEntry())
	}
	rbrace := p.consume(RBRACE)
	return &DictExpr{
		Lbrace: lbrace,
		List:   entries,
		Rbrace: rbrace,
	}
}

// dict_entry = test ':' test
func (p *parser) parseDictEntry() *DictEntry {
	k := p.parseTest()
	colon := p.consume(COLON)
	v := p.parseTest()
	return &DictEntry{Key: k, Colon: colon, Value: v}
}

func terminatesExprList(tok Token) bool {
	switch tok {
	case EOF, NEWLINE, EQ, RBRACE, RBRACK, RPAREN, COLON:
		return true
	}
	return false
}
