// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The xonsh command parses a program in the xonsh dialect, resolves
// each ambiguous statement against the names bound before it, and
// prints how every top-level statement reads: "exec:" for subprocess
// commands, "eval:" for everything else.
// With no arguments and a terminal on stdin, it starts a
// read-parse-print loop (REPL).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aidaco/xonsh/history"
	"github.com/aidaco/xonsh/repl"
	"github.com/aidaco/xonsh/resolve"
	"github.com/aidaco/xonsh/syntax"
	"golang.org/x/term"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	dump       = flag.Bool("dump", false, "print the resolved syntax tree instead of classifications")
	showenv    = flag.Bool("showenv", false, "on success, print the module bindings, sorted")
	execprog   = flag.String("c", "", "process program `prog` instead of a script file")
	bound      = flag.String("bind", "", "comma-separated `names` to treat as already bound")
	histfile   = flag.String("history", defaultHistory(), "REPL history `file`; empty disables persistence")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("xonsh: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			err := pprof.Lookup("heap").WriteTo(f, 0)
			check(err)
			err = f.Close()
			check(err)
		}()
	}

	switch {
	case flag.NArg() == 1 || *execprog != "":
		var filename, src string
		if *execprog != "" {
			// Program given on the command line.
			filename = "cmdline"
			src = *execprog
		} else {
			// Program read from a file.
			filename = flag.Arg(0)
			data, err := os.ReadFile(filename)
			if err != nil {
				log.Print(err)
				return 1
			}
			src = string(data)
		}
		if !run(filename, src) {
			return 1
		}
	case flag.NArg() == 0:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			// Piped input is a script.
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				log.Print(err)
				return 1
			}
			if !run("<stdin>", string(data)) {
				return 1
			}
			break
		}
		var hist *history.Store
		if *histfile != "" {
			var err error
			hist, err = history.Open(*histfile)
			if err != nil {
				// The loop works without persistence.
				log.Print(err)
			} else {
				defer hist.Close()
			}
		}
		fmt.Println("Welcome to xonsh (github.com/aidaco/xonsh)")
		session := repl.NewSession(bindings(), hist)
		repl.REPL(session)
		if *showenv {
			for _, name := range session.Bound() {
				fmt.Fprintln(os.Stderr, name)
			}
		}
	default:
		log.Print("want at most one xonsh file name")
		return 1
	}

	return 0
}

// run parses and resolves one program and prints what it found.
func run(filename, src string) bool {
	f, err := syntax.Parse(filename, src)
	if err != nil {
		repl.PrintError(err)
		return false
	}
	session := repl.NewSession(bindings(), nil)
	lines := session.Interpret(f, src)
	if *dump {
		dumpTree(os.Stdout, f)
	} else {
		for _, line := range lines {
			fmt.Println(line)
		}
	}

	// Print the module bindings the program leaves behind.
	if *showenv {
		for _, name := range resolve.FileBindings(f) {
			fmt.Fprintln(os.Stderr, name)
		}
	}
	return true
}

// bindings returns the names pre-bound by the -bind flag.
func bindings() []string {
	var names []string
	for _, name := range strings.Split(*bound, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// defaultHistory is the flag default for -history.
// An empty string (no home directory) disables persistence.
func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xonsh_history.db")
}

// dumpTree prints an indented outline of the tree, one node per line.
func dumpTree(out io.Writer, f *syntax.File) {
	var depth int
	syntax.Walk(f, func(n syntax.Node) bool {
		if n == nil {
			depth--
			return true
		}
		fmt.Fprintf(out, "%*s%s\n", 2*depth, "", nodeString(n))
		depth++
		return true
	})
}

// nodeString names a node, with the detail that distinguishes it:
// the operator of an operation, the text of a leaf.
func nodeString(n syntax.Node) string {
	switch n := n.(type) {
	case *syntax.Ident:
		return "Ident " + n.Name
	case *syntax.Word:
		return "Word " + n.Raw
	case *syntax.Literal:
		return "Literal " + n.Raw
	case *syntax.ImportSpec:
		return "ImportSpec " + n.Path
	case *syntax.BinaryExpr:
		return "BinaryExpr " + n.Op.String()
	case *syntax.UnaryExpr:
		return "UnaryExpr " + n.Op.String()
	case *syntax.AssignStmt:
		return "AssignStmt " + n.Op.String()
	case *syntax.SubprocExpr:
		return "SubprocExpr " + n.Op.String()
	case *syntax.BranchStmt:
		return "BranchStmt " + n.Token.String()
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", n), "*syntax.")
	}
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
