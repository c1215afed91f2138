package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lilac-lang/lilac/internal/ast"
	"github.com/lilac-lang/lilac/internal/parser"
	"github.com/lilac-lang/lilac/internal/watch"
)

func main() {
	watchMode := flag.Bool("watch", false, "keep running and re-parse the input on every write")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: parse [options] <input-file>\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	if err := run(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *watchMode {
		if err := rerunOnWrite(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// run parses the first line of the file at path as a token stream and
// prints either the AST or the parse error on stdout. A parse error is not
// a process error: golden tests diff both outputs the same way.
func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open file %s: %v", path, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")

	prog, err := parser.New(parser.ReadTokens(line)).Parse()
	if err != nil {
		fmt.Println(err)
		return nil
	}
	fmt.Println(ast.Print(prog))
	return nil
}

func rerunOnWrite(path string) error {
	w, err := watch.NewFile(path)
	if err != nil {
		return err
	}
	defer w.Close()

	for {
		select {
		case _, ok := <-w.Writes():
			if !ok {
				return nil
			}
			if err := run(path); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err := <-w.Errors():
			return err
		}
	}
}
