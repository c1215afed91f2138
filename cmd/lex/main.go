package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lilac-lang/lilac/internal/diag"
	"github.com/lilac-lang/lilac/internal/lexer"
	"github.com/lilac-lang/lilac/internal/tokencache"
	"github.com/lilac-lang/lilac/internal/watch"
)

func main() {
	cachePath := flag.String("cache", "", "path to a token cache database")
	watchMode := flag.Bool("watch", false, "keep running and re-lex the input on every write")
	verbose := flag.Bool("verbose", false, "report lexer diagnostics on stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lex [options] <input-file>\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	var cache *tokencache.Cache
	if *cachePath != "" {
		var err error
		if cache, err = tokencache.Open(*cachePath); err != nil {
			fmt.Fprintf(os.Stderr, "could not open cache %s: %v\n", *cachePath, err)
			os.Exit(1)
		}
		defer cache.Close()
	}

	if err := run(path, cache, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *watchMode {
		if err := rerunOnWrite(path, cache, *verbose); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// run lexes the file at path and prints its token line. Lexer diagnostics
// are not process errors: they surface as Error tokens in the line and, in
// verbose mode, on stderr. A cache hit prints the stored line without
// lexing, so it reports no diagnostics.
func run(path string, cache *tokencache.Cache, verbose bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open file %s: %v", path, err)
	}

	if cache != nil {
		key := tokencache.Sum(src)
		if line, ok, err := cache.Get(key); err == nil && ok {
			fmt.Println(line)
			return nil
		}
	}

	lx := lexer.New(string(src))
	line := lexer.Format(lx.Scan())
	fmt.Println(line)

	if verbose {
		for _, lexErr := range lx.Errors() {
			fmt.Fprintln(os.Stderr, diag.Format(lexErr.ToDiagnostic()))
		}
	}

	if cache != nil {
		if err := cache.Put(tokencache.Sum(src), line); err != nil {
			fmt.Fprintf(os.Stderr, "could not update cache: %v\n", err)
		}
	}
	return nil
}

func rerunOnWrite(path string, cache *tokencache.Cache, verbose bool) error {
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
			if err := run(path, cache, verbose); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err := <-w.Errors():
			return err
		}
	}
}
