/*
Command cfg explores the built-in context-free grammars.

Usage

   cfg [-v] [-seed n] [-count n] [-maxlen n] <grammar> <method> [input]

where grammar is one of

   cfg     the balanced grammar S → aSb | ε
   bonus   the grammar for aⁿbⁿcⁿ (approximated)

and method is one of

   build       print the grammar
   generate    print random strings of the language (cfg only)
   derive      print the derivation of input (cfg only)
   membership  decide if input is a member of the language

Selectors are case-insensitive. A missing input denotes the empty string.
On invalid arguments, cfg prints a usage message and exits with status 2.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/npillmayer/cfg"
	"github.com/npillmayer/cfg/balanced"
	"github.com/npillmayer/cfg/bonus"
	"github.com/npillmayer/cfg/entropy"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/cases"
)

var logger = log.New(os.Stderr, "cfg: ", 0)

const usage = `usage: cfg [-v] [-seed n] [-count n] [-maxlen n] <grammar> <method> [input]
    grammar: cfg | bonus
    method:  build | generate | derive | membership  (generate, derive: cfg only)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	verbose bool
	seed    int64
	count   int
	maxLen  int
	grammar string
	method  string
	input   string
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "cfg: %v\n%s", err, usage)
		return 2
	}
	gtrace.CoreTracer = gologadapter.New()
	if opts.verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	switch opts.method {
	case "build":
		return build(opts, stdout)
	case "generate":
		return generate(opts, stdout)
	case "derive":
		if d, ok := balanced.Derive(opts.input); ok {
			fmt.Fprintln(stdout, d)
		} else {
			fmt.Fprintln(stdout, "no derivation")
		}
	case "membership":
		fmt.Fprintln(stdout, decider(opts.grammar).Member(opts.input))
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("cfg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for random generation (0: time based)")
	fs.IntVar(&opts.count, "count", 10, "maximum number of strings to generate")
	fs.IntVar(&opts.maxLen, "maxlen", 10, "maximum length of generated strings")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 2 || fs.NArg() > 3 {
		return nil, fmt.Errorf("expected 2 or 3 arguments, have %d", fs.NArg())
	}
	fold := cases.Fold()
	opts.grammar = fold.String(fs.Arg(0))
	opts.method = fold.String(fs.Arg(1))
	opts.input = fs.Arg(2)
	switch opts.grammar {
	case "cfg", "bonus":
	default:
		return nil, fmt.Errorf("unknown grammar %q", fs.Arg(0))
	}
	switch opts.method {
	case "build", "membership":
	case "generate", "derive":
		if opts.grammar != "cfg" {
			return nil, fmt.Errorf("method %s is available for grammar cfg only", opts.method)
		}
	default:
		return nil, fmt.Errorf("unknown method %q", fs.Arg(1))
	}
	if opts.count < 0 || opts.maxLen < 0 {
		return nil, fmt.Errorf("count and maxlen must not be negative")
	}
	return opts, nil
}

func decider(grammar string) cfg.Decider {
	if grammar == "bonus" {
		return bonus.Decider()
	}
	return balanced.Decider()
}

func build(opts *options, stdout io.Writer) int {
	g := decider(opts.grammar).Grammar()
	fmt.Fprintln(stdout, g)
	if opts.verbose {
		ga, err := g.LR()
		if err != nil {
			logger.Printf("cannot create LR grammar: %v", err)
			return 1
		}
		ga.Grammar().Dump()
	}
	return 0
}

func generate(opts *options, stdout io.Writer) int {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx := context.Background()
	pool := entropy.NewPool(seed, entropy.MaxIdle(1))
	defer pool.Close(ctx)
	gen := balanced.NewGenerator(balanced.WithEntropy(pool))
	out := gen.Generate(opts.count, opts.maxLen)
	for _, s := range out {
		fmt.Fprintf(stdout, "%q\n", s)
	}
	if opts.verbose {
		p := printer()
		p.Fprintf(stdout, "%d string(s) generated (seed %d)\n", len(out), seed)
	}
	return 0
}
