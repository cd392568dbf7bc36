package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/eqsolve"
)

type config struct {
	in       string
	verb     string
	prec     uint
	jobs     int
	maxDepth int
	echo     bool
	legacy   bool
	noColor  bool
}

func main() {
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "eqsolve [equation...]",
		Short: "Solve arithmetic equations",
		Long: `Solve arithmetic equations using + - * / ^ and parentheses.

Each argument is one equation. With no arguments, or with --in, equations are
read one per line. A failed equation is reported without stopping the rest.

Examples:
  eqsolve '-1(10+5^2)((5*-2)+9-3^3)/2'
  eqsolve -p 256 --fmt '%.60f' '2^0.5'
  eqsolve --in equations.txt --echo`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.in, "in", "", "input file, one equation per line (default stdin if no args given)")
	f.StringVar(&cfg.verb, "fmt", "%g", "result formatting string")
	f.UintVarP(&cfg.prec, "prec", "p", 64, "precision of calculations in bits")
	f.IntVarP(&cfg.jobs, "jobs", "j", 0, "equations to solve at once (default GOMAXPROCS)")
	f.IntVar(&cfg.maxDepth, "max-depth", eqsolve.DefaultMaxDepth, "maximum nesting depth of parentheses")
	f.BoolVar(&cfg.echo, "echo", false, "print parse trees")
	f.BoolVar(&cfg.legacy, "legacy-parens", false, "close unclosed parentheses at the end of input")
	f.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, cfg *config, args []string) error {
	if cfg.noColor {
		color.NoColor = true
	}
	if cfg.prec == 0 {
		return errors.New("precision must be positive")
	}
	if cfg.maxDepth <= 0 {
		return fmt.Errorf("max depth (%d) must be positive", cfg.maxDepth)
	}
	srcs, err := inputs(cfg.in, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return err
	}
	srcs = append(srcs, args...)

	opts := []eqsolve.ParseOption{eqsolve.MaxDepth(cfg.maxDepth)}
	if cfg.legacy {
		opts = append(opts, eqsolve.CloseAtEOF())
	}
	base := eqsolve.NewContext(eqsolve.Prec(cfg.prec))
	// Equations finished before an interrupt are still reported.
	results, err := eqsolve.SolveAll(cmd.Context(), base, srcs, cfg.jobs, opts...)

	out := cmd.OutOrStdout()
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	verb := cfg.verb + "\n"
	failed := 0
	for _, r := range results {
		if cfg.echo && r.Tree != nil {
			fmt.Fprintf(out, "%v : ", r.Tree)
		}
		if r.Err != nil {
			failed++
			bad.Fprintf(out, "%s: %v\n", r.Src, r.Err)
			continue
		}
		good.Fprintf(out, verb, r.Value)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d equations failed", failed, len(results))
	}
	return nil
}

// inputs reads equations from the named file, or from stdin if the name is
// "-" or if it is empty and std is true. Blank lines are skipped.
func inputs(inname string, std bool, stdin io.Reader) ([]string, error) {
	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	case inname == "-", std:
		in = stdin
	default:
		return nil, nil
	}
	var srcs []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, sc.Err()
}
