package cliapp

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/miner"
	"github.com/gspan-go/gspan/reader"
	"github.com/gspan-go/gspan/writer"
)

const usage = "Usage: gspan <minsup> [-dir] [-dfsc] [-v] [-config file.yaml]"

// Run parses argv (os.Args[1:]) and executes one mining pass, reading
// the transaction corpus from stdin and writing patterns to stdout.
// Diagnostics (verbose mode) go to stderr. Returns the process exit
// code: 1 for a missing/invalid minsup, a flag error, an unreadable or
// unparsable -config file, or a mining error; 0 otherwise (spec.md §6).
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) < 1 {
		fmt.Fprintln(stderr, usage)

		return 1
	}

	minsup, err := strconv.Atoi(argv[0])
	if err != nil || minsup <= 0 {
		fmt.Fprintln(stderr, usage)

		return 1
	}

	fs := flag.NewFlagSet("gspan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	directed := fs.Bool("dir", false, "treat edges as directed")
	dfscMode := fs.Bool("dfsc", false, "print patterns as DFS codes instead of transaction graphs")
	verbose := fs.Bool("v", false, "print diagnostics to stderr")
	configPath := fs.String("config", "", "optional YAML file overlaying -dir/-dfsc/-v defaults")
	if err := fs.Parse(argv[1:]); err != nil {
		return 1
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := Config{MinSup: minsup, Directed: *directed, DFSCode: *dfscMode, Verbose: *verbose}
	if *configPath != "" {
		if err := applyOverlay(&cfg, *configPath, explicit); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
	}

	return run(cfg, stdin, stdout, stderr)
}

func run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) int {
	if cfg.Directed {
		fmt.Fprintln(stdout, "#directed")
	} else {
		fmt.Fprintln(stdout, "#undirected")
	}

	var policyOpts []label.PolicyOption
	if cfg.Directed {
		policyOpts = append(policyOpts, label.WithDirected())
	}
	pol := label.New(policyOpts...)

	var readerOpts []reader.Option
	if cfg.Verbose {
		readerOpts = append(readerOpts, reader.WithDiagnostics(func(name string, err error) {
			fmt.Fprintf(stderr, "WARNING: transaction %s skipped: %v\n", name, err)
		}))
	}
	rd := reader.New(stdin, pol, readerOpts...)

	var corpus []*graph.Graph
	for {
		g, err := rd.Next()
		if err != nil {
			break
		}
		corpus = append(corpus, g)
	}

	if cfg.Verbose {
		fmt.Fprintf(stderr, "INFO: transactional graphs: %d created, %d skipped\n", len(corpus), rd.Skipped())
	}

	var writerOpts []writer.Option
	if cfg.DFSCode {
		writerOpts = append(writerOpts, writer.WithDFSCodeMode())
	}
	if cfg.Verbose {
		writerOpts = append(writerOpts, writer.WithVerbose())
	}
	w := writer.New(stdout, writerOpts...)

	err := miner.Mine(context.Background(), corpus, cfg.MinSup, pol, func(code dfscode.DFSCode, proj embedding.Projection) error {
		return w.Emit(code, proj, pol)
	})
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)

		return 1
	}

	return 0
}
