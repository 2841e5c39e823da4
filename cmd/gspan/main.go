// Command gspan mines frequent connected subgraphs from a transaction
// database read from stdin (spec.md §6). Invoke as:
//
//	gspan <minsup> [-dir] [-dfsc] [-v] [-config file.yaml]
//
// or, to expose the same engine over HTTP instead of stdin/stdout:
//
//	gspan serve [-host 127.0.0.1] [-port 8080]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gspan-go/gspan/cliapp"
	"github.com/gspan-go/gspan/httpapi"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		os.Exit(runServe(os.Args[2:]))
	}

	os.Exit(cliapp.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runServe(argv []string) int {
	fs := flag.NewFlagSet("gspan serve", flag.ContinueOnError)
	host := fs.String("host", "127.0.0.1", "address to listen on")
	port := fs.Int("port", 8080, "port to listen on")
	if err := fs.Parse(argv); err != nil {
		return 1
	}

	svc := httpapi.NewService(*host, *port)
	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)

		return 1
	}

	return 0
}
