// Strmetric computes string metrics from the command line and benchmarks
// the library over a corpus.
//
// Usage:
//
//	strmetric cardinality 'Password1!'
//	strmetric levenshtein kitten sitting --explain
//	strmetric jaro-winkler MARTHA MARHTA
//	strmetric entropy hello
//	strmetric bench --pairs 100000 --workers 8
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
