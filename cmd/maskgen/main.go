// Command maskgen generates password candidates from a mask template and
// estimates password entropy against a smartlist vocabulary. It is the
// external-collaborator orchestrator around the charset/wordlist/mask/
// generator/entropy/smartlist packages: flag parsing, file I/O, and the
// output sink live here, not in the core.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Go's runtime default-terminates the process on SIGPIPE for
	// fd 1/2 writes (e.g. `maskgen ?b?b?b?b | head`), which never gives
	// Generate a chance to see and swallow the EPIPE itself. Ignoring
	// the signal turns that write into an ordinary EPIPE error, which
	// the generator and CLI both already treat as graceful success
	// (spec.md §4.5, §6, §7).
	signal.Ignore(syscall.SIGPIPE)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
