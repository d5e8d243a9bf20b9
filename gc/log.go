package gc

import (
	"fmt"
	"os"
)

// debugPrint writes a plain, unstructured diagnostic line to stderr, gated
// by a per-Heap flag rather than a process-wide build tag, since a program
// may run more than one Heap at a time.
func debugPrint(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gc: "+format+"\n", args...)
}
