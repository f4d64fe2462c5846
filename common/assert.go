package common

import (
	"fmt"
	"runtime"

	"github.com/devlights/gomy/output"
)

// SH_Assert panics with msg when condition is false and contract checking
// is compiled in. Without the check the caller is on its own.
func SH_Assert(condition bool, msg string) {
	if !EnableContractCheck {
		return
	}
	if !condition {
		if EnableDebug {
			RuntimeStack()
		}
		panic(fmt.Sprintf("contract violation: %s", msg))
	}
}

// REFERENCES
//   - https://pkg.go.dev/runtime#Stack
//   - https://stackoverflow.com/questions/19094099/how-to-dump-goroutine-stacktraces
func RuntimeStack() error {
	// channels
	var (
		chAll = make(chan []byte, 1)
	)

	// funcs
	var (
		getStack = func(all bool) []byte {
			// From src/runtime/debug/stack.go
			var (
				buf = make([]byte, 1024)
			)

			for {
				n := runtime.Stack(buf, all)
				if n < len(buf) {
					return buf[:n]
				}
				buf = make([]byte, 2*len(buf))
			}
		}
	)

	// all goroutin
	go func(ch chan<- []byte) {
		defer close(ch)
		ch <- getStack(true)
	}(chAll)

	// result of runtime.Stack(true)
	for v := range chAll {
		output.Stdoutl("=== stack-all   ", string(v))
	}

	return nil
}
