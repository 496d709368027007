// Package fatal terminates the process when an ownership contract is
// violated. A violated invariant means the program is already operating
// on corrupted assumptions (double teardown, use after release), so there
// is no return path and no recovery: the process aborts.
//
// The package never panics. A no-panic build profile only needs to forbid
// the panic mechanism; it does not need to rewrite any logic here.
package fatal

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// abortFn is swapped out in tests; production code always aborts.
var abortFn = abort

// Violationf reports a contract violation through log and stderr, then
// terminates the process. It does not return.
func Violationf(log *zap.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if log != nil {
		log.Error("contract violation", zap.String("detail", msg))
		_ = log.Sync()
	}
	fmt.Fprintf(os.Stderr, "static-ptr: contract violation: %s\n", msg)
	abortFn()
}
