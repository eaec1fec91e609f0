package snapdragon

import (
	"fmt"
	"io"
	"os"
)

// warnWriter receives non-fatal diagnostics. Package-level so tests can
// capture output; everything else leaves it alone.
var warnWriter io.Writer = os.Stderr

// warnf prints a non-fatal diagnostic. Every failure mode in the engine
// degrades to a no-op plus one of these; nothing aborts the host.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(warnWriter, "[snapdragon] warning: "+format+"\n", args...)
}
