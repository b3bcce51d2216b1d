// Package monitoring carries the diagnostic log shared by the engine, the
// game and the soak tool.
package monitoring

import "log"

// Logf writes one diagnostic line. The engine only calls it on construction
// and reset, never per tick.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger routes Logf to f. A nil f drops every line, which is what the
// test binaries and a quiet trafficsim run use.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
