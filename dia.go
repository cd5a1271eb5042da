// Package dia implements the geometric core of a declarative 2D
// vector-diagram library.
//
// Diagrams are built from immutable value types: vectors, points, angles
// and affine transforms. Every operation returns a new value, so diagram
// fragments can safely be shared across composition sites and across
// goroutines without synchronization.
//
// The centerpiece is ScaleInvariant, a wrapper that makes a decoration
// (an arrowhead, a marker) follow the rotation and translation of its
// surrounding diagram while never inheriting scale. See scaleinv.go.
package dia

import (
	"strings"

	"github.com/arlet/dia/internal/logging"
)

// SetLogLevel sets the log level for all operations in this library.
// Accepted levels are "debug", "info", "warning" and "error".
// Any other value turns logging off.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
