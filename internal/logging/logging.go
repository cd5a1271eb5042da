// Package logging provides a minimal leveled logger for the library.
// Output goes to stderr; the default level is "warning".
package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var prefixes = map[Level]string{
	LevelDebug:   "D ",
	LevelInfo:    "I ",
	LevelWarning: "W ",
	LevelError:   "E ",
}

var (
	mu        sync.Mutex
	threshold = LevelWarning
	out       = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.LUTC)
)

// SetLevel sets the minimum level that is written to stderr.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	threshold = l
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", log.Ldate|log.Ltime|log.LUTC)
}

func emit(l Level, msg string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if l < threshold {
		return
	}
	out.Printf(prefixes[l]+msg, v...)
}

func Debug(msg string, v ...interface{}) {
	emit(LevelDebug, msg, v...)
}

func Info(msg string, v ...interface{}) {
	emit(LevelInfo, msg, v...)
}

func Warning(msg string, v ...interface{}) {
	emit(LevelWarning, msg, v...)
}

func Error(msg string, v ...interface{}) {
	emit(LevelError, msg, v...)
}
