package logging

import (
	"log"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf("[debug] "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		log.Println(append([]interface{}{"[debug]"}, args...)...)
	}
}

// Infof logs an informational message
func Infof(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// Errorf logs an error message
func Errorf(format string, args ...interface{}) {
	log.Printf("[error] "+format, args...)
}
