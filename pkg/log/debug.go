package log

import (
	"fmt"
	"io"
	"log"
)

func init() {
	debug = log.New(io.Discard, debugLabel+" ", log.LstdFlags|log.Lshortfile)
}

var debug *log.Logger

// Debug prints to the debug logger.
// Arguments are handled in the manner of fmt.Print.
func Debug(v ...interface{}) {
	_ = debug.Output(2, fmt.Sprint(v...))
}

// Debugf prints to the debug logger.
// Arguments are handled in the manner of fmt.Printf.
func Debugf(format string, v ...interface{}) {
	_ = debug.Output(2, fmt.Sprintf(format, v...))
}

// Debugln prints to the debug logger.
// Arguments are handled in the manner of fmt.Println.
func Debugln(v ...interface{}) {
	_ = debug.Output(2, fmt.Sprintln(v...))
}

// SetDebugOutput sets the output destination for the debug logger.
func SetDebugOutput(out io.Writer) {
	debug.SetOutput(out)
}
