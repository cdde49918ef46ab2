package log

import (
	"fmt"
	"io"
	"log"
)

func init() {
	warn = log.New(io.Discard, warnLabel+" ", log.LstdFlags)
}

var warn *log.Logger

// Warn prints to the warning logger.
// Arguments are handled in the manner of fmt.Print.
func Warn(v ...interface{}) {
	_ = warn.Output(2, fmt.Sprint(v...))
}

// Warnf prints to the warning logger.
// Arguments are handled in the manner of fmt.Printf.
func Warnf(format string, v ...interface{}) {
	_ = warn.Output(2, fmt.Sprintf(format, v...))
}

// Warnln prints to the warning logger.
// Arguments are handled in the manner of fmt.Println.
func Warnln(v ...interface{}) {
	_ = warn.Output(2, fmt.Sprintln(v...))
}

// SetWarnOutput sets the output destination for the warning logger.
func SetWarnOutput(out io.Writer) {
	warn.SetOutput(out)
}
