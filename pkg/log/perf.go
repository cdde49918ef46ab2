package log

import (
	"fmt"
	"io"
	"log"
)

func init() {
	perf = log.New(io.Discard, perfLabel+" ", log.LstdFlags|log.Lshortfile|log.Lmicroseconds)
}

var perf *log.Logger

// Perf prints to the performance logger.
// Arguments are handled in the manner of fmt.Print.
func Perf(v ...interface{}) {
	_ = perf.Output(2, fmt.Sprint(v...))
}

// Perff prints to the performance logger.
// Arguments are handled in the manner of fmt.Printf.
func Perff(format string, v ...interface{}) {
	_ = perf.Output(2, fmt.Sprintf(format, v...))
}

// Perfln prints to the performance logger.
// Arguments are handled in the manner of fmt.Println.
func Perfln(v ...interface{}) {
	_ = perf.Output(2, fmt.Sprintln(v...))
}

// SetPerfOutput sets the output destination for the performance logger.
func SetPerfOutput(out io.Writer) {
	perf.SetOutput(out)
}
