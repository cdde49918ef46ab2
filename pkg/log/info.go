package log

import (
	"fmt"
	"io"
	"log"
)

func init() {
	info = log.New(io.Discard, infoLabel+" ", log.LstdFlags)
}

var info *log.Logger

// Info prints to the info logger.
// Arguments are handled in the manner of fmt.Print.
func Info(v ...interface{}) {
	_ = info.Output(2, fmt.Sprint(v...))
}

// Infof prints to the info logger.
// Arguments are handled in the manner of fmt.Printf.
func Infof(format string, v ...interface{}) {
	_ = info.Output(2, fmt.Sprintf(format, v...))
}

// Infoln prints to the info logger.
// Arguments are handled in the manner of fmt.Println.
func Infoln(v ...interface{}) {
	_ = info.Output(2, fmt.Sprintln(v...))
}

// SetInfoOutput sets the output destination for the info logger.
func SetInfoOutput(out io.Writer) {
	info.SetOutput(out)
}
