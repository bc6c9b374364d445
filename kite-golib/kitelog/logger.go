package kitelog

import (
	"fmt"
	"io"
	"log"

	"github.com/kiteco/oxyjs/kite-golib/envutil"
)

var (
	release = envutil.GetenvDefault("OXYJS_RELEASE", "dev")
	flags   = log.LstdFlags | log.Lshortfile | log.Lmicroseconds
)

// New creates a logger writing to w whose lines also name the component.
func New(w io.Writer, component string) *Logger {
	return &Logger{
		Default: log.New(w, fmt.Sprintf("[oxyjs release=%s component=%s] ", release, component), flags),
	}
}

// Logger encapsulates multiple logging handlers
type Logger struct {
	Default   *log.Logger
	Durations Durations
}

// Interface encapsulates the relevant methods of log.Logger
type Interface interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Printf implements Interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.Default.Output(2, fmt.Sprintf(format, v...))
}

// Println implements Interface
func (l *Logger) Println(v ...interface{}) {
	l.Default.Output(2, fmt.Sprintln(v...))
}
