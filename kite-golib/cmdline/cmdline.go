package cmdline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"
	"github.com/kiteco/oxyjs/kite-golib/errors"
)

// ErrHelp is returned by Dispatch after it has written usage or help text.
var ErrHelp = errors.New("help requested")

// Command represents an action that can be run from the command line
type Command struct {
	Name     string
	Synopsis string
	Args     Handler
}

// Handler represents a function that gets called for an action
type Handler interface {
	Handle() error
}

// Validator is the interface for custom validation of command line arguments
type Validator interface {
	Validate() error
}

func prog() string {
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "program"
}

func writeUsage(w io.Writer, cmds ...Command) {
	fmt.Fprintf(w, "Usage: %s COMMAND [ARGS]\n", prog())
	fmt.Fprintf(w, "Command can be one of:\n")
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-20s %s\n", cmd.Name, cmd.Synopsis)
	}
	fmt.Fprintf(w, "  %-20s %s\n", "help", "display this help and exit")
	fmt.Fprintf(w, "  %-20s %s\n", "help COMMAND", "display help for command and exit")
}

func find(name string, cmds []Command) (Command, bool) {
	for _, c := range cmds {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Dispatch parses args (without the program name) into the matching command
// and runs its handler. Usage and help go to w.
func Dispatch(w io.Writer, args []string, cmds ...Command) error {
	if len(args) < 1 {
		writeUsage(w, cmds...)
		return errors.New("no command provided")
	}

	var help bool
	action := args[0]
	if action == "help" {
		if len(args) < 2 {
			writeUsage(w, cmds...)
			return ErrHelp
		}
		help = true
		action = args[1]
	}

	cmd, ok := find(action, cmds)
	if !ok {
		writeUsage(w, cmds...)
		return errors.Errorf("unknown command %s", action)
	}

	parser, err := arg.NewParser(arg.Config{Program: prog() + " " + action}, cmd.Args)
	if err != nil {
		return errors.Wrapf(err, "bad arguments struct for %s", action)
	}

	if help {
		parser.WriteHelp(w)
		return ErrHelp
	}

	if err := parser.Parse(args[1:]); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(w)
			return ErrHelp
		}
		parser.WriteUsage(w)
		return err
	}

	if v, ok := cmd.Args.(Validator); ok {
		if err := v.Validate(); err != nil {
			parser.WriteUsage(w)
			return err
		}
	}

	return cmd.Args.Handle()
}

// MustDispatch dispatches one of the commands using os.Args, and exits with
// status 1 if the command fails
func MustDispatch(cmds ...Command) {
	err := Dispatch(os.Stdout, os.Args[1:], cmds...)
	switch {
	case err == ErrHelp:
		os.Exit(0)
	case err != nil:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
