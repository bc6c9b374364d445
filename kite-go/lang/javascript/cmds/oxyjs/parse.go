package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/ast"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/parser"
	"github.com/kiteco/oxyjs/kite-golib/errors"
	"github.com/kiteco/oxyjs/kite-golib/kitelog"
	"github.com/kiteco/oxyjs/kite-golib/status"
	"github.com/montanaflynn/stats"
)

type parseArgs struct {
	File       string `arg:"positional" help:"file to parse, stdin if omitted"`
	Repeat     int    `help:"parse the same source repeatedly (for performance)"`
	Print      bool   `help:"print the syntax tree"`
	Positions  bool   `help:"include byte offsets when printing"`
	Dump       bool   `help:"print the tree in compact bracketed form"`
	Time       bool   `help:"print parse time statistics"`
	Trace      bool   `help:"trace productions and tokens (default from OXYJS_TRACE)"`
	MaxDepth   int    `help:"maximum nesting of statements and expressions, 0 for none"`
	Status     bool   `help:"print parser and scanner metrics"`
	StatusJSON bool   `arg:"--statusjson" help:"print parser and scanner metrics as JSON"`
	Profile    string `help:"filename to write cpu profile"`
}

func (a *parseArgs) Validate() error {
	if a.Repeat < 1 {
		return errors.New("--repeat must be at least 1")
	}
	return nil
}

func (a *parseArgs) Handle() (err error) {
	logger := kitelog.New(os.Stderr, "parse").WithDurations()

	if a.Profile != "" {
		if !strings.HasSuffix(a.Profile, ".prof") {
			a.Profile = a.Profile + ".prof"
		}
		var f *os.File
		if f, err = os.Create(a.Profile); err != nil {
			return errors.Wrapf(err, "error creating profile %s", a.Profile)
		}
		defer errors.Defer(&err, f.Close)
		if err = pprof.StartCPUProfile(f); err != nil {
			return errors.Wrapf(err, "error starting cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	var src []byte
	var name string
	err = logger.Durations.Time("read", func() error {
		var err error
		src, name, err = readSource(a.File)
		return err
	})
	if err != nil {
		return err
	}
	if a.Time {
		logger.Printf("read %s from %s", humanize.Bytes(uint64(len(src))), name)
	}

	opts := parser.DefaultOptions
	opts.Trace = a.Trace
	opts.TraceWriter = os.Stdout
	opts.MaxDepth = a.MaxDepth

	var prog *ast.ProgramNode
	var times []float64
	err = logger.Durations.Time("parse", func() error {
		for i := 0; i < a.Repeat; i++ {
			begin := time.Now()
			var err error
			if prog, err = parser.Parse(src, opts); err != nil {
				return locate(name, src, err)
			}
			times = append(times, float64(time.Since(begin)))
		}
		return nil
	})
	if err != nil {
		return err
	}

	switch {
	case a.Positions:
		ast.PrintPositions(prog, src, os.Stdout, "  ")
	case a.Print:
		ast.Print(prog, src, os.Stdout, "  ")
	}
	if a.Dump {
		fmt.Println(ast.Dump(prog, src))
	}

	if a.Time {
		printTimes(os.Stdout, times)
		logger.Durations.Flush(logger)
	}
	if a.Status {
		if err = status.Get().Render(os.Stdout); err != nil {
			return err
		}
	}
	if a.StatusJSON {
		return writeStatusJSON(os.Stdout)
	}
	return nil
}

func writeStatusJSON(w io.Writer) error {
	buf, err := json.MarshalIndent(status.Get(), "", "  ")
	if err != nil {
		return errors.Wrapf(err, "error encoding status")
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}

func printTimes(w io.Writer, times []float64) {
	fmt.Fprintf(w, "Parse time over %d runs:\n", len(times))
	f, _ := stats.Median(times)
	fmt.Fprintf(w, "  Median: %v\n", time.Duration(f))
	f, _ = stats.Mean(times)
	fmt.Fprintf(w, "  Mean: %v\n", time.Duration(f))
	if len(times) > 1 {
		f, _ = stats.StdDevS(times)
		fmt.Fprintf(w, "  StdDev: %v\n", time.Duration(f))
	}
	f, _ = stats.Min(times)
	fmt.Fprintf(w, "  Min: %v\n", time.Duration(f))
	f, _ = stats.Max(times)
	fmt.Fprintf(w, "  Max: %v\n", time.Duration(f))
}
