package parser

import (
	"time"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/ast"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
)

// Parse the source buffer into a program.
func Parse(src []byte, opts Options) (*ast.ProgramNode, error) {
	defer parseDuration.DeferRecord(time.Now())

	prog, err := NewAstBuilder(scanner.NewBufferStream(src), opts).ParseProgram()
	if err != nil {
		parseErrorRatio.Hit()
		errorReasons.HitAndAdd(ErrorReason(err).String())
		return nil, err
	}
	parseErrorRatio.Miss()
	nodeCount.Record(int64(ast.Count(prog)))
	return prog, nil
}
