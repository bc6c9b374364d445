package parser

import "github.com/kiteco/oxyjs/kite-golib/status"

var (
	section = status.NewSection("lang/javascript (parser)")

	parseDuration   = section.SampleDuration("Parse duration")
	parseErrorRatio = section.Ratio("Parse errors")
	errorReasons    = section.Breakdown("Parse error reasons")
	nodeCount       = section.SampleInt64("Nodes per program")
)
