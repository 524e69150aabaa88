package logger

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders non-string values as a plain structural dump. Depth is
// bounded so cyclic or deeply nested host objects cannot flood the channel.
var dumper = &spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                6,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// renderValues joins one call's values into a single line. Strings pass
// through unchanged; everything else goes through the structural dump.
func renderValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch s := v.(type) {
		case string:
			parts = append(parts, s)
		default:
			parts = append(parts, strings.TrimRight(dumper.Sdump(v), "\n"))
		}
	}
	return strings.Join(parts, " ")
}
