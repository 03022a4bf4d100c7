package export

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
)

// CSS emits one custom property per color per enabled format, grouped by
// format in declaration order:
//
//	/* HEX Colors */
//	--color-0-hex: #ff0000;
func CSS(hexes []string, formats codec.FormatSet) string {
	groups := make([]string, 0, formats.Len())
	for _, f := range formats.List() {
		var b strings.Builder
		fmt.Fprintf(&b, "/* %s Colors */\n", f)
		for i, hex := range hexes {
			fmt.Fprintf(&b, "--color-%d-%s: %s;\n", i, f.Lower(), codec.Render(hex, f))
		}
		groups = append(groups, b.String())
	}
	return strings.Join(groups, "\n")
}
