package scaffold

import (
	"strings"

	"github.com/rn-labs/rninject/internal/catalog"
)

// Assemble concatenates the import block and one doc+implementation block per
// capability, in the order given. Identical inputs produce identical output.
//
// Layout:
//
//	<statement 1>
//	...
//	<statement n>
//
//	<doc 1>
//	<impl 1>
//
//	<doc 2>
//	<impl 2>
func Assemble(caps []*catalog.Capability, statements []string) string {
	blocks := make([]string, 0, len(caps))
	for _, c := range caps {
		blocks = append(blocks, c.Doc.Text+"\n"+c.Implementation)
	}

	var b strings.Builder
	b.WriteString(strings.Join(statements, "\n"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
	return b.String()
}
