package programs

import (
	"fmt"
	"strings"

	"github.com/aretw0/twoway/pkg/domain"
)

// Describe renders p as markdown: its description followed by the transition table.
func Describe(p domain.Program) string {
	var sb strings.Builder

	if p.Description != "" {
		sb.WriteString(strings.TrimSpace(p.Description))
	} else {
		fmt.Fprintf(&sb, "# %s\n\n%s", p.Name, p.Summary)
	}

	fmt.Fprintf(&sb, "\n\n## Transitions\n\nInitial state: `%s`, terminal state: `%s`.\n\n",
		p.Table.Initial(), p.Table.Terminal())
	sb.WriteString("| State | Read | Write | Move | Next |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range p.Table.Rules() {
		fmt.Fprintf(&sb, "| %s | `%s` | `%s` | %s | %s |\n", r.From, r.Read, r.Emit, r.Move, r.Next)
	}
	return sb.String()
}
