package cmd

import (
	"fmt"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "a11y",
		Short: "List accessibility elements",
		Long: `List the accessibility element exposed for each link, with one
rectangle per line the link occupies.`,
		Usage: "highlight a11y",
		Run:   runA11y,
	})
}

func runA11y(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("a11y takes no arguments")
	}
	for _, n := range env.Label.Semantics().Nodes() {
		rects := make([]string, len(n.Rects))
		for i, r := range n.Rects {
			rects[i] = fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width(), r.Height())
		}
		fmt.Fprintf(env.Out, "%d %q link rects=%s\n", n.ID, n.Properties.Label, strings.Join(rects, " "))
	}
	return nil
}
