package cmd

import (
	"fmt"
	"text/tabwriter"
)

func init() {
	RegisterCommand(&Command{
		Name:  "spans",
		Short: "List links and their ranges",
		Long: `List every registered link span in registration order.

Ranges are rune offsets into the label text. When spans overlap, the later
one wins taps.`,
		Usage: "highlight spans",
		Run:   runSpans,
	})
}

func runSpans(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("spans takes no arguments")
	}
	c := env.Label.Controller()
	runes := []rune(c.Text())
	fmt.Fprintf(env.Out, "Text: %q\n", c.Text())
	fmt.Fprintf(env.Out, "Frame: %v\n\n", env.Label.Frame())

	w := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tRANGE\tTEXT\tCOLOR\tACTIVE")
	for i, s := range c.Spans() {
		fmt.Fprintf(w, "%d\t%s\t%q\t%s\t%s\n", i, s.Range, string(runes[s.Range.Start:s.Range.End]),
			s.NormalColor.Or(env.Label.Color()), s.ActiveColor.Or(s.NormalColor.Or(env.Label.Color())))
	}
	return w.Flush()
}
