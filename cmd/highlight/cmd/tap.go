package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pureui/highlight/pkg/gestures"
	"github.com/pureui/highlight/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tap",
		Short: "Simulate taps",
		Long: `Tap the label at each X,Y point (label-local coordinates) and print
which link, if any, fired.`,
		Usage: "highlight tap X,Y [X,Y...]",
		Run:   runTap,
	})
}

func runTap(env *Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("tap requires at least one X,Y point")
	}
	points := make([]graphics.Offset, 0, len(args))
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	origin := env.Label.Frame().Origin()
	for i, p := range points {
		global := p.Translate(origin.X, origin.Y)
		before := len(env.Taps)
		id := int64(i + 1)
		env.Label.HandlePointer(gestures.PointerEvent{PointerID: id, Position: global, Phase: gestures.PointerPhaseDown})
		env.Label.HandlePointer(gestures.PointerEvent{PointerID: id, Position: global, Phase: gestures.PointerPhaseUp})

		result := "(outside)"
		if len(env.Taps) > before {
			result = env.Taps[len(env.Taps)-1]
			if result == "" {
				result = "(plain text)"
			}
		}
		fmt.Fprintf(env.Out, "%g,%g -> %s\n", p.X, p.Y, result)
	}
	return nil
}

func parsePoint(s string) (graphics.Offset, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Offset{}, fmt.Errorf("point %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("point %q: %w", s, err)
	}
	return graphics.Offset{X: x, Y: y}, nil
}
