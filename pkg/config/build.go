package config

import (
	"fmt"
	"log/slog"

	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/widgets"
)

// Build creates a label from a description. onTap receives the name of the
// tapped link, or "" for a tap on plain text; it may be nil. The label is
// placed at origin with the description's width and sized to fit its text.
func (l *Label) Build(origin graphics.Offset, onTap func(name string)) (*widgets.HighlightLabel, error) {
	label := widgets.NewHighlightLabel(nil, l.Text)
	label.SetColor(l.Color)
	label.SetFrame(graphics.RectFromOriginSize(origin, graphics.Size{Width: l.Width}))
	if l.Width == 0 {
		graphics.SetWidth(label, label.Layout().Size().Width)
	}
	label.SizeToFit()

	if onTap != nil {
		label.SetOnPlainTap(func() { onTap("") })
	}
	for _, link := range l.Links {
		style := link.Style
		if onTap != nil {
			name := link.Name
			style.OnTap = func() { onTap(name) }
		}
		if link.ByRange {
			if err := label.AddHighlightRange(link.Range, style); err != nil {
				return nil, fmt.Errorf("link %q: %w", link.Name, err)
			}
			slog.Debug("registered link", "name", link.Name, "range", link.Range.String())
			continue
		}
		n, err := label.AddHighlightText(link.Text, style)
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", link.Name, err)
		}
		slog.Debug("registered link", "name", link.Name, "text", link.Text, "matches", n)
	}
	return label, nil
}
