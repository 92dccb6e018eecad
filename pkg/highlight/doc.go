// Package highlight manages clickable link spans inside a plain-text label.
//
// A [Controller] is bound to one label. The label sets the base text, then
// registers spans either by substring or by explicit rune range:
//
//	c := highlight.New(layout)
//	c.SetText("Read the Terms and Privacy Policy")
//	c.AddSpanBySubstring("Terms", highlight.Link{OnTap: openTerms})
//	c.AddSpanBySubstring("Privacy Policy", highlight.Link{
//	    NormalColor: graphics.ColorLink,
//	    ActiveColor: graphics.ColorLinkPressed,
//	    OnTap:       openPrivacy,
//	})
//	c.OnPlainTap = dismiss
//
// Pointer events in label-local coordinates are fed to [Controller.HandlePointer].
// A press that starts on a span turns that span Pressed (it paints with its
// active color) and fires its callback on release; a press that starts on
// plain text fires OnPlainTap on release. Cancelled presses fire nothing.
//
// Ranges are offsets into one specific string. Changing the text requires
// [Controller.ClearSpans] first, and the controller never watches layout:
// the label calls [Controller.RefreshAccessibilityGeometry] after anything
// that moves or reflows it.
//
// A Controller is not safe for concurrent use; drive it from the UI thread.
package highlight
