// Package testing simulates pointer input against views in tests.
//
// A Tester wraps anything with a HandlePointer method and sends it
// complete gestures, assigning a fresh pointer ID to each one:
//
//	func TestTermsLink(t *testing.T) {
//	    label := widgets.NewHighlightLabel(nil, "Read the Terms")
//	    ...
//	    tester := highlighttest.NewTester(label)
//	    if err := tester.Tap(highlighttest.ByLink("Terms")); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// Finders locate link elements through the target's accessibility tree, so
// tapping by link text exercises the same geometry a screen reader sees.
package testing
