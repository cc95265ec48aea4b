// Package uitest provides testing utilities for Bubble Tea TUI components.
//
// It combines a generic model adapter for models whose Update returns the
// concrete type, an ANSI style verifier for asserting on styled output, and
// standard terminal sizes:
//
//	func TestMyComponent(t *testing.T) {
//	    t.Parallel()
//	    uitest.SetupColorProfile()
//
//	    out := NewMyModel().View()
//
//	    verifier := uitest.NewANSIStyleVerifier(out)
//	    verifier.ContainsStyledText(t, "Hello", uitest.StyleExpectation{
//	        Bold: uitest.Ptr(true),
//	    })
//	}
package uitest
