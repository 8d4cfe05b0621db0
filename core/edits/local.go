// core/edits/local.go
package edits

// Window returns the slice of reference x that an edit sequence anchored at
// anchor spans: x[anchor : anchor+count(M)+count(I)].
func Window(x string, anchor int, ops string) (string, error) {
	c, err := CountOps(ops)
	if err != nil {
		return "", err
	}
	width := c.LenB()
	if anchor < 0 || anchor > len(x) || width > len(x)-anchor {
		return "", &AnchorOutOfRangeError{Anchor: anchor, Width: width, RefLen: len(x)}
	}
	return x[anchor : anchor+width], nil
}

// LocalAlign aligns p against the window of x starting at anchor that ops
// covers. ops was computed against that window only, so the rest of x takes
// no part in the alignment.
//
//	LocalAlign("ACCACAGTCATA", "GTACAGAGTACAAA", 2, "MDMMMMMMIMMMM")
//	  → {"ACCACAGT-CATA", "A-CAGAGTACAAA"}
func LocalAlign(p, x string, anchor int, ops string) (Alignment, error) {
	w, err := Window(x, anchor, ops)
	if err != nil {
		return Alignment{}, err
	}
	return Reconstruct(p, w, ops)
}
