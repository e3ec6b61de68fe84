package cc

import "github.com/arl/assertgo"

// mmeTouchesSeam reports whether the monotone mesh element whose top-left
// representative is p has its trailing edge lying exactly on the seam at
// sep along orientation o (0=vertical seam, testing the element's right
// edge; 1=horizontal seam, testing its bottom edge). It is used to decide
// which end of a continuum's MME polyline already sits on a boundary about
// to become interior.
func (cc *CC) mmeTouchesSeam(p DPoint, sep Pos, o int) bool {
	br := cc.Contours.mmeBR(p)
	if o == 0 {
		return int16(p.Y) == sep.Y && br.X == float64(sep.X)
	}
	return int16(p.X) == sep.X && br.Y == float64(sep.Y)
}

// mergeMME threads v1 and v2 into one polyline so that the edge at sep
// (orientation o) no longer terminates either one: whichever list has its
// free end on the seam is reversed first, so the seam becomes an interior
// point of the concatenation. It returns the new slice and the index of its
// first element contributed by v2 (the junction used to walk the merge for
// splitting).
//
// Unlike the reference implementation's merge_mme, this never mutates v1 or
// v2 in place: for an equal-level merge the caller assigns the result back
// into the surviving continuum's MME; for a split, the result is a
// throwaway view used only to locate crossings.
func (cc *CC) mergeMME(v1, v2 []DPoint, sep Pos, o int) ([]DPoint, int) {
	assert.True(len(v1) > 0 && len(v2) > 0, "mergeMME: empty MME list")

	a := append([]DPoint(nil), v1...)
	b := append([]DPoint(nil), v2...)
	if cc.mmeTouchesSeam(a[0], sep, o) {
		reverseDPoints(a)
	}
	if cc.mmeTouchesSeam(b[len(b)-1], sep, o) {
		reverseDPoints(b)
	}

	junction := len(a)
	merged := append(a, b...)
	return merged, junction
}
