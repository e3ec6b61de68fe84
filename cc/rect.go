package cc

// Rect is a rectangular region of the grid together with the chain codes
// running along its four sides, in side order top(0), right(1), bottom(2),
// left(3).
type Rect struct {
	TL, BR Pos
	Chain  [4]Side
}

// edgeID returns which of the four sides of a unit square joins vertices i
// and j (given in the 0=tl,1=tr,2=br,3=bl clockwise corner numbering). i and
// j must name adjacent corners, never a diagonal pair.
func edgeID(i, j int) int {
	k := i
	if j < k {
		k = j
	}
	if k == 0 && (i == 3 || j == 3) {
		k = 3
	}
	return k
}

// seamSide returns the side index of the shared edge on whichever
// rectangle is playing the role indicated by isR1, along orientation o.
func seamSide(isR1 bool, o int) int {
	if o == 0 { // vertical seam: R1's right meets R2's left
		if isR1 {
			return 1
		}
		return 3
	}
	// horizontal seam: R1's bottom meets R2's top
	if isR1 {
		return 2
	}
	return 0
}

// frameSide locates which side of rectangle r the point p lies on, testing
// top, left, right, bottom in turn and skipping side `skip` (pass -1 to
// test every side). It returns the side and the zero-based unit-edge offset
// along it.
func frameSide(contours *ContourArena, r *Rect, p DPoint, skip int) (side, offset int, ok bool) {
	if skip != 0 && p.Y == float64(r.TL.Y) {
		return 0, int(p.X) - int(r.TL.X), true
	}
	if skip != 3 && p.X == float64(r.TL.X) {
		return 3, int(p.Y) - int(r.TL.Y), true
	}
	br := contours.mmeBR(p)
	if skip != 1 && br.X == float64(r.BR.X) {
		return 1, int(p.Y) - int(r.TL.Y), true
	}
	if skip != 2 && br.Y == float64(r.BR.Y) {
		return 2, int(p.X) - int(r.TL.X), true
	}
	return 0, 0, false
}

// applyCut inserts (iCont, iCtr) into the chain-code word at the unit edge
// of r's frame that p lies on (skipping side skip), returning whether a
// matching side was found and the insertion performed.
func applyCut(cc *CC, r *Rect, p DPoint, skip int, iCont, iCtr int32) bool {
	side, offset, ok := frameSide(cc.Contours, r, p, skip)
	if !ok {
		return false
	}
	word := r.Chain[side][offset]
	newWord, inserted := insertWord(cc.Contours, cc.Continua, word, 0, iCont, iCtr)
	if inserted {
		r.Chain[side][offset] = newWord
	}
	return inserted
}
