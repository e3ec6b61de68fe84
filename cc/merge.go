package cc

import "github.com/arl/assertgo"

// mergeRectangles merges two adjacent rectangles into the one spanning
// both, propagating contour and continuum identities across their shared
// edge. o selects the orientation: 0 if r2 is r1's right neighbor
// (horizontal merge), 1 if r2 is r1's bottom neighbor (vertical merge).
func (cc *CC) mergeRectangles(r1, r2 *Rect, o int) *Rect {
	if o == 0 {
		return cc.mergeHorizontal(r1, r2)
	}
	return cc.mergeVertical(r1, r2)
}

func (cc *CC) mergeHorizontal(r1, r2 *Rect) *Rect {
	assert.True(r1.BR.X == r2.TL.X && r1.TL.Y == r2.TL.Y, "mergeHorizontal: r2 must be r1's right neighbor")
	assert.True(r1.BR.Y == r2.BR.Y, "mergeHorizontal: mismatched rectangle height")
	assert.True(len(r1.Chain[1]) == len(r2.Chain[3]), "mergeHorizontal: mismatched shared-edge length")

	sep := r2.TL
	for i := range r1.Chain[1] {
		propagate(cc, r1, r2, sep, 0, r1.Chain[1][i], r2.Chain[3][i])
		sep.Y++
	}

	r := &Rect{TL: r1.TL, BR: r2.BR}
	r.Chain[0] = append(append(Side{}, r1.Chain[0]...), r2.Chain[0]...)
	r.Chain[2] = append(append(Side{}, r1.Chain[2]...), r2.Chain[2]...)
	r.Chain[3] = r1.Chain[3]
	r.Chain[1] = r2.Chain[1]
	return r
}

func (cc *CC) mergeVertical(r1, r2 *Rect) *Rect {
	assert.True(r1.BR.Y == r2.TL.Y && r1.TL.X == r2.TL.X, "mergeVertical: r2 must be r1's bottom neighbor")
	assert.True(r1.BR.X == r2.BR.X, "mergeVertical: mismatched rectangle width")
	assert.True(len(r1.Chain[2]) == len(r2.Chain[0]), "mergeVertical: mismatched shared-edge length")

	sep := r2.TL
	for i := range r1.Chain[2] {
		propagate(cc, r1, r2, sep, 1, r1.Chain[2][i], r2.Chain[0][i])
		sep.X++
	}

	r := &Rect{TL: r1.TL, BR: r2.BR}
	r.Chain[3] = append(append(Side{}, r1.Chain[3]...), r2.Chain[3]...)
	r.Chain[1] = append(append(Side{}, r1.Chain[1]...), r2.Chain[1]...)
	r.Chain[0] = r1.Chain[0]
	r.Chain[2] = r2.Chain[2]
	return r
}

// mergeRow merges horizontally adjacent pairs within each of rows rows of
// cols rectangles each (row-major), leaving an unpaired trailing rectangle
// untouched.
func mergeRow(cc *CC, rects []*Rect, cols, rows int) []*Rect {
	out := make([]*Rect, 0, rows*((cols+1)/2))
	for i := 0; i < rows; i++ {
		row := rects[i*cols : (i+1)*cols]
		for j := 0; j+1 < cols; j += 2 {
			out = append(out, cc.mergeRectangles(row[j], row[j+1], 0))
		}
		if cols%2 == 1 {
			out = append(out, row[cols-1])
		}
	}
	return out
}

// mergeColumn merges vertically adjacent pairs within each of cols columns
// of rows rectangles each (row-major), leaving an unpaired trailing
// rectangle untouched.
func mergeColumn(cc *CC, rects []*Rect, cols, rows int) []*Rect {
	newRows := (rows + 1) / 2
	out := make([]*Rect, cols*newRows)
	for j := 0; j < cols; j++ {
		for i := 0; i+1 < rows; i += 2 {
			out[(i/2)*cols+j] = cc.mergeRectangles(rects[i*cols+j], rects[(i+1)*cols+j], 1)
		}
		if rows%2 == 1 {
			out[(newRows-1)*cols+j] = rects[(rows-1)*cols+j]
		}
	}
	return out
}
