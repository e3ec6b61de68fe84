package cc

// Contour is a level curve of the bilinearly interpolated surface: either a
// regular contour threading a grid corner, or a saddle contour sitting at
// the saddle point of a saddle cell's bilinear patch.
type Contour struct {
	P      DPoint // location in the plane
	Lvl    float32
	parent int32 // -1 marks a root
}

// ContourArena owns every contour of an image: one slot per regular grid
// corner, plus one dual-grid slot per cell for its (possibly unused)
// saddle contour. Identity is tracked with a path-compressing union-find
// forest, exactly as regions merge across unit-rectangle boundaries.
type ContourArena struct {
	contours []Contour
	w, h     int
}

const noParent = -1

// NewContourArena allocates the arena for a w x h sample grid and fills in
// every regular contour's level from samples (row-major, w samples per
// row). Saddle slots are left zero (Lvl is overwritten, P.X < 0 marks an
// unused slot) until createSaddle is called for the owning cell.
func NewContourArena(samples []float32, w, h int) *ContourArena {
	a := &ContourArena{
		contours: make([]Contour, w*2*h),
		w:        w,
		h:        h,
	}
	for i := range a.contours {
		a.contours[i].parent = noParent
		a.contours[i].P.X = -1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := a.Idx(Pos{X: int16(x), Y: int16(y)})
			a.contours[i].P = DPoint{X: float64(x), Y: float64(y)}
			a.contours[i].Lvl = samples[y*w+x]
		}
	}
	return a
}

// Idx returns the arena slot for the regular contour at grid corner p.
func (a *ContourArena) Idx(p Pos) int {
	return int(p.Y)*a.w + int(p.X)
}

// SaddleIdx returns the arena slot for the saddle contour of the cell whose
// top-left corner is (x, y).
func (a *ContourArena) SaddleIdx(x, y int) int {
	return (y+a.h)*a.w + x
}

// At returns the contour stored at slot i.
func (a *ContourArena) At(i int) *Contour {
	return &a.contours[i]
}

// Len returns the number of contour slots in the arena, regular and saddle
// alike.
func (a *ContourArena) Len() int {
	return len(a.contours)
}

// Root finds the canonical contour slot for i, compressing the path.
func (a *ContourArena) Root(i int) int {
	root := i
	for a.contours[root].parent != noParent {
		root = int(a.contours[root].parent)
	}
	for a.contours[i].parent != noParent {
		next := int(a.contours[i].parent)
		a.contours[i].parent = int32(root)
		i = next
	}
	return root
}

// Merge unifies the contours rooted at i and j; a no-op if already unified.
func (a *ContourArena) Merge(i, j int) {
	ri, rj := a.Root(i), a.Root(j)
	if ri != rj {
		a.contours[rj].parent = int32(ri)
	}
}

// createSaddle allocates the dual-cell saddle contour of the cell whose
// top-left corner is p, given its four corner levels in clockwise order
// starting at the top-left (tl, tr, br, bl). It returns the dual-grid Pos
// identifying the saddle (for use with Idx).
func (a *ContourArena) createSaddle(p Pos, lvl [4]float32) Pos {
	i := a.SaddleIdx(int(p.X), int(p.Y))
	num := lvl[0]*lvl[2] - lvl[1]*lvl[3]
	denom := (lvl[0] + lvl[2]) - (lvl[1] + lvl[3])

	c := &a.contours[i]
	c.P.X = float64(p.X) + float64((lvl[0]-lvl[1])/denom)
	c.P.Y = float64(p.Y) + float64((lvl[0]-lvl[3])/denom)
	c.Lvl = num / denom
	c.parent = noParent
	return Pos{X: p.X, Y: p.Y + int16(a.h)}
}

// mmeBR returns the bottom-right corner of the monotone mesh element whose
// top-left representative is p: the geometric extent of an MME rooted at a
// saddle cell may stop short of the unit square, so this looks up the
// cell's saddle point (if any) rather than always returning p+(1,1).
func (a *ContourArena) mmeBR(p DPoint) DPoint {
	x, y := int(p.X), int(p.Y)
	q := a.contours[a.SaddleIdx(x, y)].P
	unused := q.X < 0
	if unused || p.X == q.X {
		q.X = float64(x + 1)
	}
	if unused || p.Y == q.Y {
		q.Y = float64(y + 1)
	}
	return q
}
