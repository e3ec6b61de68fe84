package cc

import (
	"sort"

	"github.com/arl/math32"
)

// newUnitRect builds the Rect for the cell whose top-left corner is p, given
// its four corner levels in clockwise order starting at the top-left
// (lvl[0]=tl, lvl[1]=tr, lvl[2]=br, lvl[3]=bl).
func newUnitRect(cc *CC, p Pos, lvl [4]float32) *Rect {
	tl := p
	br := Pos{X: p.X + 1, Y: p.Y + 1}
	v := [4]Pos{tl, {X: br.X, Y: tl.Y}, br, {X: tl.X, Y: br.Y}}

	rank := [4]int{0, 1, 2, 3}
	sort.SliceStable(rank[:], func(i, j int) bool { return lvl[rank[i]] < lvl[rank[j]] })

	// A diagonal pair holds the two lowest (or two highest) levels exactly
	// when the low pair and the high pair are each a diagonal of the
	// square: that happens iff rank[0] and rank[1] are themselves
	// diagonally opposite corners.
	if (rank[0]+rank[1])%2 == 0 {
		if lvl[rank[1]] < lvl[rank[2]] {
			return newSaddleRect(cc, p, tl, br, v, lvl, rank)
		}
		// Non-saddle diagonal-minimum case: the two lowest levels are a
		// diagonal pair but don't bracket a true saddle; treat the cell as
		// regular by un-diagonalizing the rank order.
		rank[1], rank[2] = rank[2], rank[1]
	}

	return newRegularRect(cc, tl, br, v, lvl, rank)
}

func newSaddleRect(cc *CC, p, tl, br Pos, v [4]Pos, lvl [4]float32, rank [4]int) *Rect {
	saddlePos := cc.Contours.createSaddle(p, lvl)
	saddleIdx := cc.Contours.Idx(saddlePos)
	saddleP := cc.Contours.At(saddleIdx).P

	vo := [4]Pos{v[rank[0]], v[rank[1]], v[rank[2]], v[rank[3]]}
	var ctrIdx [4]int32
	var contIdx [4]int32
	for i, q := range vo {
		ci := cc.Contours.Idx(q)
		ctrIdx[i] = int32(ci)
		mme := minDPoint(q.DPoint(), saddleP)
		if i < 2 { // low pair: corner is the inf bound, saddle the sup bound
			contIdx[i] = int32(cc.Continua.Create(cc.Contours, ci, saddleIdx, mme))
		} else { // high pair: saddle is the inf bound, corner the sup bound
			contIdx[i] = int32(cc.Continua.Create(cc.Contours, saddleIdx, ci, mme))
		}
	}

	rect := &Rect{TL: tl, BR: br}
	for i := 0; i <= 1; i++ {
		for j := 2; j <= 3; j++ {
			eid := edgeID(rank[i], rank[j])
			rect.Chain[eid] = Side{Word{
				ctrIdx[i], contIdx[i],
				int32(saddleIdx),
				contIdx[j], ctrIdx[j],
			}}
		}
	}
	return rect
}

func newRegularRect(cc *CC, tl, br Pos, v [4]Pos, lvl [4]float32, rank [4]int) *Rect {
	vo := [4]Pos{v[rank[0]], v[rank[1]], v[rank[2]], v[rank[3]]}
	dtl := tl.DPoint()
	idx := func(i int) int32 { return int32(cc.Contours.Idx(vo[i])) }

	var c0, c1, c2 int32 = -1, -1, -1

	eMin := edgeID(rank[0], rank[1])
	wMin := Word{idx(0)}
	if math32.Approx(lvl[rank[0]], lvl[rank[1]]) {
		cc.Contours.Merge(cc.Contours.Idx(vo[0]), cc.Contours.Idx(vo[1]))
	} else {
		c0 = int32(cc.Continua.Create(cc.Contours, cc.Contours.Idx(vo[0]), cc.Contours.Idx(vo[1]), dtl))
		wMin = append(wMin, c0, idx(1))
	}

	eMax := edgeID(rank[2], rank[3])
	wMax := Word{idx(2)}
	if math32.Approx(lvl[rank[2]], lvl[rank[3]]) {
		cc.Contours.Merge(cc.Contours.Idx(vo[2]), cc.Contours.Idx(vo[3]))
	} else {
		c1 = int32(cc.Continua.Create(cc.Contours, cc.Contours.Idx(vo[2]), cc.Contours.Idx(vo[3]), dtl))
		wMax = append(wMax, c1, idx(3))
	}

	rect := &Rect{TL: tl, BR: br}
	rect.Chain[eMin] = Side{wMin}
	rect.Chain[eMax] = Side{wMax}

	if (rank[1]+rank[2])%2 != 0 {
		// rank[1] and rank[2] are adjacent corners of the square.
		eInt := edgeID(rank[1], rank[2])
		wInt := Word{idx(1)}
		if math32.Approx(lvl[rank[1]], lvl[rank[2]]) {
			cc.Contours.Merge(cc.Contours.Idx(vo[1]), cc.Contours.Idx(vo[2]))
		} else {
			c2 = int32(cc.Continua.Create(cc.Contours, cc.Contours.Idx(vo[1]), cc.Contours.Idx(vo[2]), dtl))
			wInt = append(wInt, c2, idx(2))
		}
		rect.Chain[eInt] = Side{wInt}

		eMM := (eInt + 2) % 4
		wMM := Word{idx(0)}
		if c0 >= 0 {
			wMM = append(wMM, c0, idx(1))
		}
		if c2 >= 0 {
			wMM = append(wMM, c2, idx(2))
		}
		if c1 >= 0 {
			wMM = append(wMM, c1, idx(3))
		}
		rect.Chain[eMM] = Side{wMM}
		return rect
	}

	// rank[1] and rank[2] are diagonally opposite: the middle levels don't
	// share a unit edge directly, so both cross-diagonal sides need to be
	// assembled from whichever of the corner-pair continua exist.
	if math32.Approx(lvl[rank[1]], lvl[rank[2]]) {
		cc.Contours.Merge(cc.Contours.Idx(vo[1]), cc.Contours.Idx(vo[2]))
	} else {
		c2 = int32(cc.Continua.Create(cc.Contours, cc.Contours.Idx(vo[1]), cc.Contours.Idx(vo[2]), dtl))
	}

	e02 := edgeID(rank[0], rank[2])
	w02 := Word{idx(0)}
	if math32.Approx(lvl[rank[0]], lvl[rank[2]]) {
		cc.Contours.Merge(cc.Contours.Idx(vo[0]), cc.Contours.Idx(vo[2]))
	} else {
		if c0 >= 0 {
			w02 = append(w02, c0, idx(1))
		}
		if c2 >= 0 {
			w02 = append(w02, c2, idx(2))
		}
	}
	rect.Chain[e02] = Side{w02}

	e13 := (e02 + 2) % 4
	w13 := Word{idx(1)}
	if c2 >= 0 {
		w13 = append(w13, c2, idx(2))
	}
	if c1 >= 0 {
		w13 = append(w13, c1, idx(3))
	}
	rect.Chain[e13] = Side{w13}
	return rect
}
