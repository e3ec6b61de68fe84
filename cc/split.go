package cc

import "github.com/arl/assertgo"

// splitContinuum records that the continuum rooted at iSplit is cut by
// (iCont, iCtr): iSplit's current lower bound becomes iCtr, and the cut is
// threaded into every unit-edge chain-code word the continuum's MME
// sequence crosses between the merge junction and the point where it exits
// the pair of rectangles being merged.
//
// r1 and r2 are the two rectangles being merged along orientation o;
// splitIsR1 says which of them owns the continuum being split. mergedMME is
// the throwaway concatenation produced by mergeMME and junction the index
// of its first element contributed by the split continuum's own list.
func (cc *CC) splitContinuum(r1, r2 *Rect, o int, splitIsR1 bool, iSplit, iCont, iCtr int, mergedMME []DPoint, junction int) {
	cont := cc.Continua.At(iSplit)
	cont.InfCtr = int32(iCtr)

	curIsR1 := splitIsR1
	cur := r2
	if curIsR1 {
		cur = r1
	}

	perp := 1 - o
	for k := junction; k+1 < len(mergedMME); k++ {
		if int16(mergedMME[k].At(perp)) != int16(mergedMME[k+1].At(perp)) {
			applyCut(cc, cur, mergedMME[k], -1, int32(iCont), int32(iCtr))
			curIsR1 = !curIsR1
			if curIsR1 {
				cur = r1
			} else {
				cur = r2
			}
		}
	}

	skip := seamSide(curIsR1, o)
	ok := applyCut(cc, cur, mergedMME[len(mergedMME)-1], skip, int32(iCont), int32(iCtr))
	assert.True(ok, "splitContinuum: continuum's exit point not found on the merged rectangle frame")
}
