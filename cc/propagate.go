package cc

import "github.com/arl/assertgo"

// propagate walks two aligned unit-edge chain-code words by ascending
// level, merging contours and continua that meet exactly, and cutting
// whichever continuum is still open when the other side's boundary passes
// it by. word1 belongs to r1's side of the shared edge at sep (orientation
// o), word2 to r2's.
func propagate(cc *CC, r1, r2 *Rect, sep Pos, o int, word1, word2 Word) {
	assert.True(len(word1) > 0 && len(word2) > 0, "propagate: empty chain-code word")
	assert.True(cc.Contours.Root(int(word1[0])) == cc.Contours.Root(int(word2[0])),
		"propagate: aligned chain-code words must start on the same contour")

	if len(word1) == 1 {
		assert.True(len(word2) == 1, "propagate: chain-code word length mismatch")
		return
	}

	i1, i2 := 3, 3
	ic1, j1 := int(word1[1]), int(word1[2])
	ic2, j2 := int(word2[1]), int(word2[2])

	for {
		j1 = cc.Contours.Root(j1)
		j2 = cc.Contours.Root(j2)
		ic1 = cc.Continua.Root(ic1)
		ic2 = cc.Continua.Root(ic2)
		l1, l2 := cc.Contours.At(j1).Lvl, cc.Contours.At(j2).Lvl

		switch {
		case l1 == l2:
			if j1 != j2 {
				cc.Contours.Merge(j1, j2)
			}
			if ic1 != ic2 {
				merged, _ := cc.mergeMME(cc.Continua.At(ic1).MME, cc.Continua.At(ic2).MME, sep, o)
				cc.Continua.At(ic1).MME = merged
				cc.Continua.Absorb(ic1, ic2)
			}
		case l1 < l2:
			merged, junction := cc.mergeMME(cc.Continua.At(ic1).MME, cc.Continua.At(ic2).MME, sep, o)
			cc.splitContinuum(r1, r2, o, false, ic2, ic1, j1, merged, junction)
		default:
			merged, junction := cc.mergeMME(cc.Continua.At(ic2).MME, cc.Continua.At(ic1).MME, sep, o)
			cc.splitContinuum(r1, r2, o, true, ic1, ic2, j2, merged, junction)
		}

		advance1 := l1 <= l2 && i1 < len(word1)-1
		advance2 := l1 >= l2 && i2 < len(word2)-1
		if !advance1 && !advance2 {
			break
		}
		if advance1 {
			ic1 = int(word1[i1])
			j1 = int(word1[i1+1])
			i1 += 2
		}
		if advance2 {
			ic2 = int(word2[i2])
			j2 = int(word2[i2+1])
			i2 += 2
		}
	}
}
