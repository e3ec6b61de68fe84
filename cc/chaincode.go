package cc

import "github.com/arl/assertgo"

// Word is a chain code for one unit edge: an odd-length sequence alternating
// contour and continuum arena indices in ascending level order,
// contour, continuum, contour, continuum, ..., contour.
type Word []int32

// Side is the ordered sequence of unit-edge Words running along one side of
// a rectangle, in increasing coordinate order (left-to-right for the top
// and bottom sides, top-to-bottom for the left and right sides).
type Side []Word

// insertWord splices (iCont, iCtr) into word at the position dictated by
// iCtr's level, returning the updated word and whether a change was made.
// iCont/iCtr are expected to already be canonical (Root'd) indices; the cut
// is a no-op if iCtr is already present, since propagate may revisit the
// same unit edge from both sides of a merge.
func insertWord(contours *ContourArena, continua *ContinuumArena, word Word, iSplit, iCont, iCtr int32) (Word, bool) {
	assert.True(len(word)%2 == 1, "insertWord: chain-code word must have odd length")

	lvl := contours.At(int(iCtr)).Lvl
	for i := 0; i < len(word); i += 2 {
		if contours.Root(int(word[i])) == int(iCtr) {
			return word, false
		}
	}

	pos := len(word)
	for i := 0; i < len(word); i += 2 {
		if contours.At(int(word[i])).Lvl > lvl {
			pos = i
			break
		}
	}

	out := make(Word, 0, len(word)+2)
	out = append(out, word[:pos]...)
	out = append(out, iCtr, iCont)
	out = append(out, word[pos:]...)
	_ = iSplit
	return out, true
}
