package cc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPropagateMergesMultipleContinuaAcrossLevels exercises a chain-code
// word longer than a single (contour, continuum, contour) triple: each
// side of the seam offers its own chain of four contours and three
// continua at matching levels, so propagate must walk every intermediate
// pair and merge all of them, not just the first or the last. Both words
// start on the shared lowest contour, as propagate requires.
func TestPropagateMergesMultipleContinuaAcrossLevels(t *testing.T) {
	w, h := 4, 2
	samples := []float32{0, 1, 2, 3, 0, 1, 2, 3}
	contours := NewContourArena(samples, w, h)
	continua := NewContinuumArena()

	ctrA1 := contours.Idx(Pos{X: 0, Y: 0})
	ctrB1 := contours.Idx(Pos{X: 1, Y: 0})
	ctrC1 := contours.Idx(Pos{X: 2, Y: 0})
	ctrD1 := contours.Idx(Pos{X: 3, Y: 0})

	ctrA2 := contours.Idx(Pos{X: 0, Y: 1})
	ctrB2 := contours.Idx(Pos{X: 1, Y: 1})
	ctrC2 := contours.Idx(Pos{X: 2, Y: 1})
	ctrD2 := contours.Idx(Pos{X: 3, Y: 1})

	// The two words meet at a shared corner: their lowest contour is one.
	contours.Merge(ctrA1, ctrA2)

	contAB1 := continua.Create(contours, ctrA1, ctrB1, DPoint{X: 0, Y: 0})
	contBC1 := continua.Create(contours, ctrB1, ctrC1, DPoint{X: 1, Y: 0})
	contCD1 := continua.Create(contours, ctrC1, ctrD1, DPoint{X: 2, Y: 0})

	contAB2 := continua.Create(contours, ctrA2, ctrB2, DPoint{X: 0, Y: 1})
	contBC2 := continua.Create(contours, ctrB2, ctrC2, DPoint{X: 1, Y: 1})
	contCD2 := continua.Create(contours, ctrC2, ctrD2, DPoint{X: 2, Y: 1})

	word1 := Word{
		int32(ctrA1), int32(contAB1), int32(ctrB1), int32(contBC1),
		int32(ctrC1), int32(contCD1), int32(ctrD1),
	}
	word2 := Word{
		int32(ctrA2), int32(contAB2), int32(ctrB2), int32(contBC2),
		int32(ctrC2), int32(contCD2), int32(ctrD2),
	}

	cc := &CC{Contours: contours, Continua: continua, W: w, H: h}
	propagate(cc, &Rect{}, &Rect{}, Pos{X: 0, Y: 0}, 0, word1, word2)

	assert.Equal(t, contours.Root(ctrA1), contours.Root(ctrA2), "the shared lowest contour stays unified")
	assert.Equal(t, contours.Root(ctrB1), contours.Root(ctrB2), "matching middle contours must merge")
	assert.Equal(t, contours.Root(ctrC1), contours.Root(ctrC2), "matching middle contours must merge")
	assert.Equal(t, contours.Root(ctrD1), contours.Root(ctrD2),
		"matching highest contours must merge without an out-of-range read on the last pair")

	assert.Equal(t, continua.Root(contAB1), continua.Root(contAB2), "first continuum pair must merge")
	assert.Equal(t, continua.Root(contBC1), continua.Root(contBC2), "second continuum pair must merge")
	assert.Equal(t, continua.Root(contCD1), continua.Root(contCD2), "third continuum pair must merge")
}

// TestPropagateTrivialWordsDoNotMerge covers the length-1 short-circuit:
// two rectangles whose shared edge never crosses a contour share a single
// root contour and nothing to merge.
func TestPropagateTrivialWordsDoNotMerge(t *testing.T) {
	contours := NewContourArena([]float32{0, 0, 0, 0}, 2, 2)
	continua := NewContinuumArena()
	ctr := contours.Idx(Pos{X: 0, Y: 0})

	cc := &CC{Contours: contours, Continua: continua, W: 2, H: 2}
	word := Word{int32(ctr)}
	propagate(cc, &Rect{}, &Rect{}, Pos{X: 0, Y: 0}, 0, word, word)

	assert.Equal(t, ctr, contours.Root(ctr))
}
