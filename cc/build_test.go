package cc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFlatImageYieldsOneRootContour(t *testing.T) {
	samples := make([]float32, 4*4)
	cc := Build(nil, samples, 4, 4)

	assert.NotNil(t, cc.Root)
	assert.Equal(t, Pos{X: 0, Y: 0}, cc.Root.TL)
	assert.Equal(t, Pos{X: 3, Y: 3}, cc.Root.BR)

	corner := cc.Contours.Idx(Pos{X: 0, Y: 0})
	other := cc.Contours.Idx(Pos{X: 3, Y: 3})
	assert.Equal(t, cc.Contours.Root(corner), cc.Contours.Root(other),
		"a perfectly flat image has a single contour spanning the whole border")
}

func TestBuildMonotoneRampHasSingleContourPerLevel(t *testing.T) {
	w, h := 4, 3
	samples := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			samples[y*w+x] = float32(x)
		}
	}

	cc := Build(nil, samples, w, h)
	assert.NotNil(t, cc.Root)

	for y := 0; y < h; y++ {
		left := cc.Contours.Idx(Pos{X: 0, Y: int16(y)})
		left0 := cc.Contours.Idx(Pos{X: 0, Y: 0})
		assert.Equal(t, cc.Contours.Root(left0), cc.Contours.Root(left),
			"every row's leftmost column sits on the same x=0 contour")
	}
}

func TestBuildOddGridUsesUnpairedCarryOver(t *testing.T) {
	w, h := 4, 4 // 3x3 unit rectangles: odd in both directions
	samples := make([]float32, w*h)
	for i := range samples {
		samples[i] = float32(i)
	}

	ctx := NewBuildContext(true)
	cc := Build(ctx, samples, w, h)
	assert.NotNil(t, cc.Root)
	assert.Equal(t, Pos{X: 0, Y: 0}, cc.Root.TL)
	assert.Equal(t, Pos{X: 3, Y: 3}, cc.Root.BR)
	assert.True(t, ctx.LogCount() > 0, "a context with logging enabled should have recorded progress")
	assert.True(t, ctx.AccumulatedTime(TimerTotal) >= 0)
}

func TestBuildNilContextDoesNotPanic(t *testing.T) {
	samples := []float32{0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0}
	cc := Build(nil, samples, 4, 3)
	assert.NotNil(t, cc.Root)
}
