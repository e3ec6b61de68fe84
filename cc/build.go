package cc

import "github.com/arl/assertgo"

// CC is the full Contours & Continua decomposition of a w x h sample grid.
type CC struct {
	Contours *ContourArena
	Continua *ContinuumArena
	W, H     int
	Root     *Rect
}

// Build decomposes a w x h grid of samples (row-major, len(samples) ==
// w*h) into its contours and continua. ctx may be nil, in which case
// logging and timing are both disabled.
func Build(ctx *BuildContext, samples []float32, w, h int) *CC {
	if ctx == nil {
		ctx = NewBuildContext(false)
	}
	assert.True(w > 1 && h > 1, "Build: image must be at least 2x2")
	assert.True(len(samples) == w*h, "Build: len(samples) must equal w*h")

	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	cc := &CC{
		Contours: NewContourArena(samples, w, h),
		Continua: NewContinuumArena(),
		W:        w,
		H:        h,
	}

	ctx.StartTimer(TimerUnitRect)
	cols, rows := w-1, h-1
	rects := make([]*Rect, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := y*w + x
			lvl := [4]float32{samples[i], samples[i+1], samples[i+1+w], samples[i+w]}
			rects = append(rects, newUnitRect(cc, Pos{X: int16(x), Y: int16(y)}, lvl))
		}
	}
	ctx.StopTimer(TimerUnitRect)
	ctx.Progressf("built %d unit rectangles", len(rects))

	for cols > 1 || rows > 1 {
		ctx.StartTimer(TimerMergeH)
		if cols > 1 {
			rects = mergeRow(cc, rects, cols, rows)
			cols = (cols + 1) / 2
		}
		ctx.StopTimer(TimerMergeH)

		ctx.StartTimer(TimerMergeV)
		if rows > 1 {
			rects = mergeColumn(cc, rects, cols, rows)
			rows = (rows + 1) / 2
		}
		ctx.StopTimer(TimerMergeV)
	}

	assert.True(len(rects) == 1, "Build: recursion schedule must leave exactly one rectangle")
	cc.Root = rects[0]
	return cc
}
