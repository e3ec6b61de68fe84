package cc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCC(samples []float32, w, h int) *CC {
	return &CC{
		Contours: NewContourArena(samples, w, h),
		Continua: NewContinuumArena(),
		W:        w,
		H:        h,
	}
}

func TestEdgeID(t *testing.T) {
	ttable := []struct {
		i, j, res int
	}{
		{0, 1, 0}, // top
		{1, 2, 1}, // right
		{2, 3, 2}, // bottom
		{3, 0, 3}, // left
		{0, 3, 3},
	}

	for _, tt := range ttable {
		got := edgeID(tt.i, tt.j)
		if got != tt.res {
			t.Fatalf("edgeID(%v,%v) = %v, want %v", tt.i, tt.j, got, tt.res)
		}
	}
}

func TestNewUnitRectRegularMonotone(t *testing.T) {
	cc := newTestCC([]float32{0, 1, 3, 2}, 2, 2)
	r := newUnitRect(cc, Pos{X: 0, Y: 0}, [4]float32{0, 1, 2, 3})

	for side := 0; side < 4; side++ {
		assert.Len(t, r.Chain[side], 1, "unit rectangle has exactly one word per side")
		assert.Equal(t, 1, len(r.Chain[side][0])%2, "chain-code words have odd length")
	}
}

func TestNewUnitRectSaddle(t *testing.T) {
	cc := newTestCC([]float32{0, 2, 2, 0}, 2, 2)
	r := newUnitRect(cc, Pos{X: 0, Y: 0}, [4]float32{0, 2, 0, 2})

	for side := 0; side < 4; side++ {
		assert.Len(t, r.Chain[side], 1, "saddle unit rectangle has exactly one word per side")
		assert.Len(t, r.Chain[side][0], 5, "a saddle word threads contour,cont,saddle,cont,contour")
	}

	saddleIdx := cc.Contours.SaddleIdx(0, 0)
	assert.Equal(t, int32(saddleIdx), r.Chain[0][0][2], "the saddle token sits at the middle of the word")
}
