package cc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinuumArenaCreate(t *testing.T) {
	contours := NewContourArena([]float32{0, 1, 2, 3}, 2, 2)
	continua := NewContinuumArena()

	tl := contours.Idx(Pos{X: 0, Y: 0})
	tr := contours.Idx(Pos{X: 1, Y: 0})
	i := continua.Create(contours, tl, tr, DPoint{X: 0, Y: 0})

	assert.Equal(t, i, continua.Root(i), "a fresh continuum is its own root")
	assert.Equal(t, int32(tl), continua.At(i).InfCtr, "InfCtr binds to the first contour argument")
	assert.Len(t, continua.At(i).MME, 1)
}

func TestContinuumArenaAbsorb(t *testing.T) {
	contours := NewContourArena([]float32{0, 1, 2, 3}, 2, 2)
	continua := NewContinuumArena()

	i := continua.Create(contours, 0, 1, DPoint{X: 0, Y: 0})
	j := continua.Create(contours, 2, 3, DPoint{X: 1, Y: 1})

	continua.Absorb(i, j)
	assert.Equal(t, continua.Root(i), continua.Root(j), "absorbed continua share a root")
	assert.Nil(t, continua.At(j).MME, "absorbed continuum no longer owns an MME list")
}
