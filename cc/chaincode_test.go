package cc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertWordOrdersByLevel(t *testing.T) {
	contours := NewContourArena([]float32{0, 1, 2, 5}, 2, 2)
	continua := NewContinuumArena()

	lo := contours.Idx(Pos{X: 0, Y: 0}) // lvl 0
	hi := contours.Idx(Pos{X: 1, Y: 1}) // lvl 5
	mid := contours.Idx(Pos{X: 1, Y: 0}) // lvl 1

	word := Word{int32(lo), 0, int32(hi)}

	got, inserted := insertWord(contours, continua, word, 0, 99, int32(mid))
	assert.True(t, inserted)
	assert.Equal(t, Word{int32(lo), 0, int32(mid), 99, int32(hi)}, got)
}

func TestInsertWordNoopWhenAlreadyPresent(t *testing.T) {
	contours := NewContourArena([]float32{0, 1, 2, 5}, 2, 2)
	continua := NewContinuumArena()

	lo := contours.Idx(Pos{X: 0, Y: 0})
	hi := contours.Idx(Pos{X: 1, Y: 1})

	word := Word{int32(lo), 0, int32(hi)}
	got, inserted := insertWord(contours, continua, word, 0, 0, int32(hi))
	assert.False(t, inserted)
	assert.Equal(t, word, got)
}
