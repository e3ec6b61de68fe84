// Package persist computes a persistence summary over a built cc.CC: for
// every continuum still alive once construction is done, how large a level
// gap it survives before being absorbed or cut.
//
// This is the computation the original ShapeVision tool's main left as
// "something to do with it later" right after building the decomposition;
// it consumes a *cc.CC and never touches construction internals.
package persist

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/arl/gogeo/f32"

	"github.com/pmonasse/shapevision-go/cc"
)

// Entry is one continuum's persistence, named by the canonical index of its
// lower-bounding contour.
type Entry struct {
	ContourRoot int
	Persistence float32
}

// Summarize walks every continuum of built that wasn't absorbed into
// another during construction and returns its persistence (the level gap
// between its inf and sup bounding contours), sorted by decreasing
// persistence. Values are clamped to [0, maxPersistence] to absorb the
// noise a near-degenerate saddle patch can introduce into the raw
// sup-minus-inf difference.
func Summarize(built *cc.CC, maxPersistence float32) []Entry {
	assert.True(built != nil, "Summarize: built must not be nil")

	var entries []Entry
	for i := 0; i < built.Continua.Len(); i++ {
		if built.Continua.Root(i) != i {
			continue // absorbed into another continuum
		}
		cont := built.Continua.At(i)
		inf := built.Contours.At(built.Contours.Root(int(cont.InfCtr)))
		sup := built.Contours.At(built.Contours.Root(int(cont.SupCtr)))

		p := sup.Lvl - inf.Lvl
		p = f32.Clamp(p, 0, maxPersistence)

		entries = append(entries, Entry{
			ContourRoot: built.Contours.Root(int(cont.InfCtr)),
			Persistence: p,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Persistence > entries[j].Persistence
	})
	return entries
}
