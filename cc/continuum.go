package cc

// Continuum is a maximal connected region of monotonicity between two
// contour levels. Its MME field lists the top-left corner of every
// monotone mesh element currently known to belong to it, in the order
// they were threaded together by mergeMME; InfCtr names the contour
// bounding it from below, refined as propagation discovers a closer one;
// SupCtr names the contour bounding it from above, fixed at creation (a
// continuum can only be cut from below as levels below it propagate in).
//
// Both fields are snapshots of a contour arena slot at the time they were
// last written: callers must pass them through ContourArena.Root before
// comparing or reading Lvl, the same way the arena's own parent pointers
// are only lazily compressed.
type Continuum struct {
	parent int32
	MME    []DPoint
	InfCtr int32
	SupCtr int32
}

// ContinuumArena owns every continuum created while building a CC. Like
// ContourArena it tracks identity with a path-compressing union-find
// forest: continua absorbed into another during propagation keep their
// slot but stop owning an MME list.
type ContinuumArena struct {
	continua []Continuum
}

// NewContinuumArena returns an empty arena.
func NewContinuumArena() *ContinuumArena {
	return &ContinuumArena{}
}

// Create allocates a new continuum bounded below by the contour rooted at
// ctrIdx and above by the one rooted at other, with mme as its first
// monotone mesh element.
func (a *ContinuumArena) Create(contours *ContourArena, ctrIdx, other int, mme DPoint) int {
	i := len(a.continua)
	a.continua = append(a.continua, Continuum{
		parent: noParent,
		MME:    []DPoint{mme},
		InfCtr: int32(contours.Root(ctrIdx)),
		SupCtr: int32(contours.Root(other)),
	})
	return i
}

// At returns the continuum stored at slot i.
func (a *ContinuumArena) At(i int) *Continuum {
	return &a.continua[i]
}

// Len returns the number of continuum slots ever allocated, including ones
// since absorbed into another.
func (a *ContinuumArena) Len() int {
	return len(a.continua)
}

// Root finds the canonical continuum slot for i, compressing the path.
func (a *ContinuumArena) Root(i int) int {
	root := i
	for a.continua[root].parent != noParent {
		root = int(a.continua[root].parent)
	}
	for a.continua[i].parent != noParent {
		next := int(a.continua[i].parent)
		a.continua[i].parent = int32(root)
		i = next
	}
	return root
}

// Absorb merges the continuum rooted at j into the one rooted at i. The
// caller is responsible for having already folded j's MME list into i's;
// Absorb only updates identity and drops j's now-stale list.
func (a *ContinuumArena) Absorb(i, j int) {
	ri, rj := a.Root(i), a.Root(j)
	if ri == rj {
		return
	}
	a.continua[rj].parent = int32(ri)
	a.continua[rj].MME = nil
}
