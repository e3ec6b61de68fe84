package cc

// Pos is an integer grid coordinate: the top-left corner of a unit cell, or
// the location of a regular (non-saddle) contour.
type Pos struct {
	X, Y int16
}

// At returns the coordinate along axis (0=X, 1=Y).
func (p Pos) At(axis int) int16 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// Set assigns the coordinate along axis (0=X, 1=Y).
func (p *Pos) Set(axis int, v int16) {
	if axis == 0 {
		p.X = v
	} else {
		p.Y = v
	}
}

// DPoint is a real coordinate in the sample plane: the location of a
// contour (integer for a regular contour, fractional for a saddle), or the
// representative corner of a monotone mesh element.
type DPoint struct {
	X, Y float64
}

// At returns the coordinate along axis (0=X, 1=Y).
func (p DPoint) At(axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// Set assigns the coordinate along axis (0=X, 1=Y).
func (p *DPoint) Set(axis int, v float64) {
	if axis == 0 {
		p.X = v
	} else {
		p.Y = v
	}
}

// DPoint converts an integer grid position to its real-plane counterpart.
func (p Pos) DPoint() DPoint {
	return DPoint{X: float64(p.X), Y: float64(p.Y)}
}

// minDPoint returns the component-wise minimum of a and b: the top-left
// corner of the box they span, used as a monotone mesh element's
// representative corner.
func minDPoint(a, b DPoint) DPoint {
	if b.X < a.X {
		a.X = b.X
	}
	if b.Y < a.Y {
		a.Y = b.Y
	}
	return a
}

func reverseDPoints(v []DPoint) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
