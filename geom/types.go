// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyNodeSet indicates a node set with no points.
	ErrEmptyNodeSet = errors.New("geom: node set must contain at least one point")

	// ErrInvalidDomain indicates an empty, inverted or non-finite rectangle.
	ErrInvalidDomain = errors.New("geom: invalid domain")

	// ErrNonFinitePoint indicates a coordinate that is NaN or ±Inf.
	ErrNonFinitePoint = errors.New("geom: point has non-finite coordinate")
)

// DomainSide is the side length of the default square deployment area.
const DomainSide = 100.0

// Point is a node position in the plane.
type Point struct {
	X, Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Domain is a closed axis-aligned rectangle [MinX,MaxX]×[MinY,MaxY].
type Domain struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// DefaultDomain returns the [0,100]×[0,100] deployment square.
func DefaultDomain() Domain {
	return Domain{MinX: 0, MaxX: DomainSide, MinY: 0, MaxY: DomainSide}
}

// Validate reports ErrInvalidDomain unless all bounds are finite and
// MinX < MaxX, MinY < MaxY.
func (d Domain) Validate() error {
	for _, v := range [...]float64{d.MinX, d.MaxX, d.MinY, d.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound", ErrInvalidDomain)
		}
	}
	if d.MinX >= d.MaxX || d.MinY >= d.MaxY {
		return fmt.Errorf("%w: [%g,%g]x[%g,%g]", ErrInvalidDomain, d.MinX, d.MaxX, d.MinY, d.MaxY)
	}

	return nil
}

// Width returns MaxX - MinX.
func (d Domain) Width() float64 { return d.MaxX - d.MinX }

// Height returns MaxY - MinY.
func (d Domain) Height() float64 { return d.MaxY - d.MinY }

// Area returns Width*Height.
func (d Domain) Area() float64 { return d.Width() * d.Height() }

// Contains reports whether p lies in the closed rectangle.
func (d Domain) Contains(p Point) bool {
	return p.X >= d.MinX && p.X <= d.MaxX && p.Y >= d.MinY && p.Y <= d.MaxY
}

// NodeSet is an ordered, immutable sequence of node positions.
// The zero value is an empty set; build non-empty sets with NewNodeSet.
type NodeSet struct {
	pts []Point
}

// NewNodeSet copies pts into a new NodeSet.
// Errors: ErrEmptyNodeSet, ErrNonFinitePoint.
func NewNodeSet(pts []Point) (NodeSet, error) {
	if len(pts) == 0 {
		return NodeSet{}, ErrEmptyNodeSet
	}
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return NodeSet{}, fmt.Errorf("point %d: %w", i, ErrNonFinitePoint)
		}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return NodeSet{pts: cp}, nil
}

// Len returns the number of nodes.
func (ns NodeSet) Len() int { return len(ns.pts) }

// At returns node i. It panics on an out-of-range index, like a slice.
func (ns NodeSet) At(i int) Point { return ns.pts[i] }

// Points returns a copy of the node positions.
func (ns NodeSet) Points() []Point {
	cp := make([]Point, len(ns.pts))
	copy(cp, ns.pts)

	return cp
}
