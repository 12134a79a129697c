package core

import "math"

// AABB is an axis-aligned bounding box. The zero value is empty: Union with
// an empty box returns the other box unchanged.
type AABB struct {
	Min   Vec3
	Max   Vec3
	empty bool
}

// EmptyAABB returns a box that bounds nothing
func EmptyAABB() AABB {
	return AABB{empty: true}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = Vec3{math.Min(box.Min.X, point.X), math.Min(box.Min.Y, point.Y), math.Min(box.Min.Z, point.Z)}
		box.Max = Vec3{math.Max(box.Max.X, point.X), math.Max(box.Max.Y, point.Y), math.Max(box.Max.Z, point.Z)}
	}
	return box
}

// IsEmpty reports whether the box bounds no points
func (aabb AABB) IsEmpty() bool {
	return aabb.empty
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	if aabb.empty {
		return other
	}
	if other.empty {
		return aabb
	}
	return NewAABBFromPoints(aabb.Min, aabb.Max, other.Min, other.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		c := aabb.Min
		if i&1 != 0 {
			c.X = aabb.Max.X
		}
		if i&2 != 0 {
			c.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			c.Z = aabb.Max.Z
		}
		corners[i] = c
	}
	return corners
}
