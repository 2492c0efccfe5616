// Package kernel defines the abstract geometry kernel interface and
// the evaluator that lowers csg solid trees onto it. Implementations
// (sdfx) provide solid modeling behind this interface, so backends can
// be swapped without touching the builders or the exporter.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Primitive solids
// are centered on the origin; the evaluator shifts uncentered csg
// primitives itself.
type Kernel interface {
	// Primitives.
	Cylinder(height, radius float64) Solid
	Cone(height, rBottom, rTop float64) Solid
	// Slot is the capsule cutter: the solid swept between two congruent
	// cylinders of the given radius and length whose axes run along y,
	// offset to z = ±span. Equivalently, a stadium profile in the x/z
	// plane extruded along y.
	Slot(length, radius, span float64) Solid

	// Boolean operations.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Transforms. Rotation is by Euler angles in degrees, applied
	// X then Y then Z.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, xDeg, yDeg, zDeg float64) Solid

	// Mesh output.
	ToMesh(s Solid) (*Mesh, error)
}
