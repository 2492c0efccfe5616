// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"packgen/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Backend)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Backend implements kernel.Kernel using sdfx.
type Backend struct {
	cells int
}

// New returns a Backend meshing at the given marching cubes resolution.
// Non-positive cells selects the default.
func New(cells int) *Backend {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return &Backend{cells: cells}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Cylinder creates a cylinder centered on the origin. sdfx only errors
// on non-positive dimensions, which validated configurations exclude.
func (b *Backend) Cylinder(height, radius float64) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return wrap(s)
}

// Cone creates a conical frustum centered on the origin, rBottom at the
// base and rTop at the top.
func (b *Backend) Cone(height, rBottom, rTop float64) kernel.Solid {
	s, err := sdf.Cone3D(height, rBottom, rTop, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cone3D: %v", err))
	}
	return wrap(s)
}

// Slot creates the capsule cutter: a stadium profile (a 2r by 2*span
// box capped by circles at (0, ±span)) extruded along the cylinder
// axis. The extrusion runs along z, so the solid is stood on its side
// to put the cylinder axes along y and the rounded ends at z = ±span.
func (b *Backend) Slot(length, radius, span float64) kernel.Solid {
	end, err := sdf.Circle2D(radius)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Circle2D: %v", err))
	}
	web := sdf.Box2D(v2.Vec{X: 2 * radius, Y: 2 * span}, 0)
	profile := sdf.Union2D(
		web,
		sdf.Transform2D(end, sdf.Translate2d(v2.Vec{Y: span})),
		sdf.Transform2D(end, sdf.Translate2d(v2.Vec{Y: -span})),
	)
	capsule := sdf.Extrude3D(profile, length)
	return wrap(sdf.Transform3D(capsule, sdf.RotateX(math.Pi/2)))
}

// Union returns the union of two solids.
func (b *Backend) Union(a, c kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(c)))
}

// Difference returns the difference a - c.
func (b *Backend) Difference(a, c kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(c)))
}

// Translate moves a solid by (x, y, z).
func (b *Backend) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (b *Backend) Rotate(s kernel.Solid, xDeg, yDeg, zDeg float64) kernel.Solid {
	xRad := xDeg * math.Pi / 180.0
	yRad := yDeg * math.Pi / 180.0
	zRad := zDeg * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (b *Backend) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(b.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	vertices := make([]float32, 0, numTri*9)
	normals := make([]float32, 0, numTri*9)

	for _, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
	}, nil
}
