package kernel

// Mesh is a triangle soup suitable for STL output. Arrays are flat:
// three floats per vertex position and per vertex normal, three
// consecutive vertices per triangle.
type Mesh struct {
	Vertices []float32
	Normals  []float32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 9
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
