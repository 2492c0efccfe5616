package csg

// Cylinder returns a right cylinder of height h and radius r. When
// centered is true the cylinder spans [-h/2, h/2] along z, otherwise
// [0, h].
func Cylinder(h, r float64, centered bool) *Solid {
	return Frustum(h, r, r, centered)
}

// Frustum returns a conical frustum of height h with radius rBottom at
// its base and rTop at its top. Equal radii degenerate to a cylinder
// through the same representation. Radii and height must be positive;
// Validate reports violations.
func Frustum(h, rBottom, rTop float64, centered bool) *Solid {
	return &Solid{
		Kind: KindPrimitive,
		Data: CylinderData{H: h, RBottom: rBottom, RTop: rTop, Centered: centered},
	}
}

// Translate returns child moved by offset.
func Translate(offset Vec3, child *Solid) *Solid {
	return &Solid{
		Kind:     KindTranslate,
		Data:     TranslateData{Offset: offset},
		Children: []*Solid{child},
	}
}

// Rotate returns child rotated by angle degrees about axis through the
// local origin.
func Rotate(angle float64, axis Vec3, child *Solid) *Solid {
	return &Solid{
		Kind:     KindRotate,
		Data:     RotateData{Angle: angle, Axis: axis},
		Children: []*Solid{child},
	}
}

// RotateZ is shorthand for a rotation about the main (z) axis.
func RotateZ(angle float64, child *Solid) *Solid {
	return Rotate(angle, Vec3{Z: 1}, child)
}

// Union returns the set union of children.
func Union(children ...*Solid) *Solid {
	return &Solid{
		Kind:     KindUnion,
		Data:     UnionData{},
		Children: children,
	}
}

// Difference returns minuend minus the union of subtrahends. Called
// with no subtrahends it is a pass-through: the minuend is returned
// unchanged rather than wrapped in a degenerate operation node.
func Difference(minuend *Solid, subtrahends ...*Solid) *Solid {
	if len(subtrahends) == 0 {
		return minuend
	}
	children := make([]*Solid, 0, 1+len(subtrahends))
	children = append(children, minuend)
	children = append(children, subtrahends...)
	return &Solid{
		Kind:     KindDifference,
		Data:     DifferenceData{},
		Children: children,
	}
}

// Hull returns the convex hull of the surfaces of children.
func Hull(children ...*Solid) *Solid {
	return &Solid{
		Kind:     KindHull,
		Data:     HullData{},
		Children: children,
	}
}

// Color tags child with a display color name.
func Color(name string, child *Solid) *Solid {
	return &Solid{
		Kind:     KindColor,
		Data:     ColorData{Name: name},
		Children: []*Solid{child},
	}
}
