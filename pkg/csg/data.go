package csg

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// CylinderData describes a right cylinder or conical frustum along the
// local z axis. RBottom == RTop is a plain cylinder; both cases share
// the one representation, so a degenerate frustum needs no special
// handling anywhere downstream. Centered solids span [-H/2, H/2],
// uncentered solids span [0, H].
type CylinderData struct {
	H        float64
	RBottom  float64
	RTop     float64
	Centered bool
}

func (CylinderData) solidData() {}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

// TranslateData moves its single child by Offset.
type TranslateData struct {
	Offset Vec3
}

func (TranslateData) solidData() {}

// RotateData rotates its single child by Angle degrees about Axis
// through the local origin.
type RotateData struct {
	Angle float64 // degrees
	Axis  Vec3
}

func (RotateData) solidData() {}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// UnionData marks the set union of the node's children.
type UnionData struct{}

func (UnionData) solidData() {}

// DifferenceData marks the first child minus the union of the rest.
type DifferenceData struct{}

func (DifferenceData) solidData() {}

// HullData marks the convex hull of the node's children.
type HullData struct{}

func (HullData) solidData() {}

// ---------------------------------------------------------------------------
// Color
// ---------------------------------------------------------------------------

// ColorData tags its single child with a display color name. Cosmetic
// only; it has no effect on boolean semantics.
type ColorData struct {
	Name string
}

func (ColorData) solidData() {}
