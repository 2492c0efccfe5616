package csg

import (
	"reflect"
	"testing"
)

func TestCylinderConstructor(t *testing.T) {
	s := Cylinder(120, 68, false)
	if s.Kind != KindPrimitive {
		t.Fatalf("kind = %v, want primitive", s.Kind)
	}
	d, ok := s.Data.(CylinderData)
	if !ok {
		t.Fatalf("data type = %T, want CylinderData", s.Data)
	}
	if d.H != 120 || d.RBottom != 68 || d.RTop != 68 {
		t.Errorf("data = %+v, want h=120 r=68", d)
	}
	if d.Centered {
		t.Error("cylinder should not be centered")
	}
	if len(s.Children) != 0 {
		t.Errorf("primitive has %d children, want 0", len(s.Children))
	}
}

func TestFrustumDegeneratesToCylinder(t *testing.T) {
	// Equal radii must yield the exact same node as the cylinder
	// constructor: one representation, no special casing.
	frustum := Frustum(70, 40, 40, true)
	cylinder := Cylinder(70, 40, true)
	if !reflect.DeepEqual(frustum, cylinder) {
		t.Errorf("Frustum(h, r, r) = %+v, want identical to Cylinder(h, r): %+v", frustum, cylinder)
	}
}

func TestFrustumDistinctRadii(t *testing.T) {
	s := Frustum(70, 40, 68, false)
	d := s.Data.(CylinderData)
	if d.RBottom != 40 || d.RTop != 68 {
		t.Errorf("radii = %g→%g, want 40→68", d.RBottom, d.RTop)
	}
}

func TestTransformConstructors(t *testing.T) {
	child := Cylinder(10, 5, false)

	tr := Translate(Vec3{Z: 170}, child)
	if tr.Kind != KindTranslate || len(tr.Children) != 1 || tr.Children[0] != child {
		t.Errorf("translate node malformed: %+v", tr)
	}
	if d := tr.Data.(TranslateData); d.Offset != (Vec3{Z: 170}) {
		t.Errorf("offset = %s, want (0, 0, 170)", d.Offset)
	}

	rot := Rotate(90, Vec3{X: 1}, child)
	if rot.Kind != KindRotate || len(rot.Children) != 1 {
		t.Errorf("rotate node malformed: %+v", rot)
	}
	if d := rot.Data.(RotateData); d.Angle != 90 || d.Axis != (Vec3{X: 1}) {
		t.Errorf("rotation = %g about %s, want 90 about (1, 0, 0)", d.Angle, d.Axis)
	}

	rz := RotateZ(180, child)
	if d := rz.Data.(RotateData); d.Axis != (Vec3{Z: 1}) {
		t.Errorf("RotateZ axis = %s, want (0, 0, 1)", d.Axis)
	}
}

func TestOperationConstructors(t *testing.T) {
	a := Cylinder(10, 5, false)
	b := Cylinder(20, 6, false)
	c := Cylinder(30, 7, false)

	u := Union(a, b, c)
	if u.Kind != KindUnion || len(u.Children) != 3 {
		t.Errorf("union node malformed: %+v", u)
	}

	d := Difference(a, b, c)
	if d.Kind != KindDifference || len(d.Children) != 3 {
		t.Errorf("difference node malformed: %+v", d)
	}
	if d.Children[0] != a {
		t.Error("difference minuend must be the first child")
	}

	h := Hull(a, b)
	if h.Kind != KindHull || len(h.Children) != 2 {
		t.Errorf("hull node malformed: %+v", h)
	}
}

func TestDifferenceNoSubtrahendsIsPassThrough(t *testing.T) {
	a := Cylinder(10, 5, false)
	if got := Difference(a); got != a {
		t.Errorf("Difference with no subtrahends = %+v, want the minuend unchanged", got)
	}
}

func TestColorConstructor(t *testing.T) {
	child := Cylinder(10, 5, false)
	c := Color("FireBrick", child)
	if c.Kind != KindColor || len(c.Children) != 1 {
		t.Errorf("color node malformed: %+v", c)
	}
	if d := c.Data.(ColorData); d.Name != "FireBrick" {
		t.Errorf("color name = %q, want FireBrick", d.Name)
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	tree := Union(
		Color("Black", Cylinder(10, 5, false)),
		Translate(Vec3{Z: 1}, Cylinder(20, 6, false)),
	)
	// union + color + cylinder + translate + cylinder
	var count int
	Walk(tree, func(*Solid) { count++ })
	if count != 5 {
		t.Errorf("Walk visited %d nodes, want 5", count)
	}

	Walk(nil, func(*Solid) { t.Error("Walk(nil) must not visit") })
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindPrimitive, "primitive"},
		{KindTranslate, "translate"},
		{KindRotate, "rotate"},
		{KindUnion, "union"},
		{KindDifference, "difference"},
		{KindHull, "hull"},
		{KindColor, "color"},
		{Kind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if sum := a.Add(b); sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v, want (5, 7, 9)", sum)
	}
	if scaled := a.Scale(2); scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v, want (2, 4, 6)", scaled)
	}
	if !(Vec3{}).IsZero() {
		t.Error("zero vector should be zero")
	}
	if a.IsZero() {
		t.Error("non-zero vector should not be zero")
	}
	if got := (Vec3{1.5, 2.5, 3.5}).String(); got != "(1.5, 2.5, 3.5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDataInterface(t *testing.T) {
	// Verify all concrete types implement Data at compile time.
	var _ Data = CylinderData{}
	var _ Data = TranslateData{}
	var _ Data = RotateData{}
	var _ Data = UnionData{}
	var _ Data = DifferenceData{}
	var _ Data = HullData{}
	var _ Data = ColorData{}
}
