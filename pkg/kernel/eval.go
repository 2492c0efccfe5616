package kernel

import (
	"fmt"
	"math"

	"packgen/pkg/csg"
)

// Evaluate lowers a csg solid tree into a kernel solid. Color nodes
// are transparent; color is cosmetic and does not affect evaluation.
// The walk is read-only; the tree is never mutated.
func Evaluate(k Kernel, s *csg.Solid) (Solid, error) {
	if s == nil {
		return nil, fmt.Errorf("kernel: cannot evaluate nil solid")
	}

	switch s.Kind {
	case csg.KindPrimitive:
		return evalPrimitive(k, s)

	case csg.KindTranslate:
		d := s.Data.(csg.TranslateData)
		child, err := evalOnlyChild(k, s)
		if err != nil {
			return nil, err
		}
		return k.Translate(child, d.Offset.X, d.Offset.Y, d.Offset.Z), nil

	case csg.KindRotate:
		d := s.Data.(csg.RotateData)
		child, err := evalOnlyChild(k, s)
		if err != nil {
			return nil, err
		}
		return evalRotate(k, child, d)

	case csg.KindUnion:
		return evalFold(k, s.Children, k.Union, "union")

	case csg.KindDifference:
		return evalFold(k, s.Children, k.Difference, "difference")

	case csg.KindHull:
		return evalHull(k, s)

	case csg.KindColor:
		return evalOnlyChild(k, s)

	default:
		return nil, fmt.Errorf("kernel: unknown node kind %q", s.Kind)
	}
}

func evalPrimitive(k Kernel, s *csg.Solid) (Solid, error) {
	d, ok := s.Data.(csg.CylinderData)
	if !ok {
		return nil, fmt.Errorf("kernel: primitive node has data type %T", s.Data)
	}
	var out Solid
	if d.RBottom == d.RTop {
		out = k.Cylinder(d.H, d.RBottom)
	} else {
		out = k.Cone(d.H, d.RBottom, d.RTop)
	}
	// Kernel primitives are centered; shift uncentered solids so the
	// base sits at the local origin.
	if !d.Centered {
		out = k.Translate(out, 0, 0, d.H/2)
	}
	return out, nil
}

// evalRotate maps an angle/axis rotation onto the kernel's Euler
// interface. The builders only rotate about principal axes; anything
// else is rejected rather than silently approximated.
func evalRotate(k Kernel, child Solid, d csg.RotateData) (Solid, error) {
	switch d.Axis {
	case csg.Vec3{X: 1}:
		return k.Rotate(child, d.Angle, 0, 0), nil
	case csg.Vec3{Y: 1}:
		return k.Rotate(child, 0, d.Angle, 0), nil
	case csg.Vec3{Z: 1}:
		return k.Rotate(child, 0, 0, d.Angle), nil
	default:
		return nil, fmt.Errorf("kernel: rotation axis %s not supported, want a unit principal axis", d.Axis)
	}
}

func evalOnlyChild(k Kernel, s *csg.Solid) (Solid, error) {
	if len(s.Children) != 1 {
		return nil, fmt.Errorf("kernel: %s node has %d children, want exactly 1", s.Kind, len(s.Children))
	}
	return Evaluate(k, s.Children[0])
}

// evalFold evaluates children and folds them pairwise. For difference
// the fold subtracts each subsequent child from the running result,
// which equals minuend minus the union of the subtrahends.
func evalFold(k Kernel, children []*csg.Solid, op func(a, b Solid) Solid, name string) (Solid, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("kernel: %s node has no children", name)
	}
	acc, err := Evaluate(k, children[0])
	if err != nil {
		return nil, err
	}
	for _, c := range children[1:] {
		next, err := Evaluate(k, c)
		if err != nil {
			return nil, err
		}
		acc = op(acc, next)
	}
	return acc, nil
}

// evalHull lowers a hull node. Signed-distance kernels have no general
// convex-hull operator, so only the one hull shape the builders emit is
// supported: two congruent cross-axis cylinders at ±span along z,
// which sweep an extruded-stadium capsule. Any other arrangement is an
// error.
func evalHull(k Kernel, s *csg.Solid) (Solid, error) {
	if len(s.Children) != 2 {
		return nil, fmt.Errorf("kernel: hull of %d children not supported, want 2 parallel cylinders", len(s.Children))
	}
	a, aOff, err := slotHalf(s.Children[0])
	if err != nil {
		return nil, err
	}
	b, bOff, err := slotHalf(s.Children[1])
	if err != nil {
		return nil, err
	}
	if a != b {
		return nil, fmt.Errorf("kernel: hull cylinders differ: %+v vs %+v", a, b)
	}
	if aOff != -bOff || aOff == 0 {
		return nil, fmt.Errorf("kernel: hull cylinder offsets %g and %g are not symmetric about the origin", aOff, bOff)
	}
	return k.Slot(a.h, a.r, math.Abs(aOff)), nil
}

// slotCylinder is one recognized half of a capsule slot cutter.
type slotCylinder struct {
	h, r float64
}

// slotHalf matches the canonical cutter half produced by the slot
// generator: Translate([0,0,z]) → Rotate(90° about x) → centered
// cylinder. It returns the cylinder parameters and the z offset.
func slotHalf(s *csg.Solid) (slotCylinder, float64, error) {
	fail := func(format string, args ...any) (slotCylinder, float64, error) {
		return slotCylinder{}, 0, fmt.Errorf("kernel: hull child is not a slot cylinder: "+format, args...)
	}

	if s == nil || s.Kind != csg.KindTranslate || len(s.Children) != 1 {
		return fail("want a translate wrapper")
	}
	td := s.Data.(csg.TranslateData)
	if td.Offset.X != 0 || td.Offset.Y != 0 {
		return fail("offset %s is not purely axial", td.Offset)
	}

	rot := s.Children[0]
	if rot == nil || rot.Kind != csg.KindRotate || len(rot.Children) != 1 {
		return fail("want a rotate wrapper inside the translate")
	}
	rd := rot.Data.(csg.RotateData)
	if rd.Angle != 90 || rd.Axis != (csg.Vec3{X: 1}) {
		return fail("want a 90° rotation about x, got %g° about %s", rd.Angle, rd.Axis)
	}

	prim := rot.Children[0]
	if prim == nil || prim.Kind != csg.KindPrimitive {
		return fail("want a cylinder primitive inside the rotate")
	}
	cd := prim.Data.(csg.CylinderData)
	if cd.RBottom != cd.RTop {
		return fail("want a straight cylinder, got frustum %g→%g", cd.RBottom, cd.RTop)
	}
	if !cd.Centered {
		return fail("want a centered cylinder")
	}

	return slotCylinder{h: cd.H, r: cd.RBottom}, td.Offset.Z, nil
}
