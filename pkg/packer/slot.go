package packer

import "packgen/pkg/csg"

// SlotCutter builds the capsule-shaped cutter solid used to carve an
// axial slot through a housing wall: the convex hull of two identical
// cross-axis cylinders offset to ±spanOffset, with the hull translated
// so its center sits at zCenter. The resulting slot runs parallel to
// the main axis across a 2×spanOffset span with semicircular ends of
// the cutter radius.
//
// The cutter length must exceed the housing's full diameter at every
// call site so the slot cuts through both walls; Config.Validate
// enforces that sizing. Angular placement about the main axis is the
// caller's responsibility, the cutter itself is angle-agnostic.
func SlotCutter(cfg Config, zCenter, spanOffset float64) *csg.Solid {
	crossCylinder := func(z float64) *csg.Solid {
		return csg.Translate(csg.Vec3{Z: z},
			csg.Rotate(90, csg.Vec3{X: 1},
				csg.Cylinder(cfg.SlotCutterLength, cfg.SlotCutterRadius, true)))
	}
	return csg.Translate(csg.Vec3{Z: zCenter},
		csg.Hull(crossCylinder(spanOffset), crossCylinder(-spanOffset)))
}
