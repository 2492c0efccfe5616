package packer

import "packgen/pkg/csg"

// Tubing returns a plain tubing joint of the given length, base at the
// local origin.
func Tubing(cfg Config, length float64) *csg.Solid {
	return csg.Color(cfg.Colors.Metal, csg.Cylinder(length, cfg.TubingRadius, false))
}

// LowerHousing builds the lower slip housing: a main cylinder with a
// bull-nose taper and lip extending below the local origin, two slot
// cutouts 180° apart, and the inner sleeve and core left visible
// through the slots. The taper and lip reach down to local z = -80.
func LowerHousing(cfg Config) *csg.Solid {
	const (
		bodyHeight  = 120.0
		noseRadius  = 40.0
		taperHeight = 70.0
		lipHeight   = 10.0
		slotCenter  = 60.0
		slotSpan    = 35.0
	)

	mainBody := csg.Cylinder(bodyHeight, cfg.BodyRadius, false)
	taper := csg.Translate(csg.Vec3{Z: -taperHeight},
		csg.Frustum(taperHeight, noseRadius, cfg.BodyRadius, false))
	lip := csg.Translate(csg.Vec3{Z: -(taperHeight + lipHeight)},
		csg.Cylinder(lipHeight, noseRadius, false))
	outerBody := csg.Color(cfg.Colors.Body, csg.Union(mainBody, taper, lip))

	slot := SlotCutter(cfg, slotCenter, slotSpan)
	cutouts := csg.Union(
		csg.RotateZ(0, slot),
		csg.RotateZ(180, slot),
	)

	innerSleeve := csg.Color(cfg.Colors.Sleeve, csg.Cylinder(bodyHeight, cfg.InnerSleeveRadius, false))
	innerCore := csg.Color(cfg.Colors.Core, csg.Cylinder(bodyHeight, cfg.InnerCoreRadius, false))

	return csg.Union(
		csg.Difference(outerBody, cutouts),
		innerSleeve,
		innerCore,
	)
}

// SealingStack builds the five-segment rubber stack (element, spacer,
// element, spacer, element) seated between two metal gauge rings. The
// stack sits directly on the bottom ring and the top ring sits directly
// on the stack: 20 + 99 + 20 = 139 total, contiguous, no gaps. Rings
// and stack are positioned to abut exactly, never boolean-trimmed.
func SealingStack(cfg Config) *csg.Solid {
	const (
		elementHeight = 25.0
		elementRadius = 80.0
		spacerHeight  = 12.0
		spacerRadius  = 72.0
		ringHeight    = 20.0
		ringMinor     = 68.0
		ringMajor     = 76.0

		stackHeight = 3*elementHeight + 2*spacerHeight // 99
	)

	stack := csg.Union(
		csg.Cylinder(elementHeight, elementRadius, false),
		csg.Translate(csg.Vec3{Z: elementHeight},
			csg.Cylinder(spacerHeight, spacerRadius, false)),
		csg.Translate(csg.Vec3{Z: elementHeight + spacerHeight},
			csg.Cylinder(elementHeight, elementRadius, false)),
		csg.Translate(csg.Vec3{Z: 2*elementHeight + spacerHeight},
			csg.Cylinder(spacerHeight, spacerRadius, false)),
		csg.Translate(csg.Vec3{Z: 2*elementHeight + 2*spacerHeight},
			csg.Cylinder(elementHeight, elementRadius, false)),
	)
	internalStack := csg.Color(cfg.Colors.Rubber, stack)

	bottomRing := csg.Color(cfg.Colors.Metal,
		csg.Frustum(ringHeight, ringMinor, ringMajor, false))
	topRing := csg.Color(cfg.Colors.Metal,
		csg.Translate(csg.Vec3{Z: ringHeight + stackHeight},
			csg.Frustum(ringHeight, ringMajor, ringMinor, false)))

	return csg.Union(
		bottomRing,
		csg.Translate(csg.Vec3{Z: ringHeight}, internalStack),
		topRing,
	)
}

// UpperHousing builds the upper bypass housing: a five-segment stack
// (lip, shoulder, main body, taper, neck; 350 total, contiguous),
// four slot cutouts 90° apart, and the inner sleeve and core aligned
// with the main-body segment.
func UpperHousing(cfg Config) *csg.Solid {
	const (
		lipHeight      = 10.0
		lipRadius      = 64.0
		shoulderHeight = 25.0
		bodyHeight     = 250.0
		taperHeight    = 25.0
		neckHeight     = 40.0
		neckRadius     = 50.5
		slotCenter     = 160.0
		slotSpan       = 60.0

		bodyStart = lipHeight + shoulderHeight // 35
	)

	body := csg.Union(
		csg.Cylinder(lipHeight, lipRadius, false),
		csg.Translate(csg.Vec3{Z: lipHeight},
			csg.Cylinder(shoulderHeight, cfg.BodyRadius, false)),
		csg.Translate(csg.Vec3{Z: bodyStart},
			csg.Cylinder(bodyHeight, cfg.BodyRadius, false)),
		csg.Translate(csg.Vec3{Z: bodyStart + bodyHeight},
			csg.Frustum(taperHeight, cfg.BodyRadius, neckRadius, false)),
		csg.Translate(csg.Vec3{Z: bodyStart + bodyHeight + taperHeight},
			csg.Cylinder(neckHeight, neckRadius, false)),
	)

	slot := SlotCutter(cfg, slotCenter, slotSpan)
	cutouts := csg.Union(
		csg.RotateZ(0, slot),
		csg.RotateZ(90, slot),
		csg.RotateZ(180, slot),
		csg.RotateZ(270, slot),
	)

	innerSleeve := csg.Color(cfg.Colors.Sleeve,
		csg.Translate(csg.Vec3{Z: bodyStart},
			csg.Cylinder(bodyHeight, cfg.InnerSleeveRadius, false)))
	innerCore := csg.Color(cfg.Colors.Core,
		csg.Translate(csg.Vec3{Z: bodyStart},
			csg.Cylinder(bodyHeight, cfg.InnerCoreRadius, false)))

	return csg.Union(
		csg.Color(cfg.Colors.Body, csg.Difference(body, cutouts)),
		innerSleeve,
		innerCore,
	)
}
